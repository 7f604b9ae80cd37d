package repositories

import (
	"github.com/lib/pq"
	"github.com/portfolio-api/dto"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WithFilters applies the coerced filters of a list query
func WithFilters(filters []dto.Filter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, f := range filters {
			db = db.Where(filterExpression(f))
		}
		return db
	}
}

// WithSort orders by the requested columns with id as a stable tiebreaker
func WithSort(sort []dto.SortField) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, s := range sort {
			db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: s.Column}, Desc: s.Desc})
		}
		return db.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}})
	}
}

// Paginate applies offset and limit for the requested page
func Paginate(q dto.ListQuery) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(q.Offset()).Limit(q.Limit)
	}
}

func filterExpression(f dto.Filter) clause.Expression {
	col := clause.Column{Name: f.Column}
	if f.Type == dto.FieldStringArray {
		if f.Op == dto.OpIn {
			return clause.Expr{SQL: "? && ?", Vars: []any{col, toStringArray(f.Value)}}
		}
		return clause.Expr{SQL: "? = ANY(?)", Vars: []any{f.Value, col}}
	}
	switch f.Op {
	case dto.OpGt:
		return clause.Gt{Column: col, Value: f.Value}
	case dto.OpGte:
		return clause.Gte{Column: col, Value: f.Value}
	case dto.OpLt:
		return clause.Lt{Column: col, Value: f.Value}
	case dto.OpLte:
		return clause.Lte{Column: col, Value: f.Value}
	case dto.OpIn:
		values, _ := f.Value.([]any)
		return clause.IN{Column: col, Values: values}
	default:
		return clause.Eq{Column: col, Value: f.Value}
	}
}

func toStringArray(v any) pq.StringArray {
	items, _ := v.([]any)
	out := make(pq.StringArray, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
