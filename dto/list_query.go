package dto

import (
	"fmt"
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// FieldType decides how raw query values are coerced
type FieldType int

const (
	FieldString FieldType = iota
	FieldInt
	FieldBool
	FieldTime
	FieldStringArray
)

// FilterOp is a comparison a client may request with field[op]=value
type FilterOp string

const (
	OpEq  FilterOp = "eq"
	OpGt  FilterOp = "gt"
	OpGte FilterOp = "gte"
	OpLt  FilterOp = "lt"
	OpLte FilterOp = "lte"
	OpIn  FilterOp = "in"
)

var reservedParams = map[string]bool{
	"select": true,
	"sort":   true,
	"page":   true,
	"limit":  true,
}

// QueryField maps a public JSON field to its column
type QueryField struct {
	Column string
	Type   FieldType
}

// QuerySchema is the allow-list of fields a list endpoint understands
type QuerySchema map[string]QueryField

// Filter is one coerced condition. Value holds []any for OpIn.
type Filter struct {
	Field  string
	Column string
	Type   FieldType
	Op     FilterOp
	Value  any
}

// SortField orders results by a column
type SortField struct {
	Column string
	Desc   bool
}

// ListQuery is the typed form of a list request's query string
type ListQuery struct {
	Filters []Filter
	Sort    []SortField
	Select  []string
	Page    int
	Limit   int
}

// Offset returns the number of rows skipped before the current page
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// QueryError reports a filter the client sent that cannot be applied
type QueryError struct {
	Message string
}

func (e *QueryError) Error() string {
	return e.Message
}

// ParseListQuery turns raw query parameters into a ListQuery.
// Fields missing from schema are ignored; a known field with a bad value or operator is an error.
func ParseListQuery(values url.Values, schema QuerySchema) (ListQuery, error) {
	q := ListQuery{
		Page:  positiveOr(values.Get("page"), DefaultPage),
		Limit: positiveOr(values.Get("limit"), DefaultLimit),
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	// keeps Page*Limit, and so the offset, inside an int32
	if maxPage := math.MaxInt32 / q.Limit; q.Page > maxPage {
		q.Page = maxPage
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if reservedParams[key] {
			continue
		}
		name, op := splitFilterKey(key)
		field, ok := schema[name]
		if !ok {
			continue
		}
		if !opAllowed(field.Type, op) {
			return ListQuery{}, &QueryError{Message: fmt.Sprintf("Operator '%s' is not supported for field '%s'", op, name)}
		}
		for _, raw := range values[key] {
			value, err := coerceFilterValue(field.Type, op, raw)
			if err != nil {
				return ListQuery{}, &QueryError{Message: fmt.Sprintf("Invalid value '%s' for filter '%s'", raw, name)}
			}
			q.Filters = append(q.Filters, Filter{
				Field:  name,
				Column: field.Column,
				Type:   field.Type,
				Op:     op,
				Value:  value,
			})
		}
	}

	q.Sort = parseSort(values.Get("sort"), schema)
	q.Select = parseSelect(values.Get("select"), schema)
	return q, nil
}

func splitFilterKey(key string) (string, FilterOp) {
	open := strings.IndexByte(key, '[')
	if open <= 0 || !strings.HasSuffix(key, "]") {
		return key, OpEq
	}
	return key[:open], FilterOp(strings.ToLower(key[open+1 : len(key)-1]))
}

func opAllowed(t FieldType, op FilterOp) bool {
	switch op {
	case OpEq, OpIn:
		return true
	case OpGt, OpGte, OpLt, OpLte:
		return t == FieldString || t == FieldInt || t == FieldTime
	default:
		return false
	}
}

func coerceFilterValue(t FieldType, op FilterOp, raw string) (any, error) {
	if op != OpIn {
		return coerceScalar(t, raw)
	}
	parts := strings.Split(raw, ",")
	out := make([]any, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := coerceScalar(t, p)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty list")
	}
	return out, nil
}

func coerceScalar(t FieldType, raw string) (any, error) {
	switch t {
	case FieldInt:
		return strconv.Atoi(strings.TrimSpace(raw))
	case FieldBool:
		return strconv.ParseBool(strings.TrimSpace(raw))
	case FieldTime:
		raw = strings.TrimSpace(raw)
		if ts, err := time.Parse(time.RFC3339, raw); err == nil {
			return ts, nil
		}
		return time.Parse(time.DateOnly, raw)
	default:
		return raw, nil
	}
}

// parseSort reads "a,-b"; unknown fields are skipped and the default is newest first
func parseSort(raw string, schema QuerySchema) []SortField {
	var out []SortField
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		desc := strings.HasPrefix(part, "-")
		part = strings.TrimPrefix(part, "-")
		if field, ok := schema[part]; ok && part != "" {
			out = append(out, SortField{Column: field.Column, Desc: desc})
		}
	}
	if len(out) == 0 {
		if field, ok := schema["createdAt"]; ok {
			out = append(out, SortField{Column: field.Column, Desc: true})
		}
	}
	return out
}

// parseSelect keeps known fields, always including id
func parseSelect(raw string, schema QuerySchema) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	seen := map[string]bool{"id": true}
	out := []string{"id"}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if _, ok := schema[part]; ok && !seen[part] {
			seen[part] = true
			out = append(out, part)
		}
	}
	if len(out) == 1 {
		return nil
	}
	return out
}

func positiveOr(raw string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 1 {
		return def
	}
	return v
}

// PageRef points at a neighbouring page
type PageRef struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Pagination carries next/prev descriptors, each omitted when there is no such page
type Pagination struct {
	Next *PageRef `json:"next,omitempty"`
	Prev *PageRef `json:"prev,omitempty"`
}

// NewPagination computes neighbours from the filtered total
func NewPagination(page, limit int, total int64) Pagination {
	var p Pagination
	if int64(page)*int64(limit) < total {
		p.Next = &PageRef{Page: page + 1, Limit: limit}
	}
	if page > 1 {
		p.Prev = &PageRef{Page: page - 1, Limit: limit}
	}
	return p
}
