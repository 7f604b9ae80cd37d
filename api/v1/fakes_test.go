package v1

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/portfolio-api/dto"
	"github.com/portfolio-api/models"
	"github.com/portfolio-api/repositories"
)

type memUsers struct {
	mu   sync.Mutex
	byID map[string]models.User
}

func (m *memUsers) Create(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.byID {
		if existing.Email == u.Email {
			return repositories.ErrDuplicate
		}
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Role == "" {
		u.Role = models.RoleAdmin
	}
	u.CreatedAt = time.Now()
	m.byID[u.ID] = *u
	return nil
}

func (m *memUsers) FindByID(_ context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &u, nil
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

// memProjects evaluates list filters on display order and the featured flag
type memProjects struct {
	mu   sync.Mutex
	byID map[string]models.Project
}

func (m *memProjects) List(_ context.Context, q dto.ListQuery) ([]models.Project, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Project
	for _, p := range m.byID {
		if matchesAll(p, q.Filters) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		for _, s := range q.Sort {
			a, b := sortKey(out[i], s.Column), sortKey(out[j], s.Column)
			if a == b {
				continue
			}
			if s.Desc {
				return a > b
			}
			return a < b
		}
		return out[i].ID < out[j].ID
	})
	total := int64(len(out))
	start := min(q.Offset(), len(out))
	end := min(start+q.Limit, len(out))
	return out[start:end], total, nil
}

func sortKey(p models.Project, column string) int64 {
	if column == "display_order" {
		return int64(p.Order)
	}
	return p.CreatedAt.UnixNano()
}

func matchesAll(p models.Project, filters []dto.Filter) bool {
	for _, f := range filters {
		if !matches(p, f) {
			return false
		}
	}
	return true
}

func matches(p models.Project, f dto.Filter) bool {
	switch f.Column {
	case "display_order":
		if f.Op == dto.OpIn {
			for _, v := range f.Value.([]any) {
				if v.(int) == p.Order {
					return true
				}
			}
			return false
		}
		v := f.Value.(int)
		switch f.Op {
		case dto.OpGt:
			return p.Order > v
		case dto.OpGte:
			return p.Order >= v
		case dto.OpLt:
			return p.Order < v
		case dto.OpLte:
			return p.Order <= v
		default:
			return p.Order == v
		}
	case "featured":
		return p.Featured == f.Value.(bool)
	default:
		panic(fmt.Sprintf("memProjects cannot filter on %s", f.Column))
	}
}

func (m *memProjects) FindByID(_ context.Context, id string) (*models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.byID[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &p, nil
}

func (m *memProjects) Create(_ context.Context, p *models.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.byID {
		if existing.Slug == p.Slug {
			return repositories.ErrDuplicate
		}
	}
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	m.byID[p.ID] = *p
	return nil
}

func (m *memProjects) Update(_ context.Context, p *models.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[p.ID]; !ok {
		return repositories.ErrNotFound
	}
	m.byID[p.ID] = *p
	return nil
}

func (m *memProjects) UpdateImage(_ context.Context, id, image string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.byID[id]
	if !ok {
		return repositories.ErrNotFound
	}
	p.Image = image
	m.byID[id] = p
	return nil
}

func (m *memProjects) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

type memContacts struct {
	mu        sync.Mutex
	byID      map[string]models.Contact
	markReads int
}

func (m *memContacts) Create(_ context.Context, c *models.Contact) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now()
	m.byID[c.ID] = *c
	return nil
}

func (m *memContacts) List(_ context.Context) ([]models.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Contact, 0, len(m.byID))
	for _, c := range m.byID {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memContacts) FindByID(_ context.Context, id string) (*models.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.byID[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &c, nil
}

func (m *memContacts) MarkRead(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.byID[id]
	if !ok {
		return repositories.ErrNotFound
	}
	m.markReads++
	c.Read = true
	m.byID[id] = c
	return nil
}

func (m *memContacts) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}
