package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/portfolio-api/dto"
	"github.com/portfolio-api/models"
	"github.com/portfolio-api/repositories"
)

type fakeUsers struct {
	mu    sync.Mutex
	byID  map[string]*models.User
	fails error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: map[string]*models.User{}}
}

func (f *fakeUsers) Create(_ context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fails != nil {
		return f.fails
	}
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return repositories.ErrDuplicate
		}
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeUsers) FindByID(_ context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fails != nil {
		return nil, f.fails
	}
	for _, u := range f.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

type fakeProjects struct {
	mu        sync.Mutex
	byID      map[string]*models.Project
	lastQuery dto.ListQuery
	updates   int
}

func newFakeProjects() *fakeProjects {
	return &fakeProjects{byID: map[string]*models.Project{}}
}

func (f *fakeProjects) add(p models.Project) *models.Project {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.CreatedAt = time.Now()
	f.byID[p.ID] = &p
	return &p
}

func (f *fakeProjects) List(_ context.Context, q dto.ListQuery) ([]models.Project, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastQuery = q
	out := make([]models.Project, 0, len(f.byID))
	for _, p := range f.byID {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	total := int64(len(out))
	start := q.Offset()
	if start > len(out) {
		start = len(out)
	}
	end := start + q.Limit
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], total, nil
}

func (f *fakeProjects) FindByID(_ context.Context, id string) (*models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.byID[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProjects) Create(_ context.Context, p *models.Project) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.byID {
		if existing.Slug == p.Slug {
			return repositories.ErrDuplicate
		}
	}
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	cp := *p
	f.byID[p.ID] = &cp
	return nil
}

func (f *fakeProjects) Update(_ context.Context, p *models.Project) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[p.ID]; !ok {
		return repositories.ErrNotFound
	}
	f.updates++
	cp := *p
	f.byID[p.ID] = &cp
	return nil
}

func (f *fakeProjects) UpdateImage(_ context.Context, id, image string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.byID[id]
	if !ok {
		return repositories.ErrNotFound
	}
	p.Image = image
	return nil
}

func (f *fakeProjects) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeContacts struct {
	mu        sync.Mutex
	byID      map[string]*models.Contact
	markReads int
}

func newFakeContacts() *fakeContacts {
	return &fakeContacts{byID: map[string]*models.Contact{}}
}

func (f *fakeContacts) Create(_ context.Context, c *models.Contact) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now()
	cp := *c
	f.byID[c.ID] = &cp
	return nil
}

func (f *fakeContacts) List(_ context.Context) ([]models.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Contact, 0, len(f.byID))
	for _, c := range f.byID {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeContacts) FindByID(_ context.Context, id string) (*models.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.byID[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeContacts) MarkRead(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.byID[id]
	if !ok {
		return repositories.ErrNotFound
	}
	f.markReads++
	c.Read = true
	return nil
}

func (f *fakeContacts) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (n *recordingNotifier) NotifyContact(_ context.Context, c *models.Contact) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, c.ID)
	return n.err
}

var errBoom = errors.New("boom")
