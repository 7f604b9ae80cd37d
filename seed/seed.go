package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/portfolio-api/logger"
	"github.com/portfolio-api/models"
	"github.com/portfolio-api/utils"
)

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	DeleteAll(ctx context.Context) (int64, error)
}

type ProjectStore interface {
	CreateMany(ctx context.Context, projects []models.Project) error
	DeleteAll(ctx context.Context) (int64, error)
}

type ContactStore interface {
	DeleteAll(ctx context.Context) (int64, error)
}

// Admin is the account created by Import.
// An empty Password is replaced by a generated one.
type Admin struct {
	Name     string
	Email    string
	Password string
}

// Result reports what Import created
type Result struct {
	AdminEmail        string
	AdminPassword     string
	GeneratedPassword bool
	Projects          int
}

// Seeder loads and clears sample data
type Seeder struct {
	users    UserStore
	projects ProjectStore
	contacts ContactStore
}

func NewSeeder(users UserStore, projects ProjectStore, contacts ContactStore) *Seeder {
	return &Seeder{users: users, projects: projects, contacts: contacts}
}

// Import creates the admin account and the sample projects
func (s *Seeder) Import(ctx context.Context, admin Admin) (*Result, error) {
	log := logger.FromContext(ctx)
	res := &Result{AdminEmail: strings.ToLower(strings.TrimSpace(admin.Email))}

	if admin.Password == "" {
		generated, err := utils.GenerateSecurePassword(16)
		if err != nil {
			return nil, err
		}
		admin.Password = generated
		res.GeneratedPassword = true
	}
	res.AdminPassword = admin.Password

	if admin.Name == "" {
		admin.Name = "Admin"
	}
	user := models.User{Name: admin.Name, Email: res.AdminEmail, Password: admin.Password, Role: models.RoleAdmin}
	if msgs := models.ValidateUser(&user); len(msgs) > 0 {
		return nil, fmt.Errorf("invalid admin account: %s", strings.Join(msgs, "; "))
	}
	hashed, err := utils.HashPassword(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = hashed
	if err := s.users.Create(ctx, &user); err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}
	log.Info("Admin user created", "email", user.Email)

	projects := SampleProjects()
	for i := range projects {
		projects[i].UserID = &user.ID
		if msgs := models.ValidateProject(&projects[i]); len(msgs) > 0 {
			return nil, fmt.Errorf("invalid sample project %q: %s", projects[i].Title, strings.Join(msgs, "; "))
		}
	}
	if err := s.projects.CreateMany(ctx, projects); err != nil {
		return nil, fmt.Errorf("create projects: %w", err)
	}
	res.Projects = len(projects)
	log.Info("Sample projects imported", "count", res.Projects)
	return res, nil
}

// Destroy deletes every project, contact and user
func (s *Seeder) Destroy(ctx context.Context) error {
	var errs []error
	if n, err := s.projects.DeleteAll(ctx); err != nil {
		errs = append(errs, fmt.Errorf("delete projects: %w", err))
	} else {
		logger.FromContext(ctx).Info("Projects deleted", "count", n)
	}
	if n, err := s.contacts.DeleteAll(ctx); err != nil {
		errs = append(errs, fmt.Errorf("delete contacts: %w", err))
	} else {
		logger.FromContext(ctx).Info("Contacts deleted", "count", n)
	}
	if n, err := s.users.DeleteAll(ctx); err != nil {
		errs = append(errs, fmt.Errorf("delete users: %w", err))
	} else {
		logger.FromContext(ctx).Info("Users deleted", "count", n)
	}
	return errors.Join(errs...)
}

// SampleProjects returns the projects loaded by Import
func SampleProjects() []models.Project {
	projects := []models.Project{
		{
			Title:        "Portfolio API",
			Description:  "REST backend for a personal portfolio with authentication, project listing and a contact form.",
			Technologies: pq.StringArray{"Go", "Gin", "PostgreSQL"},
			SourceURL:    "https://github.com/example/portfolio-api",
			Featured:     true,
			Order:        1,
		},
		{
			Title:        "Weather Dashboard",
			Description:  "Single page dashboard showing forecasts for saved locations.",
			Technologies: pq.StringArray{"TypeScript", "React"},
			LiveURL:      "https://weather.example.com",
			Featured:     true,
			Order:        2,
		},
		{
			Title:        "Task Tracker",
			Description:  "Kanban style task board with drag and drop columns.",
			Technologies: pq.StringArray{"JavaScript", "Vue", "Firebase"},
			Order:        3,
		},
		{
			Title:        "Link Shortener",
			Description:  "Command line and HTTP service that shortens URLs and counts visits.",
			Technologies: pq.StringArray{"Go", "Redis"},
			SourceURL:    "https://github.com/example/link-shortener",
			Order:        4,
		},
	}
	for i := range projects {
		projects[i].ApplyDefaults()
		projects[i].RefreshSlug("")
	}
	return projects
}
