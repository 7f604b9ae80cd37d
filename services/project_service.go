package services

import (
	"context"
	"errors"
	"net/url"

	"github.com/portfolio-api/dto"
	"github.com/portfolio-api/logger"
	"github.com/portfolio-api/models"
	"github.com/portfolio-api/repositories"
	"github.com/portfolio-api/utils"
)

// ProjectStore is the persistence used by ProjectService
type ProjectStore interface {
	List(ctx context.Context, q dto.ListQuery) ([]models.Project, int64, error)
	FindByID(ctx context.Context, id string) (*models.Project, error)
	Create(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, project *models.Project) error
	UpdateImage(ctx context.Context, id, image string) error
	Delete(ctx context.Context, id string) error
}

const duplicateTitleMessage = "A project with this title already exists"

// ProjectService handles business logic for projects
type ProjectService struct {
	projects ProjectStore
	images   *ImageStorage
	maxImage int64
}

// NewProjectService creates a new project service instance
func NewProjectService(projects ProjectStore, images *ImageStorage, maxImageBytes int64) *ProjectService {
	return &ProjectService{projects: projects, images: images, maxImage: maxImageBytes}
}

// MaxImageBytes is the largest image UploadImage accepts
func (s *ProjectService) MaxImageBytes() int64 {
	return s.maxImage
}

// ListProjects retrieves projects with filtering, sorting, projection and pagination
func (s *ProjectService) ListProjects(ctx context.Context, values url.Values) (*dto.ProjectListResponse, error) {
	q, err := dto.ParseListQuery(values, dto.ProjectSchema)
	if err != nil {
		var qe *dto.QueryError
		if errors.As(err, &qe) {
			return nil, newValidationError(qe.Message)
		}
		return nil, err
	}

	projects, total, err := s.projects.List(ctx, q)
	if err != nil {
		return nil, err
	}

	data, err := utils.ProjectRecords(projects, q.Select)
	if err != nil {
		return nil, err
	}

	return &dto.ProjectListResponse{
		Success:    true,
		Count:      len(data),
		Pagination: dto.NewPagination(q.Page, q.Limit, total),
		Data:       data,
	}, nil
}

// GetProject retrieves a single project
func (s *ProjectService) GetProject(ctx context.Context, id string) (*models.Project, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	return s.projects.FindByID(ctx, id)
}

// CreateProject validates and stores a new project owned by userID
func (s *ProjectService) CreateProject(ctx context.Context, req dto.ProjectRequest, userID string) (*models.Project, error) {
	project := req.NewProject()
	if userID != "" {
		project.UserID = &userID
	}
	project.RefreshSlug("")

	if msgs := models.ValidateProject(&project); len(msgs) > 0 {
		return nil, newValidationError(msgs...)
	}
	if err := s.projects.Create(ctx, &project); err != nil {
		return nil, duplicateAsValidation(err)
	}
	logger.FromContext(ctx).Info("Project created", "id", project.ID, "slug", project.Slug)
	return &project, nil
}

// UpdateProject merges the provided fields into an existing project
func (s *ProjectService) UpdateProject(ctx context.Context, id string, req dto.ProjectRequest) (*models.Project, error) {
	project, err := s.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	previousTitle := project.Title
	req.ApplyTo(project)
	project.RefreshSlug(previousTitle)

	if msgs := models.ValidateProject(project); len(msgs) > 0 {
		return nil, newValidationError(msgs...)
	}
	if err := s.projects.Update(ctx, project); err != nil {
		return nil, duplicateAsValidation(err)
	}
	return project, nil
}

// DeleteProject removes a project
func (s *ProjectService) DeleteProject(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	return s.projects.Delete(ctx, id)
}

func duplicateAsValidation(err error) error {
	if errors.Is(err, repositories.ErrDuplicate) {
		return newValidationError(duplicateTitleMessage)
	}
	return err
}
