package repositories

import (
	"context"

	"github.com/portfolio-api/dto"
	"github.com/portfolio-api/models"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// List returns one page of projects matching q and the total of the filtered set
func (r *ProjectRepository) List(ctx context.Context, q dto.ListQuery) ([]models.Project, int64, error) {
	filtered := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&models.Project{}).Scopes(WithFilters(q.Filters))
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, translate("count projects", err)
	}

	projects := make([]models.Project, 0, q.Limit)
	err := filtered().Scopes(WithSort(q.Sort), Paginate(q)).Find(&projects).Error
	if err != nil {
		return nil, 0, translate("list projects", err)
	}
	return projects, total, nil
}

// FindByID retrieves a project by its ID
func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	if err := r.db.WithContext(ctx).First(&project, "id = ?", id).Error; err != nil {
		return nil, translate("find project", err)
	}
	return &project, nil
}

// Create inserts a new project into the database
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	return translate("create project", r.db.WithContext(ctx).Create(project).Error)
}

// Update writes every column of an existing project
func (r *ProjectRepository) Update(ctx context.Context, project *models.Project) error {
	return translate("update project", r.db.WithContext(ctx).Save(project).Error)
}

// UpdateImage sets only the image column
func (r *ProjectRepository) UpdateImage(ctx context.Context, id, image string) error {
	result := r.db.WithContext(ctx).Model(&models.Project{}).Where("id = ?", id).Update("image", image)
	if result.Error != nil {
		return translate("update project image", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a project, returning ErrNotFound when nothing was deleted
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Project{}, "id = ?", id)
	if result.Error != nil {
		return translate("delete project", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateMany inserts projects in batches
func (r *ProjectRepository) CreateMany(ctx context.Context, projects []models.Project) error {
	return translate("create projects", r.db.WithContext(ctx).CreateInBatches(projects, 100).Error)
}

// DeleteAll removes every project
func (r *ProjectRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Project{})
	return result.RowsAffected, translate("delete projects", result.Error)
}
