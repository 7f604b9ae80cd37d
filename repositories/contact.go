package repositories

import (
	"context"

	"github.com/portfolio-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ContactRepository handles database operations for contact messages
type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	return translate("create contact", r.db.WithContext(ctx).Create(contact).Error)
}

// List returns every contact, newest first
func (r *ContactRepository) List(ctx context.Context) ([]models.Contact, error) {
	contacts := make([]models.Contact, 0)
	err := r.db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "created_at"}, Desc: true}).
		Find(&contacts).Error
	if err != nil {
		return nil, translate("list contacts", err)
	}
	return contacts, nil
}

func (r *ContactRepository) FindByID(ctx context.Context, id string) (*models.Contact, error) {
	var contact models.Contact
	if err := r.db.WithContext(ctx).First(&contact, "id = ?", id).Error; err != nil {
		return nil, translate("find contact", err)
	}
	return &contact, nil
}

// MarkRead flips the read flag and touches no other column
func (r *ContactRepository) MarkRead(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Model(&models.Contact{}).Where("id = ?", id).Update("read", true)
	if result.Error != nil {
		return translate("mark contact read", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Contact{}, "id = ?", id)
	if result.Error != nil {
		return translate("delete contact", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAll removes every contact
func (r *ContactRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Contact{})
	return result.RowsAffected, translate("delete contacts", result.Error)
}
