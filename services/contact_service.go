package services

import (
	"context"

	"github.com/portfolio-api/dto"
	"github.com/portfolio-api/logger"
	"github.com/portfolio-api/models"
)

// ContactStore is the persistence used by ContactService
type ContactStore interface {
	Create(ctx context.Context, contact *models.Contact) error
	List(ctx context.Context) ([]models.Contact, error)
	FindByID(ctx context.Context, id string) (*models.Contact, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// ContactService handles contact form submissions
type ContactService struct {
	contacts ContactStore
	notifier Notifier
}

func NewContactService(contacts ContactStore, notifier Notifier) *ContactService {
	if notifier == nil {
		notifier = NoopNotifier{}
	}
	return &ContactService{contacts: contacts, notifier: notifier}
}

// CreateContact stores a submission and sends a best-effort notification
func (s *ContactService) CreateContact(ctx context.Context, req dto.CreateContactRequest) (*models.Contact, error) {
	contact := req.ToModel()
	if msgs := models.ValidateContact(&contact); len(msgs) > 0 {
		return nil, newValidationError(msgs...)
	}
	if err := s.contacts.Create(ctx, &contact); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	if err := s.notifier.NotifyContact(ctx, &contact); err != nil {
		log.Warn("Email notification failed", "contact", contact.ID, "error", err)
	}
	return &contact, nil
}

// ListContacts returns every submission, newest first
func (s *ContactService) ListContacts(ctx context.Context) ([]models.Contact, error) {
	return s.contacts.List(ctx)
}

// GetContact fetches a submission without changing it
func (s *ContactService) GetContact(ctx context.Context, id string) (*models.Contact, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	return s.contacts.FindByID(ctx, id)
}

// MarkRead persists read=true on an unread contact; read contacts are left alone
func (s *ContactService) MarkRead(ctx context.Context, contact *models.Contact) error {
	if contact.Read {
		return nil
	}
	if err := s.contacts.MarkRead(ctx, contact.ID); err != nil {
		return err
	}
	contact.Read = true
	return nil
}

// DeleteContact removes a submission
func (s *ContactService) DeleteContact(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	return s.contacts.Delete(ctx, id)
}
