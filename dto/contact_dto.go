package dto

import (
	"strings"

	"github.com/portfolio-api/models"
)

// CreateContactRequest is the public contact form payload
type CreateContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ToModel builds an unread contact from the request
func (r CreateContactRequest) ToModel() models.Contact {
	return models.Contact{
		Name:    strings.TrimSpace(r.Name),
		Email:   strings.TrimSpace(r.Email),
		Message: r.Message,
	}
}
