package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/portfolio-api/repositories"
)

var (
	ErrNotFound           = repositories.ErrNotFound
	ErrEmailInUse         = errors.New("email is already in use")
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// ValidationError carries the ordered field messages of a rejected write
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

func newValidationError(messages ...string) error {
	return &ValidationError{Messages: messages}
}

// checkID treats malformed identifiers exactly like missing records
func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}
	return nil
}
