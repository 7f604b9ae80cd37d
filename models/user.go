package models

import (
	"time"
)

// Role represents user role types
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents an account able to sign in
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"not null" validate:"required"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null" validate:"required,email"`
	Password  string    `json:"-" gorm:"not null" validate:"required,min=6"` // bcrypt hash once persisted
	Role      Role      `json:"role" gorm:"type:varchar(10);not null;default:'admin'"`
	CreatedAt time.Time `json:"createdAt"`
}

var userMessages = messageTable{
	"Name.required":     "Please add a name",
	"Email.required":    "Please add an email",
	"Email.email":       "Please add a valid email",
	"Password.required": "Please add a password",
	"Password.min":      "Password must be at least 6 characters",
}

// MaxPasswordBytes is the longest password bcrypt accepts
const MaxPasswordBytes = 72

// ValidateUser checks a user before its password is hashed
func ValidateUser(u *User) []string {
	msgs := validateWith(u, userMessages)
	if len(u.Password) > MaxPasswordBytes {
		msgs = append(msgs, "Password cannot be more than 72 bytes")
	}
	return msgs
}
