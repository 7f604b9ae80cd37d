package models

import "time"

// Contact is a message left through the public contact form
type Contact struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"size:50;not null" validate:"required,max=50"`
	Email     string    `json:"email" gorm:"not null" validate:"required,email"`
	Message   string    `json:"message" gorm:"size:1000;not null" validate:"required,max=1000"`
	Read      bool      `json:"read" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
}

var contactMessages = messageTable{
	"Name.required":    "Please add your name",
	"Name.max":         "Name cannot be more than 50 characters",
	"Email.required":   "Please add your email",
	"Email.email":      "Please add a valid email",
	"Message.required": "Please add a message",
	"Message.max":      "Message cannot be more than 1000 characters",
}

func ValidateContact(c *Contact) []string {
	return validateWith(c, contactMessages)
}
