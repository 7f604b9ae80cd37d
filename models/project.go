package models

import (
	"time"

	"github.com/lib/pq"
)

const (
	DefaultProjectImage = "default-project.jpg"
	DefaultProjectOrder = 1000
)

// Project represents a portfolio entry
type Project struct {
	ID           string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title        string         `json:"title" gorm:"size:100;not null" validate:"required,max=100"`
	Slug         string         `json:"slug" gorm:"uniqueIndex;not null"`
	Description  string         `json:"description" gorm:"size:2000;not null" validate:"required,max=2000"`
	Technologies pq.StringArray `json:"technologies" gorm:"type:text[];not null" validate:"min=1"`
	Image        string         `json:"image" gorm:"not null"`
	Gallery      pq.StringArray `json:"gallery" gorm:"type:text[]"`
	LiveURL      string         `json:"liveUrl,omitempty" validate:"omitempty,http_url"`
	SourceURL    string         `json:"sourceUrl,omitempty" validate:"omitempty,http_url"`
	Featured     bool           `json:"featured" gorm:"not null;default:false"`
	Order        int            `json:"order" gorm:"column:display_order;not null;index"`
	UserID       *string        `json:"user,omitempty" gorm:"type:uuid"`
	CreatedAt    time.Time      `json:"createdAt" gorm:"index"`
}

var projectMessages = messageTable{
	"Title.required":       "Please add a project title",
	"Title.max":            "Title cannot be more than 100 characters",
	"Description.required": "Please add a description",
	"Description.max":      "Description cannot be more than 2000 characters",
	"Technologies.min":     "Please add at least one technology",
	"LiveURL.http_url":     "Please use a valid URL with HTTP or HTTPS",
	"SourceURL.http_url":   "Please use a valid URL with HTTP or HTTPS",
}

// ValidateProject checks every field and returns the messages in field order
func ValidateProject(p *Project) []string {
	return validateWith(p, projectMessages)
}

// ApplyDefaults fills the fields a new project gets when the client omits them
func (p *Project) ApplyDefaults() {
	if p.Image == "" {
		p.Image = DefaultProjectImage
	}
	if p.Technologies == nil {
		p.Technologies = pq.StringArray{}
	}
	if p.Gallery == nil {
		p.Gallery = pq.StringArray{}
	}
}

// RefreshSlug recomputes the slug when the title changed or no slug exists yet
func (p *Project) RefreshSlug(previousTitle string) {
	if p.Slug == "" || p.Title != previousTitle {
		p.Slug = Slugify(p.Title)
	}
}
