package dto

import (
	"strings"

	"github.com/lib/pq"
	"github.com/portfolio-api/models"
)

// ProjectRequest is used for both create and update.
// Nil fields are left untouched on update.
type ProjectRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Technologies *[]string `json:"technologies"`
	Image        *string   `json:"image"`
	Gallery      *[]string `json:"gallery"`
	LiveURL      *string   `json:"liveUrl"`
	SourceURL    *string   `json:"sourceUrl"`
	Featured     *bool     `json:"featured"`
	Order        *int      `json:"order"`
}

// ApplyTo merges the provided fields into p
func (r ProjectRequest) ApplyTo(p *models.Project) {
	if r.Title != nil {
		p.Title = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.Technologies != nil {
		p.Technologies = pq.StringArray(*r.Technologies)
	}
	if r.Image != nil {
		p.Image = *r.Image
	}
	if r.Gallery != nil {
		p.Gallery = pq.StringArray(*r.Gallery)
	}
	if r.LiveURL != nil {
		p.LiveURL = strings.TrimSpace(*r.LiveURL)
	}
	if r.SourceURL != nil {
		p.SourceURL = strings.TrimSpace(*r.SourceURL)
	}
	if r.Featured != nil {
		p.Featured = *r.Featured
	}
	if r.Order != nil {
		p.Order = *r.Order
	}
}

// NewProject builds a project with defaults for every omitted field
func (r ProjectRequest) NewProject() models.Project {
	p := models.Project{Order: models.DefaultProjectOrder}
	r.ApplyTo(&p)
	p.ApplyDefaults()
	return p
}

// ProjectSchema lists the project fields clients may filter, sort and select on
var ProjectSchema = QuerySchema{
	"title":        {Column: "title", Type: FieldString},
	"slug":         {Column: "slug", Type: FieldString},
	"description":  {Column: "description", Type: FieldString},
	"technologies": {Column: "technologies", Type: FieldStringArray},
	"image":        {Column: "image", Type: FieldString},
	"gallery":      {Column: "gallery", Type: FieldStringArray},
	"liveUrl":      {Column: "live_url", Type: FieldString},
	"sourceUrl":    {Column: "source_url", Type: FieldString},
	"featured":     {Column: "featured", Type: FieldBool},
	"order":        {Column: "display_order", Type: FieldInt},
	"createdAt":    {Column: "created_at", Type: FieldTime},
}

// ProjectListResponse is the body returned by the project list endpoint
type ProjectListResponse struct {
	Success    bool             `json:"success"`
	Count      int              `json:"count"`
	Pagination Pagination       `json:"pagination"`
	Data       []map[string]any `json:"data"`
}
