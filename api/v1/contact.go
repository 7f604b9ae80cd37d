package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-api/dto"
	"github.com/portfolio-api/services"
)

// ContactController handles contact form endpoints
type ContactController struct {
	contactService *services.ContactService
}

// NewContactController creates a new contact controller
func NewContactController(contactService *services.ContactService) *ContactController {
	return &ContactController{contactService: contactService}
}

// SendContact godoc
// @Summary Send a contact message
// @Tags contact
// @Accept json
// @Produce json
// @Param contact body dto.CreateContactRequest true "Message"
// @Success 201 {object} map[string]interface{}
// @Router /contact [post]
func (c *ContactController) SendContact(ctx *gin.Context) {
	var req dto.CreateContactRequest
	if !bindJSON(ctx, &req) {
		return
	}

	contact, err := c.contactService.CreateContact(ctx.Request.Context(), req)
	if err != nil {
		respondServiceError(ctx, err, "Contact")
		return
	}
	respondData(ctx, http.StatusCreated, contact)
}

// ListContacts godoc
// @Summary List contact messages, newest first
// @Tags contact
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /contact [get]
func (c *ContactController) ListContacts(ctx *gin.Context) {
	contacts, err := c.contactService.ListContacts(ctx.Request.Context())
	if err != nil {
		respondServiceError(ctx, err, "Contact")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(contacts),
		"data":    contacts,
	})
}

// GetContact godoc
// @Summary Get a contact message and mark it read
// @Tags contact
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} map[string]interface{}
// @Router /contact/{id} [get]
func (c *ContactController) GetContact(ctx *gin.Context) {
	contact, err := c.contactService.GetContact(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err, "Contact")
		return
	}
	if err := c.contactService.MarkRead(ctx.Request.Context(), contact); err != nil {
		respondServiceError(ctx, err, "Contact")
		return
	}
	respondData(ctx, http.StatusOK, contact)
}

// DeleteContact godoc
// @Summary Delete a contact message
// @Tags contact
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} map[string]interface{}
// @Router /contact/{id} [delete]
func (c *ContactController) DeleteContact(ctx *gin.Context) {
	if err := c.contactService.DeleteContact(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondServiceError(ctx, err, "Contact")
		return
	}
	respondData(ctx, http.StatusOK, gin.H{})
}
