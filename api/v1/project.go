package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-api/dto"
	"github.com/portfolio-api/logger"
	"github.com/portfolio-api/middleware"
	"github.com/portfolio-api/services"
)

// multipartOverhead is the room left for form boundaries and part headers
// on top of the image itself
const multipartOverhead = 64 << 10

// ProjectController handles project-related API endpoints
type ProjectController struct {
	projectService *services.ProjectService
}

// NewProjectController creates a new project controller
func NewProjectController(projectService *services.ProjectService) *ProjectController {
	return &ProjectController{projectService: projectService}
}

// ListProjects godoc
// @Summary List projects with filtering, sorting, projection and pagination
// @Description Filters use field=value or field[op]=value with op in eq, gt, gte, lt, lte, in
// @Tags projects
// @Accept json
// @Produce json
// @Param select query string false "Comma-separated fields to return"
// @Param sort query string false "Comma-separated fields, prefix with - for descending"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.ProjectListResponse
// @Router /projects [get]
func (c *ProjectController) ListProjects(ctx *gin.Context) {
	response, err := c.projectService.ListProjects(ctx.Request.Context(), ctx.Request.URL.Query())
	if err != nil {
		respondServiceError(ctx, err, "Project")
		return
	}
	ctx.JSON(http.StatusOK, response)
}

// GetProject godoc
// @Summary Get a project by ID
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} models.Project
// @Router /projects/{id} [get]
func (c *ProjectController) GetProject(ctx *gin.Context) {
	project, err := c.projectService.GetProject(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err, "Project")
		return
	}
	respondData(ctx, http.StatusOK, project)
}

// CreateProject godoc
// @Summary Create a new project
// @Description Create a new project owned by the authenticated admin
// @Tags projects
// @Accept json
// @Produce json
// @Param project body dto.ProjectRequest true "Project Data"
// @Success 201 {object} models.Project
// @Router /projects [post]
func (c *ProjectController) CreateProject(ctx *gin.Context) {
	var req dto.ProjectRequest
	if !bindJSON(ctx, &req) {
		return
	}

	var userID string
	if user, ok := middleware.CurrentUser(ctx); ok {
		userID = user.ID
	}

	project, err := c.projectService.CreateProject(ctx.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(ctx, err, "Project")
		return
	}
	respondData(ctx, http.StatusCreated, project)
}

// UpdateProject godoc
// @Summary Update an existing project
// @Description Only the provided fields change
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param project body dto.ProjectRequest true "Project Data"
// @Success 200 {object} models.Project
// @Router /projects/{id} [put]
func (c *ProjectController) UpdateProject(ctx *gin.Context) {
	var req dto.ProjectRequest
	if !bindJSON(ctx, &req) {
		return
	}

	project, err := c.projectService.UpdateProject(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		respondServiceError(ctx, err, "Project")
		return
	}
	respondData(ctx, http.StatusOK, project)
}

// DeleteProject godoc
// @Summary Delete a project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} map[string]interface{}
// @Router /projects/{id} [delete]
func (c *ProjectController) DeleteProject(ctx *gin.Context) {
	if err := c.projectService.DeleteProject(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondServiceError(ctx, err, "Project")
		return
	}
	respondData(ctx, http.StatusOK, gin.H{})
}

// UploadProjectImage godoc
// @Summary Upload the cover image of a project
// @Tags projects
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Project ID"
// @Param file formData file true "Image"
// @Success 200 {object} map[string]interface{}
// @Router /projects/{id}/image [put]
func (c *ProjectController) UploadProjectImage(ctx *gin.Context) {
	var upload *services.ImageUpload

	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, c.projectService.MaxImageBytes()+multipartOverhead)
	header, err := ctx.FormFile("file")
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		if _, err := c.projectService.GetProject(ctx.Request.Context(), ctx.Param("id")); err != nil {
			respondServiceError(ctx, err, "Project")
			return
		}
		respondServiceError(ctx, services.ErrImageTooBig, "Project")
		return
	}
	if err == nil {
		file, openErr := header.Open()
		if openErr != nil {
			logger.FromContext(ctx.Request.Context()).Error("Failed to open uploaded file", "error", openErr)
			respondError(ctx, http.StatusInternalServerError, "Problem with file upload")
			return
		}
		defer file.Close()
		upload = &services.ImageUpload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Content:     file,
		}
	}

	name, err := c.projectService.UploadImage(ctx.Request.Context(), ctx.Param("id"), upload)
	if err != nil {
		respondServiceError(ctx, err, "Project")
		return
	}
	respondData(ctx, http.StatusOK, name)
}
