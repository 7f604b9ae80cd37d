package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-api/logger"
	"github.com/portfolio-api/services"
)

const serverError = "Server Error"

func respondError(ctx *gin.Context, status int, message any) {
	ctx.JSON(status, gin.H{
		"success": false,
		"error":   message,
	})
}

func respondData(ctx *gin.Context, status int, data any) {
	ctx.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// respondServiceError maps a service error to its status and client message.
// entity names the record in 404 messages, e.g. "Project".
func respondServiceError(ctx *gin.Context, err error, entity string) {
	var validationErr *services.ValidationError
	var uploadErr *services.UploadError

	switch {
	case errors.As(err, &validationErr):
		respondError(ctx, http.StatusBadRequest, validationErr.Messages)
	case errors.As(err, &uploadErr):
		respondError(ctx, http.StatusBadRequest, uploadErr.Message)
	case errors.Is(err, services.ErrEmailInUse):
		respondError(ctx, http.StatusBadRequest, "Email is already in use")
	case errors.Is(err, services.ErrMissingCredentials):
		respondError(ctx, http.StatusBadRequest, "Please provide both email and password")
	case errors.Is(err, services.ErrInvalidCredentials):
		respondError(ctx, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, services.ErrInvalidToken):
		respondError(ctx, http.StatusUnauthorized, "Invalid token")
	case errors.Is(err, services.ErrNotFound):
		respondError(ctx, http.StatusNotFound, entity+" not found")
	case errors.Is(err, services.ErrUploadFailed):
		respondError(ctx, http.StatusInternalServerError, "Problem with file upload")
	default:
		logger.FromContext(ctx.Request.Context()).Error("Request failed", "path", ctx.FullPath(), "error", err)
		respondError(ctx, http.StatusInternalServerError, serverError)
	}
}

// bindJSON decodes the body into dst, answering 400 on malformed input
func bindJSON(ctx *gin.Context, dst any) bool {
	if err := ctx.ShouldBindJSON(dst); err != nil {
		respondError(ctx, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
