package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-api/logger"
	"github.com/portfolio-api/models"
	"github.com/portfolio-api/services"
)

const (
	userKey   = "user"
	userIDKey = "userId"
	roleKey   = "role"
)

type userCtxKey struct{}

// Authenticator resolves a bearer token to its user
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// Protect rejects requests without a valid bearer token and attaches the caller to the context
func Protect(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortWithError(c, http.StatusUnauthorized, "Not authorized to access this route")
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		switch {
		case err == nil:
		case errors.Is(err, services.ErrInvalidToken):
			abortWithError(c, http.StatusUnauthorized, "Invalid token")
			return
		case errors.Is(err, services.ErrNotFound):
			abortWithError(c, http.StatusUnauthorized, "User not found")
			return
		default:
			logger.FromContext(c.Request.Context()).Error("Token lookup failed", "error", err)
			abortWithError(c, http.StatusInternalServerError, "Server Error")
			return
		}

		c.Set(userKey, user)
		c.Set(userIDKey, user.ID)
		c.Set(roleKey, string(user.Role))
		c.Request = c.Request.WithContext(WithUser(c.Request.Context(), user))
		c.Next()
	}
}

// WithUser stores the authenticated user on ctx
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userCtxKey{}, user)
}

// UserFromContext returns the user attached by Protect, if any
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userCtxKey{}).(*models.User)
	return user, ok && user != nil
}

// CurrentUser returns the user Protect put on the gin context
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(userKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.HasPrefix(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error":   message,
	})
}
