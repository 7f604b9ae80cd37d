package middleware

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-api/models"
)

// Authorize allows only the listed roles through.
// This middleware must run after Protect.
func Authorize(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abortWithError(c, http.StatusUnauthorized, "Not authorized to access this route")
			return
		}
		if !slices.Contains(roles, user.Role) {
			abortWithError(c, http.StatusForbidden,
				fmt.Sprintf("User role '%s' is not authorized for this action", user.Role))
			return
		}
		c.Next()
	}
}
