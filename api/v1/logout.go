package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Logout godoc
// @Summary Clear the token cookie
// @Description Overwrites the cookie with a placeholder that expires in 10 seconds
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /auth/logout [get]
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(
		tokenCookie,
		"none",
		10, // seconds
		"/",
		"",
		c.secureCookie,
		true,
	)

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out",
	})
}
