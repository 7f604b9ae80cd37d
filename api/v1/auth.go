package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-api/dto"
	"github.com/portfolio-api/middleware"
	"github.com/portfolio-api/services"
)

const tokenCookie = "token"

// AuthController handles registration, login and the session cookie
type AuthController struct {
	authService  *services.AuthService
	secureCookie bool
}

// NewAuthController creates a new auth controller.
// secureCookie marks the token cookie HTTPS-only.
func NewAuthController(authService *services.AuthService, secureCookie bool) *AuthController {
	return &AuthController{authService: authService, secureCookie: secureCookie}
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param user body dto.RegisterRequest true "Account data"
// @Success 201 {object} map[string]interface{}
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(ctx, &req) {
		return
	}

	res, err := c.authService.Register(ctx.Request.Context(), req)
	if err != nil {
		respondServiceError(ctx, err, "User")
		return
	}
	c.sendToken(ctx, http.StatusCreated, res)
}

// Login godoc
// @Summary Exchange credentials for a token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(ctx, &req) {
		return
	}

	res, err := c.authService.Login(ctx.Request.Context(), req)
	if err != nil {
		respondServiceError(ctx, err, "User")
		return
	}
	c.sendToken(ctx, http.StatusOK, res)
}

// GetMe godoc
// @Summary Get the signed-in user
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /auth/me [get]
func (c *AuthController) GetMe(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		respondError(ctx, http.StatusUnauthorized, "Not authorized to access this route")
		return
	}
	respondData(ctx, http.StatusOK, user)
}

func (c *AuthController) sendToken(ctx *gin.Context, status int, res *dto.AuthResponse) {
	maxAge := int(time.Until(res.ExpiresAt).Seconds())
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(tokenCookie, res.Token, maxAge, "/", "", c.secureCookie, true)

	ctx.JSON(status, gin.H{
		"success": true,
		"token":   res.Token,
	})
}
