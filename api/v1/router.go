package v1

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/portfolio-api/logger"
	"github.com/portfolio-api/middleware"
	"github.com/portfolio-api/models"
	"github.com/portfolio-api/services"
	"github.com/prometheus/client_golang/prometheus"
)

// RouterDeps holds everything the HTTP layer needs
type RouterDeps struct {
	Auth           *services.AuthService
	Projects       *services.ProjectService
	Contacts       *services.ContactService
	Uploads        http.FileSystem
	RateLimiter    *middleware.RateLimiter
	Metrics        *prometheus.Registry
	Ping           Pinger
	Logger         logger.Logger
	CORSOrigins    []string
	SecureCookie   bool
	TrustedProxies []string // may set X-Forwarded-For; empty trusts none
	Production     bool
}

// NewRouter builds the gin engine with every route registered
func NewRouter(deps RouterDeps) *gin.Engine {
	log := deps.Logger
	if log == nil {
		log = logger.GetDefault()
	}

	router := gin.New()
	if err := router.SetTrustedProxies(deps.TrustedProxies); err != nil {
		log.Warn("Invalid trusted proxies, trusting none", "error", err)
		_ = router.SetTrustedProxies(nil)
	}
	router.Use(middleware.RequestLogger(log), middleware.Recovery())
	router.Use(middleware.SecurityHeaders(deps.Production))
	if deps.Metrics != nil {
		router.Use(middleware.HTTPMetrics())
	}
	router.Use(cors.New(corsConfig(deps.CORSOrigins)))

	router.GET("/", Welcome)
	router.GET("/health", HealthCheck(deps.Ping))
	if deps.Metrics != nil {
		router.GET("/metrics", middleware.MetricsHandler(deps.Metrics))
	}
	if deps.Uploads != nil {
		router.StaticFS("/uploads", deps.Uploads)
	}

	RegisterRoutes(router.Group("/api"), deps)

	router.NoRoute(NotFound)
	return router
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.RouterGroup, deps RouterDeps) {
	protect := middleware.Protect(deps.Auth)
	adminOnly := middleware.Authorize(models.RoleAdmin)
	limit := func(name string) gin.HandlerFunc {
		if deps.RateLimiter == nil {
			return func(c *gin.Context) { c.Next() }
		}
		return deps.RateLimiter.Middleware(name)
	}

	authController := NewAuthController(deps.Auth, deps.SecureCookie)
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", limit("register"), authController.Register)
		authGroup.POST("/login", limit("login"), authController.Login)
		authGroup.GET("/me", protect, middleware.Authorize(models.RoleUser, models.RoleAdmin), authController.GetMe)
		authGroup.GET("/logout", authController.Logout)
	}

	contactController := NewContactController(deps.Contacts)
	contactGroup := router.Group("/contact")
	{
		contactGroup.POST("", limit("contact"), contactController.SendContact)
		contactGroup.GET("", protect, adminOnly, contactController.ListContacts)
		contactGroup.GET("/:id", protect, adminOnly, contactController.GetContact)
		contactGroup.DELETE("/:id", protect, adminOnly, contactController.DeleteContact)
	}

	projectController := NewProjectController(deps.Projects)
	projectGroup := router.Group("/projects")
	{
		projectGroup.GET("", projectController.ListProjects)
		projectGroup.GET("/:id", projectController.GetProject)
		projectGroup.POST("", protect, adminOnly, projectController.CreateProject)
		projectGroup.PUT("/:id", protect, adminOnly, projectController.UpdateProject)
		projectGroup.DELETE("/:id", protect, adminOnly, projectController.DeleteProject)
		projectGroup.PUT("/:id/image", protect, adminOnly, projectController.UploadProjectImage)
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
