package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-api/logger"
)

// Pinger reports whether the database is reachable
type Pinger func(ctx context.Context) error

// Welcome handles the root endpoint
func Welcome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Welcome to the Portfolio Backend API",
	})
}

// HealthCheck handles the health check endpoint
func HealthCheck(ping Pinger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ping != nil {
			pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
			defer cancel()
			if err := ping(pingCtx); err != nil {
				logger.FromContext(ctx.Request.Context()).Warn("Health check failed", "error", err)
				ctx.JSON(http.StatusServiceUnavailable, gin.H{
					"success": false,
					"status":  "unavailable",
				})
				return
			}
		}
		ctx.JSON(http.StatusOK, gin.H{
			"success": true,
			"status":  "ok",
		})
	}
}

// NotFound answers unmatched routes
func NotFound(ctx *gin.Context) {
	ctx.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"message": "Route not found",
	})
}
