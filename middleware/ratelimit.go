package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-api/logger"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

const rateLimitPrefix = "portfolio:ratelimit:"

// RateLimiter hands out per-route limits backed by one store
type RateLimiter struct {
	store limiter.Store
	rate  limiter.Rate
}

// NewRateLimiter parses a formatted rate such as "20-M".
// A nil client keeps counters in memory.
func NewRateLimiter(formatted string, client *redis.Client) (*RateLimiter, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, fmt.Errorf("parse rate limit %q: %w", formatted, err)
	}

	var store limiter.Store
	if client == nil {
		store = memory.NewStoreWithOptions(limiter.StoreOptions{Prefix: rateLimitPrefix})
	} else {
		store, err = sredis.NewStoreWithOptions(client, limiter.StoreOptions{
			Prefix:   rateLimitPrefix,
			MaxRetry: 3,
		})
		if err != nil {
			return nil, fmt.Errorf("create redis limiter store: %w", err)
		}
	}
	return &RateLimiter{store: store, rate: rate}, nil
}

// Rate is the configured limit
func (r *RateLimiter) Rate() limiter.Rate {
	return r.rate
}

// Middleware limits requests per client IP. Each name gets its own counter.
func (r *RateLimiter) Middleware(name string) gin.HandlerFunc {
	lim := limiter.New(r.store, r.rate)
	return mgin.NewMiddleware(lim,
		mgin.WithKeyGetter(func(c *gin.Context) string {
			return name + ":" + c.ClientIP()
		}),
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			rateLimitBlocks.WithLabelValues(name).Inc()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "Too many requests, please try again later",
			})
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			// fail open when the store is unreachable
			logger.FromContext(c.Request.Context()).Warn("Rate limiter unavailable", "route", name, "error", err)
			c.Next()
		}),
	)
}
