package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	v1 "github.com/portfolio-api/api/v1"
	"github.com/portfolio-api/config"
	"github.com/portfolio-api/database"
	"github.com/portfolio-api/logger"
	"github.com/portfolio-api/middleware"
	"github.com/portfolio-api/repositories"
	"github.com/portfolio-api/services"
	"github.com/spf13/afero"
	"gorm.io/gorm"
)

func main() {
	config.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("❌ Invalid configuration", "error", err)
		os.Exit(1)
	}

	logCfg := logger.DefaultConfig()
	logCfg.Level = logger.ParseLevel(cfg.LogLevel)
	logCfg.JSON = cfg.LogJSON
	logger.Init(logCfg)
	log := logger.GetDefault()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Initialize(cfg.DatabaseURL, database.Options{LogLevel: cfg.LogLevel})
	if err != nil {
		log.Error("❌ Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Error("❌ Failed to migrate database", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server, err := newServer(ctx, cfg, db, log)
	if err != nil {
		log.Error("❌ Failed to build server", "error", err)
		os.Exit(1)
	}

	go func() {
		log.Info("🚀 Portfolio API starting", "port", cfg.Port, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server stopped unexpectedly", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", "error", err)
	}
}

func newServer(ctx context.Context, cfg *config.Config, db *gorm.DB, log logger.Logger) (*http.Server, error) {
	tokens, err := services.NewTokenService(cfg.JWTSecret, cfg.JWTExpire)
	if err != nil {
		return nil, err
	}

	notifier, err := services.NewNotifier(cfg.Email)
	if err != nil {
		return nil, err
	}

	redisClient, err := database.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Warn("Redis unavailable, rate limits are kept in memory", "error", err)
		redisClient = nil
	}
	limiter, err := middleware.NewRateLimiter(cfg.RateLimit, redisClient)
	if err != nil {
		return nil, err
	}

	images := services.NewImageStorage(afero.NewOsFs(), cfg.FileUploadPath)

	router := v1.NewRouter(v1.RouterDeps{
		Auth:        services.NewAuthService(repositories.NewUserRepository(db), tokens),
		Projects:    services.NewProjectService(repositories.NewProjectRepository(db), images, cfg.MaxFileUpload),
		Contacts:    services.NewContactService(repositories.NewContactRepository(db), notifier),
		Uploads:     images.FileSystem(),
		RateLimiter: limiter,
		Metrics:     middleware.NewMetricsRegistry(),
		Ping: func(ctx context.Context) error {
			return database.Ping(ctx, db)
		},
		Logger:         log,
		CORSOrigins:    cfg.CORSOrigins,
		SecureCookie:   cfg.IsProduction(),
		TrustedProxies: cfg.TrustedProxies,
		Production:     cfg.IsProduction(),
	})

	return &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}, nil
}
