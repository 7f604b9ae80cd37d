package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	applog "github.com/portfolio-api/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Options tune the connection opened by Initialize
type Options struct {
	LogLevel string
}

// gormWriter forwards gorm's printf-style output to the application logger
type gormWriter struct {
	log applog.Logger
}

func (w gormWriter) Printf(format string, args ...any) {
	w.log.Info(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func gormLogLevel(level string) logger.LogLevel {
	switch applog.ParseLevel(level) {
	case applog.DebugLevel:
		return logger.Info
	case applog.InfoLevel, applog.WarnLevel:
		return logger.Warn
	case applog.ErrorLevel:
		return logger.Error
	default:
		return logger.Silent
	}
}

// Initialize sets up the GORM database connection
func Initialize(dbURL string, opts Options) (*gorm.DB, error) {
	if dbURL == "" {
		return nil, fmt.Errorf("database URL cannot be empty")
	}

	newLogger := logger.New(
		gormWriter{log: applog.GetDefault().With("component", "gorm")},
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormLogLevel(opts.LogLevel),
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{
		Logger:         newLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get SQL DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	applog.Info("✅ Connected to database")

	var version string
	if err := db.Raw("SELECT version()").Scan(&version).Error; err == nil {
		applog.Info("📊 Database", "version", version)
	}
	return db, nil
}

// Ping checks the connection is alive
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
