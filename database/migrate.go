package database

import (
	"fmt"

	"github.com/portfolio-api/logger"
	"github.com/portfolio-api/models"
	"gorm.io/gorm"
)

// Models lists every table the API owns
func Models() []any {
	return []any{
		&models.User{},
		&models.Project{},
		&models.Contact{},
	}
}

// Migrate migrates the database schema
func Migrate(db *gorm.DB) error {
	logger.Info("Migrating database schema...")
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error; err != nil {
		logger.Warn("Could not ensure pgcrypto extension", "error", err)
	}
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	logger.Info("✅ Database schema migrated")
	return nil
}
