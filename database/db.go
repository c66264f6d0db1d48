package database

import (
	"fmt"

	"fanhub/internal/config"
	"fanhub/internal/http-api/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB opens the postgres connection and migrates the catalog schema.
func ConnectDB(cfg *config.Config, log *zap.SugaredLogger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := migrate(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Infow("connected to the database", "url", cfg.DatabaseURL)
	return db, nil
}

// migrate keeps the five catalog tables in sync with the model structs.
// Unique indexes on users.email and users.username are the only uniqueness
// enforcement in the system; services do not pre-check.
func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Show{},
		&models.Character{},
		&models.Episode{},
		&models.Quote{},
	)
}
