// Package db handles database connections and migrations.
package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/money-manager/backend/config"
	"github.com/money-manager/backend/internal/integration/persistence/model"
)

// NewPostgresConnection opens a PostgreSQL connection from the configuration.
func NewPostgresConnection(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode,
	)

	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}

	return database, nil
}

// Migrate runs the schema migrations for all models.
func Migrate(database *gorm.DB) error {
	return database.AutoMigrate(
		&model.User{},
		&model.Transaction{},
		&model.Budget{},
	)
}
