package db

import (
	"fmt"
	"log/slog"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/strength-check/backend/config"
)

// NewSQLiteConnection creates an embedded SQLite database connection.
// Used for single-node deployments and local development.
func NewSQLiteConnection(cfg *config.DatabaseConfig) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(cfg.URL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// SQLite serialises writers; a single connection also keeps ":memory:" databases shared.
	pooled := *cfg
	pooled.MaxOpenConns = 1
	pooled.MaxIdleConns = 1

	database := &Database{
		db:  db,
		cfg: &pooled,
	}
	if err := database.configurePool(); err != nil {
		return nil, err
	}

	slog.Info("Database connection established",
		"driver", config.DriverSQLite,
		"path", cfg.URL,
	)

	return database, nil
}
