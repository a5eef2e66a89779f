package db

import (
	"strings"
	"testing"

	"github.com/strength-check/backend/config"
	"github.com/strength-check/backend/internal/integration/persistence/model"
)

func TestPostgresDSN(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		schema   string
		expected string
	}{
		{
			name:     "no schema leaves url untouched",
			url:      "postgres://u:p@localhost:5432/db?sslmode=disable",
			schema:   "",
			expected: "postgres://u:p@localhost:5432/db?sslmode=disable",
		},
		{
			name:     "schema is quoted into search_path",
			url:      "postgres://u:p@localhost:5432/db?sslmode=disable",
			schema:   "strength",
			expected: "search_path=%22strength%22",
		},
		{
			name:     "embedded quotes are escaped",
			url:      "postgres://u:p@localhost:5432/db",
			schema:   `we"ird`,
			expected: "search_path=%22we%22%22ird%22",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dsn, err := postgresDSN(tt.url, tt.schema)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.schema == "" {
				if dsn != tt.expected {
					t.Errorf("expected %q, got %q", tt.expected, dsn)
				}
				return
			}
			if !strings.Contains(dsn, tt.expected) {
				t.Errorf("expected %q to contain %q", dsn, tt.expected)
			}
		})
	}
}

func TestNewConnection_UnsupportedDriver(t *testing.T) {
	_, err := NewConnection(&config.DatabaseConfig{Driver: "oracle"})
	if err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestNewConnection_SQLite(t *testing.T) {
	database, err := NewConnection(&config.DatabaseConfig{
		Driver: config.DriverSQLite,
		URL:    ":memory:",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = database.Close() }()

	if err := database.AutoMigrate(&model.EvaluationRecordModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	if !database.HealthCheck() {
		t.Error("expected sqlite database to be healthy")
	}
	if !database.DB().Migrator().HasTable(&model.EvaluationRecordModel{}) {
		t.Error("expected evaluation_records table to exist")
	}
}
