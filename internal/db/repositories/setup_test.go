package repositories_test

import (
	"context"
	"path/filepath"
	"testing"

	"infinite-experiment/flightdeck/internal/db"
	"infinite-experiment/flightdeck/internal/services"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a fresh file-backed database with both handles on it,
// ensures the schema and loads the sample data set.
func setupTestDB(t *testing.T) (*sqlx.DB, *gorm.DB) {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "flight.db") + "?_foreign_keys=on"

	conn, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to open gorm handle: %v", err)
	}

	if err := db.EnsureSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	for _, result := range services.NewSeedService(gdb).Load(context.Background()) {
		if result.Rows == 0 {
			t.Fatalf("Seeding %s failed: %s", result.Table, result.Message)
		}
	}

	return conn, gdb
}
