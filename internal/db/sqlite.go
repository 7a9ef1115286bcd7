package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

var DB *sqlx.DB

// InitSQLite opens the database file with sqlx, creating it if absent.
// Foreign-key enforcement is off by default in sqlite and must be switched
// on per connection.
func InitSQLite(path string) error {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", path)

	conn, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return fmt.Errorf("failed to open sqlite database %s: %w", path, err)
	}

	DB = conn
	return nil
}
