package db

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "flight.db")
	conn, err := sqlx.Connect("sqlite3", "file:"+path+"?_foreign_keys=on")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

func TestEnsureSchema_CreatesAllTables(t *testing.T) {
	conn := openTestDB(t)

	if err := EnsureSchema(conn); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}

	var tables []string
	err := conn.Select(&tables, `SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`)
	if err != nil {
		t.Fatalf("Failed to list tables: %v", err)
	}

	want := map[string]bool{
		"d_destination": false,
		"d_flight":      false,
		"d_pilot":       false,
		"f_schedule":    false,
	}
	for _, name := range tables {
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("Expected table %s to exist", name)
		}
	}
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	conn := openTestDB(t)

	if err := EnsureSchema(conn); err != nil {
		t.Fatalf("First EnsureSchema failed: %v", err)
	}

	if _, err := conn.Exec(`INSERT INTO d_destination VALUES ('JER', 'Jersey Airport', 'Jersey', 'Channel Islands')`); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if err := EnsureSchema(conn); err != nil {
		t.Fatalf("Second EnsureSchema failed: %v", err)
	}

	var count int
	if err := conn.Get(&count, `SELECT COUNT(*) FROM d_destination`); err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected existing data to survive, got %d rows", count)
	}
}

func TestEnsureSchema_StrictTyping(t *testing.T) {
	conn := openTestDB(t)

	if err := EnsureSchema(conn); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}

	// night_flag is a strict INTEGER column; a text value must be rejected,
	// not coerced.
	_, err := conn.Exec(`INSERT INTO d_pilot VALUES ('P0019999', 'Test', 'Pilot', 'ATPL0000', '2030-01-01', 'often')`)
	if err == nil {
		t.Error("Expected strict typing to reject a text night_flag")
	}
}

func TestEnsureSchema_ForeignKeysEnforced(t *testing.T) {
	conn := openTestDB(t)

	if err := EnsureSchema(conn); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}

	_, err := conn.Exec(`
		INSERT INTO d_flight (flight_number, departure_destination_code, arrival_destination_code, scheduled_departure_time, scheduled_arrival_time)
		VALUES ('SI0001', 'XXX', 'YYY', '08:00:00', '09:00:00')`)
	if err == nil {
		t.Error("Expected foreign key constraint to reject unknown destination codes")
	}
}
