package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// STRICT tables reject writes whose values do not match the declared column
// type instead of coercing them. The fact table references the flight and
// pilot dimensions; flights reference the destination dimension twice.
const (
	schemaDestination = `
	CREATE TABLE IF NOT EXISTS d_destination (
		destination_code TEXT PRIMARY KEY NOT NULL,
		airport_name TEXT NOT NULL,
		city TEXT NOT NULL,
		country TEXT NOT NULL
	) STRICT;
	`

	schemaPilot = `
	CREATE TABLE IF NOT EXISTS d_pilot (
		pilot_id TEXT PRIMARY KEY NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		licence_number TEXT NOT NULL,
		licence_expiry TEXT NOT NULL,
		night_flag INTEGER NOT NULL
	) STRICT;
	`

	schemaFlight = `
	CREATE TABLE IF NOT EXISTS d_flight (
		flight_id INTEGER PRIMARY KEY AUTOINCREMENT,
		flight_number TEXT NOT NULL,
		departure_destination_code TEXT NOT NULL,
		arrival_destination_code TEXT NOT NULL,
		scheduled_departure_time TEXT NOT NULL,
		scheduled_arrival_time TEXT NOT NULL,
		FOREIGN KEY(departure_destination_code) REFERENCES d_destination(destination_code),
		FOREIGN KEY(arrival_destination_code) REFERENCES d_destination(destination_code)
	) STRICT;
	`

	schemaSchedule = `
	CREATE TABLE IF NOT EXISTS f_schedule (
		schedule_id INTEGER PRIMARY KEY AUTOINCREMENT,
		departure_date TEXT NOT NULL,
		actual_departure_time TEXT,
		actual_arrival_time TEXT,
		flight_id INTEGER NOT NULL,
		pilot_id TEXT,
		status TEXT NOT NULL,
		FOREIGN KEY(flight_id) REFERENCES d_flight(flight_id),
		FOREIGN KEY(pilot_id) REFERENCES d_pilot(pilot_id)
	) STRICT;
	`
)

// EnsureSchema creates the four tables if absent. Safe to call any number of
// times; the dimension tables are created before the tables that reference
// them.
func EnsureSchema(conn *sqlx.DB) error {
	for _, ddl := range []string{schemaDestination, schemaPilot, schemaFlight, schemaSchedule} {
		if _, err := conn.Exec(ddl); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}
