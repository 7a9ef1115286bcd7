package entities

import "database/sql"

// FlightRow is one joined row of the flight lookup. Schedule-derived fields
// are nullable: a flight with no schedule instance yet still appears, with
// NULLs from the left join.
type FlightRow struct {
	FlightNumber           string         `db:"flight_number"`
	DepartureAirport       string         `db:"departure_airport"`
	ArrivalAirport         string         `db:"arrival_airport"`
	ScheduledDepartureTime string         `db:"scheduled_departure_time"`
	ScheduledArrivalTime   string         `db:"scheduled_arrival_time"`
	DepartureDate          sql.NullString `db:"departure_date"`
	PilotID                sql.NullString `db:"pilot_id"`
	Status                 sql.NullString `db:"status"`
}
