package entities

import "database/sql"

// ScheduleRow mirrors one f_schedule row.
type ScheduleRow struct {
	ScheduleID          int64          `db:"schedule_id"`
	DepartureDate       string         `db:"departure_date"`
	ActualDepartureTime sql.NullString `db:"actual_departure_time"`
	ActualArrivalTime   sql.NullString `db:"actual_arrival_time"`
	FlightID            int64          `db:"flight_id"`
	PilotID             sql.NullString `db:"pilot_id"`
	Status              string         `db:"status"`
}
