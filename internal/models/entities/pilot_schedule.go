package entities

// PilotScheduleRow is one joined row of the pilot lookup. Inner joins mean
// every field is present: only schedule instances with both a flight and a
// pilot assigned are returned.
type PilotScheduleRow struct {
	ScheduleID             int64  `db:"schedule_id"`
	DepartureDate          string `db:"departure_date"`
	FlightID               int64  `db:"flight_id"`
	Status                 string `db:"status"`
	PilotID                string `db:"pilot_id"`
	FirstName              string `db:"first_name"`
	LastName               string `db:"last_name"`
	ScheduledDepartureTime string `db:"scheduled_departure_time"`
	ScheduledArrivalTime   string `db:"scheduled_arrival_time"`
	DepartureCity          string `db:"departure_city"`
	ArrivalCity            string `db:"arrival_city"`
}
