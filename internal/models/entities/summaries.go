package entities

// PilotFlightCount is one line of the flights-per-pilot summary. Pilots with
// zero assignments never appear.
type PilotFlightCount struct {
	PilotID     string `db:"pilot_id"`
	FirstName   string `db:"first_name"`
	LastName    string `db:"last_name"`
	FlightCount int    `db:"flight_count"`
}

// DestinationFlightCount is one line of the flights-per-destination summary,
// counting schedule instances with status "scheduled" by arrival airport.
type DestinationFlightCount struct {
	AirportName string `db:"airport_name"`
	City        string `db:"city"`
	Country     string `db:"country"`
	FlightCount int    `db:"flight_count"`
}
