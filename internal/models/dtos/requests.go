package dtos

// Filter structs for the lookup operations. An empty string means the filter
// is absent and imposes no restriction; present filters narrow the result by
// exact-match equality, composed as a conjunction.

type FlightFilters struct {
	FlightNumber  string
	DepartureCity string
	ArrivalCity   string
	DepartureDate string
	Status        string
}

type PilotFilters struct {
	PilotID   string
	FirstName string
	LastName  string
}

type DestinationFilters struct {
	Code    string
	Name    string
	City    string
	Country string
}

// ScheduleChanges carries the optional fields of a schedule update. Supplying
// none is legal; the operation then only reports the current row.
type ScheduleChanges struct {
	NewDepartureTime string
	NewArrivalTime   string
	NewStatus        string
}

func (c ScheduleChanges) Empty() bool {
	return c.NewDepartureTime == "" && c.NewArrivalTime == "" && c.NewStatus == ""
}

// DestinationChanges carries the optional fields of a destination update.
type DestinationChanges struct {
	Name    string
	City    string
	Country string
}

func (c DestinationChanges) Empty() bool {
	return c.Name == "" && c.City == "" && c.Country == ""
}

// AssignmentRequest identifies the pilot and the flight occurrence for the
// pilot-assignment workflow. All five fields are required; the flight fields
// together resolve a non-unique flight number to one route on one date.
type AssignmentRequest struct {
	PilotID       string
	FlightNumber  string
	DepartureDate string
	DepartureCity string
	ArrivalCity   string
}

// CriteriaComplete reports whether the four flight-identity fields are all
// present. The pilot ID is validated separately, before any display.
func (r AssignmentRequest) CriteriaComplete() bool {
	return r.FlightNumber != "" && r.DepartureDate != "" &&
		r.DepartureCity != "" && r.ArrivalCity != ""
}
