package dtos

import (
	"database/sql"
	"strconv"

	"infinite-experiment/flightdeck/internal/models/entities"
	gormModels "infinite-experiment/flightdeck/internal/models/gorm"
)

// Header label sets handed to the tabular renderer alongside each result.
var (
	FlightHeaders = []string{
		"Flight Number", "Departure Destination", "Arrival Destination",
		"Scheduled Departure", "Scheduled Arrival", "Departure Date",
		"Pilot ID", "Flight Status",
	}

	ScheduleHeaders = []string{
		"Schedule ID", "Departure Date", "Actual Departure Time",
		"Actual Arrival Time", "Flight ID", "Pilot ID", "Flight Status",
	}

	PilotScheduleHeaders = []string{
		"Schedule ID", "Departure Date", "Flight ID", "Flight Status",
		"Pilot ID", "First Name", "Last Name", "Scheduled Departure Time",
		"Scheduled Arrival Time", "Departure City", "Arrival City",
	}

	DestinationHeaders = []string{
		"Destination Code", "Airport Name", "City", "Country",
	}
)

// ResultSet is what every read operation produces: rows ready for the
// renderer plus the matching header labels. An empty set must be reported to
// the operator distinctly; the renderer is never invoked for it.
type ResultSet struct {
	Headers []string
	Rows    [][]string
}

func (r ResultSet) Empty() bool {
	return len(r.Rows) == 0
}

// MutationReport pairs the row state before and after a guarded update so
// callers can detect zero-row updates by comparing the two lookups.
type MutationReport struct {
	Before ResultSet
	After  ResultSet
}

// UnassignedSummary carries the unassigned-schedule count with its phrasing
// already resolved for singular, plural and zero.
type UnassignedSummary struct {
	Count  int
	Phrase string
}

func nullable(v sql.NullString) string {
	if v.Valid {
		return v.String
	}
	return ""
}

// FlightResultSet converts joined flight rows for the renderer. NULLs from
// the left join render as blank cells.
func FlightResultSet(rows []entities.FlightRow) ResultSet {
	rs := ResultSet{Headers: FlightHeaders}
	for _, row := range rows {
		rs.Rows = append(rs.Rows, []string{
			row.FlightNumber,
			row.DepartureAirport,
			row.ArrivalAirport,
			row.ScheduledDepartureTime,
			row.ScheduledArrivalTime,
			nullable(row.DepartureDate),
			nullable(row.PilotID),
			nullable(row.Status),
		})
	}
	return rs
}

func ScheduleResultSet(rows []entities.ScheduleRow) ResultSet {
	rs := ResultSet{Headers: ScheduleHeaders}
	for _, row := range rows {
		rs.Rows = append(rs.Rows, []string{
			strconv.FormatInt(row.ScheduleID, 10),
			row.DepartureDate,
			nullable(row.ActualDepartureTime),
			nullable(row.ActualArrivalTime),
			strconv.FormatInt(row.FlightID, 10),
			nullable(row.PilotID),
			row.Status,
		})
	}
	return rs
}

func DestinationResultSet(rows []gormModels.Destination) ResultSet {
	rs := ResultSet{Headers: DestinationHeaders}
	for _, row := range rows {
		rs.Rows = append(rs.Rows, []string{
			row.Code,
			row.AirportName,
			row.City,
			row.Country,
		})
	}
	return rs
}

func PilotScheduleResultSet(rows []entities.PilotScheduleRow) ResultSet {
	rs := ResultSet{Headers: PilotScheduleHeaders}
	for _, row := range rows {
		rs.Rows = append(rs.Rows, []string{
			strconv.FormatInt(row.ScheduleID, 10),
			row.DepartureDate,
			strconv.FormatInt(row.FlightID, 10),
			row.Status,
			row.PilotID,
			row.FirstName,
			row.LastName,
			row.ScheduledDepartureTime,
			row.ScheduledArrivalTime,
			row.DepartureCity,
			row.ArrivalCity,
		})
	}
	return rs
}
