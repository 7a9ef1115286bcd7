package repositories

import (
	"context"

	"infinite-experiment/flightdeck/internal/constants"
	"infinite-experiment/flightdeck/internal/models/dtos"
	"infinite-experiment/flightdeck/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

type FlightRepository struct {
	db *sqlx.DB
}

func NewFlightRepository(db *sqlx.DB) *FlightRepository {
	return &FlightRepository{db}
}

// FindFlights returns joined flight rows matching the conjunction of the
// supplied filters. Left joins keep flights with no schedule instance in the
// result, with NULL schedule-derived fields. Ordered by departure date
// descending; sqlite treats NULL as smaller than any value, so under DESC
// the unscheduled flights sort to the bottom.
func (r *FlightRepository) FindFlights(ctx context.Context, f dtos.FlightFilters) ([]entities.FlightRow, error) {
	var filters []filter
	filters = appendFilter(filters, "df.flight_number", f.FlightNumber)
	filters = appendFilter(filters, "dd1.city", f.DepartureCity)
	filters = appendFilter(filters, "dd2.city", f.ArrivalCity)
	filters = appendFilter(filters, "fs.departure_date", f.DepartureDate)
	filters = appendFilter(filters, "fs.status", f.Status)

	where, args := whereClause(filters)
	query := constants.FindFlightsBase + where + constants.FindFlightsOrder

	var rows []entities.FlightRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	return rows, nil
}
