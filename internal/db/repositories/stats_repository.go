package repositories

import (
	"context"

	"infinite-experiment/flightdeck/internal/constants"
	"infinite-experiment/flightdeck/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db}
}

// CountUnassigned counts schedule instances with no pilot reference.
func (r *StatsRepository) CountUnassigned(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, constants.CountUnassignedSchedules); err != nil {
		return 0, err
	}
	return count, nil
}

// FlightsPerPilot returns the assignment count for every pilot with at least
// one schedule instance. Pilots with zero assignments are omitted.
func (r *StatsRepository) FlightsPerPilot(ctx context.Context) ([]entities.PilotFlightCount, error) {
	var rows []entities.PilotFlightCount
	if err := r.db.SelectContext(ctx, &rows, constants.FlightsPerPilot); err != nil {
		return nil, err
	}
	return rows, nil
}

// FlightsPerDestination returns, per arrival destination, the count of
// schedule instances carrying the given status, ordered by airport name
// descending.
func (r *StatsRepository) FlightsPerDestination(ctx context.Context, status constants.FlightStatus) ([]entities.DestinationFlightCount, error) {
	var rows []entities.DestinationFlightCount
	if err := r.db.SelectContext(ctx, &rows, constants.FlightsPerDestination, string(status)); err != nil {
		return nil, err
	}
	return rows, nil
}
