package repositories

import (
	"context"

	"infinite-experiment/flightdeck/internal/constants"
	"infinite-experiment/flightdeck/internal/models/dtos"
	"infinite-experiment/flightdeck/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

type PilotRepository struct {
	db *sqlx.DB
}

func NewPilotRepository(db *sqlx.DB) *PilotRepository {
	return &PilotRepository{db}
}

// FindSchedules returns the schedule rows for pilots matching the supplied
// filters. Inner joins exclude unassigned schedule instances and pilots with
// no assignments.
func (r *PilotRepository) FindSchedules(ctx context.Context, f dtos.PilotFilters) ([]entities.PilotScheduleRow, error) {
	var filters []filter
	filters = appendFilter(filters, "dp.pilot_id", f.PilotID)
	filters = appendFilter(filters, "dp.first_name", f.FirstName)
	filters = appendFilter(filters, "dp.last_name", f.LastName)

	where, args := whereClause(filters)
	query := constants.FindPilotSchedulesBase + where

	var rows []entities.PilotScheduleRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	return rows, nil
}
