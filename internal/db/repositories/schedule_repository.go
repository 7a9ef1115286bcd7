package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"infinite-experiment/flightdeck/internal/constants"
	"infinite-experiment/flightdeck/internal/models/dtos"
	"infinite-experiment/flightdeck/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

type ScheduleRepository struct {
	db *sqlx.DB
}

func NewScheduleRepository(db *sqlx.DB) *ScheduleRepository {
	return &ScheduleRepository{db}
}

// GetByID returns the schedule row, or nil when the id is unknown.
func (r *ScheduleRepository) GetByID(ctx context.Context, scheduleID int64) (*entities.ScheduleRow, error) {
	var row entities.ScheduleRow

	err := r.db.QueryRowxContext(ctx, constants.GetScheduleByID, scheduleID).StructScan(&row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &row, nil
}

// ApplyChanges applies each supplied field as an independent SET inside one
// transaction; all supplied fields commit together or none do.
func (r *ScheduleRepository) ApplyChanges(ctx context.Context, scheduleID int64, changes dtos.ScheduleChanges) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if changes.NewDepartureTime != "" {
		if _, err := tx.ExecContext(ctx, constants.UpdateScheduleDepartureTime, changes.NewDepartureTime, scheduleID); err != nil {
			return err
		}
	}

	if changes.NewArrivalTime != "" {
		if _, err := tx.ExecContext(ctx, constants.UpdateScheduleArrivalTime, changes.NewArrivalTime, scheduleID); err != nil {
			return err
		}
	}

	if changes.NewStatus != "" {
		if _, err := tx.ExecContext(ctx, constants.UpdateScheduleStatus, changes.NewStatus, scheduleID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ResolveFlightID maps (flight number, departure city, arrival city) to the
// flight surrogate key. The flight number alone is not unique; the endpoint
// cities are expected to pin it down to one row.
func (r *ScheduleRepository) ResolveFlightID(ctx context.Context, flightNumber, departureCity, arrivalCity string) ([]int64, error) {
	var ids []int64

	err := r.db.SelectContext(ctx, &ids, constants.ResolveFlightIdentity,
		flightNumber, departureCity, arrivalCity)
	if err != nil {
		return nil, err
	}

	return ids, nil
}

// AssignPilot sets the pilot reference on the schedule instance identified by
// (flight id, departure date), inside one transaction.
func (r *ScheduleRepository) AssignPilot(ctx context.Context, pilotID string, flightID int64, departureDate string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, constants.AssignPilotToSchedule, pilotID, flightID, departureDate); err != nil {
		return err
	}

	return tx.Commit()
}
