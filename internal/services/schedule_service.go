package services

import (
	"context"
	"fmt"
	"strconv"

	"infinite-experiment/flightdeck/internal/constants"
	"infinite-experiment/flightdeck/internal/db/repositories"
	"infinite-experiment/flightdeck/internal/models/dtos"
	"infinite-experiment/flightdeck/internal/models/entities"
)

type ScheduleService struct {
	repo *repositories.ScheduleRepository
}

func NewScheduleService(repo *repositories.ScheduleRepository) *ScheduleService {
	return &ScheduleService{repo: repo}
}

// UpdateSchedule applies the supplied changes to one schedule instance and
// reports the row before and after. A missing id fails before any database
// access; an unknown id fails before any write. Supplying no changes is a
// legal no-op: only the lookup happens and Before equals After.
func (svc *ScheduleService) UpdateSchedule(ctx context.Context, scheduleID string, changes dtos.ScheduleChanges) (dtos.MutationReport, error) {
	var report dtos.MutationReport

	if scheduleID == "" {
		return report, fmt.Errorf("schedule id: %w", constants.ErrMissingArgument)
	}
	id, err := strconv.ParseInt(scheduleID, 10, 64)
	if err != nil {
		return report, fmt.Errorf("schedule id %q is not numeric: %w", scheduleID, constants.ErrMissingArgument)
	}

	before, err := svc.repo.GetByID(ctx, id)
	if err != nil {
		return report, err
	}
	if before == nil {
		return report, fmt.Errorf("schedule id %d: %w", id, constants.ErrNotFound)
	}
	report.Before = dtos.ScheduleResultSet([]entities.ScheduleRow{*before})

	if !changes.Empty() {
		if err := svc.repo.ApplyChanges(ctx, id, changes); err != nil {
			return report, err
		}
	}

	after, err := svc.repo.GetByID(ctx, id)
	if err != nil {
		return report, err
	}
	report.After = dtos.ScheduleResultSet([]entities.ScheduleRow{*after})

	return report, nil
}
