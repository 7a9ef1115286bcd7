package services

import (
	"context"
	"fmt"

	"infinite-experiment/flightdeck/internal/constants"
	"infinite-experiment/flightdeck/internal/db/repositories"
	"infinite-experiment/flightdeck/internal/logging"
	"infinite-experiment/flightdeck/internal/models/dtos"
	"infinite-experiment/flightdeck/internal/presentation"
)

// AssignmentOutcome reports how the pilot-assignment workflow ended.
type AssignmentOutcome int

const (
	AssignmentCommitted AssignmentOutcome = iota
	AssignmentAborted
)

type PilotsService struct {
	pilotRepo    *repositories.PilotRepository
	flightRepo   *repositories.FlightRepository
	scheduleRepo *repositories.ScheduleRepository
	presenter    presentation.Presenter
	confirmer    Confirmer
}

func NewPilotsService(
	pilotRepo *repositories.PilotRepository,
	flightRepo *repositories.FlightRepository,
	scheduleRepo *repositories.ScheduleRepository,
	presenter presentation.Presenter,
	confirmer Confirmer,
) *PilotsService {
	return &PilotsService{
		pilotRepo:    pilotRepo,
		flightRepo:   flightRepo,
		scheduleRepo: scheduleRepo,
		presenter:    presenter,
		confirmer:    confirmer,
	}
}

// FindPilots returns the schedule rows of assigned pilots matching the
// supplied filters. Unassigned schedule instances and pilots with no
// assignments never appear.
func (svc *PilotsService) FindPilots(ctx context.Context, filters dtos.PilotFilters) (dtos.ResultSet, error) {
	rows, err := svc.pilotRepo.FindSchedules(ctx, filters)
	if err != nil {
		return dtos.ResultSet{}, err
	}

	return dtos.PilotScheduleResultSet(rows), nil
}

// AssignPilot runs the guarded two-phase assignment workflow: show the
// pilot's schedule, show the target flight, require an explicit confirmation,
// resolve the flight identity, write the pilot reference inside one
// transaction, then show both schedules again.
func (svc *PilotsService) AssignPilot(ctx context.Context, req dtos.AssignmentRequest) (AssignmentOutcome, error) {
	log := logging.WithOperation("assign_pilot")

	if req.PilotID == "" {
		return AssignmentAborted, fmt.Errorf("pilot id: %w", constants.ErrMissingArgument)
	}

	svc.presenter.Message(fmt.Sprintf("Fetching the current schedule for pilot %s:", req.PilotID))
	if err := svc.presentPilot(ctx, req.PilotID); err != nil {
		return AssignmentAborted, err
	}

	if !req.CriteriaComplete() {
		return AssignmentAborted, fmt.Errorf("flight identity: %w", constants.ErrIncompleteCriteria)
	}

	svc.presenter.Message(fmt.Sprintf(
		"Retrieving flight %s departing on %s from %s to %s:",
		req.FlightNumber, req.DepartureDate, req.DepartureCity, req.ArrivalCity))
	if err := svc.presentFlight(ctx, req); err != nil {
		return AssignmentAborted, err
	}

	question := fmt.Sprintf(
		"Shall I assign pilot %s to the scheduled flight %s? (enter '%s' to complete the change or '%s' to cancel): ",
		req.PilotID, req.FlightNumber, constants.ConfirmYes, constants.ConfirmNo)
	state, err := awaitConfirmation(svc.confirmer, question)
	if err != nil {
		return AssignmentAborted, err
	}
	if state == Aborted {
		svc.presenter.Message(constants.MsgNoChanges)
		return AssignmentAborted, nil
	}

	flightIDs, err := svc.scheduleRepo.ResolveFlightID(ctx, req.FlightNumber, req.DepartureCity, req.ArrivalCity)
	if err != nil {
		return AssignmentAborted, err
	}
	switch {
	case len(flightIDs) == 0:
		return AssignmentAborted, fmt.Errorf("flight %s from %s to %s: %w",
			req.FlightNumber, req.DepartureCity, req.ArrivalCity, constants.ErrNotFound)
	case len(flightIDs) > 1:
		return AssignmentAborted, fmt.Errorf("flight %s from %s to %s matched %d routes: %w",
			req.FlightNumber, req.DepartureCity, req.ArrivalCity, len(flightIDs), constants.ErrAmbiguousMatch)
	}

	if err := svc.scheduleRepo.AssignPilot(ctx, req.PilotID, flightIDs[0], req.DepartureDate); err != nil {
		return AssignmentAborted, err
	}
	log.Infow("pilot assigned",
		"pilot_id", req.PilotID,
		"flight_id", flightIDs[0],
		"departure_date", req.DepartureDate,
	)
	svc.presenter.Message(fmt.Sprintf("Pilot %s has been assigned successfully.", req.PilotID))

	svc.presenter.Message(fmt.Sprintf("Retrieving schedule details for pilot %s:", req.PilotID))
	if err := svc.presentPilot(ctx, req.PilotID); err != nil {
		return AssignmentCommitted, err
	}
	svc.presenter.Message(fmt.Sprintf("Retrieving flight schedule details for flight number %s:", req.FlightNumber))
	if err := svc.presentFlight(ctx, req); err != nil {
		return AssignmentCommitted, err
	}

	return AssignmentCommitted, nil
}

func (svc *PilotsService) presentPilot(ctx context.Context, pilotID string) error {
	rs, err := svc.FindPilots(ctx, dtos.PilotFilters{PilotID: pilotID})
	if err != nil {
		return err
	}
	svc.presenter.Present(rs)
	return nil
}

func (svc *PilotsService) presentFlight(ctx context.Context, req dtos.AssignmentRequest) error {
	rows, err := svc.flightRepo.FindFlights(ctx, dtos.FlightFilters{
		FlightNumber:  req.FlightNumber,
		DepartureCity: req.DepartureCity,
		ArrivalCity:   req.ArrivalCity,
		DepartureDate: req.DepartureDate,
	})
	if err != nil {
		return err
	}
	svc.presenter.Present(dtos.FlightResultSet(rows))
	return nil
}
