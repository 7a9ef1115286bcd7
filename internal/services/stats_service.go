package services

import (
	"context"
	"fmt"

	"infinite-experiment/flightdeck/internal/constants"
	"infinite-experiment/flightdeck/internal/db/repositories"
	"infinite-experiment/flightdeck/internal/models/dtos"
	"infinite-experiment/flightdeck/internal/models/entities"
)

type StatsService struct {
	repo *repositories.StatsRepository
}

func NewStatsService(repo *repositories.StatsRepository) *StatsService {
	return &StatsService{repo: repo}
}

// CountUnassigned reports how many schedule instances have no pilot,
// phrased for zero, one and many.
func (svc *StatsService) CountUnassigned(ctx context.Context) (dtos.UnassignedSummary, error) {
	count, err := svc.repo.CountUnassigned(ctx)
	if err != nil {
		return dtos.UnassignedSummary{}, err
	}

	return dtos.UnassignedSummary{Count: count, Phrase: unassignedPhrase(count)}, nil
}

func unassignedPhrase(count int) string {
	switch count {
	case 0:
		return "No scheduled flights are lacking an assigned pilot."
	case 1:
		return "There is 1 scheduled flight which does not have a pilot assigned to it."
	default:
		return fmt.Sprintf("There are %d scheduled flights which do not have a pilot assigned to them.", count)
	}
}

// FlightsPerPilot summarises assignments per pilot. Pilots with no schedule
// instances are omitted rather than reported as zero.
func (svc *StatsService) FlightsPerPilot(ctx context.Context) ([]entities.PilotFlightCount, error) {
	return svc.repo.FlightsPerPilot(ctx)
}

// FlightsPerDestination summarises, per arrival destination, the schedule
// instances still in the "scheduled" status.
func (svc *StatsService) FlightsPerDestination(ctx context.Context) ([]entities.DestinationFlightCount, error) {
	return svc.repo.FlightsPerDestination(ctx, constants.StatusScheduled)
}

// PilotSummaryLine phrases one flights-per-pilot row.
func PilotSummaryLine(row entities.PilotFlightCount) string {
	return fmt.Sprintf("- Pilot ID %s is %s %s and has been assigned to %d flight(s).",
		row.PilotID, row.FirstName, row.LastName, row.FlightCount)
}

// DestinationSummaryLine phrases one flights-per-destination row.
func DestinationSummaryLine(row entities.DestinationFlightCount) string {
	return fmt.Sprintf("- The destination airport %s in %s, %s is served by %d flight(s) with a 'scheduled' status.",
		row.AirportName, row.City, row.Country, row.FlightCount)
}
