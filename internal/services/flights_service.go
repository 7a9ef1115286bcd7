package services

import (
	"context"

	"infinite-experiment/flightdeck/internal/db/repositories"
	"infinite-experiment/flightdeck/internal/models/dtos"
)

type FlightsService struct {
	repo *repositories.FlightRepository
}

func NewFlightsService(repo *repositories.FlightRepository) *FlightsService {
	return &FlightsService{repo: repo}
}

// FindFlights returns all flights matching the supplied filters, scheduled
// or not. An empty result set is not an error; the caller reports it
// distinctly.
func (svc *FlightsService) FindFlights(ctx context.Context, filters dtos.FlightFilters) (dtos.ResultSet, error) {
	rows, err := svc.repo.FindFlights(ctx, filters)
	if err != nil {
		return dtos.ResultSet{}, err
	}

	return dtos.FlightResultSet(rows), nil
}
