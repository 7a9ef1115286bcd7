package cli

import (
	"context"
	"fmt"

	"infinite-experiment/flightdeck/internal/models/dtos"
	"infinite-experiment/flightdeck/internal/services"

	"github.com/spf13/cobra"
)

// demoCommand replays a scripted walkthrough of the query layer against the
// seeded sample data.
func demoCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted walkthrough of the query and update operations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context(), app)
		},
	}
}

func runDemo(ctx context.Context, app *App) error {
	p := app.Presenter

	p.Message("1) Flight retrieval by criteria")
	flightDemos := []struct {
		label   string
		filters dtos.FlightFilters
	}{
		{"1a) flight number SI2203", dtos.FlightFilters{FlightNumber: "SI2203"}},
		{"1b) departure city Jersey", dtos.FlightFilters{DepartureCity: "Jersey"}},
		{"1c) arrival city Southampton", dtos.FlightFilters{ArrivalCity: "Southampton"}},
		{"1d) status landed", dtos.FlightFilters{Status: "landed"}},
		{"1e) departure date 2025-04-21", dtos.FlightFilters{DepartureDate: "2025-04-21"}},
		{"1f) Jersey departures on 2025-04-21", dtos.FlightFilters{DepartureCity: "Jersey", DepartureDate: "2025-04-21"}},
		{"1g) all flights, scheduled or not", dtos.FlightFilters{}},
	}
	for _, demo := range flightDemos {
		p.Message(demo.label)
		rs, err := app.Flights.FindFlights(ctx, demo.filters)
		if err != nil {
			return err
		}
		p.Present(rs)
	}

	p.Message("2) Schedule modification")
	scheduleDemos := []dtos.ScheduleChanges{
		{NewDepartureTime: "12:00"},
		{NewArrivalTime: "13:00"},
		{NewStatus: "delayed"},
	}
	for _, changes := range scheduleDemos {
		report, err := app.Schedules.UpdateSchedule(ctx, "2", changes)
		if err != nil {
			return err
		}
		p.Present(report.Before)
		p.Present(report.After)
	}

	p.Message("3) Pilot schedules")
	for _, filters := range []dtos.PilotFilters{{PilotID: "P0010001"}, {}} {
		rs, err := app.Pilots.FindPilots(ctx, filters)
		if err != nil {
			return err
		}
		p.Present(rs)
	}

	p.Message("4) Pilot assignment (confirmation required)")
	if _, err := app.Pilots.AssignPilot(ctx, dtos.AssignmentRequest{
		PilotID:       "P0010007",
		FlightNumber:  "SI2207",
		DepartureDate: "2025-04-21",
		DepartureCity: "Exeter",
		ArrivalCity:   "Jersey",
	}); err != nil {
		if reportErr := reportOperationError(p, err); reportErr != nil {
			return reportErr
		}
	}

	p.Message("5) Destinations")
	for _, filters := range []dtos.DestinationFilters{{Country: "England"}, {}} {
		rs, err := app.Destinations.FindDestinations(ctx, filters)
		if err != nil {
			return err
		}
		p.Present(rs)
	}

	p.Message("6) Destination modification")
	destinationDemos := []struct {
		code    string
		changes dtos.DestinationChanges
	}{
		{"EMA", dtos.DestinationChanges{Name: "East Midlands Airport Central"}},
		{"BRS", dtos.DestinationChanges{City: "Paris"}},
		{"DUB", dtos.DestinationChanges{City: "Dubline"}},
	}
	for _, demo := range destinationDemos {
		report, err := app.Destinations.UpdateDestination(ctx, demo.code, demo.changes)
		if err != nil {
			return err
		}
		p.Present(report.Before)
		p.Present(report.After)
	}

	p.Message("7) Summaries")
	summary, err := app.Stats.CountUnassigned(ctx)
	if err != nil {
		return err
	}
	p.Message(summary.Phrase)

	pilots, err := app.Stats.FlightsPerPilot(ctx)
	if err != nil {
		return err
	}
	for _, row := range pilots {
		p.Message(services.PilotSummaryLine(row))
	}

	destinations, err := app.Stats.FlightsPerDestination(ctx)
	if err != nil {
		return err
	}
	for _, row := range destinations {
		p.Message(services.DestinationSummaryLine(row))
	}

	p.Message(fmt.Sprintf("Demo finished against %s.", app.Config.DatabasePath))
	return nil
}
