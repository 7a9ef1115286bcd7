package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"infinite-experiment/flightdeck/internal/models/dtos"
	"infinite-experiment/flightdeck/internal/services"

	"github.com/spf13/cobra"
)

const shellMenu = `
Flight operations database
 1) View flights
 2) Update a flight schedule
 3) View pilot schedules
 4) Assign a pilot to a flight
 5) View destinations
 6) Update a destination
 7) Summary reports
 8) Load sample data
 q) Quit
`

func shellCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive session over the flight database",
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := &shell{app: app, reader: bufio.NewReader(os.Stdin)}
			return shell.run(cmd.Context())
		},
	}
}

type shell struct {
	app    *App
	reader *bufio.Reader
}

func (s *shell) run(ctx context.Context) error {
	for {
		fmt.Print(shellMenu)
		choice := s.prompt("Select an option: ")

		var err error
		switch choice {
		case "1":
			err = s.viewFlights(ctx)
		case "2":
			err = s.updateSchedule(ctx)
		case "3":
			err = s.viewPilots(ctx)
		case "4":
			err = s.assignPilot(ctx)
		case "5":
			err = s.viewDestinations(ctx)
		case "6":
			err = s.updateDestination(ctx)
		case "7":
			err = s.summaries(ctx)
		case "8":
			err = s.seed(ctx)
		case "q", "quit", "exit":
			return nil
		default:
			s.app.Presenter.Message("Unrecognized option.")
		}

		if err != nil {
			return err
		}
	}
}

// prompt reads one line; blank input means "no filter" for the lookup
// prompts.
func (s *shell) prompt(label string) string {
	fmt.Print(label)
	line, err := s.reader.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

func (s *shell) viewFlights(ctx context.Context) error {
	filters := dtos.FlightFilters{
		FlightNumber:  s.prompt("Flight number (blank for all): "),
		DepartureCity: s.prompt("Departure city (blank for all): "),
		ArrivalCity:   s.prompt("Arrival city (blank for all): "),
		DepartureDate: s.prompt("Departure date YYYY-MM-DD (blank for all): "),
		Status:        s.prompt("Status (blank for all): "),
	}

	rs, err := s.app.Flights.FindFlights(ctx, filters)
	if err != nil {
		return err
	}
	s.app.Presenter.Present(rs)
	return nil
}

func (s *shell) updateSchedule(ctx context.Context) error {
	scheduleID := s.prompt("Schedule ID: ")
	changes := dtos.ScheduleChanges{
		NewDepartureTime: s.prompt("New actual departure time (blank to skip): "),
		NewArrivalTime:   s.prompt("New actual arrival time (blank to skip): "),
		NewStatus:        s.prompt("New status (blank to skip): "),
	}

	report, err := s.app.Schedules.UpdateSchedule(ctx, scheduleID, changes)
	if err != nil {
		return reportOperationError(s.app.Presenter, err)
	}
	s.app.Presenter.Message(fmt.Sprintf("Before changes, schedule ID %s was:", scheduleID))
	s.app.Presenter.Present(report.Before)
	s.app.Presenter.Message(fmt.Sprintf("After changes, schedule ID %s is:", scheduleID))
	s.app.Presenter.Present(report.After)
	return nil
}

func (s *shell) viewPilots(ctx context.Context) error {
	filters := dtos.PilotFilters{
		PilotID:   s.prompt("Pilot ID (blank for all): "),
		FirstName: s.prompt("First name (blank for all): "),
		LastName:  s.prompt("Last name (blank for all): "),
	}

	rs, err := s.app.Pilots.FindPilots(ctx, filters)
	if err != nil {
		return err
	}
	s.app.Presenter.Present(rs)
	return nil
}

func (s *shell) assignPilot(ctx context.Context) error {
	req := dtos.AssignmentRequest{
		PilotID:       s.prompt("Pilot ID: "),
		FlightNumber:  s.prompt("Flight number: "),
		DepartureDate: s.prompt("Departure date YYYY-MM-DD: "),
		DepartureCity: s.prompt("Departure city: "),
		ArrivalCity:   s.prompt("Arrival city: "),
	}

	_, err := s.app.Pilots.AssignPilot(ctx, req)
	return reportOperationError(s.app.Presenter, err)
}

func (s *shell) viewDestinations(ctx context.Context) error {
	filters := dtos.DestinationFilters{
		Code:    s.prompt("Destination code (blank for all): "),
		Name:    s.prompt("Airport name (blank for all): "),
		City:    s.prompt("City (blank for all): "),
		Country: s.prompt("Country (blank for all): "),
	}

	rs, err := s.app.Destinations.FindDestinations(ctx, filters)
	if err != nil {
		return err
	}
	s.app.Presenter.Present(rs)
	return nil
}

func (s *shell) updateDestination(ctx context.Context) error {
	code := s.prompt("Destination code: ")
	changes := dtos.DestinationChanges{
		Name:    s.prompt("New airport name (blank to skip): "),
		City:    s.prompt("New city (blank to skip): "),
		Country: s.prompt("New country (blank to skip): "),
	}

	report, err := s.app.Destinations.UpdateDestination(ctx, code, changes)
	if err != nil {
		return reportOperationError(s.app.Presenter, err)
	}
	s.app.Presenter.Message(fmt.Sprintf("Before changes, destination %s was:", strings.ToUpper(code)))
	s.app.Presenter.Present(report.Before)
	s.app.Presenter.Message(fmt.Sprintf("After changes, destination %s is:", strings.ToUpper(code)))
	s.app.Presenter.Present(report.After)
	return nil
}

func (s *shell) summaries(ctx context.Context) error {
	summary, err := s.app.Stats.CountUnassigned(ctx)
	if err != nil {
		return err
	}
	s.app.Presenter.Message(summary.Phrase)

	pilots, err := s.app.Stats.FlightsPerPilot(ctx)
	if err != nil {
		return err
	}
	s.app.Presenter.Message("Summarising the number of scheduled flights assigned to pilots:")
	for _, row := range pilots {
		s.app.Presenter.Message(services.PilotSummaryLine(row))
	}

	destinations, err := s.app.Stats.FlightsPerDestination(ctx)
	if err != nil {
		return err
	}
	s.app.Presenter.Message("Summarising the number of flights for each arrival destination (status 'scheduled'):")
	for _, row := range destinations {
		s.app.Presenter.Message(services.DestinationSummaryLine(row))
	}
	return nil
}

func (s *shell) seed(ctx context.Context) error {
	for _, result := range s.app.Seeder.Load(ctx) {
		s.app.Presenter.Message(fmt.Sprintf("%s: %s", result.Table, result.Message))
	}
	return nil
}
