package cli

import (
	"fmt"

	"infinite-experiment/flightdeck/internal/constants"
	"infinite-experiment/flightdeck/internal/logging"
	"infinite-experiment/flightdeck/internal/models/dtos"
	"infinite-experiment/flightdeck/internal/services"

	"github.com/spf13/cobra"
)

func seedCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the sample destinations, pilots, flights and schedules",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.WithOperation("seed")
			for _, result := range app.Seeder.Load(cmd.Context()) {
				log.Infow("seed batch finished", "table", result.Table, "rows", result.Rows)
				app.Presenter.Message(fmt.Sprintf("%s: %s", result.Table, result.Message))
			}
			return nil
		},
	}
}

func flightsCommand(app *App) *cobra.Command {
	var filters dtos.FlightFilters

	cmd := &cobra.Command{
		Use:   "flights",
		Short: "List flights, scheduled or not, filtered by any combination of criteria",
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := app.Flights.FindFlights(cmd.Context(), filters)
			if err != nil {
				return err
			}
			app.Presenter.Present(rs)
			return nil
		},
	}

	cmd.Flags().StringVar(&filters.FlightNumber, "number", "", "flight number")
	cmd.Flags().StringVar(&filters.DepartureCity, "from", "", "departure city")
	cmd.Flags().StringVar(&filters.ArrivalCity, "to", "", "arrival city")
	cmd.Flags().StringVar(&filters.DepartureDate, "date", "", "departure date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&filters.Status, "status", "", "flight status")

	return cmd
}

func pilotsCommand(app *App) *cobra.Command {
	var filters dtos.PilotFilters

	cmd := &cobra.Command{
		Use:   "pilots",
		Short: "List assigned pilot schedules, filtered by pilot id or name",
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := app.Pilots.FindPilots(cmd.Context(), filters)
			if err != nil {
				return err
			}
			if rs.Empty() {
				app.Presenter.Message(constants.MsgNoDataCheckFilters)
				return nil
			}
			app.Presenter.Present(rs)
			return nil
		},
	}

	cmd.Flags().StringVar(&filters.PilotID, "id", "", "pilot id")
	cmd.Flags().StringVar(&filters.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&filters.LastName, "last-name", "", "last name")

	return cmd
}

func destinationsCommand(app *App) *cobra.Command {
	var filters dtos.DestinationFilters

	cmd := &cobra.Command{
		Use:   "destinations",
		Short: "List destinations, filtered by code, name, city or country",
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := app.Destinations.FindDestinations(cmd.Context(), filters)
			if err != nil {
				return err
			}
			app.Presenter.Present(rs)
			return nil
		},
	}

	cmd.Flags().StringVar(&filters.Code, "code", "", "destination code")
	cmd.Flags().StringVar(&filters.Name, "name", "", "airport name")
	cmd.Flags().StringVar(&filters.City, "city", "", "city")
	cmd.Flags().StringVar(&filters.Country, "country", "", "country")

	return cmd
}

func updateScheduleCommand(app *App) *cobra.Command {
	var scheduleID string
	var changes dtos.ScheduleChanges

	cmd := &cobra.Command{
		Use:   "update-schedule",
		Short: "Update one schedule instance's actual times or status",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Schedules.UpdateSchedule(cmd.Context(), scheduleID, changes)
			if err != nil {
				return reportOperationError(app.Presenter, err)
			}
			app.Presenter.Message(fmt.Sprintf("Before changes, schedule ID %s was:", scheduleID))
			app.Presenter.Present(report.Before)
			app.Presenter.Message(fmt.Sprintf("After changes, schedule ID %s is:", scheduleID))
			app.Presenter.Present(report.After)
			return nil
		},
	}

	cmd.Flags().StringVar(&scheduleID, "id", "", "schedule id (required)")
	cmd.Flags().StringVar(&changes.NewDepartureTime, "departure-time", "", "actual departure time")
	cmd.Flags().StringVar(&changes.NewArrivalTime, "arrival-time", "", "actual arrival time")
	cmd.Flags().StringVar(&changes.NewStatus, "status", "", "new status")

	return cmd
}

func updateDestinationCommand(app *App) *cobra.Command {
	var code string
	var changes dtos.DestinationChanges

	cmd := &cobra.Command{
		Use:   "update-destination",
		Short: "Update a destination's airport name, city or country",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Destinations.UpdateDestination(cmd.Context(), code, changes)
			if err != nil {
				return reportOperationError(app.Presenter, err)
			}
			app.Presenter.Message(fmt.Sprintf("Before changes, destination %s was:", code))
			app.Presenter.Present(report.Before)
			app.Presenter.Message(fmt.Sprintf("After changes, destination %s is:", code))
			app.Presenter.Present(report.After)
			if report.Before.Empty() && report.After.Empty() {
				app.Presenter.Message(fmt.Sprintf("Destination code %s does not exist; no rows were changed.", code))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "destination code (required)")
	cmd.Flags().StringVar(&changes.Name, "name", "", "new airport name")
	cmd.Flags().StringVar(&changes.City, "city", "", "new city")
	cmd.Flags().StringVar(&changes.Country, "country", "", "new country")

	return cmd
}

func assignCommand(app *App) *cobra.Command {
	var req dtos.AssignmentRequest

	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Assign a pilot to a scheduled flight, after review and confirmation",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := app.Pilots.AssignPilot(cmd.Context(), req)
			return reportOperationError(app.Presenter, err)
		},
	}

	cmd.Flags().StringVar(&req.PilotID, "pilot", "", "pilot id (required)")
	cmd.Flags().StringVar(&req.FlightNumber, "number", "", "flight number")
	cmd.Flags().StringVar(&req.DepartureDate, "date", "", "departure date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&req.DepartureCity, "from", "", "departure city")
	cmd.Flags().StringVar(&req.ArrivalCity, "to", "", "arrival city")

	return cmd
}

func summaryCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Reporting queries over the schedule data",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "unassigned",
		Short: "Count schedule instances with no pilot",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := app.Stats.CountUnassigned(cmd.Context())
			if err != nil {
				return err
			}
			app.Presenter.Message(summary.Phrase)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "per-pilot",
		Short: "Count assignments per pilot",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := app.Stats.FlightsPerPilot(cmd.Context())
			if err != nil {
				return err
			}
			app.Presenter.Message("Summarising the number of scheduled flights assigned to pilots:")
			for _, row := range rows {
				app.Presenter.Message(services.PilotSummaryLine(row))
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "per-destination",
		Short: "Count scheduled flights per arrival destination",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := app.Stats.FlightsPerDestination(cmd.Context())
			if err != nil {
				return err
			}
			app.Presenter.Message("Summarising the number of flights for each arrival destination (status 'scheduled'):")
			for _, row := range rows {
				app.Presenter.Message(services.DestinationSummaryLine(row))
			}
			return nil
		},
	})

	return cmd
}
