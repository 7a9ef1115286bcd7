package cli

import (
	"errors"
	"fmt"

	"infinite-experiment/flightdeck/internal/constants"
	"infinite-experiment/flightdeck/internal/presentation"

	"github.com/spf13/cobra"
)

// RootCommand creates and returns the root command
func RootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "flightdeck",
		Short:         "Flight operations database manager",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	subcommands := []*cobra.Command{
		seedCommand(app),
		flightsCommand(app),
		pilotsCommand(app),
		destinationsCommand(app),
		updateScheduleCommand(app),
		updateDestinationCommand(app),
		assignCommand(app),
		summaryCommand(app),
		shellCommand(app),
		demoCommand(app),
	}
	rootCmd.AddCommand(subcommands...)

	return rootCmd
}

// reportOperationError resolves validation failures at the operation
// boundary: they are told to the operator and not propagated. Engine-level
// failures pass through and fail the command.
func reportOperationError(p presentation.Presenter, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, constants.ErrMissingArgument):
		p.Message(fmt.Sprintf("*** %v ***", err))
		return nil
	case errors.Is(err, constants.ErrIncompleteCriteria):
		p.Message(constants.MsgIncompleteAssign)
		return nil
	case errors.Is(err, constants.ErrNotFound):
		p.Message(fmt.Sprintf("%v. Cancelled transaction. No changes have been made.", err))
		return nil
	case errors.Is(err, constants.ErrAmbiguousMatch):
		p.Message(constants.MsgFlightAmbiguous)
		return nil
	default:
		return err
	}
}
