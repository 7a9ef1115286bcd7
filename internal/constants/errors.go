package constants

import "errors"

// Operation-boundary error taxonomy. These are handled where the operation is
// invoked and reported to the operator; they never indicate engine failure.
var (
	// ErrMissingArgument means a required identifying field was not supplied.
	// No database access is attempted.
	ErrMissingArgument = errors.New("required argument missing")

	// ErrIncompleteCriteria means a multi-field operation received some but
	// not all of its disambiguating fields.
	ErrIncompleteCriteria = errors.New("incomplete criteria")

	// ErrNotFound means a lookup required by a guarded mutation matched zero
	// rows. The mutation is aborted before any write.
	ErrNotFound = errors.New("not found")

	// ErrAmbiguousMatch means a flight-identity resolution matched more than
	// one row; no disambiguation rule exists, so the mutation aborts.
	ErrAmbiguousMatch = errors.New("ambiguous match")
)

const (
	MsgNoData             = "No data returned."
	MsgNoDataCheckFilters = "No data returned. Check the data you are searching by and try again."
	MsgNoScheduleID       = "*** No schedule ID has been entered ***"
	MsgNoPilotID          = "No pilot ID has been entered"
	MsgNoDestinationCode  = "No destination code has been entered"
	MsgIncompleteAssign   = "In order to assign a pilot, please provide flight number, departure date, departure city and arrival city"
	MsgFlightNotFound     = "The flight details do not appear to exist based on the criteria provided, check your inputs and try again."
	MsgFlightAmbiguous    = "More than one flight matches the criteria provided; no changes have been made."
	MsgNoChanges          = "No changes have been made"
)
