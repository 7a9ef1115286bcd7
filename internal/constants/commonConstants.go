package constants

type (
	FlightStatus string
	CachePrefix  string
)

const (
	// Schedule statuses observed in the data. Stored as free text; these
	// values are what the CLI offers at its prompts.
	StatusScheduled FlightStatus = "scheduled"
	StatusLanded    FlightStatus = "landed"
	StatusCancelled FlightStatus = "cancelled"
	StatusDelayed   FlightStatus = "delayed"

	CachePrefixDestination CachePrefix = "DEST_"

	// Confirmation tokens for guarded mutations. Matched case-insensitively;
	// anything else re-prompts.
	ConfirmYes = "yes"
	ConfirmNo  = "no"
)
