package services

import (
	"strings"

	"infinite-experiment/flightdeck/internal/constants"
)

// Confirmer supplies one line of operator input for a guarded mutation.
type Confirmer interface {
	Ask(question string) (string, error)
}

// ConfirmationState models the confirm/abort step of a guarded mutation.
// Unrecognized input is a self-transition back to AwaitingConfirmation.
type ConfirmationState int

const (
	AwaitingConfirmation ConfirmationState = iota
	Committed
	Aborted
)

// TransitionConfirmation maps one line of input to the next state. Only the
// exact affirmative token proceeds and only the exact negative token aborts,
// case-insensitively; anything else keeps waiting.
func TransitionConfirmation(input string) ConfirmationState {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case constants.ConfirmYes:
		return Committed
	case constants.ConfirmNo:
		return Aborted
	default:
		return AwaitingConfirmation
	}
}

// awaitConfirmation drives the state machine until the operator gives a
// recognized answer.
func awaitConfirmation(confirmer Confirmer, question string) (ConfirmationState, error) {
	state := AwaitingConfirmation
	for state == AwaitingConfirmation {
		answer, err := confirmer.Ask(question)
		if err != nil {
			return Aborted, err
		}
		state = TransitionConfirmation(answer)
	}
	return state, nil
}
