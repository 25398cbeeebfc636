package quiz

import "errors"

// Errors returned by Session operations.
var (
	// ErrInvalidState is returned when an action is not available in the
	// session's current state.
	ErrInvalidState = errors.New("action not allowed in current session state")

	// ErrNoSelection is returned when checking without a selected option.
	ErrNoSelection = errors.New("no answer selected")

	// ErrUnknownOption is returned when selecting an option the question does not offer.
	ErrUnknownOption = errors.New("option is not one of the question's options")

	// ErrSessionOver is returned for any action after completion or abort.
	ErrSessionOver = errors.New("session is over")

	// ErrAlreadyStarted is returned when Start is called twice.
	ErrAlreadyStarted = errors.New("session already started")
)
