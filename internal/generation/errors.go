package generation

import (
	"errors"
	"fmt"
)

// Common errors returned by generators
var (
	// ErrTransportFailure is returned when the external call fails or answers
	// with a non-success status.
	ErrTransportFailure = errors.New("generation transport failure")

	// ErrEmptyGeneration is returned when the call succeeded but produced no
	// usable candidate text.
	ErrEmptyGeneration = errors.New("no content generated")

	// ErrMalformedContent is returned when the payload cannot be parsed as JSON
	// or lacks the required fields.
	ErrMalformedContent = errors.New("malformed generated content")

	// ErrContentBlocked is returned when the model blocked the content with its
	// safety filters. It is always wrapped together with ErrEmptyGeneration.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// TransportError carries the status and body of a failed generation call.
// StatusCode is zero when no HTTP response was received.
type TransportError struct {
	StatusCode int
	Body       string
	Err        error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %v", ErrTransportFailure, e.Err)
	}
	return fmt.Sprintf("%s: status %d, body: %s", ErrTransportFailure, e.StatusCode, e.Body)
}

// Unwrap returns the underlying error for error wrapping support
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match any TransportError against ErrTransportFailure.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransportFailure
}
