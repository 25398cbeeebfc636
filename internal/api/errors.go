package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/heyged/gedprep/internal/api/shared"
	"github.com/heyged/gedprep/internal/deck"
	"github.com/heyged/gedprep/internal/domain"
	"github.com/heyged/gedprep/internal/quiz"
	"github.com/heyged/gedprep/internal/service"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// leaking internal error types to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return http.StatusNotFound

	case errors.Is(err, quiz.ErrInvalidState),
		errors.Is(err, quiz.ErrSessionOver),
		errors.Is(err, quiz.ErrAlreadyStarted),
		errors.Is(err, deck.ErrInvalidState):
		return http.StatusConflict

	case errors.Is(err, quiz.ErrNoSelection),
		errors.Is(err, quiz.ErrUnknownOption),
		errors.Is(err, domain.ErrInvalidSubject),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-facing message for err.
func GetSafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return "An unexpected error occurred"
	case errors.Is(err, service.ErrSessionNotFound):
		return "Session not found"
	case errors.Is(err, quiz.ErrSessionOver):
		return "This test is already over"
	case errors.Is(err, quiz.ErrInvalidState),
		errors.Is(err, deck.ErrInvalidState):
		return "That action is not available right now"
	case errors.Is(err, quiz.ErrNoSelection):
		return "Select an answer first"
	case errors.Is(err, quiz.ErrUnknownOption):
		return "That option is not one of the answers"
	case errors.Is(err, domain.ErrInvalidSubject):
		return "Unknown subject"
	case errors.Is(err, domain.ErrValidation):
		return "Invalid request"
	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the error response for err. A non-empty message
// overrides the safe default message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := MapErrorToStatusCode(err)
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// HandleValidationError writes a 400 response describing the first failed
// field of a validator error.
func HandleValidationError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
}

// SanitizeValidationError turns a validator error into a short message such
// as "Invalid subject: invalid value".
func SanitizeValidationError(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return fmt.Sprintf("Invalid %s: %s", strings.ToLower(fe.Field()), validationTagMessage(fe.Tag()))
	}
	return "Validation error"
}

func validationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "oneof":
		return "invalid value"
	case "max":
		return "too long"
	default:
		return "validation failed"
	}
}
