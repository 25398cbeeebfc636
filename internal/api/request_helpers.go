package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/heyged/gedprep/internal/api/shared"
	"github.com/heyged/gedprep/internal/domain"
)

// getPathID extracts a session ID from the URL path and checks its format.
func getPathID(r *http.Request, paramName string) (string, error) {
	raw := chi.URLParam(r, paramName)
	if raw == "" {
		return "", fmt.Errorf("%w: %s is required", domain.ErrValidation, paramName)
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %s has invalid format", domain.ErrValidation, paramName)
	}
	return id.String(), nil
}

// decodeAndValidate reads a JSON body into req and validates it, writing a
// 400 response and returning false on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := shared.DecodeJSON(w, r, req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return false
	}
	if err := shared.ValidateRequest(req); err != nil {
		HandleValidationError(w, r, err)
		return false
	}
	return true
}
