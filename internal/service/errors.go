package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// The API layer maps them to HTTP status codes.
var (
	// ErrSessionNotFound indicates that no session exists for the given ID,
	// either because it never existed or because it was reaped.
	// API layer should map this to HTTP 404 Not Found.
	ErrSessionNotFound = errors.New("session not found")
)
