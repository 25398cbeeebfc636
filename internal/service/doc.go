// Package service contains the application use cases that sit between the
// HTTP API and the session state machines.
//
// Key components:
//
// 1. TestService:
//   - Starts timed practice tests and keeps them in an in-memory registry
//   - Runs each session's timer on the service lifetime, not the request
//   - Publishes completed scores as score.recorded events
//
// 2. DeckService:
//   - Starts flashcard decks and keeps them in an in-memory registry
//   - Optionally shares one process-wide used-card set across decks
//
// 3. Reaping:
//   - Both services forget sessions idle for longer than the configured TTL
//   - A running test stays active until its time limit has elapsed
//
// Errors returned here are sentinel values that the API layer maps to HTTP
// status codes.
package service
