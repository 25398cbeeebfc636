// Package api handles incoming HTTP requests, request validation and
// response formatting. It adapts the practice-test, flashcard and score
// services to JSON over HTTP.
package api
