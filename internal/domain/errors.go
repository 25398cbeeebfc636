// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidSubject is returned when a subject name or slug is not recognized.
	ErrInvalidSubject = errors.New("invalid subject")

	// ErrEmptyContent is returned when required content is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrTooFewOptions is returned when a question has fewer than two options.
	ErrTooFewOptions = errors.New("question needs at least two options")

	// ErrAnswerNotAnOption is returned when a question's correct answer is not
	// one of its options.
	ErrAnswerNotAnOption = errors.New("correct answer must be one of the options")
)
