// Package contentbank holds the fixed, pre-authored questions and flashcards
// served when the content generator is unavailable or returns unusable output.
//
// Every accessor returns a fresh copy; callers may modify the result freely.
package contentbank
