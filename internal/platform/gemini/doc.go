// Package gemini provides an implementation of the generation.Generator
// interface that uses Google's Gemini API to write GED practice questions and
// flashcards.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the application's content pipeline to Google's external Gemini
// AI service without exposing the details of the external service to the
// rest of the application.
//
// Key components:
//
// 1. Generator:
//   - Implements the generation.Generator interface
//   - Renders the embedded prompt templates
//   - Parses and validates the returned JSON into domain values
//
// 2. TextClient:
//   - Sends a single prompt and returns the text of the first candidate
//   - GenAIClient is the production implementation on google.golang.org/genai,
//     throttled by a token-bucket rate limiter
//
// 3. Error Handling:
//   - Non-success statuses and network failures become *generation.TransportError
//   - Missing or safety-blocked candidates become generation.ErrEmptyGeneration
//   - Unparseable or incomplete payloads become generation.ErrMalformedContent
//
// The adapter performs no retries; bounded retry belongs to the supply
// pipeline that calls it.
package gemini
