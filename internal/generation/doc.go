// Package generation defines the boundary between the practice service and the
// external text-generation capability (Gemini) that writes quiz questions and
// flashcards. It holds the Generator ports and the failure taxonomy shared by
// every adapter: transport failures, empty generations and malformed content.
package generation
