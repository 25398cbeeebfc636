package domain

import (
	"fmt"
	"strings"
)

// Flashcard is a question/answer pair. Flashcards carry no identifier; the
// question text is their identity for de-duplication.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Key returns the de-duplication key of the card.
func (f Flashcard) Key() string {
	return f.Question
}

// Validate checks that both sides of the card have content.
func (f Flashcard) Validate() error {
	if strings.TrimSpace(f.Question) == "" {
		return fmt.Errorf("%w: flashcard question", ErrEmptyContent)
	}
	if strings.TrimSpace(f.Answer) == "" {
		return fmt.Errorf("%w: flashcard answer", ErrEmptyContent)
	}
	return nil
}
