package generation

import (
	"context"

	"github.com/heyged/gedprep/internal/domain"
)

// QuestionGenerator writes a single practice question for a subject.
// This interface serves as a boundary between the application core and
// external AI/LLM services, following the hexagonal architecture pattern.
type QuestionGenerator interface {
	// GenerateQuestion returns a freshly generated question, or an error
	// matching ErrTransportFailure, ErrEmptyGeneration or ErrMalformedContent.
	// nonCalculator requests an item from the non-calculator section and only
	// has an effect for Mathematical Reasoning.
	GenerateQuestion(ctx context.Context, subject domain.Subject, nonCalculator bool) (*domain.Question, error)
}

// FlashcardGenerator writes a batch of flashcards for a subject.
type FlashcardGenerator interface {
	// GenerateFlashcards returns a non-empty, ordered batch of flashcards or an
	// error from the same taxonomy as GenerateQuestion.
	GenerateFlashcards(ctx context.Context, subject domain.Subject, count int) ([]domain.Flashcard, error)
}

// Generator produces both kinds of practice content.
type Generator interface {
	QuestionGenerator
	FlashcardGenerator
}
