package generation

import (
	"context"
	"fmt"

	"github.com/heyged/gedprep/internal/domain"
)

// Offline is a Generator that always fails with ErrTransportFailure. It is
// used when no language model is configured, so that callers fall back to
// their pre-authored content.
type Offline struct{}

var errOffline = fmt.Errorf("%w: generator is offline", ErrTransportFailure)

// GenerateQuestion implements QuestionGenerator.
func (Offline) GenerateQuestion(context.Context, domain.Subject, bool) (*domain.Question, error) {
	return nil, errOffline
}

// GenerateFlashcards implements FlashcardGenerator.
func (Offline) GenerateFlashcards(context.Context, domain.Subject, int) ([]domain.Flashcard, error) {
	return nil, errOffline
}
