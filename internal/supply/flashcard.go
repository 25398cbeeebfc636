package supply

import (
	"context"
	"log/slog"

	"github.com/heyged/gedprep/internal/contentbank"
	"github.com/heyged/gedprep/internal/dedup"
	"github.com/heyged/gedprep/internal/domain"
	"github.com/heyged/gedprep/internal/generation"
	"github.com/heyged/gedprep/internal/redact"
)

// FlashcardSupplier produces flashcards for deck sessions.
type FlashcardSupplier struct {
	generator generation.FlashcardGenerator
	picker    *dedup.Picker
	logger    *slog.Logger
}

// NewFlashcardSupplier creates a FlashcardSupplier.
func NewFlashcardSupplier(
	generator generation.FlashcardGenerator,
	picker *dedup.Picker,
	logger *slog.Logger,
) *FlashcardSupplier {
	return &FlashcardSupplier{
		generator: generator,
		picker:    picker,
		logger:    logger.With("component", "flashcard_supplier"),
	}
}

// pool asks the generator for count cards and falls back to the bank on any
// failure.
func (s *FlashcardSupplier) pool(ctx context.Context, subject domain.Subject, count int) []domain.Flashcard {
	cards, err := s.generator.GenerateFlashcards(ctx, subject, count)
	if err == nil && len(cards) > 0 {
		s.logger.DebugContext(ctx, "Generated flashcards",
			"subject", subject.Slug(),
			"count", len(cards))
		return cards
	}

	s.logger.WarnContext(ctx, "Flashcard generation failed, using fallback bank",
		"subject", subject.Slug(),
		"error", redact.Error(err))
	return contentbank.Flashcards(subject)
}

// Batch returns count flashcards drawn through the picker, keyed by question
// text. Repeats only happen once the pool is exhausted.
func (s *FlashcardSupplier) Batch(
	ctx context.Context,
	subject domain.Subject,
	count int,
	used *dedup.UsedSet,
) []domain.Flashcard {
	if count <= 0 {
		return nil
	}
	return dedup.PickN(s.picker, used, s.pool(ctx, subject, count), domain.Flashcard.Key, count)
}

// Single returns one flashcard.
func (s *FlashcardSupplier) Single(ctx context.Context, subject domain.Subject, used *dedup.UsedSet) domain.Flashcard {
	card, _ := dedup.Pick(s.picker, used, s.pool(ctx, subject, 1), domain.Flashcard.Key)
	return card
}
