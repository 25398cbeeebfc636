package supply_test

import (
	"context"
	"testing"

	"github.com/heyged/gedprep/internal/contentbank"
	"github.com/heyged/gedprep/internal/dedup"
	"github.com/heyged/gedprep/internal/domain"
	"github.com/heyged/gedprep/internal/generation"
	"github.com/heyged/gedprep/internal/mocks"
	"github.com/heyged/gedprep/internal/supply"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cards(n int) []domain.Flashcard {
	out := make([]domain.Flashcard, n)
	for i := range out {
		out[i] = domain.Flashcard{Question: string(rune('A' + i)), Answer: "answer"}
	}
	return out
}

func TestBatch_UsesGeneratedCards(t *testing.T) {
	gen := &mocks.MockGenerator{
		GenerateFlashcardsFn: func(_ context.Context, _ domain.Subject, count int) ([]domain.Flashcard, error) {
			return cards(count), nil
		},
	}
	supplier := supply.NewFlashcardSupplier(gen, dedup.NewPicker(2), discardLogger())
	used := dedup.NewUsedSet()

	batch := supplier.Batch(context.Background(), domain.SubjectScience, 5, used)

	require.Len(t, batch, 5)
	assert.ElementsMatch(t, cards(5), batch, "five distinct cards from a pool of five")
	assert.Equal(t, 5, used.Len())
}

func TestBatch_FallsBackToBank(t *testing.T) {
	gen := &mocks.MockGenerator{
		GenerateFlashcardsFn: func(context.Context, domain.Subject, int) ([]domain.Flashcard, error) {
			return nil, generation.ErrMalformedContent
		},
	}
	supplier := supply.NewFlashcardSupplier(gen, dedup.NewPicker(3), discardLogger())

	batch := supplier.Batch(context.Background(), domain.SubjectSocialStudies, 5, dedup.NewUsedSet())

	require.Len(t, batch, 5)
	bank := contentbank.Flashcards(domain.SubjectSocialStudies)
	assert.ElementsMatch(t, bank, batch[:3], "no repeats before the bank is exhausted")
	for _, card := range batch {
		assert.Contains(t, bank, card)
	}
}

func TestBatch_ZeroCount(t *testing.T) {
	supplier := supply.NewFlashcardSupplier(&mocks.MockGenerator{}, dedup.NewPicker(1), discardLogger())

	assert.Nil(t, supplier.Batch(context.Background(), domain.SubjectScience, 0, dedup.NewUsedSet()))
}

func TestSingle(t *testing.T) {
	gen := &mocks.MockGenerator{
		GenerateFlashcardsFn: func(_ context.Context, _ domain.Subject, count int) ([]domain.Flashcard, error) {
			assert.Equal(t, 1, count)
			return nil, generation.ErrEmptyGeneration
		},
	}
	supplier := supply.NewFlashcardSupplier(gen, dedup.NewPicker(4), discardLogger())

	card := supplier.Single(context.Background(), domain.SubjectMath, dedup.NewUsedSet())

	assert.Contains(t, contentbank.Flashcards(domain.SubjectMath), card)
}
