package deck_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/heyged/gedprep/internal/deck"
	"github.com/heyged/gedprep/internal/dedup"
	"github.com/heyged/gedprep/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSupplier returns numbered cards and records every requested count.
type countingSupplier struct {
	mu     sync.Mutex
	next   int
	counts []int
	empty  bool
}

func (c *countingSupplier) Batch(_ context.Context, _ domain.Subject, count int, used *dedup.UsedSet) []domain.Flashcard {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts = append(c.counts, count)
	if c.empty {
		return nil
	}
	out := make([]domain.Flashcard, count)
	for i := range out {
		c.next++
		out[i] = domain.Flashcard{Question: fmt.Sprintf("Q%d", c.next), Answer: fmt.Sprintf("A%d", c.next)}
		used.Add(out[i].Key())
	}
	return out
}

func newDeck(t *testing.T, supplier deck.Supplier, size int) *deck.Session {
	t.Helper()
	s, err := deck.New(supplier, deck.Options{DeckSize: size, BatchSize: 5})
	require.NoError(t, err)
	return s
}

func TestNew_Defaults(t *testing.T) {
	s, err := deck.New(&countingSupplier{}, deck.Options{})
	require.NoError(t, err)
	assert.Equal(t, deck.DefaultDeckSize, s.View().DeckSize)
	assert.IsType(t, deck.Selecting{}, s.State())

	_, err = deck.New(nil, deck.Options{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBegin_LoadsFirstBatch(t *testing.T) {
	supplier := &countingSupplier{}
	s := newDeck(t, supplier, 100)

	require.NoError(t, s.Begin(context.Background(), domain.SubjectScience))

	assert.Equal(t, deck.Viewing{Index: 0}, s.State())
	assert.Len(t, s.Cards(), 5)
	assert.Equal(t, []int{5}, supplier.counts)

	v := s.View()
	assert.Equal(t, 1, v.CardNumber)
	require.NotNil(t, v.Card)
	assert.Equal(t, "Q1", v.Card.Question)

	assert.ErrorIs(t, s.Begin(context.Background(), domain.SubjectMath), deck.ErrInvalidState)
}

func TestBegin_InvalidSubject(t *testing.T) {
	s := newDeck(t, &countingSupplier{}, 10)

	err := s.Begin(context.Background(), domain.Subject("Art"))

	assert.ErrorIs(t, err, domain.ErrInvalidSubject)
	assert.IsType(t, deck.Selecting{}, s.State())
}

func TestFlip_TogglesWithoutMoving(t *testing.T) {
	s := newDeck(t, &countingSupplier{}, 10)
	assert.ErrorIs(t, s.Flip(), deck.ErrInvalidState)
	require.NoError(t, s.Begin(context.Background(), domain.SubjectMath))

	require.NoError(t, s.Flip())
	assert.Equal(t, deck.Viewing{Index: 0, Flipped: true}, s.State())
	require.NoError(t, s.Flip())
	assert.Equal(t, deck.Viewing{Index: 0, Flipped: false}, s.State())
}

func TestNextAndPrevious(t *testing.T) {
	s := newDeck(t, &countingSupplier{}, 10)
	require.NoError(t, s.Begin(context.Background(), domain.SubjectMath))

	require.NoError(t, s.Previous())
	assert.Equal(t, deck.Viewing{Index: 0}, s.State(), "previous on the first card is a no-op")

	require.NoError(t, s.Flip())
	require.NoError(t, s.Next(context.Background()))
	assert.Equal(t, deck.Viewing{Index: 1}, s.State(), "next shows the front of the new card")

	require.NoError(t, s.Flip())
	require.NoError(t, s.Previous())
	assert.Equal(t, deck.Viewing{Index: 0}, s.State())
}

func TestNext_LoadsMoreThenCompletes(t *testing.T) {
	supplier := &countingSupplier{}
	s := newDeck(t, supplier, 7)
	ctx := context.Background()
	require.NoError(t, s.Begin(ctx, domain.SubjectLanguageArts))

	for i := 1; i < 7; i++ {
		require.NoError(t, s.Next(ctx))
		assert.Equal(t, deck.Viewing{Index: i}, s.State())
	}
	assert.Equal(t, []int{5, 2}, supplier.counts, "second batch is capped at the deck size")
	assert.Len(t, s.Cards(), 7)

	require.NoError(t, s.Next(ctx))
	assert.IsType(t, deck.Completed{}, s.State())
	assert.Equal(t, 100, s.View().Progress)
	assert.ErrorIs(t, s.Next(ctx), deck.ErrInvalidState)

	s.Reset()
	assert.IsType(t, deck.Selecting{}, s.State())
	assert.Empty(t, s.Cards())
	require.NoError(t, s.Begin(ctx, domain.SubjectScience))
}

func TestBegin_EmptySupplyCompletes(t *testing.T) {
	s := newDeck(t, &countingSupplier{empty: true}, 10)

	require.NoError(t, s.Begin(context.Background(), domain.SubjectScience))

	assert.IsType(t, deck.Completed{}, s.State())
}

func TestDeckSizeSmallerThanBatch(t *testing.T) {
	supplier := &countingSupplier{}
	s := newDeck(t, supplier, 3)
	ctx := context.Background()

	require.NoError(t, s.Begin(ctx, domain.SubjectScience))
	require.NoError(t, s.Next(ctx))
	require.NoError(t, s.Next(ctx))
	require.NoError(t, s.Next(ctx))

	assert.IsType(t, deck.Completed{}, s.State())
	assert.Equal(t, []int{3}, supplier.counts)
}
