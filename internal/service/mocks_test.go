package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/heyged/gedprep/internal/dedup"
	"github.com/heyged/gedprep/internal/domain"
	"github.com/heyged/gedprep/internal/events"
	"github.com/stretchr/testify/mock"
)

// MockEmitter mocks the events.Emitter interface
type MockEmitter struct {
	mock.Mock
}

func (m *MockEmitter) EmitEvent(ctx context.Context, event *events.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// stubQuestions serves numbered questions that are always answered "a".
type stubQuestions struct {
	mu sync.Mutex
	n  int
}

func (s *stubQuestions) NextQuestion(
	_ context.Context,
	subject domain.Subject,
	nonCalculator bool,
	used *dedup.UsedSet,
) domain.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	id := fmt.Sprintf("stub-%d", s.n)
	used.Add(id)
	return domain.Question{
		ID:            id,
		Subject:       subject,
		NonCalculator: nonCalculator,
		Text:          "Question " + id,
		Options:       []string{"a", "b", "c", "d"},
		CorrectAnswer: "a",
		Explanation:   "a is correct",
	}
}

// stubCards serves numbered flashcards, skipping texts already used.
type stubCards struct {
	mu sync.Mutex
	n  int
}

func (s *stubCards) Batch(
	_ context.Context,
	_ domain.Subject,
	count int,
	used *dedup.UsedSet,
) []domain.Flashcard {
	s.mu.Lock()
	defer s.mu.Unlock()
	cards := make([]domain.Flashcard, 0, count)
	for len(cards) < count {
		s.n++
		card := domain.Flashcard{
			Question: fmt.Sprintf("Card %d?", s.n),
			Answer:   fmt.Sprintf("Answer %d", s.n),
		}
		if used.Has(card.Key()) {
			continue
		}
		used.Add(card.Key())
		cards = append(cards, card)
	}
	return cards
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
