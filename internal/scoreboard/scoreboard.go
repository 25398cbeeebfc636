// Package scoreboard keeps the latest practice-test score of each subject
// for the dashboard.
package scoreboard

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/heyged/gedprep/internal/domain"
	"github.com/heyged/gedprep/internal/events"
)

// Board holds at most one Score per subject; a retake replaces the
// previous score. It is safe for concurrent use.
type Board struct {
	mu     sync.RWMutex
	scores map[domain.Subject]domain.Score
	logger *slog.Logger
}

// NewBoard creates an empty Board.
func NewBoard(logger *slog.Logger) *Board {
	return &Board{
		scores: make(map[domain.Subject]domain.Score),
		logger: logger.With("component", "scoreboard"),
	}
}

// Record stores score for its subject.
func (b *Board) Record(score domain.Score) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.scores[score.Subject] = score
}

// Get returns the score recorded for subject.
func (b *Board) Get(subject domain.Subject) (domain.Score, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	score, ok := b.scores[subject]
	return score, ok
}

// All returns the recorded scores in subject order.
func (b *Board) All() []domain.Score {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]domain.Score, 0, len(b.scores))
	for _, subject := range domain.Subjects() {
		if score, ok := b.scores[subject]; ok {
			out = append(out, score)
		}
	}
	return out
}

// HandleEvent implements events.Handler for score.recorded events.
func (b *Board) HandleEvent(ctx context.Context, event *events.Event) error {
	return events.ScoreHandlerFunc(b.recordEvent).HandleEvent(ctx, event)
}

func (b *Board) recordEvent(ctx context.Context, eventID uuid.UUID, score domain.Score) error {
	b.Record(score)
	b.logger.InfoContext(ctx, "Score recorded",
		"event_id", eventID,
		"subject", score.Subject.Slug(),
		"score", score.Score,
		"status", score.Status)
	return nil
}
