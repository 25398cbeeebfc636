package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/heyged/gedprep/internal/domain"
)

// ErrMalformedPayload is returned when an event payload does not decode into
// the type its event type promises.
var ErrMalformedPayload = errors.New("malformed event payload")

// ScoreHandlerFunc handles decoded score.recorded events. Events of any other
// type are ignored.
type ScoreHandlerFunc func(ctx context.Context, eventID uuid.UUID, score domain.Score) error

// HandleEvent implements Handler.
func (f ScoreHandlerFunc) HandleEvent(ctx context.Context, event *Event) error {
	if event.Type != TypeScoreRecorded {
		return nil
	}

	var score domain.Score
	if err := event.UnmarshalPayload(&score); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if !score.Subject.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidSubject, score.Subject)
	}

	return f(ctx, event.ID, score)
}

// EmitScore wraps score in a score.recorded event and publishes it.
func EmitScore(ctx context.Context, emitter Emitter, score domain.Score) error {
	event, err := NewScoreRecordedEvent(score)
	if err != nil {
		return fmt.Errorf("failed to create score event: %w", err)
	}
	return emitter.EmitEvent(ctx, event)
}
