package events

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/heyged/gedprep/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockHandler records the events it receives.
type MockHandler struct {
	HandledCount int
	LastEvent    *Event
	HandlerError error
}

func (h *MockHandler) HandleEvent(_ context.Context, event *Event) error {
	h.HandledCount++
	h.LastEvent = event
	return h.HandlerError
}

func TestNewScoreRecordedEvent(t *testing.T) {
	score := domain.Score{
		Subject:          domain.SubjectScience,
		Score:            180,
		Status:           domain.StatusPass,
		QuestionsCorrect: 32,
		TotalQuestions:   40,
		TimeSpent:        3600,
	}

	event, err := NewScoreRecordedEvent(score)
	require.NoError(t, err)

	assert.Equal(t, TypeScoreRecorded, event.Type)
	assert.NotEmpty(t, event.ID)
	assert.False(t, event.CreatedAt.IsZero())

	var decoded domain.Score
	require.NoError(t, event.UnmarshalPayload(&decoded))
	assert.Equal(t, score, decoded)
}

func TestNewEvent_UnencodablePayload(t *testing.T) {
	_, err := NewEvent("broken", make(chan int))
	assert.Error(t, err)
}

func TestInMemoryEmitter(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("emit event with no handlers", func(t *testing.T) {
		emitter := NewInMemoryEmitter(logger)
		event, err := NewEvent("test-event", map[string]string{"key": "value"})
		require.NoError(t, err)

		assert.NoError(t, emitter.EmitEvent(context.Background(), event))
	})

	t.Run("emit event with successful handlers", func(t *testing.T) {
		emitter := NewInMemoryEmitter(logger)
		handler1 := &MockHandler{}
		handler2 := &MockHandler{}
		emitter.RegisterHandler(handler1)
		emitter.RegisterHandler(handler2)

		event, err := NewEvent("test-event", map[string]string{"key": "value"})
		require.NoError(t, err)

		assert.NoError(t, emitter.EmitEvent(context.Background(), event))
		assert.Equal(t, 1, handler1.HandledCount)
		assert.Equal(t, 1, handler2.HandledCount)
		assert.Same(t, event, handler1.LastEvent)
		assert.Same(t, event, handler2.LastEvent)
	})

	t.Run("emit event with failing handler", func(t *testing.T) {
		emitter := NewInMemoryEmitter(logger)
		failingHandler := &MockHandler{HandlerError: errors.New("handler error")}
		successHandler := &MockHandler{}
		emitter.RegisterHandler(failingHandler)
		emitter.RegisterHandler(successHandler)

		event, err := NewEvent("test-event", nil)
		require.NoError(t, err)

		err = emitter.EmitEvent(context.Background(), event)
		assert.EqualError(t, err, "handler error")
		assert.Equal(t, 1, failingHandler.HandledCount)
		assert.Equal(t, 1, successHandler.HandledCount)
	})

	t.Run("handler func", func(t *testing.T) {
		emitter := NewInMemoryEmitter(logger)
		var seen string
		emitter.RegisterHandler(HandlerFunc(func(_ context.Context, e *Event) error {
			seen = e.Type
			return nil
		}))

		event, err := NewEvent(TypeScoreRecorded, nil)
		require.NoError(t, err)
		require.NoError(t, emitter.EmitEvent(context.Background(), event))
		assert.Equal(t, TypeScoreRecorded, seen)
	})
}
