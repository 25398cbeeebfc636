package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/heyged/gedprep/internal/config"
	"github.com/heyged/gedprep/internal/domain"
	"github.com/heyged/gedprep/internal/events"
	"github.com/heyged/gedprep/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testSessionsConfig = config.SessionsConfig{
	TTL:          time.Hour,
	ReapInterval: time.Minute,
}

func newTestService(t *testing.T, emitter events.Emitter) *TestService {
	t.Helper()
	svc := NewTestService(&stubQuestions{}, emitter, testSessionsConfig, discardLogger())
	t.Cleanup(svc.Shutdown)
	return svc
}

func waitLoaded(t *testing.T, session *quiz.Session) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, session.WaitLoaded(ctx))
}

func TestTestService_Start(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &MockEmitter{})

	handle, err := svc.Start(context.Background(), domain.SubjectScience)
	require.NoError(t, err)
	require.NotNil(t, handle)
	assert.NotEmpty(t, handle.ID)
	assert.Equal(t, 1, svc.Len())

	waitLoaded(t, handle.Session)
	p, ok := handle.Session.State().(quiz.Presenting)
	require.True(t, ok, "expected presenting state, got %T", handle.Session.State())
	assert.Equal(t, domain.SubjectScience, p.Question.Subject)

	got, err := svc.Get(handle.ID)
	require.NoError(t, err)
	assert.Same(t, handle.Session, got.Session)
}

func TestTestService_Start_InvalidSubject(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &MockEmitter{})

	_, err := svc.Start(context.Background(), domain.Subject("Astrology"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidSubject))
	assert.Equal(t, 0, svc.Len())
}

func TestTestService_Start_OutlivesRequestContext(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &MockEmitter{})

	ctx, cancel := context.WithCancel(context.Background())
	handle, err := svc.Start(ctx, domain.SubjectScience)
	require.NoError(t, err)
	cancel()

	waitLoaded(t, handle.Session)
	assert.Equal(t, "presenting", quiz.StateName(handle.Session.State()))
}

func TestTestService_Get_NotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &MockEmitter{})

	_, err := svc.Get("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestTestService_Abort(t *testing.T) {
	t.Parallel()

	emitter := &MockEmitter{}
	svc := newTestService(t, emitter)

	handle, err := svc.Start(context.Background(), domain.SubjectMath)
	require.NoError(t, err)

	require.NoError(t, svc.Abort(handle.ID))
	assert.IsType(t, quiz.Aborted{}, handle.Session.State())
	assert.Equal(t, 0, svc.Len())

	_, err = svc.Get(handle.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, svc.Abort(handle.ID), ErrSessionNotFound)

	// Aborted sessions never publish a score.
	emitter.AssertNotCalled(t, "EmitEvent", mock.Anything, mock.Anything)
}

func TestTestService_PublishesScoreOnCompletion(t *testing.T) {
	t.Parallel()

	published := make(chan *events.Event, 1)
	emitter := &MockEmitter{}
	emitter.On("EmitEvent", mock.Anything, mock.MatchedBy(func(e *events.Event) bool {
		return e.Type == events.TypeScoreRecorded
	})).Run(func(args mock.Arguments) {
		published <- args.Get(1).(*events.Event)
	}).Return(nil).Once()

	svc := newTestService(t, emitter)

	handle, err := svc.Start(context.Background(), domain.SubjectSocialStudies)
	require.NoError(t, err)

	cfg := handle.Session.Config()
	for i := 0; i < cfg.TotalQuestions; i++ {
		waitLoaded(t, handle.Session)
		require.NoError(t, handle.Session.Select("a"))
		require.NoError(t, handle.Session.Check())
		require.NoError(t, handle.Session.Next())
	}

	select {
	case event := <-published:
		var score domain.Score
		require.NoError(t, event.UnmarshalPayload(&score))
		assert.Equal(t, domain.SubjectSocialStudies, score.Subject)
		assert.Equal(t, cfg.TotalQuestions, score.QuestionsCorrect)
		assert.Equal(t, domain.StatusPass, score.Status)
	case <-time.After(2 * time.Second):
		t.Fatal("score was not published")
	}

	emitter.AssertExpectations(t)
}

func TestTestService_PublishFailureIsLogged(t *testing.T) {
	t.Parallel()

	published := make(chan struct{})
	emitter := &MockEmitter{}
	emitter.On("EmitEvent", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { close(published) }).
		Return(errors.New("handler failed")).Once()

	svc := newTestService(t, emitter)

	handle, err := svc.Start(context.Background(), domain.SubjectSocialStudies)
	require.NoError(t, err)

	for i := 0; i < handle.Session.Config().TotalQuestions; i++ {
		waitLoaded(t, handle.Session)
		require.NoError(t, handle.Session.Skip())
	}

	select {
	case <-published:
	case <-time.After(2 * time.Second):
		t.Fatal("score was not published")
	}
	assert.IsType(t, quiz.Completed{}, handle.Session.State())
}

func TestTestService_Reap(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &MockEmitter{})

	handle, err := svc.Start(context.Background(), domain.SubjectScience)
	require.NoError(t, err)

	assert.Equal(t, 0, svc.Reap(time.Now()))
	assert.Equal(t, 1, svc.Len())

	// Science runs 90 minutes; with a one hour TTL the session expires after 150.
	assert.Equal(t, 0, svc.Reap(time.Now().Add(2*time.Hour)))
	assert.Equal(t, 1, svc.Reap(time.Now().Add(3*time.Hour)))
	assert.Equal(t, 0, svc.Len())
	assert.IsType(t, quiz.Aborted{}, handle.Session.State())
}

func TestTestService_Reap_KeepsRunningTestUntilTimeLimit(t *testing.T) {
	t.Parallel()

	emitter := &MockEmitter{}
	svc := NewTestService(&stubQuestions{}, emitter, config.SessionsConfig{
		TTL:          2 * time.Hour,
		ReapInterval: time.Minute,
	}, discardLogger())
	t.Cleanup(svc.Shutdown)

	handle, err := svc.Start(context.Background(), domain.SubjectLanguageArts)
	require.NoError(t, err)
	waitLoaded(t, handle.Session)
	require.Equal(t, 150*60, handle.Session.Config().TimeLimitSeconds())

	// No user input for 121 minutes: the clock is still running.
	assert.Equal(t, 0, svc.Reap(handle.CreatedAt.Add(121*time.Minute)))
	assert.Equal(t, 1, svc.Len())
	assert.IsType(t, quiz.Presenting{}, handle.Session.State())

	// Past the time limit plus the TTL the session is gone.
	assert.Equal(t, 1, svc.Reap(handle.CreatedAt.Add(150*time.Minute+2*time.Hour+time.Second)))
	assert.Equal(t, 0, svc.Len())
	emitter.AssertNotCalled(t, "EmitEvent", mock.Anything, mock.Anything)
}

func TestTestService_Run_StopsSessionsOnCancel(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &MockEmitter{})

	handle, err := svc.Start(context.Background(), domain.SubjectScience)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	assert.Equal(t, 0, svc.Len())
	select {
	case <-handle.Session.Done():
	default:
		t.Fatal("session should be finished after shutdown")
	}
}
