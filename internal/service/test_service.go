package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heyged/gedprep/internal/config"
	"github.com/heyged/gedprep/internal/domain"
	"github.com/heyged/gedprep/internal/events"
	"github.com/heyged/gedprep/internal/quiz"
	"github.com/heyged/gedprep/internal/redact"
)

// TestHandle identifies a running practice test.
type TestHandle struct {
	ID        string
	Session   *quiz.Session
	CreatedAt time.Time
}

// TestService starts practice tests and keeps them until they are aborted
// or reaped. Session timers and question loads run on the service lifetime.
type TestService struct {
	supplier quiz.Supplier
	emitter  events.Emitter
	ttl      time.Duration
	interval time.Duration
	tick     time.Duration
	logger   *slog.Logger
	now      func() time.Time

	base     context.Context
	shutdown context.CancelFunc
	sessions *registry[*quiz.Session]
}

// NewTestService creates a TestService. Completed scores are published on
// emitter as score.recorded events.
func NewTestService(
	supplier quiz.Supplier,
	emitter events.Emitter,
	cfg config.SessionsConfig,
	logger *slog.Logger,
) *TestService {
	base, shutdown := context.WithCancel(context.Background())
	return &TestService{
		supplier: supplier,
		emitter:  emitter,
		ttl:      cfg.TTL,
		interval: cfg.ReapInterval,
		logger:   logger.With("component", "test_service"),
		now:      time.Now,
		base:     base,
		shutdown: shutdown,
		sessions: newRegistry[*quiz.Session](),
	}
}

// Start creates a session for subject, begins loading its first question
// and starts its timer.
func (s *TestService) Start(ctx context.Context, subject domain.Subject) (*TestHandle, error) {
	cfg, err := domain.ConfigFor(subject)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	sessionLogger := s.logger.With("session_id", id)

	session, err := quiz.New(cfg, s.supplier, quiz.Options{
		OnComplete:   s.publishScore(id),
		Logger:       sessionLogger,
		Now:          s.now,
		TickInterval: s.tick,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create test session: %w", err)
	}

	sessionCtx, cancel := context.WithCancel(s.base)
	if err := session.Start(sessionCtx); err != nil {
		cancel()
		return nil, fmt.Errorf("failed to start test session: %w", err)
	}

	go func() {
		_ = session.Run(sessionCtx)
	}()

	handle := &TestHandle{ID: id, Session: session, CreatedAt: s.now()}
	s.sessions.put(id, &entry[*quiz.Session]{
		session:   session,
		createdAt: handle.CreatedAt,
		release: func() {
			session.Abort()
			cancel()
		},
	})

	sessionLogger.InfoContext(ctx, "Practice test started", "subject", subject.Slug())
	return handle, nil
}

// Get returns the session with the given ID.
func (s *TestService) Get(id string) (*TestHandle, error) {
	e, ok := s.sessions.get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &TestHandle{ID: id, Session: e.session, CreatedAt: e.createdAt}, nil
}

// Abort ends the session without a score and forgets it.
func (s *TestService) Abort(id string) error {
	if !s.sessions.remove(id) {
		return ErrSessionNotFound
	}
	s.logger.Info("Practice test exited", "session_id", id)
	return nil
}

// Len returns the number of tracked sessions.
func (s *TestService) Len() int {
	return s.sessions.len()
}

// Reap forgets every session idle for longer than the configured TTL,
// aborting those still running. It returns the number removed.
//
// The clock of a test keeps running without user input, so a session counts
// as active until its time limit has elapsed.
func (s *TestService) Reap(now time.Time) int {
	removed := s.sessions.reap(now.Add(-s.ttl), testIdleSince)
	if removed > 0 {
		s.logger.Info("Reaped idle test sessions", "count", removed)
	}
	return removed
}

func testIdleSince(e *entry[*quiz.Session]) time.Time {
	last := e.session.LastActivity()
	limit := time.Duration(e.session.Config().TimeLimitSeconds()) * time.Second
	if end := e.createdAt.Add(limit); end.After(last) {
		return end
	}
	return last
}

// Run reaps idle sessions on the configured interval until ctx is done, then
// stops every remaining session.
func (s *TestService) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.Shutdown()
			return nil
		case <-ticker.C:
			s.Reap(s.now())
		}
	}
}

// Shutdown aborts every session and stops their timers.
func (s *TestService) Shutdown() {
	s.sessions.removeAll()
	s.shutdown()
}

func (s *TestService) publishScore(sessionID string) func(domain.Score) {
	return func(score domain.Score) {
		if err := events.EmitScore(s.base, s.emitter, score); err != nil {
			s.logger.Error("Failed to publish score",
				"session_id", sessionID,
				"subject", score.Subject.Slug(),
				"error", redact.Error(err))
		}
	}
}
