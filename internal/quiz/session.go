package quiz

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/heyged/gedprep/internal/dedup"
	"github.com/heyged/gedprep/internal/domain"
)

// NonCalculatorQuestions is the number of Mathematical Reasoning questions
// answered in the non-calculator section before the calculator is allowed.
const NonCalculatorQuestions = 5

// Supplier produces the next question for a session. It must always return
// a usable question.
type Supplier interface {
	NextQuestion(ctx context.Context, subject domain.Subject, nonCalculator bool, usedIDs *dedup.UsedSet) domain.Question
}

// Options configures optional Session behavior.
type Options struct {
	// OnComplete receives the final score. It is called once, outside the
	// session lock, and never for aborted sessions.
	OnComplete func(domain.Score)

	// UsedIDs is the set of question IDs already served. A fresh set is used
	// when nil.
	UsedIDs *dedup.UsedSet

	Logger *slog.Logger

	// Now defaults to time.Now.
	Now func() time.Time

	// TickInterval is the period of Run's timer; defaults to one second.
	TickInterval time.Duration
}

// Session is one timed attempt at a subject's practice test.
// It is safe for concurrent use.
type Session struct {
	cfg        domain.TestConfig
	supplier   Supplier
	used       *dedup.UsedSet
	onComplete func(domain.Score)
	logger     *slog.Logger
	now        func() time.Time
	tick       time.Duration

	mu                sync.Mutex
	state             State
	started           bool
	baseCtx           context.Context
	timeSpent         int
	questionsAnswered int
	correctAnswers    int
	answered          []domain.AnsweredQuestion
	loadEpoch         uint64
	cancelLoad        context.CancelFunc
	loaded            chan struct{}
	done              chan struct{}
	pending           *domain.Score
	lastActivity      time.Time
}

// New creates a Session for cfg. The session does nothing until Start.
func New(cfg domain.TestConfig, supplier Supplier, opts Options) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if supplier == nil {
		return nil, fmt.Errorf("%w: supplier cannot be nil", domain.ErrValidation)
	}

	s := &Session{
		cfg:        cfg,
		supplier:   supplier,
		used:       opts.UsedIDs,
		onComplete: opts.OnComplete,
		logger:     opts.Logger,
		now:        opts.Now,
		tick:       opts.TickInterval,
		state:      Loading{},
		done:       make(chan struct{}),
	}

	if s.used == nil {
		s.used = dedup.NewUsedSet()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.logger = s.logger.With("component", "quiz_session", "subject", cfg.Subject.Slug())
	if s.now == nil {
		s.now = time.Now
	}
	if s.tick <= 0 {
		s.tick = time.Second
	}
	s.lastActivity = s.now()

	return s, nil
}

// Config returns the test configuration of the session.
func (s *Session) Config() domain.TestConfig {
	return s.cfg
}

// Start begins loading the first question. Loads run under ctx, which must
// outlive individual requests.
func (s *Session) Start(ctx context.Context) error {
	return s.apply(func() error {
		if s.started {
			return ErrAlreadyStarted
		}
		s.started = true
		s.baseCtx = ctx
		s.logger.InfoContext(ctx, "Test session started",
			"total_questions", s.cfg.TotalQuestions,
			"time_limit_minutes", s.cfg.TimeLimitMinutes)
		s.beginLoadLocked()
		return nil
	})
}

// Select records option as the current answer, replacing any prior
// selection. It is a no-op while feedback is shown.
func (s *Session) Select(option string) error {
	return s.apply(func() error {
		p, err := s.presentingLocked()
		if err != nil {
			return err
		}
		if p.FeedbackShown {
			return nil
		}
		if !p.Question.HasOption(option) {
			return ErrUnknownOption
		}
		p.Selected = option
		s.state = p
		return nil
	})
}

// Check grades the selected answer and shows feedback.
func (s *Session) Check() error {
	return s.apply(func() error {
		p, err := s.presentingLocked()
		if err != nil {
			return err
		}
		if p.FeedbackShown {
			return ErrInvalidState
		}
		if p.Selected == "" {
			return ErrNoSelection
		}

		record := domain.NewAnswered(p.Question, p.Selected)
		s.recordLocked(record)

		p.FeedbackShown = true
		p.LastCorrect = record.IsCorrect
		s.state = p
		return nil
	})
}

// Skip records the current question as unanswered and moves on without
// feedback. Skipping the final question completes the session.
func (s *Session) Skip() error {
	return s.apply(func() error {
		p, err := s.presentingLocked()
		if err != nil {
			return err
		}
		if p.FeedbackShown {
			return ErrInvalidState
		}

		s.recordLocked(domain.NewSkipped(p.Question))
		s.advanceLocked()
		return nil
	})
}

// Next leaves the feedback view, completing the session once every question
// has been answered.
func (s *Session) Next() error {
	return s.apply(func() error {
		p, err := s.presentingLocked()
		if err != nil {
			return err
		}
		if !p.FeedbackShown {
			return ErrInvalidState
		}

		s.advanceLocked()
		return nil
	})
}

// Tick adds one second to the time spent and completes the session when the
// time limit is reached, whatever its current state.
func (s *Session) Tick() {
	_ = s.applyQuiet(func() error {
		if !s.started || s.finishedLocked() {
			return nil
		}
		s.timeSpent++
		if s.timeSpent >= s.cfg.TimeLimitSeconds() {
			s.logger.Info("Test time limit reached", "time_spent", s.timeSpent)
			s.completeLocked()
		}
		return nil
	})
}

// Run ticks the session clock until the session ends or ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.done:
			return nil
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Abort ends the session without a score. Aborting a finished session is a
// no-op.
func (s *Session) Abort() {
	_ = s.applyQuiet(func() error {
		if s.finishedLocked() {
			return nil
		}
		s.stopLoadLocked()
		s.state = Aborted{}
		close(s.done)
		s.logger.Info("Test session aborted", "questions_answered", s.questionsAnswered)
		return nil
	})
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Done is closed when the session completes or is aborted.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// LastActivity returns the time of the last user action.
func (s *Session) LastActivity() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}

// WaitLoaded blocks until the current question load has resolved or ctx is done.
func (s *Session) WaitLoaded(ctx context.Context) error {
	s.mu.Lock()
	loaded := s.loaded
	s.mu.Unlock()

	if loaded == nil {
		return nil
	}

	select {
	case <-loaded:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// apply runs op under the lock as a user action and delivers a pending score
// after releasing it.
func (s *Session) apply(op func() error) error {
	return s.run(op, true)
}

// applyQuiet is apply without refreshing the activity time.
func (s *Session) applyQuiet(op func() error) error {
	return s.run(op, false)
}

func (s *Session) run(op func() error, activity bool) error {
	s.mu.Lock()
	err := op()
	if activity {
		s.lastActivity = s.now()
	}
	score := s.pending
	s.pending = nil
	s.mu.Unlock()

	if score != nil && s.onComplete != nil {
		s.onComplete(*score)
	}
	return err
}

func (s *Session) finishedLocked() bool {
	switch s.state.(type) {
	case Completed, Aborted:
		return true
	default:
		return false
	}
}

func (s *Session) presentingLocked() (Presenting, error) {
	switch st := s.state.(type) {
	case Presenting:
		return st, nil
	case Completed, Aborted:
		return Presenting{}, ErrSessionOver
	default:
		return Presenting{}, ErrInvalidState
	}
}

// nonCalculatorLocked reports whether the next question comes from the
// non-calculator section. The answered count only grows, so the switch to
// the calculator section never reverts.
func (s *Session) nonCalculatorLocked() bool {
	return s.cfg.Subject == domain.SubjectMath && s.questionsAnswered < NonCalculatorQuestions
}

func (s *Session) recordLocked(record domain.AnsweredQuestion) {
	s.answered = append(s.answered, record)
	s.questionsAnswered++
	if record.IsCorrect {
		s.correctAnswers++
	}
}

// advanceLocked completes the session once every question is answered and
// loads the next question otherwise.
func (s *Session) advanceLocked() {
	if s.questionsAnswered >= s.cfg.TotalQuestions {
		s.completeLocked()
		return
	}
	s.beginLoadLocked()
}

func (s *Session) beginLoadLocked() {
	s.stopLoadLocked()

	s.loadEpoch++
	epoch := s.loadEpoch
	ctx, cancel := context.WithCancel(s.baseCtx)
	loaded := make(chan struct{})
	nonCalculator := s.nonCalculatorLocked()

	s.cancelLoad = cancel
	s.loaded = loaded
	s.state = Loading{StartedAt: s.now()}

	go func() {
		defer close(loaded)
		defer cancel()

		q := s.supplier.NextQuestion(ctx, s.cfg.Subject, nonCalculator, s.used)

		s.mu.Lock()
		defer s.mu.Unlock()

		if epoch != s.loadEpoch || s.finishedLocked() {
			s.logger.Debug("Discarding stale question load", "question_id", q.ID)
			return
		}

		s.cancelLoad = nil
		s.state = Presenting{Question: q}
	}()
}

func (s *Session) stopLoadLocked() {
	if s.cancelLoad != nil {
		s.cancelLoad()
		s.cancelLoad = nil
	}
}

func (s *Session) completeLocked() {
	s.stopLoadLocked()

	score := domain.ComputeScore(s.cfg, s.correctAnswers, s.questionsAnswered, s.timeSpent)
	s.state = Completed{
		Score:    score,
		Answered: slices.Clone(s.answered),
	}
	s.pending = &score
	close(s.done)

	s.logger.Info("Test session completed",
		"score", score.Score,
		"status", score.Status,
		"questions_correct", score.QuestionsCorrect,
		"questions_answered", score.TotalQuestions,
		"time_spent", score.TimeSpent)
}
