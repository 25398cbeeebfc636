package supply

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/heyged/gedprep/internal/config"
	"github.com/heyged/gedprep/internal/contentbank"
	"github.com/heyged/gedprep/internal/dedup"
	"github.com/heyged/gedprep/internal/domain"
	"github.com/heyged/gedprep/internal/generation"
	"github.com/heyged/gedprep/internal/redact"
	"github.com/sethvargo/go-retry"
)

// DefaultMaxAttempts is the number of generator calls made for one question.
const DefaultMaxAttempts = 5

// ErrDuplicateQuestion marks a generated question whose ID was already served.
var ErrDuplicateQuestion = errors.New("question already served in this session")

// QuestionSupplier produces one fresh question at a time.
type QuestionSupplier struct {
	generator       generation.QuestionGenerator
	picker          *dedup.Picker
	maxAttempts     int
	retryDelay      time.Duration
	useFallbackBank bool
	logger          *slog.Logger
}

// NewQuestionSupplier creates a QuestionSupplier. A non-positive
// cfg.MaxAttempts falls back to DefaultMaxAttempts.
func NewQuestionSupplier(
	generator generation.QuestionGenerator,
	picker *dedup.Picker,
	cfg config.QuizConfig,
	logger *slog.Logger,
) *QuestionSupplier {
	attempts := cfg.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}

	return &QuestionSupplier{
		generator:       generator,
		picker:          picker,
		maxAttempts:     attempts,
		retryDelay:      cfg.RetryDelay,
		useFallbackBank: cfg.UseFallbackBank,
		logger:          logger.With("component", "question_supplier"),
	}
}

// backoff allows maxAttempts calls in total with a constant delay between them.
func (s *QuestionSupplier) backoff() retry.Backoff {
	delay := s.retryDelay
	constant := retry.BackoffFunc(func() (time.Duration, bool) {
		return delay, false
	})
	return retry.WithMaxRetries(uint64(s.maxAttempts-1), constant)
}

// NextQuestion returns a question whose ID is not in usedIDs and records the
// ID before returning. When every attempt fails the placeholder question is
// returned instead; the result is always usable.
func (s *QuestionSupplier) NextQuestion(
	ctx context.Context,
	subject domain.Subject,
	nonCalculator bool,
	usedIDs *dedup.UsedSet,
) domain.Question {
	attempt := 0

	q, err := retry.DoValue(ctx, s.backoff(), func(ctx context.Context) (*domain.Question, error) {
		attempt++

		q, err := s.generator.GenerateQuestion(ctx, subject, nonCalculator)
		if err != nil {
			s.logger.WarnContext(ctx, "Question generation attempt failed",
				"subject", subject.Slug(),
				"attempt", attempt,
				"max_attempts", s.maxAttempts,
				"error", redact.Error(err))
			return nil, retry.RetryableError(err)
		}

		if usedIDs.Has(q.ID) {
			s.logger.DebugContext(ctx, "Generated question was a duplicate",
				"subject", subject.Slug(),
				"attempt", attempt,
				"question_id", q.ID)
			return nil, retry.RetryableError(ErrDuplicateQuestion)
		}

		return q, nil
	})
	if err == nil {
		usedIDs.Add(q.ID)
		return *q
	}

	s.logger.WarnContext(ctx, "Question generation exhausted",
		"subject", subject.Slug(),
		"attempts", attempt,
		"error", redact.Error(err))

	if s.useFallbackBank {
		if bank, ok := dedup.PickUnused(s.picker, usedIDs, contentbank.Questions(subject), questionID); ok {
			bank.NonCalculator = subject == domain.SubjectMath && nonCalculator
			s.logger.InfoContext(ctx, "Serving fallback bank question",
				"subject", subject.Slug(),
				"question_id", bank.ID)
			return bank
		}
	}

	placeholder := contentbank.Placeholder(subject, nonCalculator)
	usedIDs.Add(placeholder.ID)
	s.logger.InfoContext(ctx, "Serving placeholder question", "subject", subject.Slug())
	return placeholder
}

func questionID(q domain.Question) string {
	return q.ID
}
