package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heyged/gedprep/internal/config"
	"github.com/heyged/gedprep/internal/domain"
	"github.com/heyged/gedprep/internal/generation"
	"github.com/heyged/gedprep/internal/redact"
)

// Generator implements generation.Generator on top of a TextClient.
type Generator struct {
	client  TextClient
	prompts *promptSet
	logger  *slog.Logger
}

// Generator must satisfy the generation port.
var _ generation.Generator = (*Generator)(nil)

// NewGenerator creates a generation.Generator from the LLM configuration.
// In offline mode no client is created and every call fails with
// generation.ErrTransportFailure.
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (generation.Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.Offline {
		logger.InfoContext(ctx, "Gemini generator disabled, serving fallback content only")
		return generation.Offline{}, nil
	}

	logger.InfoContext(ctx, "Initializing Gemini generator", "model", cfg.ModelName)

	client, err := NewGenAIClient(ctx, logger, cfg)
	if err != nil {
		return nil, err
	}

	return NewWithClient(logger, client)
}

// NewWithClient creates a Generator that sends its prompts through client.
func NewWithClient(logger *slog.Logger, client TextClient) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if client == nil {
		return nil, fmt.Errorf("%w: text client cannot be nil", generation.ErrInvalidConfig)
	}

	prompts, err := loadPrompts()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrInvalidConfig, err)
	}

	return &Generator{
		client:  client,
		prompts: prompts,
		logger:  logger.With("component", "gemini_generator"),
	}, nil
}

// GenerateQuestion implements generation.QuestionGenerator.
func (g *Generator) GenerateQuestion(
	ctx context.Context,
	subject domain.Subject,
	nonCalculator bool,
) (*domain.Question, error) {
	if !subject.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidSubject, subject)
	}

	prompt, err := g.prompts.questionPrompt(subject, nonCalculator)
	if err != nil {
		return nil, err
	}

	text, err := g.client.GenerateText(ctx, prompt)
	if err != nil {
		g.logFailure(ctx, "question", subject, err)
		return nil, err
	}

	q, err := parseQuestion(text, subject, nonCalculator)
	if err != nil {
		g.logFailure(ctx, "question", subject, err)
		return nil, err
	}

	g.logger.DebugContext(ctx, "Generated question",
		"subject", subject.Slug(),
		"question_id", q.ID,
		"option_count", len(q.Options))

	return q, nil
}

// GenerateFlashcards implements generation.FlashcardGenerator.
func (g *Generator) GenerateFlashcards(
	ctx context.Context,
	subject domain.Subject,
	count int,
) ([]domain.Flashcard, error) {
	if !subject.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidSubject, subject)
	}

	if count <= 0 {
		return nil, fmt.Errorf("%w: flashcard count must be positive", domain.ErrValidation)
	}

	prompt, err := g.prompts.flashcardsPrompt(subject, count)
	if err != nil {
		return nil, err
	}

	text, err := g.client.GenerateText(ctx, prompt)
	if err != nil {
		g.logFailure(ctx, "flashcards", subject, err)
		return nil, err
	}

	cards, err := parseFlashcards(text)
	if err != nil {
		g.logFailure(ctx, "flashcards", subject, err)
		return nil, err
	}

	g.logger.DebugContext(ctx, "Generated flashcards",
		"subject", subject.Slug(),
		"requested", count,
		"received", len(cards))

	return cards, nil
}

func (g *Generator) logFailure(ctx context.Context, kind string, subject domain.Subject, err error) {
	attrs := []any{
		"kind", kind,
		"subject", subject.Slug(),
		"error", redact.Error(err),
	}

	var transportErr *generation.TransportError
	if errors.As(err, &transportErr) {
		attrs = append(attrs, "status_code", transportErr.StatusCode)
	}

	g.logger.WarnContext(ctx, "Content generation failed", attrs...)
}
