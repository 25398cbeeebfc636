package mocks

import (
	"context"
	"sync"

	"github.com/heyged/gedprep/internal/domain"
	"github.com/heyged/gedprep/internal/generation"
)

// MockGenerator implements generation.Generator for testing.
type MockGenerator struct {
	// GenerateQuestionFn overrides GenerateQuestion when set.
	GenerateQuestionFn func(ctx context.Context, subject domain.Subject, nonCalculator bool) (*domain.Question, error)

	// GenerateFlashcardsFn overrides GenerateFlashcards when set.
	GenerateFlashcardsFn func(ctx context.Context, subject domain.Subject, count int) ([]domain.Flashcard, error)

	// Default response values
	Question   *domain.Question
	Flashcards []domain.Flashcard
	Err        error

	mu             sync.Mutex
	questionCalls  int
	flashcardCalls int
}

var _ generation.Generator = (*MockGenerator)(nil)

// GenerateQuestion implements generation.QuestionGenerator.
func (m *MockGenerator) GenerateQuestion(
	ctx context.Context,
	subject domain.Subject,
	nonCalculator bool,
) (*domain.Question, error) {
	m.mu.Lock()
	m.questionCalls++
	m.mu.Unlock()

	if m.GenerateQuestionFn != nil {
		return m.GenerateQuestionFn(ctx, subject, nonCalculator)
	}
	return m.Question, m.Err
}

// GenerateFlashcards implements generation.FlashcardGenerator.
func (m *MockGenerator) GenerateFlashcards(
	ctx context.Context,
	subject domain.Subject,
	count int,
) ([]domain.Flashcard, error) {
	m.mu.Lock()
	m.flashcardCalls++
	m.mu.Unlock()

	if m.GenerateFlashcardsFn != nil {
		return m.GenerateFlashcardsFn(ctx, subject, count)
	}
	return m.Flashcards, m.Err
}

// QuestionCalls returns how many times GenerateQuestion was called.
func (m *MockGenerator) QuestionCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.questionCalls
}

// FlashcardCalls returns how many times GenerateFlashcards was called.
func (m *MockGenerator) FlashcardCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.flashcardCalls
}

// NewMockGeneratorWithError creates a MockGenerator whose every call fails with err.
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{Err: err}
}

// MockGeneratorWithTransportFailure simulates an unreachable model endpoint.
func MockGeneratorWithTransportFailure() *MockGenerator {
	return NewMockGeneratorWithError(generation.ErrTransportFailure)
}

// MockGeneratorWithContentBlocked simulates a response withheld by safety filters.
func MockGeneratorWithContentBlocked() *MockGenerator {
	return NewMockGeneratorWithError(generation.ErrContentBlocked)
}
