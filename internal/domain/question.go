package domain

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Question is a single multiple-choice quiz item. It is never mutated after
// creation; answered records refer to it by value.
type Question struct {
	ID      string  `json:"id"`
	Subject Subject `json:"subject"`
	// NonCalculator marks items from the Mathematical Reasoning section where
	// a calculator is not allowed.
	NonCalculator bool     `json:"non_calculator,omitempty"`
	Text          string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

// NewQuestion creates a Question with a fresh identifier.
// Returns an error if validation fails.
func NewQuestion(
	subject Subject,
	nonCalculator bool,
	text string,
	options []string,
	correctAnswer string,
	explanation string,
) (*Question, error) {
	q := &Question{
		ID:            uuid.NewString(),
		Subject:       subject,
		NonCalculator: nonCalculator,
		Text:          strings.TrimSpace(text),
		Options:       slices.Clone(options),
		CorrectAnswer: correctAnswer,
		Explanation:   strings.TrimSpace(explanation),
	}

	if err := q.Validate(); err != nil {
		return nil, err
	}

	return q, nil
}

// Validate checks the question invariants: a known subject, non-empty text,
// at least two non-empty options and a correct answer that is one of them.
func (q *Question) Validate() error {
	if q.ID == "" {
		return fmt.Errorf("%w: question ID cannot be empty", ErrValidation)
	}

	if !q.Subject.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidSubject, q.Subject)
	}

	if q.Text == "" {
		return fmt.Errorf("%w: question text", ErrEmptyContent)
	}

	if len(q.Options) < 2 {
		return ErrTooFewOptions
	}

	for i, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return fmt.Errorf("%w: option %d", ErrEmptyContent, i)
		}
	}

	if !q.HasOption(q.CorrectAnswer) {
		return ErrAnswerNotAnOption
	}

	return nil
}

// HasOption reports whether option is one of the question's options.
func (q *Question) HasOption(option string) bool {
	return slices.Contains(q.Options, option)
}

// IsCorrect reports whether answer exactly matches the correct option.
func (q *Question) IsCorrect(answer string) bool {
	return answer != "" && answer == q.CorrectAnswer
}

// AnsweredQuestion records what the user did with one question. UserAnswer is
// nil when the question was skipped.
type AnsweredQuestion struct {
	Question   Question `json:"question"`
	UserAnswer *string  `json:"user_answer"`
	IsCorrect  bool     `json:"is_correct"`
}

// NewAnswered records a checked answer.
func NewAnswered(q Question, answer string) AnsweredQuestion {
	return AnsweredQuestion{
		Question:   q,
		UserAnswer: &answer,
		IsCorrect:  q.IsCorrect(answer),
	}
}

// NewSkipped records a skipped question. Skips are never correct.
func NewSkipped(q Question) AnsweredQuestion {
	return AnsweredQuestion{Question: q}
}

// Skipped reports whether the question was skipped.
func (a AnsweredQuestion) Skipped() bool {
	return a.UserAnswer == nil
}
