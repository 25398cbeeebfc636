package api

import (
	"github.com/heyged/gedprep/internal/deck"
	"github.com/heyged/gedprep/internal/domain"
	"github.com/heyged/gedprep/internal/quiz"
)

// StartSessionRequest starts a practice test or a flashcard deck.
type StartSessionRequest struct {
	Subject string `json:"subject" validate:"required,oneof=math science language-arts social-studies"`
}

// SelectOptionRequest selects an answer option of the current question.
type SelectOptionRequest struct {
	Option string `json:"option" validate:"required,max=1000"`
}

// TestSessionResponse is a practice test and its current view.
type TestSessionResponse struct {
	ID string `json:"id"`
	quiz.View
}

// DeckSessionResponse is a flashcard deck and its current view.
type DeckSessionResponse struct {
	ID string `json:"id"`
	deck.View
}

// SubjectResponse describes one subject on the dashboard.
type SubjectResponse struct {
	Slug             string        `json:"slug"`
	Name             string        `json:"name"`
	TotalQuestions   int           `json:"total_questions"`
	TimeLimitMinutes int           `json:"time_limit_minutes"`
	PassingScore     int           `json:"passing_score"`
	WithCalculator   bool          `json:"with_calculator"`
	LastScore        *domain.Score `json:"last_score,omitempty"`
}

// ScoresResponse lists the latest score of every subject taken.
type ScoresResponse struct {
	Scores []domain.Score `json:"scores"`
}

func subjectToResponse(cfg domain.TestConfig) SubjectResponse {
	return SubjectResponse{
		Slug:             cfg.Subject.Slug(),
		Name:             string(cfg.Subject),
		TotalQuestions:   cfg.TotalQuestions,
		TimeLimitMinutes: cfg.TimeLimitMinutes,
		PassingScore:     cfg.PassingScore,
		WithCalculator:   cfg.WithCalculator,
	}
}
