package supply_test

import (
	"io"
	"log/slog"

	"github.com/heyged/gedprep/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testQuestion(id string, subject domain.Subject) *domain.Question {
	return &domain.Question{
		ID:            id,
		Subject:       subject,
		Text:          "Question " + id,
		Options:       []string{"a", "b", "c", "d"},
		CorrectAnswer: "a",
		Explanation:   "because",
	}
}
