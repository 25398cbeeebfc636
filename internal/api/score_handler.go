package api

import (
	"net/http"

	"github.com/heyged/gedprep/internal/api/shared"
	"github.com/heyged/gedprep/internal/domain"
)

// ScoreReader is the part of scoreboard.Board used by ScoreHandler.
type ScoreReader interface {
	Get(subject domain.Subject) (domain.Score, bool)
	All() []domain.Score
}

// ScoreHandler serves the dashboard: subjects and their latest scores.
type ScoreHandler struct {
	scores ScoreReader
}

// NewScoreHandler creates a new ScoreHandler.
func NewScoreHandler(scores ScoreReader) *ScoreHandler {
	return &ScoreHandler{scores: scores}
}

// ListSubjects handles GET /api/subjects.
func (h *ScoreHandler) ListSubjects(w http.ResponseWriter, r *http.Request) {
	subjects := domain.Subjects()
	resp := make([]SubjectResponse, 0, len(subjects))
	for _, subject := range subjects {
		cfg, err := domain.ConfigFor(subject)
		if err != nil {
			HandleAPIError(w, r, err, "Failed to list subjects")
			return
		}

		item := subjectToResponse(cfg)
		if score, ok := h.scores.Get(subject); ok {
			item.LastScore = &score
		}
		resp = append(resp, item)
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// ListScores handles GET /api/scores.
func (h *ScoreHandler) ListScores(w http.ResponseWriter, r *http.Request) {
	scores := h.scores.All()
	if scores == nil {
		scores = []domain.Score{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, ScoresResponse{Scores: scores})
}
