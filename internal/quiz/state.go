package quiz

import (
	"time"

	"github.com/heyged/gedprep/internal/domain"
)

// State is the current state of a Session. The concrete types are Loading,
// Presenting, Completed and Aborted.
type State interface {
	isState()
}

// Loading means a question is being fetched.
type Loading struct {
	StartedAt time.Time
}

// Presenting shows a question. Selected is empty until the user picks an
// option. Once FeedbackShown is set the question is read-only and
// LastCorrect reports the checked result.
type Presenting struct {
	Question      domain.Question
	Selected      string
	FeedbackShown bool
	LastCorrect   bool
}

// Completed is terminal; it carries the final score and every answered
// question in order.
type Completed struct {
	Score    domain.Score
	Answered []domain.AnsweredQuestion
}

// Aborted is terminal; the user left without a score.
type Aborted struct{}

func (Loading) isState()    {}
func (Presenting) isState() {}
func (Completed) isState()  {}
func (Aborted) isState()    {}

// StateName returns a stable lowercase name for s.
func StateName(s State) string {
	switch st := s.(type) {
	case Loading:
		return "loading"
	case Presenting:
		if st.FeedbackShown {
			return "feedback"
		}
		return "presenting"
	case Completed:
		return "completed"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}
