package quiz

import (
	"slices"
	"time"

	"github.com/heyged/gedprep/internal/domain"
)

const (
	// LowTimeThreshold is the remaining time under which the view warns.
	LowTimeThreshold = 5 * time.Minute

	loadingStep     = 500 * time.Millisecond
	loadingIncrease = 10
	loadingCap      = 90
)

// QuestionView is a question as shown to the test taker, without its answer.
type QuestionView struct {
	ID            string   `json:"id"`
	Text          string   `json:"question"`
	Options       []string `json:"options"`
	NonCalculator bool     `json:"non_calculator,omitempty"`
}

// Feedback is shown after an answer is checked.
type Feedback struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
}

// View is a point-in-time snapshot of a Session.
type View struct {
	Subject              domain.Subject            `json:"subject"`
	Status               string                    `json:"status"`
	QuestionNumber       int                       `json:"question_number"`
	TotalQuestions       int                       `json:"total_questions"`
	QuestionsAnswered    int                       `json:"questions_answered"`
	CorrectAnswers       int                       `json:"correct_answers"`
	ProgressPercent      int                       `json:"progress_percent"`
	TimeSpentSeconds     int                       `json:"time_spent_seconds"`
	TimeRemainingSeconds int                       `json:"time_remaining_seconds"`
	LowTime              bool                      `json:"low_time"`
	LoadingProgress      int                       `json:"loading_progress,omitempty"`
	Question             *QuestionView             `json:"question,omitempty"`
	Selected             string                    `json:"selected,omitempty"`
	Feedback             *Feedback                 `json:"feedback,omitempty"`
	Score                *domain.Score             `json:"score,omitempty"`
	Answered             []domain.AnsweredQuestion `json:"answered,omitempty"`
}

// View returns a snapshot of the session for display.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	remaining := max(s.cfg.TimeLimitSeconds()-s.timeSpent, 0)

	v := View{
		Subject:              s.cfg.Subject,
		Status:               StateName(s.state),
		QuestionNumber:       min(s.questionsAnswered+1, s.cfg.TotalQuestions),
		TotalQuestions:       s.cfg.TotalQuestions,
		QuestionsAnswered:    s.questionsAnswered,
		CorrectAnswers:       s.correctAnswers,
		ProgressPercent:      s.questionsAnswered * 100 / s.cfg.TotalQuestions,
		TimeSpentSeconds:     s.timeSpent,
		TimeRemainingSeconds: remaining,
	}

	switch st := s.state.(type) {
	case Loading:
		v.LowTime = remaining < int(LowTimeThreshold.Seconds())
		v.LoadingProgress = loadingProgress(st.StartedAt, s.now())
	case Presenting:
		v.LowTime = remaining < int(LowTimeThreshold.Seconds())
		v.Question = &QuestionView{
			ID:            st.Question.ID,
			Text:          st.Question.Text,
			Options:       slices.Clone(st.Question.Options),
			NonCalculator: st.Question.NonCalculator,
		}
		v.Selected = st.Selected
		if st.FeedbackShown {
			v.Feedback = &Feedback{
				Correct:       st.LastCorrect,
				CorrectAnswer: st.Question.CorrectAnswer,
				Explanation:   st.Question.Explanation,
			}
		}
	case Completed:
		score := st.Score
		v.Score = &score
		v.Answered = slices.Clone(st.Answered)
	case Aborted:
	}

	return v
}

// loadingProgress grows by ten percent every half second and stops at ninety.
func loadingProgress(started, now time.Time) int {
	if started.IsZero() || now.Before(started) {
		return 0
	}
	steps := int(now.Sub(started) / loadingStep)
	return min(steps*loadingIncrease, loadingCap)
}
