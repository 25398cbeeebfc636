package domain

import "math"

// ScoreStatus is the pass/fail outcome of a completed session.
type ScoreStatus string

// Possible score status values
const (
	StatusPass      ScoreStatus = "Pass"
	StatusNotPassed ScoreStatus = "Not Passed"
)

// Scaled score bounds of a GED subtest.
const (
	MinScaledScore = 100
	MaxScaledScore = 200
)

// Score is the summary emitted once when a test session completes.
type Score struct {
	Subject          Subject     `json:"subject"`
	Score            int         `json:"score"`
	Status           ScoreStatus `json:"status"`
	QuestionsCorrect int         `json:"questions_correct"`
	// TotalQuestions is the number of questions attempted (answered or skipped).
	TotalQuestions int `json:"total_questions"`
	// TimeSpent is the elapsed session time in seconds.
	TimeSpent int `json:"time_spent"`
}

// ScaledScore maps correct answers onto the 100-200 scale:
// round(correct / total * 100) + 100.
func ScaledScore(correct, total int) int {
	if total <= 0 {
		return MinScaledScore
	}
	return int(math.Round(float64(correct)/float64(total)*100)) + MinScaledScore
}

// ComputeScore builds the final Score of a session.
func ComputeScore(cfg TestConfig, correct, attempted, timeSpent int) Score {
	scaled := ScaledScore(correct, cfg.TotalQuestions)

	status := StatusNotPassed
	if scaled >= cfg.PassingScore {
		status = StatusPass
	}

	return Score{
		Subject:          cfg.Subject,
		Score:            scaled,
		Status:           status,
		QuestionsCorrect: correct,
		TotalQuestions:   attempted,
		TimeSpent:        timeSpent,
	}
}
