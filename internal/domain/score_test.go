package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeScore(t *testing.T) {
	t.Parallel()

	cfg := TestConfig{
		Subject:          SubjectMath,
		TotalQuestions:   45,
		TimeLimitMinutes: 115,
		PassingScore:     145,
	}

	tests := []struct {
		name       string
		correct    int
		attempted  int
		wantScore  int
		wantStatus ScoreStatus
	}{
		{"nine of forty-five", 9, 45, 120, StatusNotPassed},
		{"thirty-six of forty-five", 36, 45, 180, StatusPass},
		{"nothing correct", 0, 3, 100, StatusNotPassed},
		{"all correct", 45, 45, 200, StatusPass},
		{"just under the passing score", 20, 30, 144, StatusNotPassed},
		{"just over the passing score", 21, 30, 147, StatusPass},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			score := ComputeScore(cfg, tc.correct, tc.attempted, 600)
			assert.Equal(t, tc.wantScore, score.Score)
			assert.Equal(t, tc.wantStatus, score.Status)
			assert.Equal(t, tc.correct, score.QuestionsCorrect)
			assert.Equal(t, tc.attempted, score.TotalQuestions)
			assert.Equal(t, 600, score.TimeSpent)
			assert.Equal(t, SubjectMath, score.Subject)
		})
	}
}

func TestComputeScore_PassAtThreshold(t *testing.T) {
	t.Parallel()

	cfg := TestConfig{Subject: SubjectScience, TotalQuestions: 100, TimeLimitMinutes: 90, PassingScore: 145}
	score := ComputeScore(cfg, 45, 100, 0)
	assert.Equal(t, 145, score.Score)
	assert.Equal(t, StatusPass, score.Status)
}

func TestScaledScore_Bounds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, MinScaledScore, ScaledScore(0, 0))
	assert.Equal(t, 145, ScaledScore(45, 100))
	for correct := 0; correct <= 53; correct++ {
		s := ScaledScore(correct, 53)
		assert.GreaterOrEqual(t, s, MinScaledScore)
		assert.LessOrEqual(t, s, MaxScaledScore)
	}
}
