package domain

import "fmt"

// DefaultPassingScore is the minimum scaled score for a Pass on every subtest.
const DefaultPassingScore = 145

// TestConfig holds the exam constants of one subject.
type TestConfig struct {
	Subject        Subject `json:"subject"`
	TotalQuestions int     `json:"total_questions"`
	// TimeLimitMinutes is the length of the timed session.
	TimeLimitMinutes int  `json:"time_limit_minutes"`
	PassingScore     int  `json:"passing_score"`
	WithCalculator   bool `json:"with_calculator,omitempty"`
}

// TimeLimitSeconds converts the time limit to seconds, the unit the session timer counts in.
func (c TestConfig) TimeLimitSeconds() int {
	return c.TimeLimitMinutes * 60
}

// Validate checks that the configuration can drive a session.
func (c TestConfig) Validate() error {
	if !c.Subject.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidSubject, c.Subject)
	}
	if c.TotalQuestions <= 0 {
		return fmt.Errorf("%w: total questions must be positive", ErrValidation)
	}
	if c.TimeLimitMinutes <= 0 {
		return fmt.Errorf("%w: time limit must be positive", ErrValidation)
	}
	return nil
}

var testConfigs = map[Subject]TestConfig{
	SubjectMath: {
		Subject:          SubjectMath,
		TotalQuestions:   45,
		TimeLimitMinutes: 115,
		PassingScore:     DefaultPassingScore,
		WithCalculator:   true,
	},
	SubjectScience: {
		Subject:          SubjectScience,
		TotalQuestions:   40,
		TimeLimitMinutes: 90,
		PassingScore:     DefaultPassingScore,
	},
	SubjectLanguageArts: {
		Subject:          SubjectLanguageArts,
		TotalQuestions:   53,
		TimeLimitMinutes: 150,
		PassingScore:     DefaultPassingScore,
	},
	SubjectSocialStudies: {
		Subject:          SubjectSocialStudies,
		TotalQuestions:   35,
		TimeLimitMinutes: 70,
		PassingScore:     DefaultPassingScore,
	},
}

// ConfigFor returns the exam configuration of a subject.
func ConfigFor(subject Subject) (TestConfig, error) {
	cfg, ok := testConfigs[subject]
	if !ok {
		return TestConfig{}, fmt.Errorf("%w: %q", ErrInvalidSubject, subject)
	}
	return cfg, nil
}
