package domain

import (
	"fmt"
	"strings"
)

// Subject is one of the four GED content areas.
type Subject string

// The fixed set of subjects, in dashboard order.
const (
	SubjectMath          Subject = "Mathematical Reasoning"
	SubjectScience       Subject = "Science"
	SubjectLanguageArts  Subject = "Language Arts"
	SubjectSocialStudies Subject = "Social Studies"
)

var subjectSlugs = map[Subject]string{
	SubjectMath:          "math",
	SubjectScience:       "science",
	SubjectLanguageArts:  "language-arts",
	SubjectSocialStudies: "social-studies",
}

// Subjects returns every subject in dashboard order.
func Subjects() []Subject {
	return []Subject{SubjectMath, SubjectScience, SubjectLanguageArts, SubjectSocialStudies}
}

// ParseSubject accepts either the display name ("Language Arts") or the URL
// slug ("language-arts"), case-insensitively.
func ParseSubject(s string) (Subject, error) {
	trimmed := strings.TrimSpace(s)
	for subject, slug := range subjectSlugs {
		if strings.EqualFold(trimmed, string(subject)) || strings.EqualFold(trimmed, slug) {
			return subject, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSubject, s)
}

// Valid reports whether s is one of the known subjects.
func (s Subject) Valid() bool {
	_, ok := subjectSlugs[s]
	return ok
}

// Slug returns the URL-friendly identifier of the subject.
func (s Subject) Slug() string {
	return subjectSlugs[s]
}

// String implements fmt.Stringer.
func (s Subject) String() string {
	return string(s)
}

// SubjectSlugs returns the slugs of all subjects in dashboard order.
func SubjectSlugs() []string {
	slugs := make([]string, 0, len(subjectSlugs))
	for _, s := range Subjects() {
		slugs = append(slugs, s.Slug())
	}
	return slugs
}
