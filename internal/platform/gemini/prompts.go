package gemini

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/heyged/gedprep/internal/domain"
)

//go:embed prompts/*.tmpl
var promptFS embed.FS

// promptData represents the data passed to the prompt templates
type promptData struct {
	Subject       string
	NonCalculator bool
	Count         int
}

// promptSet holds the parsed prompt templates.
type promptSet struct {
	templates *template.Template
}

func loadPrompts() (*promptSet, error) {
	tmpl, err := template.ParseFS(promptFS, "prompts/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt templates: %w", err)
	}
	return &promptSet{templates: tmpl}, nil
}

func (p *promptSet) render(name string, data promptData) (string, error) {
	var buf bytes.Buffer
	if err := p.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template %s: %w", name, err)
	}
	return buf.String(), nil
}

// questionPrompt renders the prompt for one quiz question. The
// non-calculator qualifier is only added for Mathematical Reasoning.
func (p *promptSet) questionPrompt(subject domain.Subject, nonCalculator bool) (string, error) {
	return p.render("question.tmpl", promptData{
		Subject:       subject.String(),
		NonCalculator: subject == domain.SubjectMath && nonCalculator,
	})
}

func (p *promptSet) flashcardsPrompt(subject domain.Subject, count int) (string, error) {
	return p.render("flashcards.tmpl", promptData{
		Subject: subject.String(),
		Count:   count,
	})
}
