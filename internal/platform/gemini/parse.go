package gemini

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/heyged/gedprep/internal/domain"
	"github.com/heyged/gedprep/internal/generation"
)

var codeFence = regexp.MustCompile("```[a-zA-Z]*\n?")

// stripCodeFences removes markdown code fences the model sometimes wraps
// around its JSON output.
func stripCodeFences(text string) string {
	return strings.TrimSpace(codeFence.ReplaceAllString(text, ""))
}

// questionOptions is the number of answer choices a generated question must carry.
const questionOptions = 4

// questionPayload is the JSON object the question prompt asks for.
type questionPayload struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// flashcardPayload is one element of the flashcard array.
type flashcardPayload struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// flashcardEnvelope is the object form some responses use instead of a bare array.
type flashcardEnvelope struct {
	Flashcards []flashcardPayload `json:"flashcards"`
}

func parseQuestion(text string, subject domain.Subject, nonCalculator bool) (*domain.Question, error) {
	var payload questionPayload
	if err := json.Unmarshal([]byte(stripCodeFences(text)), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrMalformedContent, err)
	}

	if strings.TrimSpace(payload.Explanation) == "" {
		return nil, fmt.Errorf("%w: missing explanation", generation.ErrMalformedContent)
	}
	if len(payload.Options) != questionOptions {
		return nil, fmt.Errorf("%w: expected %d options, got %d",
			generation.ErrMalformedContent, questionOptions, len(payload.Options))
	}

	q, err := domain.NewQuestion(
		subject,
		subject == domain.SubjectMath && nonCalculator,
		payload.Question,
		payload.Options,
		payload.CorrectAnswer,
		payload.Explanation,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", generation.ErrMalformedContent, err)
	}

	return q, nil
}

func parseFlashcards(text string) ([]domain.Flashcard, error) {
	body := stripCodeFences(text)

	var payload []flashcardPayload
	if strings.HasPrefix(body, "{") {
		var envelope flashcardEnvelope
		if err := json.Unmarshal([]byte(body), &envelope); err != nil {
			return nil, fmt.Errorf("%w: %v", generation.ErrMalformedContent, err)
		}
		payload = envelope.Flashcards
	} else if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrMalformedContent, err)
	}

	if len(payload) == 0 {
		return nil, fmt.Errorf("%w: expected a non-empty array of flashcards", generation.ErrMalformedContent)
	}

	cards := make([]domain.Flashcard, 0, len(payload))
	for i, p := range payload {
		card := domain.Flashcard{
			Question: strings.TrimSpace(p.Question),
			Answer:   strings.TrimSpace(p.Answer),
		}
		if err := card.Validate(); err != nil {
			return nil, fmt.Errorf("%w: flashcard %d: %w", generation.ErrMalformedContent, i, err)
		}
		cards = append(cards, card)
	}

	return cards, nil
}
