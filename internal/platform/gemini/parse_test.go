package gemini

import (
	"testing"

	"github.com/heyged/gedprep/internal/domain"
	"github.com/heyged/gedprep/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validQuestionJSON = `{
  "question": "What is 3 x 4?",
  "options": ["7", "12", "14", "34"],
  "correctAnswer": "12",
  "explanation": "Three groups of four make twelve."
}`

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n[1]\n```", "[1]"},
		{"no fence", "  {\"a\":1}  ", `{"a":1}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stripCodeFences(tc.input))
		})
	}
}

func TestParseQuestion(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		q, err := parseQuestion(validQuestionJSON, domain.SubjectMath, true)

		require.NoError(t, err)
		assert.NotEmpty(t, q.ID)
		assert.Equal(t, domain.SubjectMath, q.Subject)
		assert.True(t, q.NonCalculator)
		assert.Equal(t, "What is 3 x 4?", q.Text)
		assert.Equal(t, []string{"7", "12", "14", "34"}, q.Options)
		assert.Equal(t, "12", q.CorrectAnswer)
	})

	t.Run("fenced payload", func(t *testing.T) {
		q, err := parseQuestion("```json\n"+validQuestionJSON+"\n```", domain.SubjectScience, true)

		require.NoError(t, err)
		assert.False(t, q.NonCalculator, "only math questions carry the non-calculator flag")
	})

	invalid := []struct {
		name string
		text string
	}{
		{"not json", "Here is your question!"},
		{"answer not an option", `{"question":"q","options":["a","b","c","d"],"correctAnswer":"x","explanation":"e"}`},
		{"single option", `{"question":"q","options":["a"],"correctAnswer":"a","explanation":"e"}`},
		{"two options", `{"question":"q","options":["a","b"],"correctAnswer":"a","explanation":"e"}`},
		{"six options", `{"question":"q","options":["a","b","c","d","e","f"],"correctAnswer":"a","explanation":"e"}`},
		{"missing question", `{"options":["a","b","c","d"],"correctAnswer":"a","explanation":"e"}`},
		{"missing explanation", `{"question":"q","options":["a","b","c","d"],"correctAnswer":"a"}`},
		{"empty option", `{"question":"q","options":["a","b","c",""],"correctAnswer":"a","explanation":"e"}`},
	}

	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			q, err := parseQuestion(tc.text, domain.SubjectMath, false)

			assert.Nil(t, q)
			assert.ErrorIs(t, err, generation.ErrMalformedContent)
		})
	}
}

func TestParseFlashcards(t *testing.T) {
	t.Run("array", func(t *testing.T) {
		cards, err := parseFlashcards(`[{"question":"Q1","answer":"A1"},{"question":"Q2","answer":"A2"}]`)

		require.NoError(t, err)
		assert.Equal(t, []domain.Flashcard{
			{Question: "Q1", Answer: "A1"},
			{Question: "Q2", Answer: "A2"},
		}, cards)
	})

	t.Run("envelope", func(t *testing.T) {
		cards, err := parseFlashcards("```json\n{\"flashcards\":[{\"question\":\"Q\",\"answer\":\"A\"}]}\n```")

		require.NoError(t, err)
		assert.Len(t, cards, 1)
	})

	invalid := map[string]string{
		"empty array":    `[]`,
		"not json":       `flashcards: none`,
		"missing answer": `[{"question":"Q"}]`,
		"blank question": `[{"question":"  ","answer":"A"}]`,
		"object no list": `{"cards":[]}`,
	}

	for name, text := range invalid {
		t.Run(name, func(t *testing.T) {
			cards, err := parseFlashcards(text)

			assert.Nil(t, cards)
			assert.ErrorIs(t, err, generation.ErrMalformedContent)
		})
	}
}

func TestPrompts(t *testing.T) {
	prompts, err := loadPrompts()
	require.NoError(t, err)

	mathPrompt, err := prompts.questionPrompt(domain.SubjectMath, true)
	require.NoError(t, err)
	assert.Contains(t, mathPrompt, "GED Mathematical Reasoning non-calculator section practice question")
	assert.Contains(t, mathPrompt, `"correctAnswer"`)

	sciencePrompt, err := prompts.questionPrompt(domain.SubjectScience, true)
	require.NoError(t, err)
	assert.Contains(t, sciencePrompt, "GED Science practice question")
	assert.NotContains(t, sciencePrompt, "non-calculator")

	cardPrompt, err := prompts.flashcardsPrompt(domain.SubjectSocialStudies, 5)
	require.NoError(t, err)
	assert.Contains(t, cardPrompt, "Generate 5 unique and challenging GED Social Studies flashcards")
}
