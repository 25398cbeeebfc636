package contentbank

import (
	"slices"

	"github.com/google/uuid"
	"github.com/heyged/gedprep/internal/domain"
)

var questionBank = map[domain.Subject][]domain.Question{
	domain.SubjectMath: {
		{
			ID:            "bank-math-1",
			Subject:       domain.SubjectMath,
			Text:          "What is the result of integrating e^x with respect to x?",
			Options:       []string{"x + C", "e^x + C", "ln(x) + C", "e^x"},
			CorrectAnswer: "e^x + C",
			Explanation: "The integral of e^x is e^x + C. The derivative of e^x is itself, " +
				"so integrating it returns the same function plus a constant of integration.",
		},
		{
			ID:            "bank-math-2",
			Subject:       domain.SubjectMath,
			Text:          "A jacket is discounted 20% to $64. What was its original price?",
			Options:       []string{"$76.80", "$80.00", "$84.00", "$51.20"},
			CorrectAnswer: "$80.00",
			Explanation:   "The sale price is 80% of the original, so the original price is 64 / 0.8 = $80.00.",
		},
		{
			ID:            "bank-math-3",
			Subject:       domain.SubjectMath,
			Text:          "What is the slope of the line passing through (2, 3) and (6, 11)?",
			Options:       []string{"1/2", "2", "4", "8"},
			CorrectAnswer: "2",
			Explanation:   "Slope is the change in y over the change in x: (11 - 3) / (6 - 2) = 8 / 4 = 2.",
		},
	},
	domain.SubjectScience: {
		{
			ID:            "bank-science-1",
			Subject:       domain.SubjectScience,
			Text:          "Which organelle is the primary site of cellular respiration in eukaryotic cells?",
			Options:       []string{"Nucleus", "Ribosome", "Mitochondrion", "Chloroplast"},
			CorrectAnswer: "Mitochondrion",
			Explanation: "Mitochondria break down glucose to produce ATP, releasing carbon dioxide " +
				"and water as byproducts.",
		},
		{
			ID:            "bank-science-2",
			Subject:       domain.SubjectScience,
			Text:          "A 10 kg cart accelerates at 3 m/s². What net force acts on it?",
			Options:       []string{"3.3 N", "13 N", "30 N", "300 N"},
			CorrectAnswer: "30 N",
			Explanation:   "Newton's second law gives F = m × a = 10 kg × 3 m/s² = 30 N.",
		},
		{
			ID:            "bank-science-3",
			Subject:       domain.SubjectScience,
			Text:          "What does the Higgs field give to fundamental particles?",
			Options:       []string{"Charge", "Mass", "Spin", "Color"},
			CorrectAnswer: "Mass",
			Explanation: "Particles acquire mass through their interaction with the Higgs field; " +
				"photons do not interact with it and remain massless.",
		},
	},
	domain.SubjectLanguageArts: {
		{
			ID:      "bank-language-arts-1",
			Subject: domain.SubjectLanguageArts,
			Text:    "Which sentence uses a simile?",
			Options: []string{
				"The classroom was a zoo.",
				"Her voice was as smooth as silk.",
				"The wind howled all night.",
				"Time is money.",
			},
			CorrectAnswer: "Her voice was as smooth as silk.",
			Explanation:   "A simile compares two things using 'like' or 'as'; the others are metaphors or personification.",
		},
		{
			ID:            "bank-language-arts-2",
			Subject:       domain.SubjectLanguageArts,
			Text:          "When the audience knows something a character does not, the author is using:",
			Options:       []string{"Verbal irony", "Dramatic irony", "Foreshadowing", "Hyperbole"},
			CorrectAnswer: "Dramatic irony",
			Explanation: "Dramatic irony creates tension from the gap between what the audience knows " +
				"and what the characters believe.",
		},
		{
			ID:      "bank-language-arts-3",
			Subject: domain.SubjectLanguageArts,
			Text:    "Choose the correctly punctuated sentence.",
			Options: []string{
				"Its going to rain, bring an umbrella.",
				"It's going to rain; bring an umbrella.",
				"Its going to rain; bring an umbrella.",
				"It's going to rain bring an umbrella.",
			},
			CorrectAnswer: "It's going to rain; bring an umbrella.",
			Explanation: "\"It's\" is the contraction of \"it is\", and a semicolon joins two independent " +
				"clauses without a conjunction.",
		},
	},
	domain.SubjectSocialStudies: {
		{
			ID:            "bank-social-studies-1",
			Subject:       domain.SubjectSocialStudies,
			Text:          "Which thinker argued that people hold natural rights to life, liberty and property?",
			Options:       []string{"Thomas Hobbes", "John Locke", "Niccolò Machiavelli", "Karl Marx"},
			CorrectAnswer: "John Locke",
			Explanation: "Locke's theory of natural rights and limited government strongly influenced " +
				"the Declaration of Independence.",
		},
		{
			ID:            "bank-social-studies-2",
			Subject:       domain.SubjectSocialStudies,
			Text:          "The system that lets each branch of government limit the powers of the others is called:",
			Options:       []string{"Federalism", "Popular sovereignty", "Checks and balances", "Judicial review"},
			CorrectAnswer: "Checks and balances",
			Explanation: "Checks and balances give each branch ways to restrain the others, such as the " +
				"presidential veto or Senate confirmation.",
		},
		{
			ID:            "bank-social-studies-3",
			Subject:       domain.SubjectSocialStudies,
			Text:          "Which was a major social effect of the Industrial Revolution?",
			Options:       []string{"Rapid urbanization", "Decline of factories", "Return to subsistence farming", "End of child labor"},
			CorrectAnswer: "Rapid urbanization",
			Explanation:   "Factory jobs drew large numbers of people from the countryside into growing cities.",
		},
	},
}

// Questions returns the fallback questions for subject. Unknown subjects
// yield an empty pool.
func Questions(subject domain.Subject) []domain.Question {
	pool := questionBank[subject]
	out := make([]domain.Question, len(pool))
	for i, q := range pool {
		q.Options = slices.Clone(q.Options)
		out[i] = q
	}
	return out
}

// Placeholder text, options and answer used when no question could be produced.
const (
	PlaceholderText        = "What is 2 + 2?"
	PlaceholderAnswer      = "4"
	PlaceholderExplanation = "Basic addition: 2 + 2 = 4"
)

// PlaceholderOptions returns the options of the placeholder question.
func PlaceholderOptions() []string {
	return []string{"3", "4", "5", "6"}
}

// Placeholder returns the deterministic last-resort question. Only the ID
// differs between calls. The non-calculator flag applies to Mathematical
// Reasoning only.
func Placeholder(subject domain.Subject, nonCalculator bool) domain.Question {
	return domain.Question{
		ID:            uuid.NewString(),
		Subject:       subject,
		NonCalculator: subject == domain.SubjectMath && nonCalculator,
		Text:          PlaceholderText,
		Options:       PlaceholderOptions(),
		CorrectAnswer: PlaceholderAnswer,
		Explanation:   PlaceholderExplanation,
	}
}
