package contentbank

import (
	"slices"

	"github.com/heyged/gedprep/internal/domain"
)

var flashcardBank = map[domain.Subject][]domain.Flashcard{
	domain.SubjectMath: {
		{Question: "What is the derivative of ln(x^2 + 1) with respect to x?", Answer: "2x / (x^2 + 1)"},
		{Question: "Solve the equation: log₂(x) + log₂(x - 3) = 3", Answer: "x = 5"},
		{Question: "What is the limit of (1 - cos(x)) / x^2 as x approaches 0?", Answer: "1/2"},
	},
	domain.SubjectLanguageArts: {
		{
			Question: "Explain the concept of dramatic irony and provide an example from a well-known work of literature.",
			Answer: "Dramatic irony occurs when the audience knows something that the characters do not. " +
				"In 'Romeo and Juliet' the audience knows that Juliet is only sleeping, while Romeo believes she is dead.",
		},
		{
			Question: "What is the difference between a metaphor and a simile, and how do they contribute to imagery in poetry?",
			Answer: "A metaphor states that one thing is another, while a simile compares two things using 'like' or 'as'. " +
				"Both create imagery by drawing unexpected connections between different ideas.",
		},
		{
			Question: "Explain the concept of unreliable narrator and its effect on storytelling.",
			Answer: "An unreliable narrator is one whose credibility is compromised. The technique creates ambiguity " +
				"and forces readers to question the narrative.",
		},
	},
	domain.SubjectScience: {
		{
			Question: "Explain the concept of quantum entanglement and its implications for quantum computing.",
			Answer: "Entangled particles share physical properties regardless of distance. Entanglement enables " +
				"quantum computing operations that are impossible with classical bits.",
		},
		{
			Question: "Describe the process of cellular respiration and its relationship to photosynthesis.",
			Answer: "Cellular respiration breaks down glucose to produce ATP, releasing CO2 and H2O. Photosynthesis " +
				"uses CO2 and H2O to produce glucose and O2, so the two processes form a cycle.",
		},
		{
			Question: "What is the significance of the Higgs boson in particle physics?",
			Answer: "The Higgs boson is associated with the Higgs field, which gives mass to other particles. " +
				"Its discovery in 2012 confirmed the Standard Model.",
		},
	},
	domain.SubjectSocialStudies: {
		{
			Question: "Compare and contrast the political philosophies of John Locke and Thomas Hobbes regarding the social contract theory.",
			Answer: "Hobbes argued for absolute monarchy because people are naturally selfish, while Locke advocated " +
				"limited government and natural rights.",
		},
		{
			Question: "Analyze the long-term economic and social impacts of the Industrial Revolution.",
			Answer: "It brought urbanization, technological advancement and economic growth, along with poor working " +
				"conditions, child labor and the rise of labor movements.",
		},
		{
			Question: "Explain the concept of soft power in international relations and provide examples of its use in modern diplomacy.",
			Answer: "Soft power is influence through attraction and persuasion rather than coercion, for example " +
				"cultural exchanges, foreign aid and public diplomacy.",
		},
	},
}

// Flashcards returns the fallback flashcards for subject. Unknown subjects
// yield an empty pool.
func Flashcards(subject domain.Subject) []domain.Flashcard {
	return slices.Clone(flashcardBank[subject])
}
