// Package deck drives a flashcard study session: pick a subject, page
// through cards that are loaded in small batches, flip each card between its
// question and answer, and finish once the deck's target count is reached.
package deck
