// Package quiz implements the timed practice-test session.
//
// A Session moves between Loading, Presenting and a terminal Completed or
// Aborted state. Questions are loaded in the background through a Supplier;
// the one-second timer runs independently and forces completion when the
// time budget is spent, discarding any load still in flight. Completion hands
// the final domain.Score to the OnComplete callback exactly once.
package quiz
