// Package supply turns an unreliable content generator into a dependable
// source of practice content.
//
// QuestionSupplier retries generation a bounded number of times until it gets
// a question whose ID has not been served in the session, and substitutes a
// deterministic placeholder when every attempt fails. It never returns an
// error. FlashcardSupplier falls back to the pre-authored bank and draws
// batches through the de-duplicating picker.
package supply
