// Package domain contains the core entities of the practice service: subjects and
// their exam configuration, quiz questions, answered-question records, scores and
// flashcards. It has no knowledge of how content is generated, stored or served.
package domain
