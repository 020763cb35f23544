// Package quizmode implements the pluggable ordering policies for a quiz
// session. A Mode decides which card comes next and how the session reacts
// to answer outcomes; the orchestrator in internal/session only ever talks
// to the Mode interface.
package quizmode

import "github.com/flashquizzer/cli/internal/domain/card"

// Mode is a quiz ordering policy over a deck of cards. Modes hold
// references into the caller-supplied deck and never mutate card data.
type Mode interface {
	// Next returns the next card to present, or nil once the mode is
	// exhausted. Calling Next past exhaustion keeps returning nil.
	Next() *card.Card

	// HasMore reports whether a subsequent Next will yield a card.
	HasMore() bool

	// Reset restores the mode to its initial iteration state.
	Reset()

	// RecordResult notifies the mode of an answered card's outcome.
	// Modes that do not react to outcomes treat this as a no-op.
	RecordResult(c *card.Card, correct bool)
}
