package session

import "github.com/flashquizzer/cli/internal/domain/card"

// Result is the outcome of a single answered question. The card is the
// same instance the orchestrator mutates, so its counters reflect the
// card's latest state, not the state at answer time.
type Result struct {
	Card       *card.Card
	UserAnswer string
	IsCorrect  bool
}

// Stats summarizes a finished (or interrupted) quiz session.
type Stats struct {
	TotalQuestions int
	CorrectAnswers int
	Results        []Result
}

// AccuracyPercent is the share of correct answers from 0.0 to 100.0.
// A session with no answered questions reports 0.0.
func (s Stats) AccuracyPercent() float64 {
	if s.TotalQuestions == 0 {
		return 0.0
	}
	return float64(s.CorrectAnswers) / float64(s.TotalQuestions) * 100.0
}

// MissedCards returns the cards answered incorrectly, in answer order.
// A card missed more than once appears once per miss.
func (s Stats) MissedCards() []*card.Card {
	var missed []*card.Card
	for _, r := range s.Results {
		if !r.IsCorrect {
			missed = append(missed, r.Card)
		}
	}
	return missed
}
