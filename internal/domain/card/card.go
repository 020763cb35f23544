package card

// Card is a single flashcard: a front (question), a back (answer), and
// exposure counters updated as the card is answered during a session.
// Counters are mutated only by the session orchestrator; TimesCorrect
// never exceeds TimesShown.
type Card struct {
	Front        string `json:"front"`
	Back         string `json:"back"`
	TimesShown   int    `json:"times_shown,omitempty"`
	TimesCorrect int    `json:"times_correct,omitempty"`
}

func New(front, back string) *Card {
	return &Card{
		Front: front,
		Back:  back,
	}
}

// TimesIncorrect is the number of times the card was answered incorrectly.
func (c *Card) TimesIncorrect() int {
	return c.TimesShown - c.TimesCorrect
}

// Accuracy is the fraction of correct answers, between 0.0 and 1.0.
// A card that was never shown has accuracy 0.0.
func (c *Card) Accuracy() float64 {
	if c.TimesShown == 0 {
		return 0.0
	}
	return float64(c.TimesCorrect) / float64(c.TimesShown)
}
