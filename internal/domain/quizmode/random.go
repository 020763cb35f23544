package quizmode

import (
	"math/rand"
	"time"

	"github.com/flashquizzer/cli/internal/domain/card"
)

// RandomMode presents cards in a shuffled order, one pass. Every Reset
// reshuffles, so successive passes can come out in different orders.
type RandomMode struct {
	original []*card.Card
	cards    []*card.Card
	index    int
	rng      *rand.Rand
}

// NewRandom creates a RandomMode over the given cards. The randomness
// source is injectable so tests can seed it; pass nil for a time-seeded one.
func NewRandom(cards []*card.Card, rng *rand.Rand) *RandomMode {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	m := &RandomMode{
		original: append([]*card.Card(nil), cards...),
		rng:      rng,
	}
	m.shuffle()
	return m
}

func (m *RandomMode) shuffle() {
	m.cards = append([]*card.Card(nil), m.original...)
	m.rng.Shuffle(len(m.cards), func(i, j int) {
		m.cards[i], m.cards[j] = m.cards[j], m.cards[i]
	})
	m.index = 0
}

func (m *RandomMode) Next() *card.Card {
	if m.index >= len(m.cards) {
		return nil
	}
	c := m.cards[m.index]
	m.index++
	return c
}

func (m *RandomMode) HasMore() bool {
	return m.index < len(m.cards)
}

func (m *RandomMode) Reset() {
	m.shuffle()
}

func (m *RandomMode) RecordResult(c *card.Card, correct bool) {}
