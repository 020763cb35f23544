package quizmode

import "github.com/flashquizzer/cli/internal/domain/card"

// SequentialMode presents cards in their original deck order, one pass.
type SequentialMode struct {
	cards []*card.Card
	index int
}

func NewSequential(cards []*card.Card) *SequentialMode {
	return &SequentialMode{
		cards: append([]*card.Card(nil), cards...),
	}
}

func (m *SequentialMode) Next() *card.Card {
	if m.index >= len(m.cards) {
		return nil
	}
	c := m.cards[m.index]
	m.index++
	return c
}

func (m *SequentialMode) HasMore() bool {
	return m.index < len(m.cards)
}

func (m *SequentialMode) Reset() {
	m.index = 0
}

func (m *SequentialMode) RecordResult(c *card.Card, correct bool) {}
