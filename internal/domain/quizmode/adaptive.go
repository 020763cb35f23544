package quizmode

import "github.com/flashquizzer/cli/internal/domain/card"

// AdaptiveMode re-queues incorrectly answered cards at the end of the
// working queue, so a missed card comes back after everything currently
// queued. Requeueing is unbounded; the pass ends only once every card has
// been answered correctly.
type AdaptiveMode struct {
	original []*card.Card
	queue    []*card.Card
	index    int
}

func NewAdaptive(cards []*card.Card) *AdaptiveMode {
	return &AdaptiveMode{
		original: append([]*card.Card(nil), cards...),
		queue:    append([]*card.Card(nil), cards...),
	}
}

func (m *AdaptiveMode) Next() *card.Card {
	if m.index >= len(m.queue) {
		return nil
	}
	c := m.queue[m.index]
	m.index++
	return c
}

func (m *AdaptiveMode) HasMore() bool {
	return m.index < len(m.queue)
}

// Reset discards all requeued entries and restores the original deck order.
func (m *AdaptiveMode) Reset() {
	m.queue = append([]*card.Card(nil), m.original...)
	m.index = 0
}

func (m *AdaptiveMode) RecordResult(c *card.Card, correct bool) {
	if !correct {
		m.queue = append(m.queue, c)
	}
}
