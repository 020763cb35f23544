package quizmode_test

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/flashquizzer/cli/internal/domain/card"
	"github.com/flashquizzer/cli/internal/domain/quizmode"
)

func makeCards(n int) []*card.Card {
	cards := make([]*card.Card, 0, n)
	for i := 0; i < n; i++ {
		cards = append(cards, card.New(
			"Question "+string(rune('A'+i)),
			"Answer "+string(rune('A'+i)),
		))
	}
	return cards
}

// drain pulls cards until the mode reports exhaustion.
func drain(m quizmode.Mode) []*card.Card {
	var out []*card.Card
	for m.HasMore() {
		c := m.Next()
		if c == nil {
			break
		}
		out = append(out, c)
	}
	return out
}

func fronts(cards []*card.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Front
	}
	return out
}

func sameOrder(a, b []*card.Card) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func countByFront(cards []*card.Card) map[string]int {
	counts := make(map[string]int)
	for _, c := range cards {
		counts[c.Front]++
	}
	return counts
}

func TestSequential_PreservesDeckOrder(t *testing.T) {
	cards := makeCards(5)
	m := quizmode.NewSequential(cards)

	got := drain(m)
	if !sameOrder(got, cards) {
		t.Errorf("expected deck order %v, got %v", fronts(cards), fronts(got))
	}
}

func TestSequential_ExhaustionIsSticky(t *testing.T) {
	m := quizmode.NewSequential(makeCards(2))
	drain(m)

	if m.HasMore() {
		t.Error("expected HasMore to be false after a full pass")
	}
	if c := m.Next(); c != nil {
		t.Errorf("expected nil past exhaustion, got %q", c.Front)
	}
}

func TestSequential_Reset(t *testing.T) {
	cards := makeCards(3)
	m := quizmode.NewSequential(cards)
	drain(m)

	m.Reset()

	got := drain(m)
	if !sameOrder(got, cards) {
		t.Errorf("expected deck order after reset, got %v", fronts(got))
	}
}

func TestRandom_YieldsEveryCardOnce(t *testing.T) {
	cards := makeCards(10)
	m := quizmode.NewRandom(cards, rand.New(rand.NewSource(1)))

	got := drain(m)
	if !reflect.DeepEqual(countByFront(got), countByFront(cards)) {
		t.Errorf("expected the input multiset, got %v", fronts(got))
	}
}

func TestRandom_ResetReshuffles(t *testing.T) {
	cards := makeCards(20)
	m := quizmode.NewRandom(cards, rand.New(rand.NewSource(42)))

	// Reset repeatedly and check that at least one pass has a different
	// order (statistically almost certain with 20 cards).
	first := drain(m)
	foundDifferentOrder := false
	for i := 0; i < 10; i++ {
		m.Reset()
		if !sameOrder(first, drain(m)) {
			foundDifferentOrder = true
			break
		}
	}

	if !foundDifferentOrder {
		t.Error("expected reshuffled order across resets")
	}
}

func TestRandom_SeededSourceIsDeterministic(t *testing.T) {
	cards := makeCards(8)
	a := drain(quizmode.NewRandom(cards, rand.New(rand.NewSource(7))))
	b := drain(quizmode.NewRandom(cards, rand.New(rand.NewSource(7))))

	if !sameOrder(a, b) {
		t.Errorf("expected identical orders for identical seeds, got %v and %v", fronts(a), fronts(b))
	}
}

func TestRandom_DoesNotMutateInputSlice(t *testing.T) {
	cards := makeCards(6)
	want := fronts(cards)

	drain(quizmode.NewRandom(cards, rand.New(rand.NewSource(3))))

	if !reflect.DeepEqual(fronts(cards), want) {
		t.Errorf("input deck reordered: %v", fronts(cards))
	}
}

func TestAdaptive_RequeuesMissedCard(t *testing.T) {
	cards := makeCards(3)
	m := quizmode.NewAdaptive(cards)

	first := m.Next()
	m.RecordResult(first, false)

	// The missed card must come back after the rest of the queue.
	var seen []*card.Card
	for m.HasMore() {
		seen = append(seen, m.Next())
	}

	if len(seen) != 3 {
		t.Fatalf("expected 3 more cards, got %d", len(seen))
	}
	if seen[len(seen)-1] != first {
		t.Errorf("expected missed card %q at the end of the queue, got %q",
			first.Front, seen[len(seen)-1].Front)
	}
}

func TestAdaptive_CorrectAnswerIsNotRequeued(t *testing.T) {
	m := quizmode.NewAdaptive(makeCards(2))

	for m.HasMore() {
		m.RecordResult(m.Next(), true)
	}

	if m.HasMore() {
		t.Error("expected exhaustion after all cards answered correctly")
	}
}

func TestAdaptive_TerminatesOnceAllCorrect(t *testing.T) {
	cards := makeCards(4)
	m := quizmode.NewAdaptive(cards)

	// Miss every card once, then answer everything correctly.
	missed := make(map[*card.Card]bool)
	questions := 0
	for m.HasMore() {
		c := m.Next()
		questions++
		if !missed[c] {
			missed[c] = true
			m.RecordResult(c, false)
		} else {
			m.RecordResult(c, true)
		}
	}

	if questions != 8 {
		t.Errorf("expected 8 questions (each card missed once), got %d", questions)
	}
}

func TestAdaptive_ResetDiscardsRequeuedCards(t *testing.T) {
	cards := makeCards(3)
	m := quizmode.NewAdaptive(cards)

	m.RecordResult(m.Next(), false)
	m.Reset()

	got := drain(m)
	if !sameOrder(got, cards) {
		t.Errorf("expected original deck after reset, got %v", fronts(got))
	}
}

func TestEmptyDeck(t *testing.T) {
	modes := map[string]quizmode.Mode{
		"sequential": quizmode.NewSequential(nil),
		"random":     quizmode.NewRandom(nil, rand.New(rand.NewSource(1))),
		"adaptive":   quizmode.NewAdaptive(nil),
	}

	for name, m := range modes {
		if m.HasMore() {
			t.Errorf("%s: expected HasMore false for an empty deck", name)
		}
		if c := m.Next(); c != nil {
			t.Errorf("%s: expected nil from Next on an empty deck", name)
		}
	}
}

func TestNew_CaseInsensitiveNames(t *testing.T) {
	cards := makeCards(2)

	for _, name := range []string{"random", "RANDOM", "Random"} {
		m, err := quizmode.New(name, cards)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", name, err)
		}
		if _, ok := m.(*quizmode.RandomMode); !ok {
			t.Errorf("expected RandomMode for %q, got %T", name, m)
		}
	}
}

func TestNew_UnknownMode(t *testing.T) {
	_, err := quizmode.New("bogus", makeCards(1))
	if err == nil {
		t.Fatal("expected error for unknown mode, got nil")
	}

	var unknownErr *quizmode.UnknownModeError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected UnknownModeError, got %T", err)
	}
	if unknownErr.Name != "bogus" {
		t.Errorf("expected offending name %q, got %q", "bogus", unknownErr.Name)
	}
	if err.Error() != `unknown quiz mode "bogus" (available: adaptive, random, sequential)` {
		t.Errorf("unexpected error message: %s", err)
	}
}

func TestAvailableModes_Sorted(t *testing.T) {
	want := []string{"adaptive", "random", "sequential"}
	if got := quizmode.AvailableModes(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
