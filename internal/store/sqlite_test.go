package store_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/flashquizzer/cli/internal/domain/card"
	"github.com/flashquizzer/cli/internal/store"
)

func openStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleCards() []*card.Card {
	return []*card.Card{
		card.New("Capital of France?", "Paris"),
		card.New("2 + 2?", "4"),
	}
}

func TestSaveAndGetDeck(t *testing.T) {
	s := openStore(t)

	deckID, err := s.SaveDeck("geography", sampleCards())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if deckID == "" {
		t.Error("expected non-empty deck id")
	}

	cards, err := s.GetDeck("geography")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}
	if cards[0].Front != "Capital of France?" {
		t.Errorf("expected stored order preserved, got %q first", cards[0].Front)
	}
	if cards[0].TimesShown != 0 {
		t.Error("expected zeroed counters on loaded cards")
	}
}

func TestSaveDeck_DuplicateName(t *testing.T) {
	s := openStore(t)

	if _, err := s.SaveDeck("geography", sampleCards()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	_, err := s.SaveDeck("geography", sampleCards())
	if !errors.Is(err, store.ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestGetDeck_NotFound(t *testing.T) {
	s := openStore(t)

	_, err := s.GetDeck("nope")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListDecks(t *testing.T) {
	s := openStore(t)

	if _, err := s.SaveDeck("b-deck", sampleCards()); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SaveDeck("a-deck", sampleCards()[:1]); err != nil {
		t.Fatal(err)
	}

	decks, err := s.ListDecks()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(decks) != 2 {
		t.Fatalf("expected 2 decks, got %d", len(decks))
	}
	if decks[0].Name != "a-deck" || decks[1].Name != "b-deck" {
		t.Errorf("expected name order, got %q then %q", decks[0].Name, decks[1].Name)
	}
	if decks[0].CardCount != 1 || decks[1].CardCount != 2 {
		t.Errorf("unexpected card counts: %d and %d", decks[0].CardCount, decks[1].CardCount)
	}
}

func TestDeleteDeck(t *testing.T) {
	s := openStore(t)

	if _, err := s.SaveDeck("geography", sampleCards()); err != nil {
		t.Fatal(err)
	}

	if err := s.DeleteDeck("geography"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := s.GetDeck("geography"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	if err := s.DeleteDeck("geography"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound deleting a missing deck, got %v", err)
	}
}
