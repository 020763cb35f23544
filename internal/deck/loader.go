// Package deck loads and validates flashcard decks from JSON files.
//
// Two shapes are accepted: a top-level array of card objects, or an object
// with a "cards" key holding that array. Field values are trimmed; cards
// with missing or blank fronts/backs are rejected with the offending
// 1-based card index.
package deck

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/flashquizzer/cli/internal/domain/card"
)

type rawCard struct {
	Front *string `json:"front"`
	Back  *string `json:"back"`
}

type deckFile struct {
	Cards []rawCard `json:"cards"`
}

// Load reads the deck at path and returns its validated cards with zeroed
// exposure counters.
func Load(path string) ([]*card.Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("deck file %s: %w", path, ErrEmptySource)
		}
		return nil, fmt.Errorf("read deck file %s: %w", path, err)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("deck file %s: %w", path, ErrEmptySource)
	}

	rawCards, err := extractCards(data)
	if err != nil {
		return nil, err
	}
	return buildCards(rawCards)
}

// extractCards pulls the card list out of either recognized JSON shape.
func extractCards(data []byte) ([]rawCard, error) {
	switch data[0] {
	case '[':
		var cards []rawCard
		if err := json.Unmarshal(data, &cards); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedStructure, err)
		}
		return cards, nil
	case '{':
		var df deckFile
		if err := json.Unmarshal(data, &df); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedStructure, err)
		}
		if df.Cards == nil {
			return nil, fmt.Errorf("%w: object format requires a \"cards\" array", ErrMalformedStructure)
		}
		return df.Cards, nil
	default:
		return nil, fmt.Errorf("%w: expected a JSON array or object", ErrMalformedStructure)
	}
}

func buildCards(rawCards []rawCard) ([]*card.Card, error) {
	if len(rawCards) == 0 {
		return nil, fmt.Errorf("no flashcards found: %w", ErrEmptySource)
	}

	cards := make([]*card.Card, 0, len(rawCards))
	for i, rc := range rawCards {
		index := i + 1
		if rc.Front == nil {
			return nil, &MissingFieldError{Field: "front", CardIndex: index}
		}
		if rc.Back == nil {
			return nil, &MissingFieldError{Field: "back", CardIndex: index}
		}

		front := strings.TrimSpace(*rc.Front)
		back := strings.TrimSpace(*rc.Back)
		if front == "" {
			return nil, &EmptyFieldError{Field: "front", CardIndex: index}
		}
		if back == "" {
			return nil, &EmptyFieldError{Field: "back", CardIndex: index}
		}

		cards = append(cards, card.New(front, back))
	}
	return cards, nil
}
