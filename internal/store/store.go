package store

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("deck not found")
	ErrAlreadyExists = errors.New("deck already exists")
)

// DeckInfo describes a stored deck without its cards.
type DeckInfo struct {
	ID        string
	Name      string
	CardCount int
	CreatedAt time.Time
}
