// internal/store/sqlite.go
package store

import (
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"github.com/flashquizzer/cli/internal/domain/card"
	"github.com/flashquizzer/cli/internal/id"
)

const schema = `
CREATE TABLE IF NOT EXISTS decks (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS cards (
    id TEXT PRIMARY KEY,
    deck_id TEXT NOT NULL,
    front TEXT NOT NULL,
    back TEXT NOT NULL,
    position INTEGER NOT NULL,
    FOREIGN KEY (deck_id) REFERENCES decks(id) ON DELETE CASCADE
);
`

// SQLiteStore is the local deck library. It stores deck content only;
// session results and card counters are never persisted.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveDeck stores a named deck and returns its generated id. The deck name
// must be unique in the library.
func (s *SQLiteStore) SaveDeck(name string, cards []*card.Card) (string, error) {
	var existing string
	err := s.db.QueryRow("SELECT id FROM decks WHERE name = ?", name).Scan(&existing)
	if err == nil {
		return "", ErrAlreadyExists
	}
	if err != sql.ErrNoRows {
		return "", err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	deckID := id.GenerateID()
	_, err = tx.Exec("INSERT INTO decks (id, name, created_at) VALUES (?, ?, ?)",
		deckID, name, time.Now().UTC())
	if err != nil {
		return "", err
	}

	for i, c := range cards {
		_, err = tx.Exec("INSERT INTO cards (id, deck_id, front, back, position) VALUES (?, ?, ?, ?, ?)",
			id.GenerateID(), deckID, c.Front, c.Back, i)
		if err != nil {
			return "", err
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return deckID, nil
}

// GetDeck returns the cards of the named deck in stored order, with zeroed
// exposure counters.
func (s *SQLiteStore) GetDeck(name string) ([]*card.Card, error) {
	var deckID string
	err := s.db.QueryRow("SELECT id FROM decks WHERE name = ?", name).Scan(&deckID)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query("SELECT front, back FROM cards WHERE deck_id = ? ORDER BY position", deckID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []*card.Card
	for rows.Next() {
		var front, back string
		if err := rows.Scan(&front, &back); err != nil {
			return nil, err
		}
		cards = append(cards, card.New(front, back))
	}
	return cards, rows.Err()
}

// ListDecks returns all stored decks ordered by name.
func (s *SQLiteStore) ListDecks() ([]DeckInfo, error) {
	rows, err := s.db.Query(`
		SELECT d.id, d.name, d.created_at, COUNT(c.id)
		FROM decks d
		LEFT JOIN cards c ON c.deck_id = d.id
		GROUP BY d.id
		ORDER BY d.name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var decks []DeckInfo
	for rows.Next() {
		var info DeckInfo
		if err := rows.Scan(&info.ID, &info.Name, &info.CreatedAt, &info.CardCount); err != nil {
			return nil, err
		}
		decks = append(decks, info)
	}
	return decks, rows.Err()
}

// DeleteDeck removes the named deck and its cards.
func (s *SQLiteStore) DeleteDeck(name string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var deckID string
	err = tx.QueryRow("SELECT id FROM decks WHERE name = ?", name).Scan(&deckID)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM cards WHERE deck_id = ?", deckID); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM decks WHERE id = ?", deckID); err != nil {
		return err
	}

	return tx.Commit()
}
