package deck

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySource means the deck file is missing, empty, or has no cards.
	ErrEmptySource = errors.New("deck source is empty")

	// ErrMalformedStructure means the file is not valid JSON or is not one
	// of the recognized deck shapes.
	ErrMalformedStructure = errors.New("malformed deck structure")
)

// MissingFieldError reports a card without a required field.
// CardIndex is 1-based.
type MissingFieldError struct {
	Field     string
	CardIndex int
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("card %d: missing required field %q", e.CardIndex, e.Field)
}

// EmptyFieldError reports a card whose required field is blank after
// trimming whitespace. CardIndex is 1-based.
type EmptyFieldError struct {
	Field     string
	CardIndex int
}

func (e *EmptyFieldError) Error() string {
	return fmt.Sprintf("card %d: field %q is empty", e.CardIndex, e.Field)
}
