package quizmode

import (
	"fmt"
	"sort"
	"strings"

	"github.com/flashquizzer/cli/internal/domain/card"
)

const (
	ModeSequential = "sequential"
	ModeRandom     = "random"
	ModeAdaptive   = "adaptive"
)

// UnknownModeError is returned by New for an unrecognized mode name.
type UnknownModeError struct {
	Name      string
	Available []string
}

func (e *UnknownModeError) Error() string {
	return fmt.Sprintf("unknown quiz mode %q (available: %s)", e.Name, strings.Join(e.Available, ", "))
}

// New creates the quiz mode with the given name over the given cards.
// Name matching is case-insensitive.
func New(name string, cards []*card.Card) (Mode, error) {
	switch strings.ToLower(name) {
	case ModeSequential:
		return NewSequential(cards), nil
	case ModeRandom:
		return NewRandom(cards, nil), nil
	case ModeAdaptive:
		return NewAdaptive(cards), nil
	default:
		return nil, &UnknownModeError{Name: name, Available: AvailableModes()}
	}
}

// AvailableModes returns the recognized mode names sorted lexicographically.
func AvailableModes() []string {
	modes := []string{ModeSequential, ModeRandom, ModeAdaptive}
	sort.Strings(modes)
	return modes
}
