// Package session drives the interactive quiz loop: it pulls cards from
// the active quiz mode, presents them through the display, judges answers,
// updates card counters, and aggregates the final statistics.
package session

import (
	"context"
	"strings"

	"github.com/flashquizzer/cli/internal/domain/card"
	"github.com/flashquizzer/cli/internal/domain/quizmode"
)

// exitToken ends the session early when typed as an answer.
const exitToken = "exit"

// Display is the terminal I/O collaborator of a session. All methods are
// side-effecting and non-failing except ReadAnswer, which blocks until a
// line arrives or ctx is canceled.
type Display interface {
	ShowQuestion(number, total int, front string)
	ReadAnswer(ctx context.Context) (string, error)
	ShowFeedback(correct bool, correctAnswer string)
	ShowStats(stats Stats, detailed bool)
	ShowInterrupted()
}

// Session runs one interactive quiz over a deck of cards.
type Session struct {
	mode     quizmode.Mode
	cards    []*card.Card
	display  Display
	detailed bool

	results        []Result
	questionNumber int
}

func New(mode quizmode.Mode, cards []*card.Card, display Display, detailedStats bool) *Session {
	return &Session{
		mode:     mode,
		cards:    cards,
		display:  display,
		detailed: detailedStats,
	}
}

// Run executes the quiz loop until the mode is exhausted, the user types
// "exit", or ctx is canceled. Cancellation is not an error: the session
// reports the results accumulated so far. The final statistics are both
// rendered through the display and returned.
func (s *Session) Run(ctx context.Context) Stats {
	for s.mode.HasMore() {
		if ctx.Err() != nil {
			s.display.ShowInterrupted()
			break
		}

		c := s.mode.Next()
		if c == nil {
			break
		}

		proceed, err := s.askQuestion(ctx, c)
		if err != nil {
			// Interrupted while waiting for input.
			s.display.ShowInterrupted()
			break
		}
		if !proceed {
			break
		}
	}

	stats := s.buildStats()
	s.display.ShowStats(stats, s.detailed)
	return stats
}

// askQuestion presents a single card and records the outcome. It returns
// false when the user asked to exit, and an error only on interruption.
func (s *Session) askQuestion(ctx context.Context, c *card.Card) (bool, error) {
	s.questionNumber++
	// The total shown to the user is the original deck size, even when
	// adaptive requeueing will ask more questions than that.
	s.display.ShowQuestion(s.questionNumber, len(s.cards), c.Front)

	answer, err := s.display.ReadAnswer(ctx)
	if err != nil {
		return false, err
	}

	// An exit request is not scored.
	if normalize(answer) == exitToken {
		return false, nil
	}

	correct := checkAnswer(answer, c.Back)

	c.TimesShown++
	if correct {
		c.TimesCorrect++
	}

	s.mode.RecordResult(c, correct)
	s.display.ShowFeedback(correct, c.Back)
	s.results = append(s.results, Result{
		Card:       c,
		UserAnswer: answer,
		IsCorrect:  correct,
	})
	return true, nil
}

// checkAnswer compares answers case-insensitively with surrounding
// whitespace ignored. No partial or fuzzy matching.
func checkAnswer(userAnswer, correctAnswer string) bool {
	return strings.EqualFold(strings.TrimSpace(userAnswer), strings.TrimSpace(correctAnswer))
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (s *Session) buildStats() Stats {
	correct := 0
	for _, r := range s.results {
		if r.IsCorrect {
			correct++
		}
	}
	return Stats{
		TotalQuestions: len(s.results),
		CorrectAnswers: correct,
		Results:        s.results,
	}
}
