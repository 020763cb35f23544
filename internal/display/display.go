// Package display renders the quiz on the terminal and collects typed
// answers. It is the only package that prints.
package display

import (
	"bufio"
	"context"
	"io"
	"os"
	"sync"

	"github.com/pterm/pterm"

	"github.com/flashquizzer/cli/internal/session"
)

// Terminal implements session.Display on top of pterm. Input is read from
// an injectable reader (stdin in production) by a single background
// goroutine, so a blocked read can be abandoned when the context is
// canceled.
type Terminal struct {
	in    io.Reader
	once  sync.Once
	lines chan string
}

func NewTerminal(in io.Reader, noColor bool) *Terminal {
	if in == nil {
		in = os.Stdin
	}
	if noColor {
		pterm.DisableColor()
	}
	return &Terminal{in: in}
}

// startReader launches the line-reading goroutine on first use. The
// channel is closed on EOF or read error.
func (t *Terminal) startReader() {
	t.once.Do(func() {
		t.lines = make(chan string)
		go func() {
			defer close(t.lines)
			scanner := bufio.NewScanner(t.in)
			for scanner.Scan() {
				t.lines <- scanner.Text()
			}
		}()
	})
}

func (t *Terminal) ShowWelcome(source, mode string, cardCount int) {
	pterm.DefaultSection.Println("Flashcard Quizzer")
	pterm.Printf("Deck: %s\n", source)
	pterm.Printf("Mode: %s\n", mode)
	pterm.Printf("Cards: %d\n", cardCount)
	pterm.FgGray.Println("Type 'exit' to quit at any time.")
	pterm.Println()
}

func (t *Terminal) ShowQuestion(number, total int, front string) {
	pterm.Println()
	pterm.Printf("%s %s\n", pterm.FgGray.Sprintf("[%d/%d]", number, total), pterm.FgCyan.Sprint(front))
}

// ReadAnswer blocks until a full input line arrives or ctx is canceled.
// End of input maps to the literal answer "exit".
func (t *Terminal) ReadAnswer(ctx context.Context) (string, error) {
	t.startReader()
	pterm.Print("Your answer: ")

	select {
	case line, ok := <-t.lines:
		if !ok {
			pterm.Println()
			return "exit", nil
		}
		return line, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (t *Terminal) ShowFeedback(correct bool, correctAnswer string) {
	if correct {
		pterm.Success.Println("Correct!")
	} else {
		pterm.Error.Printf("Incorrect. Answer: %s\n", correctAnswer)
	}
}

func (t *Terminal) ShowStats(stats session.Stats, detailed bool) {
	pterm.Println()
	pterm.DefaultSection.Println("Session Results")
	pterm.Printf("Score: %d/%d (%.1f%%)\n",
		stats.CorrectAnswers, stats.TotalQuestions, stats.AccuracyPercent())

	missed := stats.MissedCards()
	if detailed && len(missed) > 0 {
		pterm.Println()
		pterm.FgYellow.Println("Cards to review:")
		for _, c := range missed {
			pterm.Printf("  - %s -> %s\n", c.Front, c.Back)
		}
	}
}

func (t *Terminal) ShowInterrupted() {
	pterm.Println()
	pterm.FgYellow.Println("Quiz interrupted. Showing results so far...")
}
