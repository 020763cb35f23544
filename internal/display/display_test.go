package display_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/flashquizzer/cli/internal/display"
)

func TestReadAnswer_ReturnsLine(t *testing.T) {
	term := display.NewTerminal(strings.NewReader("Paris\n4\n"), true)

	answer, err := term.ReadAnswer(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "Paris" {
		t.Errorf("expected %q, got %q", "Paris", answer)
	}

	answer, _ = term.ReadAnswer(context.Background())
	if answer != "4" {
		t.Errorf("expected %q, got %q", "4", answer)
	}
}

func TestReadAnswer_EOFMapsToExit(t *testing.T) {
	term := display.NewTerminal(strings.NewReader(""), true)

	answer, err := term.ReadAnswer(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "exit" {
		t.Errorf("expected %q on end of input, got %q", "exit", answer)
	}
}

func TestReadAnswer_CanceledContext(t *testing.T) {
	// A reader that never produces a line, like a user who walked away.
	blocked, _ := blockedReader()
	term := display.NewTerminal(blocked, true)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := term.ReadAnswer(ctx)
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

// blockedReader returns a reader whose Read never completes until the
// returned close function is called.
func blockedReader() (*blockingReader, func()) {
	r := &blockingReader{done: make(chan struct{})}
	return r, func() { close(r.done) }
}

type blockingReader struct {
	done chan struct{}
}

func (r *blockingReader) Read(p []byte) (int, error) {
	<-r.done
	return 0, nil
}
