package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/flashquizzer/cli/internal/deck"
	"github.com/flashquizzer/cli/internal/display"
	"github.com/flashquizzer/cli/internal/domain/card"
	"github.com/flashquizzer/cli/internal/domain/quizmode"
	"github.com/flashquizzer/cli/internal/infrastructure/config"
	"github.com/flashquizzer/cli/internal/session"
	"github.com/flashquizzer/cli/internal/store"
)

func main() {
	cfg := config.Load()
	logger := newLogger(cfg.LogLevel)

	root := newRootCmd(cfg, logger)
	root.AddCommand(
		newImportCmd(cfg, logger),
		newListCmd(cfg),
		newExportCmd(cfg),
		newDeleteCmd(cfg),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the diagnostic logger. It writes JSON to stderr so log
// lines never interleave with the interactive quiz on stdout.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func newRootCmd(cfg *config.Config, logger *slog.Logger) *cobra.Command {
	var (
		file     string
		deckName string
		mode     string
		detailed bool
		noColor  bool
	)

	cmd := &cobra.Command{
		Use:   "flashquiz",
		Short: "Learn with interactive flashcards",
		Long: "Flashcard Quizzer runs an interactive terminal quiz over a deck of\n" +
			"question/answer cards loaded from a JSON file or the local deck library.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuiz(cmd.Context(), cfg, logger, quizOptions{
				file:     file,
				deckName: deckName,
				mode:     mode,
				detailed: detailed,
				noColor:  noColor || cfg.NoColor,
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "path to a flashcard JSON file")
	cmd.Flags().StringVarP(&deckName, "deck", "d", "", "name of a deck from the library")
	cmd.Flags().StringVarP(&mode, "mode", "m", cfg.DefaultMode,
		fmt.Sprintf("quiz mode (%s)", strings.Join(quizmode.AvailableModes(), ", ")))
	cmd.Flags().BoolVar(&detailed, "stats", false, "show detailed statistics after the quiz")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")

	return cmd
}

type quizOptions struct {
	file     string
	deckName string
	mode     string
	detailed bool
	noColor  bool
}

func runQuiz(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts quizOptions) error {
	cards, source, err := resolveDeck(cfg, opts)
	if err != nil {
		return err
	}

	quizMode, err := quizmode.New(opts.mode, cards)
	if err != nil {
		return err
	}

	// SIGINT/SIGTERM end the session gracefully: the loop unwinds to the
	// statistics report with whatever was answered so far.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	term := display.NewTerminal(os.Stdin, opts.noColor)
	term.ShowWelcome(source, opts.mode, len(cards))

	stats := session.New(quizMode, cards, term, opts.detailed).Run(ctx)
	logger.Debug("session finished",
		"questions", stats.TotalQuestions,
		"correct", stats.CorrectAnswers)
	return nil
}

// resolveDeck loads the cards from --file or from the deck library,
// returning the cards and a human-readable source name.
func resolveDeck(cfg *config.Config, opts quizOptions) ([]*card.Card, string, error) {
	switch {
	case opts.file != "" && opts.deckName != "":
		return nil, "", errors.New("use either --file or --deck, not both")
	case opts.file != "":
		cards, err := deck.Load(opts.file)
		if err != nil {
			return nil, "", err
		}
		return cards, opts.file, nil
	case opts.deckName != "":
		db, err := store.NewSQLite(cfg.DBPath)
		if err != nil {
			return nil, "", fmt.Errorf("open deck library: %w", err)
		}
		defer db.Close()

		cards, err := db.GetDeck(opts.deckName)
		if err != nil {
			return nil, "", err
		}
		return cards, opts.deckName, nil
	default:
		return nil, "", errors.New("a deck is required: pass --file or --deck")
	}
}
