package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/flashquizzer/cli/internal/deck"
	"github.com/flashquizzer/cli/internal/domain/card"
	"github.com/flashquizzer/cli/internal/filehandler"
	"github.com/flashquizzer/cli/internal/infrastructure/config"
	"github.com/flashquizzer/cli/internal/store"
	"github.com/flashquizzer/cli/internal/worker"
)

// exportedDeck is the JSON shape written by export, readable by import.
type exportedDeck struct {
	Cards []*card.Card `json:"cards"`
}

type parsedDeck struct {
	cards []*card.Card
	err   error
}

func newImportCmd(cfg *config.Config, logger *slog.Logger) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:          "import <file>...",
		Short:        "Validate deck files and store them in the library",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if name != "" && len(args) > 1 {
				return fmt.Errorf("--name applies to a single file, got %d", len(args))
			}

			db, err := store.NewSQLite(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open deck library: %w", err)
			}
			defer db.Close()

			// Parse the files on the pool, then store sequentially.
			pool := worker.NewPool[parsedDeck](3, len(args))
			for _, path := range args {
				p := path
				pool.Submit(p, func() parsedDeck {
					cards, err := deck.Load(p)
					return parsedDeck{cards: cards, err: err}
				})
			}
			pool.Close()

			parsed := make(map[string]parsedDeck, len(args))
			for r := range pool.Results() {
				parsed[r.JobID] = r.Output
			}

			failed := 0
			for _, path := range args {
				result := parsed[path]
				if result.err != nil {
					logger.Error("deck rejected", "file", path, "error", result.err)
					pterm.Error.Printf("%s: %v\n", path, result.err)
					failed++
					continue
				}

				deckName := name
				if deckName == "" {
					deckName = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
				}

				if _, err := db.SaveDeck(deckName, result.cards); err != nil {
					logger.Error("deck not stored", "deck", deckName, "error", err)
					pterm.Error.Printf("%s: %v\n", deckName, err)
					failed++
					continue
				}
				pterm.Success.Printf("Imported %q (%d cards)\n", deckName, len(result.cards))
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d deck(s) not imported", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "library name for the deck (default: file name)")
	return cmd
}

func newListCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:          "list",
		Short:        "List the decks stored in the library",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := store.NewSQLite(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open deck library: %w", err)
			}
			defer db.Close()

			decks, err := db.ListDecks()
			if err != nil {
				return err
			}
			if len(decks) == 0 {
				pterm.Info.Println("The deck library is empty. Use 'flashquiz import' to add decks.")
				return nil
			}

			tableData := pterm.TableData{{"Name", "Cards", "Created"}}
			for _, d := range decks {
				tableData = append(tableData, []string{
					d.Name,
					fmt.Sprintf("%d", d.CardCount),
					d.CreatedAt.Format("2006-01-02"),
				})
			}
			return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
		},
	}
}

func newExportCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:          "export <name>",
		Short:        "Write a stored deck to a JSON file in the data directory",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := store.NewSQLite(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open deck library: %w", err)
			}
			defer db.Close()

			cards, err := db.GetDeck(args[0])
			if err != nil {
				return err
			}

			files, err := filehandler.New(cfg.DataDir)
			if err != nil {
				return err
			}

			fileName := args[0] + ".json"
			if err := files.Save(fileName, exportedDeck{Cards: cards}); err != nil {
				return err
			}
			pterm.Success.Printf("Exported %q to %s\n", args[0], files.Path(fileName))
			return nil
		},
	}
}

func newDeleteCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:          "delete <name>",
		Short:        "Remove a deck from the library",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := store.NewSQLite(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open deck library: %w", err)
			}
			defer db.Close()

			if err := db.DeleteDeck(args[0]); err != nil {
				return err
			}
			pterm.Success.Printf("Deleted %q\n", args[0])
			return nil
		},
	}
}
