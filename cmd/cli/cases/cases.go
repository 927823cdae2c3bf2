// Package cases provides maintenance commands for the stored case history.
package cases

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/myrjola/thejury/internal/casefile"
	"github.com/myrjola/thejury/internal/sqlite"
	"github.com/spf13/cobra"
)

var Group = &cobra.Group{
	ID:    "cases",
	Title: "Case history",
}

var dbURL string

func init() {
	for _, cmd := range []*cobra.Command{List, Export, Clear} {
		cmd.Flags().StringVar(&dbURL, "sqlite-url", "./thejury.sqlite", "SQLite URL")
	}
}

// openStore connects to the database and hydrates the case file store.
func openStore(cmd *cobra.Command) (*casefile.Store, error) {
	ctx := cmd.Context()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{ //nolint:exhaustruct
		Level: slog.LevelWarn,
	}))

	db, err := sqlite.NewDatabase(ctx, dbURL, logger)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	records := casefile.NewSQLiteRecordStore(db, casefile.DefaultMaxBytes)
	return casefile.NewStore(ctx, records, logger)
}

var List = &cobra.Command{ //nolint:exhaustruct
	Use:     "list",
	GroupID: "cases",
	Short:   "List stored case files",
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		for _, caseFile := range store.List(cmd.Context()) {
			cmd.Printf("%s\t%s\t%s\n",
				caseFile.ID, caseFile.CreatedAt.Format("2006-01-02 15:04"), caseFile.Name)
		}
		return nil
	},
}

var Export = &cobra.Command{ //nolint:exhaustruct
	Use:     "export",
	GroupID: "cases",
	Short:   "Export the case history as JSON",
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(store.List(cmd.Context()))
	},
}

var Clear = &cobra.Command{ //nolint:exhaustruct
	Use:     "clear",
	GroupID: "cases",
	Short:   "Wipe the whole case history",
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		return store.Clear(cmd.Context())
	},
}
