package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmoraes/futjournal/pkg/id"
	"github.com/dmoraes/futjournal/store"
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import trades from a CSV file",
	Long: `Import trades exported earlier with 'report --csv', or prepared by
hand with the same columns. Rows without an id get a fresh one; invalid
rows are skipped with a diagnostic.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	trades, err := store.ReadCSV(f)
	if err != nil {
		return fmt.Errorf("read csv: %w", err)
	}

	cfg := loadConfig()
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	imported := 0
	for _, t := range trades {
		if t.ID == "" {
			t.ID = id.New()
		}
		if err := t.Validate(); err != nil {
			slog.Warn("skipping invalid trade", "error", err)
			continue
		}
		if err := s.SaveTrade(t); err != nil {
			return fmt.Errorf("save trade %s: %w", t.ID, err)
		}
		imported++
	}

	fmt.Printf("Imported %d of %d trades from %s\n", imported, len(trades), args[0])
	return nil
}
