package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmoraes/futjournal/correlation"
)

var correlationCmd = &cobra.Command{
	Use:   "correlation [label ...]",
	Short: "Show the correlation matrix across contract types",
	Long: `Correlate per-contract daily results on a shared date axis.

Without arguments, every contract label in the journal is included.

Example:
  futjournal correlation WIN WDO`,
	RunE: runCorrelation,
}

func init() {
	rootCmd.AddCommand(correlationCmd)
}

func runCorrelation(cmd *cobra.Command, args []string) error {
	trades, err := loadTrades()
	if err != nil {
		return err
	}

	matrix, labels := correlation.ContractMatrix(trades, args)
	if len(labels) < 2 {
		fmt.Println("Need at least two contract types to correlate.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprint(w, " ")
	for _, label := range labels {
		fmt.Fprintf(w, "\t%s", label)
	}
	fmt.Fprintln(w)
	for i, label := range labels {
		fmt.Fprint(w, label)
		for j := range labels {
			fmt.Fprintf(w, "\t%.2f", matrix[i][j])
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	for i := 0; i < len(labels); i++ {
		for j := i + 1; j < len(labels); j++ {
			r := matrix[i][j]
			fmt.Printf("%s - %s: %.2f, %s\n", labels[i], labels[j], r, correlation.Interpret(r))
		}
	}
	return nil
}
