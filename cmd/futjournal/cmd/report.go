package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmoraes/futjournal/analytics"
	"github.com/dmoraes/futjournal/rates"
	"github.com/dmoraes/futjournal/report"
	"github.com/dmoraes/futjournal/risk"
	"github.com/dmoraes/futjournal/store"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a full performance report",
	Long: `Assemble statistics, risk metrics and correlations into one report.

Examples:
  futjournal report
  futjournal report --csv trades.csv`,
	RunE: runReport,
}

var reportCSVPath string

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVar(&reportCSVPath, "csv", "", "also export the trade list to this CSV file")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	trades, err := loadTrades()
	if err != nil {
		return err
	}

	returns := analytics.DailyReturns(trades)
	summary := report.Build(trades, report.Options{
		RiskFreeRate:  cfg.Risk.RiskFreeRate,
		MarketReturns: rates.SimulatedMarketReturns(len(returns)),
		Policy: risk.Policy{
			InitialCapital:  cfg.Account.InitialCapital,
			GlobalRiskLimit: cfg.Risk.GlobalRiskLimit,
			GainTargetPct:   cfg.Risk.GainTargetPct,
			LossLimitPct:    cfg.Risk.LossLimitPct,
		},
	})

	report.Print(os.Stdout, summary)

	if reportCSVPath != "" {
		f, err := os.Create(reportCSVPath)
		if err != nil {
			return fmt.Errorf("create csv: %w", err)
		}
		defer f.Close()
		if err := store.WriteCSV(f, trades); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
		fmt.Printf("Exported %d trades to %s\n", len(trades), reportCSVPath)
	}
	return nil
}
