package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmoraes/futjournal/trade"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List logged trades",
	Long: `List journal positions, optionally filtered by period or contract.

Examples:
  futjournal list
  futjournal list --from 2024-05-01 --to 2024-05-31
  futjournal list --contract WDO`,
	RunE: runList,
}

var editCmd = &cobra.Command{
	Use:   "edit <trade-id>",
	Short: "Update the result of a trade",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <trade-id>",
	Short: "Delete a trade",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

var (
	listFrom     string
	listTo       string
	listContract string
	editResult   float64
)

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)

	listCmd.Flags().StringVar(&listFrom, "from", "", "start date (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&listTo, "to", "", "end date (YYYY-MM-DD)")
	listCmd.Flags().StringVarP(&listContract, "contract", "c", "", "filter by contract type")

	editCmd.Flags().Float64VarP(&editResult, "result", "r", 0, "new realized result (required)")
	editCmd.MarkFlagRequired("result")
}

func runList(cmd *cobra.Command, args []string) error {
	trades, err := loadTrades()
	if err != nil {
		return err
	}

	if listFrom != "" || listTo != "" {
		start := time.Time{}
		end := time.Now().AddDate(100, 0, 0)
		if listFrom != "" {
			if start, err = parseDateArg(listFrom); err != nil {
				return fmt.Errorf("from: %w", err)
			}
		}
		if listTo != "" {
			if end, err = parseDateArg(listTo); err != nil {
				return fmt.Errorf("to: %w", err)
			}
			end = end.Add(24*time.Hour - time.Nanosecond)
		}
		trades = trade.ByPeriod(trades, start, end)
	}
	if listContract != "" {
		trades = trade.ByContract(trades, listContract)
	}

	if len(trades) == 0 {
		fmt.Println("No trades found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tCONTRACT\tQTY\tRESULT\tID")
	for _, t := range trades {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.2f\t%s\n",
			t.Day(), t.ContractType, t.Quantity, t.Result, t.ID)
	}
	fmt.Fprintf(w, "\t\t\t%.2f\ttotal\n", trade.TotalResult(trades))
	return w.Flush()
}

func runEdit(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.UpdateTradeResult(args[0], editResult); err != nil {
		return fmt.Errorf("update trade: %w", err)
	}
	fmt.Printf("Updated %s result to %.2f\n", args[0], editResult)
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.DeleteTrade(args[0]); err != nil {
		return fmt.Errorf("delete trade: %w", err)
	}
	fmt.Printf("Deleted %s\n", args[0])
	return nil
}

// loadTrades opens the store and reads the full snapshot the engines use.
func loadTrades() ([]trade.Trade, error) {
	cfg := loadConfig()
	s, err := openStore(cfg)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	trades, err := s.GetAllTrades()
	if err != nil {
		return nil, fmt.Errorf("read trades: %w", err)
	}
	return trades, nil
}
