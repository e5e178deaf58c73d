package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmoraes/futjournal/pkg/id"
	"github.com/dmoraes/futjournal/trade"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a trade",
	Long: `Log one futures trade into the journal.

Examples:
  futjournal add --contract WIN --quantity 2 --result 150.00
  futjournal add --contract WDO --quantity 1 --result -35.50 --date 2024-05-02`,
	RunE: runAdd,
}

var (
	addContract string
	addQuantity int
	addResult   float64
	addDate     string
)

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVarP(&addContract, "contract", "c", "", "contract type, e.g. WIN or WDO (required)")
	addCmd.Flags().IntVarP(&addQuantity, "quantity", "q", 1, "number of contracts")
	addCmd.Flags().Float64VarP(&addResult, "result", "r", 0, "realized result, profit positive (required)")
	addCmd.Flags().StringVar(&addDate, "date", "", "trade date (YYYY-MM-DD or RFC 3339, default now)")
	addCmd.MarkFlagRequired("contract")
	addCmd.MarkFlagRequired("result")
}

func runAdd(cmd *cobra.Command, args []string) error {
	date := time.Now()
	if addDate != "" {
		var err error
		date, err = parseDateArg(addDate)
		if err != nil {
			return fmt.Errorf("date: %w", err)
		}
	}

	t := trade.Trade{
		ID:           id.New(),
		Date:         date,
		ContractType: addContract,
		Quantity:     addQuantity,
		Result:       addResult,
	}
	if err := t.Validate(); err != nil {
		return err
	}

	cfg := loadConfig()
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.SaveTrade(t); err != nil {
		return fmt.Errorf("save trade: %w", err)
	}

	fmt.Printf("Logged %s %s x%d result %.2f (%s)\n",
		t.Day(), t.ContractType, t.Quantity, t.Result, t.ID)
	return nil
}

func parseDateArg(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}
