package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmoraes/futjournal/rates"
)

var rateCmd = &cobra.Command{
	Use:   "rate",
	Short: "Show the current USD-BRL exchange rate",
	RunE:  runRate,
}

func init() {
	rootCmd.AddCommand(rateCmd)
}

func runRate(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
	defer cancel()

	rate, err := rates.NewClient().USDBRL(ctx)
	if err != nil {
		return fmt.Errorf("exchange rate: %w", err)
	}
	fmt.Printf("USD-BRL: R$ %.2f\n", rate)
	return nil
}
