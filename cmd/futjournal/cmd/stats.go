package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmoraes/futjournal/analytics"
	"github.com/dmoraes/futjournal/trade"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show trade statistics and streaks",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	trades, err := loadTrades()
	if err != nil {
		return err
	}

	s := analytics.TradeStatistics(trades)
	streaks := analytics.MaxStreaks(trade.SortedByDate(trades))

	fmt.Printf("Total Trades:    %d\n", s.TotalTrades)
	fmt.Printf("Winning Trades:  %d\n", s.WinningTrades)
	fmt.Printf("Losing Trades:   %d\n", s.LosingTrades)
	fmt.Printf("Win Rate:        %.2f%%\n", s.WinRate)
	fmt.Printf("Total Profit:    %.2f\n", s.TotalProfit)
	fmt.Printf("Total Loss:      %.2f\n", s.TotalLoss)
	fmt.Printf("Profit Factor:   %.2f\n", s.ProfitFactor)
	fmt.Printf("Average Win:     %.2f\n", s.AverageWin)
	fmt.Printf("Average Loss:    %.2f\n", s.AverageLoss)
	fmt.Printf("Max Win Streak:  %d\n", streaks.MaxWinStreak)
	fmt.Printf("Max Loss Streak: %d\n", streaks.MaxLossStreak)

	if best, ok := analytics.BestHour(trades); ok {
		fmt.Printf("Best Hour:       %02d:00 (%.2f over %d trades)\n",
			best.Hour, best.TotalResult, best.Trades)
	}
	return nil
}
