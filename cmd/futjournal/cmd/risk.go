package cmd

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmoraes/futjournal/analytics"
	"github.com/dmoraes/futjournal/rates"
	"github.com/dmoraes/futjournal/risk"
)

var riskCmd = &cobra.Command{
	Use:   "risk",
	Short: "Show risk metrics and limit checks",
	Long: `Compute VaR, Sharpe ratio, beta, volatility and drawdown from the
journal's daily returns, and check the month's balance against the
configured risk limits.`,
	RunE: runRisk,
}

func init() {
	rootCmd.AddCommand(riskCmd)
}

func runRisk(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	trades, err := loadTrades()
	if err != nil {
		return err
	}

	returns := analytics.DailyReturns(trades)

	var95, err := risk.ValueAtRisk(returns, 0.95)
	if err != nil {
		return err
	}
	var99, err := risk.ValueAtRisk(returns, 0.99)
	if err != nil {
		return err
	}

	sharpe := risk.SharpeRatio(returns, cfg.Risk.RiskFreeRate)

	// Beta against the configured benchmark; only the simulated source
	// exists today, so the series is generated to match the return count.
	beta, err := risk.Beta(returns, rates.SimulatedMarketReturns(len(returns)))
	if err != nil {
		return err
	}

	daily, _ := analytics.BuildDailyAndAccumulated(trades)
	dd := risk.DrawdownSeries(daily)

	fmt.Printf("VaR (95%%):        %.2f\n", var95)
	fmt.Printf("VaR (99%%):        %.2f\n", var99)
	fmt.Printf("Sharpe Ratio:     %s\n", formatRatio(sharpe))
	fmt.Printf("Beta:             %s\n", formatRatio(beta))
	fmt.Printf("Daily Vol:        %.2f\n", risk.Volatility(returns))
	fmt.Printf("Annual Vol:       %.2f\n", risk.AnnualizedVolatility(returns))
	fmt.Printf("Max Drawdown:     %.2f%%\n", risk.MaxDrawdownPct(dd))
	fmt.Printf("Avg Drawdown:     %.2f%%\n", risk.AvgDrawdownPct(dd))

	policy := risk.Policy{
		InitialCapital:  cfg.Account.InitialCapital,
		GlobalRiskLimit: cfg.Risk.GlobalRiskLimit,
		GainTargetPct:   cfg.Risk.GainTargetPct,
		LossLimitPct:    cfg.Risk.LossLimitPct,
	}
	monthly := analytics.MonthlyBalance(trades, time.Now())
	decision := risk.Evaluate(policy, monthly)
	targets := policy.Targets()

	fmt.Println()
	fmt.Printf("Month Balance:    %.2f\n", monthly)
	fmt.Printf("Balance:          %.2f\n", decision.Balance)
	fmt.Printf("Gain Target:      %.2f\n", targets.GainTarget)
	fmt.Printf("Loss Limit:       %.2f\n", targets.LossLimit)
	if decision.Allowed {
		fmt.Println("Risk limits:      OK")
	} else {
		for _, v := range decision.Violations {
			fmt.Printf("Risk limits:      [%s] %s\n", v.Code, v.Msg)
		}
	}
	return nil
}

func formatRatio(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", v)
}
