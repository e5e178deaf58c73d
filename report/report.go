// Package report assembles engine outputs into display and export artifacts.
// It owns formatting only; every number comes from the analytics, risk, and
// correlation engines.
package report

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/dmoraes/futjournal/analytics"
	"github.com/dmoraes/futjournal/correlation"
	"github.com/dmoraes/futjournal/risk"
	"github.com/dmoraes/futjournal/trade"
)

// Options tunes the summary computation.
type Options struct {
	RiskFreeRate  float64   // for the Sharpe ratio, annual, e.g. 0.02
	MarketReturns []float64 // aligned benchmark series for beta; optional
	Policy        risk.Policy
	Now           time.Time // reference for the monthly balance
}

// Summary is the full analysis of a trade set, ready for rendering.
type Summary struct {
	Stats   analytics.Stats
	Streaks analytics.Streaks

	TotalResult float64
	AvgPerTrade float64

	VaR95  float64
	VaR99  float64
	Sharpe float64
	Beta   float64 // NaN when no market series was supplied

	DailyVolatility  float64
	AnnualVolatility float64

	MaxDrawdownPct float64
	AvgDrawdownPct float64

	ByContract []analytics.ContractPerformance

	MonthlyBalance float64
	Decision       risk.Decision

	CorrelationLabels []string
	CorrelationMatrix [][]float64
}

// Build runs every engine over trades and collects the results. It never
// fails: degenerate statistics surface as their documented sentinels.
func Build(trades []trade.Trade, opts Options) Summary {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	s := Summary{
		Stats:       analytics.TradeStatistics(trades),
		Streaks:     analytics.MaxStreaks(trade.SortedByDate(trades)),
		TotalResult: trade.TotalResult(trades),
		ByContract:  analytics.PerformanceByContract(trades),
	}
	if s.Stats.TotalTrades > 0 {
		s.AvgPerTrade = s.TotalResult / float64(s.Stats.TotalTrades)
	}

	returns := analytics.DailyReturns(trades)
	// Confidence levels are fixed in-range, so the error cannot fire here.
	s.VaR95, _ = risk.ValueAtRisk(returns, 0.95)
	s.VaR99, _ = risk.ValueAtRisk(returns, 0.99)
	s.Sharpe = risk.SharpeRatio(returns, opts.RiskFreeRate)
	s.DailyVolatility = risk.Volatility(returns)
	s.AnnualVolatility = risk.AnnualizedVolatility(returns)

	s.Beta = math.NaN()
	if len(opts.MarketReturns) == len(returns) && len(returns) > 0 {
		s.Beta, _ = risk.Beta(returns, opts.MarketReturns)
	}

	daily, _ := analytics.BuildDailyAndAccumulated(trades)
	dd := risk.DrawdownSeries(daily)
	s.MaxDrawdownPct = risk.MaxDrawdownPct(dd)
	s.AvgDrawdownPct = risk.AvgDrawdownPct(dd)

	s.MonthlyBalance = analytics.MonthlyBalance(trades, now)
	s.Decision = risk.Evaluate(opts.Policy, s.MonthlyBalance)

	s.CorrelationMatrix, s.CorrelationLabels = correlation.ContractMatrix(trades, nil)

	return s
}

// Print renders the summary as a plain-text report.
func Print(w io.Writer, s Summary) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Performance Report")
	fmt.Fprintln(w, "==================================================")

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Trade Statistics")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Trades:         %d\n", s.Stats.TotalTrades)
	fmt.Fprintf(w, "Wins:           %d\n", s.Stats.WinningTrades)
	fmt.Fprintf(w, "Losses:         %d\n", s.Stats.LosingTrades)
	fmt.Fprintf(w, "Win Rate:       %.2f%%\n", s.Stats.WinRate)
	fmt.Fprintf(w, "Profit Factor:  %s\n", ratio(s.Stats.ProfitFactor))
	fmt.Fprintf(w, "Average Win:    %.2f\n", s.Stats.AverageWin)
	fmt.Fprintf(w, "Average Loss:   %.2f\n", s.Stats.AverageLoss)
	fmt.Fprintf(w, "Max Win Streak: %d\n", s.Streaks.MaxWinStreak)
	fmt.Fprintf(w, "Max Loss Streak: %d\n", s.Streaks.MaxLossStreak)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Performance")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Total Result:   %.2f\n", s.TotalResult)
	fmt.Fprintf(w, "Avg per Trade:  %.2f\n", s.AvgPerTrade)
	fmt.Fprintf(w, "Month Balance:  %.2f\n", s.MonthlyBalance)
	for _, c := range s.ByContract {
		fmt.Fprintf(w, "%-15s %.2f (%d trades)\n", c.Contract+":", c.TotalResult, c.Trades)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Risk Metrics")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "VaR (95%%):      %.2f\n", s.VaR95)
	fmt.Fprintf(w, "VaR (99%%):      %.2f\n", s.VaR99)
	fmt.Fprintf(w, "Sharpe Ratio:   %s\n", ratio(s.Sharpe))
	fmt.Fprintf(w, "Beta:           %s\n", ratio(s.Beta))
	fmt.Fprintf(w, "Daily Vol:      %.2f\n", s.DailyVolatility)
	fmt.Fprintf(w, "Annual Vol:     %.2f\n", s.AnnualVolatility)
	fmt.Fprintf(w, "Max Drawdown:   %.2f%%\n", s.MaxDrawdownPct)
	fmt.Fprintf(w, "Avg Drawdown:   %.2f%%\n", s.AvgDrawdownPct)

	if len(s.CorrelationLabels) > 1 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Correlation")
		fmt.Fprintln(w, "--------------------------------------------------")
		for i := 0; i < len(s.CorrelationLabels); i++ {
			for j := i + 1; j < len(s.CorrelationLabels); j++ {
				r := s.CorrelationMatrix[i][j]
				fmt.Fprintf(w, "%s - %s: %.2f (%s)\n",
					s.CorrelationLabels[i], s.CorrelationLabels[j],
					r, correlation.Interpret(r))
			}
		}
	}

	if len(s.Decision.Violations) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Risk Limits")
		fmt.Fprintln(w, "--------------------------------------------------")
		for _, v := range s.Decision.Violations {
			fmt.Fprintf(w, "- [%s] %s\n", v.Code, v.Msg)
		}
	}

	fmt.Fprintln(w)
}

// ratio formats a possibly-degenerate ratio, rendering NaN and Inf as N/A.
func ratio(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", v)
}
