package analytics

import (
	"math"

	"github.com/dmoraes/futjournal/trade"
)

// ProfitFactorCeiling is returned when a trade set has gross profit but no
// gross loss. A finite ceiling keeps reports and exports well-formed where
// infinity would not be.
const ProfitFactorCeiling = 100

// Stats summarizes a trade list. Degenerate denominators resolve to 0:
// WinRate is 0 with no trades, AverageWin/AverageLoss are 0 with no
// winners/losers, ProfitFactor is 0 when both gross totals are 0 and
// ProfitFactorCeiling when there is profit but no loss.
type Stats struct {
	TotalTrades   int
	WinningTrades int
	LosingTrades  int
	WinRate       float64 // percent
	TotalProfit   float64
	TotalLoss     float64 // reported as a positive magnitude
	ProfitFactor  float64
	AverageWin    float64
	AverageLoss   float64 // positive magnitude
}

// TradeStatistics computes summary statistics over trades, in any order.
// A trade with result exactly 0 counts toward neither wins nor losses.
func TradeStatistics(trades []trade.Trade) Stats {
	s := Stats{TotalTrades: len(trades)}

	for _, t := range trades {
		switch {
		case t.Result > 0:
			s.WinningTrades++
			s.TotalProfit += t.Result
		case t.Result < 0:
			s.LosingTrades++
			s.TotalLoss += -t.Result
		}
	}

	if s.TotalTrades > 0 {
		s.WinRate = float64(s.WinningTrades) / float64(s.TotalTrades) * 100
	}
	switch {
	case s.TotalLoss > 0:
		s.ProfitFactor = s.TotalProfit / s.TotalLoss
	case s.TotalProfit > 0:
		s.ProfitFactor = ProfitFactorCeiling
	}
	if s.WinningTrades > 0 {
		s.AverageWin = s.TotalProfit / float64(s.WinningTrades)
	}
	if s.LosingTrades > 0 {
		s.AverageLoss = s.TotalLoss / float64(s.LosingTrades)
	}
	return s
}

// Streaks holds the longest runs of consecutive wins and losses.
type Streaks struct {
	MaxWinStreak  int
	MaxLossStreak int
}

// MaxStreaks walks trades in the order given; callers wanting chronological
// streaks must sort first. A result of exactly 0 resets both counters,
// breaking any run in progress.
func MaxStreaks(trades []trade.Trade) Streaks {
	var s Streaks
	winRun, lossRun := 0, 0

	for _, t := range trades {
		switch {
		case t.Result > 0:
			winRun++
			lossRun = 0
			if winRun > s.MaxWinStreak {
				s.MaxWinStreak = winRun
			}
		case t.Result < 0:
			lossRun++
			winRun = 0
			if lossRun > s.MaxLossStreak {
				s.MaxLossStreak = lossRun
			}
		default:
			winRun, lossRun = 0, 0
		}
	}
	return s
}

// PercentagePL is the profit/loss over the period as a percentage of the
// initial capital. Returns NaN when initialCapital is 0.
func PercentagePL(trades []trade.Trade, initialCapital float64) float64 {
	if initialCapital == 0 {
		return math.NaN()
	}
	return trade.TotalResult(trades) / initialCapital * 100
}
