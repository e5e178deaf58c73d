// Package risk computes distributional risk measures (VaR, Sharpe, beta,
// volatility, drawdown) from return series, plus account-level risk-limit
// checks. All statistics are population statistics (divide by N).
//
// Degenerate-but-expected cases (empty series, zero variance) come back as
// documented sentinel values, never as panics; out-of-domain arguments
// (confidence level, mismatched series) are rejected with explicit errors.
package risk

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/dmoraes/futjournal/analytics"
	"github.com/dmoraes/futjournal/trade"
)

// TradingDaysPerYear is the annualization convention for volatility.
const TradingDaysPerYear = 252

var (
	// ErrInvalidConfidence is returned when a VaR confidence level falls
	// outside the open interval (0, 1).
	ErrInvalidConfidence = errors.New("confidence level must be in (0, 1)")

	// ErrLengthMismatch is returned when two series that must be
	// index-aligned have different lengths.
	ErrLengthMismatch = errors.New("series lengths must match")
)

// ValueAtRisk estimates historical-simulation VaR: the loss not expected to
// be exceeded at the given confidence level. It sorts a copy of returns
// ascending and negates the empirical quantile at floor((1-c)*n).
//
// An empty series is a defined degenerate case: 0 is returned with a
// diagnostic. A confidence level outside (0, 1) is a caller error.
func ValueAtRisk(returns []float64, confidence float64) (float64, error) {
	if confidence <= 0 || confidence >= 1 {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidConfidence, confidence)
	}
	if len(returns) == 0 {
		slog.Warn("value at risk: empty return series, reporting 0")
		return 0, nil
	}

	sorted := make([]float64, len(returns))
	copy(sorted, returns)
	sort.Float64s(sorted)

	idx := int(math.Floor((1 - confidence) * float64(len(sorted))))
	return -sorted[idx], nil
}

// ValueAtRiskTrades is the raw-trade entry point: it derives the daily
// return series first, then delegates to ValueAtRisk.
func ValueAtRiskTrades(trades []trade.Trade, confidence float64) (float64, error) {
	return ValueAtRisk(analytics.DailyReturns(trades), confidence)
}

// SharpeRatio is the mean excess return over riskFree, divided by the
// population standard deviation. A constant or empty return series has no
// defined Sharpe ratio and yields NaN; callers should present it as N/A.
func SharpeRatio(returns []float64, riskFree float64) float64 {
	if len(returns) == 0 {
		return math.NaN()
	}
	sd := stdDev(returns)
	if sd == 0 {
		return math.NaN()
	}
	return (mean(returns) - riskFree) / sd
}

// Beta measures the sensitivity of asset returns to market returns:
// covariance(asset, market) / variance(market). The two series must be the
// same length and already aligned index-by-index; the engine does not
// re-align by date. Zero market variance propagates as ±Inf or NaN rather
// than being silently clamped.
func Beta(asset, market []float64) (float64, error) {
	if len(asset) != len(market) {
		return 0, fmt.Errorf("%w: asset %d, market %d", ErrLengthMismatch, len(asset), len(market))
	}
	if len(asset) == 0 {
		return math.NaN(), nil
	}
	return covariance(asset, market) / variance(market), nil
}

// Volatility is the population standard deviation of returns.
// Empty input yields 0.
func Volatility(returns []float64) float64 {
	if len(returns) == 0 {
		return 0
	}
	return stdDev(returns)
}

// AnnualizedVolatility scales daily volatility by sqrt(252).
func AnnualizedVolatility(returns []float64) float64 {
	return Volatility(returns) * math.Sqrt(TradingDaysPerYear)
}

func mean(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func variance(xs []float64) float64 {
	m := mean(xs)
	sum := 0.0
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return sum / float64(len(xs))
}

func stdDev(xs []float64) float64 {
	return math.Sqrt(variance(xs))
}

func covariance(xs, ys []float64) float64 {
	mx, my := mean(xs), mean(ys)
	sum := 0.0
	for i := range xs {
		sum += (xs[i] - mx) * (ys[i] - my)
	}
	return sum / float64(len(xs))
}
