package risk

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmoraes/futjournal/trade"
)

func TestValueAtRisk(t *testing.T) {
	t.Parallel()

	returns := []float64{-100, -50, 0, 50, 100}

	// floor(0.05 * 5) = 0, worst return is -100, so VaR is 100.
	v, err := ValueAtRisk(returns, 0.95)
	require.NoError(t, err)
	assert.InDelta(t, 100, v, 1e-9)

	// Input order must not matter.
	shuffled := []float64{50, -100, 100, 0, -50}
	v, err = ValueAtRisk(shuffled, 0.95)
	require.NoError(t, err)
	assert.InDelta(t, 100, v, 1e-9)
	assert.Equal(t, []float64{50, -100, 100, 0, -50}, shuffled)
}

func TestValueAtRiskEmpty(t *testing.T) {
	t.Parallel()

	v, err := ValueAtRisk(nil, 0.95)
	require.NoError(t, err)
	assert.InDelta(t, 0, v, 1e-9)
}

func TestValueAtRiskInvalidConfidence(t *testing.T) {
	t.Parallel()

	for _, c := range []float64{0, 1, -0.5, 1.5} {
		_, err := ValueAtRisk([]float64{1, 2}, c)
		assert.ErrorIs(t, err, ErrInvalidConfidence)
	}
}

func TestValueAtRiskTrades(t *testing.T) {
	t.Parallel()

	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		require.NoError(t, err)
		return d
	}
	trades := []trade.Trade{
		{ID: "1", Date: day("2023-05-01"), Result: -100},
		{ID: "2", Date: day("2023-05-02"), Result: 50},
	}

	v, err := ValueAtRiskTrades(trades, 0.95)
	require.NoError(t, err)
	assert.InDelta(t, 100, v, 1e-9)
}

func TestSharpeRatio(t *testing.T) {
	t.Parallel()

	// mean = 0.05, population stddev of {0.1, 0} = 0.05
	s := SharpeRatio([]float64{0.1, 0}, 0.02)
	assert.InDelta(t, (0.05-0.02)/0.05, s, 1e-9)
}

func TestSharpeRatioDegenerate(t *testing.T) {
	t.Parallel()

	// Constant series has zero deviation; Sharpe is undefined.
	assert.True(t, math.IsNaN(SharpeRatio([]float64{5, 5, 5}, 0.02)))
	assert.True(t, math.IsNaN(SharpeRatio(nil, 0.02)))
}

func TestBeta(t *testing.T) {
	t.Parallel()

	market := []float64{0.01, -0.02, 0.03, 0.01}
	asset := make([]float64, len(market))
	for i, m := range market {
		asset[i] = 2 * m
	}

	b, err := Beta(asset, market)
	require.NoError(t, err)
	assert.InDelta(t, 2, b, 1e-9)
}

func TestBetaLengthMismatch(t *testing.T) {
	t.Parallel()

	_, err := Beta([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestBetaZeroMarketVariance(t *testing.T) {
	t.Parallel()

	// Constant market series: beta is undefined and propagates as NaN/Inf.
	b, err := Beta([]float64{0.1, 0.2}, []float64{0.01, 0.01})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(b) || math.IsInf(b, 0))
}

func TestVolatility(t *testing.T) {
	t.Parallel()

	// Population stddev of {1, -1} is 1.
	v := Volatility([]float64{1, -1})
	assert.InDelta(t, 1, v, 1e-9)

	assert.InDelta(t, math.Sqrt(252), AnnualizedVolatility([]float64{1, -1}), 1e-9)
	assert.InDelta(t, 0, Volatility(nil), 1e-9)
}
