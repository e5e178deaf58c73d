package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmoraes/futjournal/analytics"
)

func TestDrawdownSeries(t *testing.T) {
	t.Parallel()

	daily := []analytics.Point{
		{Date: "2023-05-01", Result: 100},
		{Date: "2023-05-02", Result: -50},
		{Date: "2023-05-03", Result: 200},
	}

	// Cumulative [100, 50, 250], peaks [100, 100, 250].
	dd := DrawdownSeries(daily)
	require.Len(t, dd, 3)
	assert.InDelta(t, 0, dd[0].DrawdownPct, 1e-9)
	assert.InDelta(t, 50, dd[1].DrawdownPct, 1e-9)
	assert.InDelta(t, 0, dd[2].DrawdownPct, 1e-9)

	assert.InDelta(t, 50, MaxDrawdownPct(dd), 1e-9)
	assert.InDelta(t, 50.0/3, AvgDrawdownPct(dd), 1e-9)
}

func TestDrawdownSeriesNeverProfitable(t *testing.T) {
	t.Parallel()

	daily := []analytics.Point{
		{Date: "2023-05-01", Result: -100},
		{Date: "2023-05-02", Result: -50},
	}

	// Peak never rises above 0, so drawdown is defined as 0 throughout.
	for _, p := range DrawdownSeries(daily) {
		assert.InDelta(t, 0, p.DrawdownPct, 1e-9)
	}
}

func TestMaxDrawdown(t *testing.T) {
	t.Parallel()

	// Cumulative [100, 50, 250]: deepest decline from peak is 50 currency units.
	assert.InDelta(t, 50, MaxDrawdown([]float64{100, -50, 200}), 1e-9)
	assert.InDelta(t, 0, MaxDrawdown(nil), 1e-9)
	assert.InDelta(t, 0, MaxDrawdown([]float64{10, 20}), 1e-9)
}

func TestAvgDrawdownPctEmpty(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0, AvgDrawdownPct(nil), 1e-9)
}
