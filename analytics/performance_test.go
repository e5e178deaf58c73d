package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmoraes/futjournal/trade"
)

func TestPerformanceByContract(t *testing.T) {
	t.Parallel()

	perf := PerformanceByContract(sampleTrades())
	require.Len(t, perf, 2)

	// First-seen order.
	assert.Equal(t, "WIN", perf[0].Contract)
	assert.Equal(t, 2, perf[0].Trades)
	assert.InDelta(t, 50, perf[0].TotalResult, 1e-9)

	assert.Equal(t, "WDO", perf[1].Contract)
	assert.InDelta(t, 200, perf[1].TotalResult, 1e-9)
}

func TestBestHour(t *testing.T) {
	t.Parallel()

	trades := []trade.Trade{
		{Date: day("2023-05-01").Add(9 * time.Hour), Result: -20},
		{Date: day("2023-05-01").Add(10 * time.Hour), Result: 100},
		{Date: day("2023-05-02").Add(10 * time.Hour), Result: 50},
	}

	best, ok := BestHour(trades)
	require.True(t, ok)
	assert.Equal(t, 10, best.Hour)
	assert.Equal(t, 2, best.Trades)
	assert.InDelta(t, 150, best.TotalResult, 1e-9)

	_, ok = BestHour(nil)
	assert.False(t, ok)
}

func TestMonthlyBalance(t *testing.T) {
	t.Parallel()

	trades := []trade.Trade{
		{Date: day("2023-05-01"), Result: 100},
		{Date: day("2023-05-20"), Result: -30},
		{Date: day("2023-04-28"), Result: 999},
	}

	now := day("2023-05-15")
	assert.InDelta(t, 70, MonthlyBalance(trades, now), 1e-9)
}
