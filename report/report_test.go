package report

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmoraes/futjournal/risk"
	"github.com/dmoraes/futjournal/trade"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func sampleTrades() []trade.Trade {
	return []trade.Trade{
		{ID: "1", Date: day("2023-05-01"), ContractType: "WIN", Quantity: 1, Result: 100},
		{ID: "2", Date: day("2023-05-02"), ContractType: "WIN", Quantity: 1, Result: -50},
		{ID: "3", Date: day("2023-05-03"), ContractType: "WDO", Quantity: 2, Result: 200},
	}
}

func TestBuild(t *testing.T) {
	t.Parallel()

	s := Build(sampleTrades(), Options{
		RiskFreeRate: 0.02,
		Policy:       risk.Policy{InitialCapital: 1800, GlobalRiskLimit: 500},
		Now:          day("2023-05-15"),
	})

	assert.Equal(t, 3, s.Stats.TotalTrades)
	assert.InDelta(t, 66.67, s.Stats.WinRate, 0.01)
	assert.InDelta(t, 6, s.Stats.ProfitFactor, 1e-9)
	assert.InDelta(t, 250, s.TotalResult, 1e-9)
	assert.InDelta(t, 250.0/3, s.AvgPerTrade, 1e-9)

	// Daily returns [100, -50, 200]; floor(0.05*3)=0 → VaR = 50.
	assert.InDelta(t, 50, s.VaR95, 1e-9)
	assert.InDelta(t, 50, s.VaR99, 1e-9)

	// No market series supplied: beta is undefined.
	assert.True(t, math.IsNaN(s.Beta))

	assert.InDelta(t, 50, s.MaxDrawdownPct, 1e-9)
	assert.InDelta(t, 250, s.MonthlyBalance, 1e-9)
	assert.True(t, s.Decision.Allowed)

	require.Equal(t, []string{"WIN", "WDO"}, s.CorrelationLabels)
	assert.Equal(t, 1.0, s.CorrelationMatrix[0][0])
}

func TestBuildEmpty(t *testing.T) {
	t.Parallel()

	s := Build(nil, Options{})
	assert.Equal(t, 0, s.Stats.TotalTrades)
	assert.InDelta(t, 0, s.VaR95, 1e-9)
	assert.True(t, math.IsNaN(s.Sharpe))
	assert.Empty(t, s.ByContract)
}

func TestPrint(t *testing.T) {
	t.Parallel()

	s := Build(sampleTrades(), Options{
		Policy: risk.Policy{InitialCapital: 1800, GlobalRiskLimit: 100},
		Now:    day("2023-06-15"), // no trades this month
	})

	var buf bytes.Buffer
	Print(&buf, s)
	out := buf.String()

	assert.Contains(t, out, "Performance Report")
	assert.Contains(t, out, "Win Rate:       66.67%")
	assert.Contains(t, out, "Profit Factor:  6.00")
	assert.Contains(t, out, "VaR (95%):      50.00")
	assert.Contains(t, out, "Beta:           N/A")
	assert.Contains(t, out, "WIN - WDO:")
}

func TestPrintShowsViolations(t *testing.T) {
	t.Parallel()

	trades := []trade.Trade{
		{ID: "1", Date: day("2023-05-01"), ContractType: "WIN", Quantity: 1, Result: -600},
	}
	s := Build(trades, Options{
		Policy: risk.Policy{InitialCapital: 1800, GlobalRiskLimit: 500},
		Now:    day("2023-05-15"),
	})

	var buf bytes.Buffer
	Print(&buf, s)
	assert.Contains(t, buf.String(), "RISK_LIMIT_REACHED")
}
