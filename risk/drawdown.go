package risk

import "github.com/dmoraes/futjournal/analytics"

// DrawdownPoint is the decline from the running peak at one series point,
// as a percentage of that peak.
type DrawdownPoint struct {
	Date        string
	DrawdownPct float64
}

// DrawdownSeries walks a chronologically ordered daily result series,
// accumulating results and tracking the running peak. The peak starts at 0,
// so drawdown is measured from the highest cumulative profit ever reached,
// not from initial capital; until a positive peak exists the drawdown is
// defined as 0. The input must already be sorted; this function does not
// re-sort.
func DrawdownSeries(daily []analytics.Point) []DrawdownPoint {
	out := make([]DrawdownPoint, 0, len(daily))

	peak, cumulative := 0.0, 0.0
	for _, p := range daily {
		cumulative += p.Result
		if cumulative > peak {
			peak = cumulative
		}
		pct := 0.0
		if peak > 0 {
			pct = (peak - cumulative) / peak * 100
		}
		out = append(out, DrawdownPoint{Date: p.Date, DrawdownPct: pct})
	}
	return out
}

// MaxDrawdown returns the single largest peak-to-trough decline of the
// cumulative return series, in currency units (not percent). This is the
// scalar companion to DrawdownSeries; the two are deliberately named apart.
func MaxDrawdown(returns []float64) float64 {
	peak, cumulative, worst := 0.0, 0.0, 0.0
	for _, r := range returns {
		cumulative += r
		if cumulative > peak {
			peak = cumulative
		}
		if dd := peak - cumulative; dd > worst {
			worst = dd
		}
	}
	return worst
}

// MaxDrawdownPct returns the deepest percentage drawdown in the series.
func MaxDrawdownPct(series []DrawdownPoint) float64 {
	worst := 0.0
	for _, p := range series {
		if p.DrawdownPct > worst {
			worst = p.DrawdownPct
		}
	}
	return worst
}

// AvgDrawdownPct returns the mean percentage drawdown, 0 for an empty series.
func AvgDrawdownPct(series []DrawdownPoint) float64 {
	if len(series) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range series {
		sum += p.DrawdownPct
	}
	return sum / float64(len(series))
}
