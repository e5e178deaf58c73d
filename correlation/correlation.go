// Package correlation computes Pearson correlations across grouped return
// series, such as per-contract daily results.
package correlation

import (
	"math"
	"sort"

	"github.com/dmoraes/futjournal/analytics"
	"github.com/dmoraes/futjournal/trade"
)

// Labeled pairs a category label with its numeric series.
type Labeled struct {
	Label  string
	Series []float64
}

// Pearson returns the Pearson correlation coefficient of x and y, paired
// index-by-index and truncated to the shorter length. A zero denominator
// (constant series, empty input) is a defined degenerate case and yields 0.
func Pearson(x, y []float64) float64 {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	if n == 0 {
		return 0
	}

	var sumX, sumY, sumXY, sumX2, sumY2 float64
	for i := 0; i < n; i++ {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumX2 += x[i] * x[i]
		sumY2 += y[i] * y[i]
	}

	fn := float64(n)
	numerator := fn*sumXY - sumX*sumY
	denominator := math.Sqrt((fn*sumX2 - sumX*sumX) * (fn*sumY2 - sumY*sumY))
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// Matrix builds the square correlation matrix over the given series, in the
// order given. Off-diagonal cells use Pearson with min-length truncation;
// the diagonal is forced to exactly 1.0 regardless of series content, as a
// defined identity (an all-zero series still correlates 1.0 with itself).
func Matrix(series []Labeled) [][]float64 {
	m := make([][]float64, len(series))
	for i := range series {
		m[i] = make([]float64, len(series))
		for j := range series {
			if i == j {
				m[i][j] = 1.0
				continue
			}
			m[i][j] = Pearson(series[i].Series, series[j].Series)
		}
	}
	return m
}

// ContractMatrix correlates per-contract daily results on a shared ascending
// date axis: every calendar day on which any of the labels traded appears in
// each series, zero-filled where a label had no trades. This avoids the
// silent misalignment that positional truncation causes under date gaps.
//
// When labels is empty, the distinct contract labels of trades are used in
// first-seen order. The returned label slice gives the matrix row order.
func ContractMatrix(trades []trade.Trade, labels []string) ([][]float64, []string) {
	if len(labels) == 0 {
		labels = trade.Contracts(trades)
	}

	byLabel := make(map[string]map[string]float64, len(labels))
	daySet := make(map[string]bool)
	for _, label := range labels {
		daily := analytics.GroupByCalendarDay(trade.ByContract(trades, label))
		byLabel[label] = daily
		for day := range daily {
			daySet[day] = true
		}
	}

	days := make([]string, 0, len(daySet))
	for day := range daySet {
		days = append(days, day)
	}
	sort.Strings(days)

	series := make([]Labeled, len(labels))
	for i, label := range labels {
		values := make([]float64, len(days))
		for j, day := range days {
			values[j] = byLabel[label][day]
		}
		series[i] = Labeled{Label: label, Series: values}
	}

	return Matrix(series), labels
}

// Interpret maps a coefficient to the report wording for its strength band.
func Interpret(r float64) string {
	switch {
	case r > 0.7:
		return "strong positive correlation"
	case r < -0.7:
		return "strong negative correlation"
	case r > 0.3:
		return "moderate positive correlation"
	case r < -0.3:
		return "moderate negative correlation"
	default:
		return "weak or no correlation"
	}
}
