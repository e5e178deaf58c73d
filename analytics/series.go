// Package analytics turns a raw trade list into ordered series and summary
// statistics. Every function is pure: inputs are treated as read-only and
// outputs are freshly allocated, so independent callers may run concurrently
// without coordination.
package analytics

import (
	"log/slog"
	"sort"

	"github.com/dmoraes/futjournal/trade"
)

// Point is one entry of a daily or accumulated series.
type Point struct {
	Date   string
	Result float64
}

// BuildDailyAndAccumulated sorts a copy of trades by ascending date (stable,
// ties keep their original order) and produces two series of equal length:
// daily holds one point per trade in sorted order, accumulated holds the
// running sum. Empty input yields empty slices, not an error.
//
// Each trade contributes its own point; same-day trades are NOT merged here.
// Consumers that want calendar-day granularity use GroupByCalendarDay or
// DailyReturns instead.
func BuildDailyAndAccumulated(trades []trade.Trade) (daily, accumulated []Point) {
	sorted := trade.SortedByDate(trades)

	daily = make([]Point, 0, len(sorted))
	accumulated = make([]Point, 0, len(sorted))

	sum := 0.0
	for _, t := range sorted {
		sum += t.Result
		daily = append(daily, Point{Date: t.Day(), Result: t.Result})
		accumulated = append(accumulated, Point{Date: t.Day(), Result: sum})
	}
	return daily, accumulated
}

// GroupByCalendarDay sums trade results per calendar day, dropping the
// time-of-day component. Invalid trades (missing date, non-finite result)
// are skipped with a diagnostic, never a fatal error. Map iteration order is
// unspecified; callers needing chronology must sort the keys themselves.
func GroupByCalendarDay(trades []trade.Trade) map[string]float64 {
	totals := make(map[string]float64)
	for _, t := range trades {
		if err := t.Validate(); err != nil {
			slog.Warn("skipping invalid trade", "error", err)
			continue
		}
		totals[t.Day()] += t.Result
	}
	return totals
}

// DailyReturns returns the per-day result sums in ascending date order.
// This is the canonical return series fed to the risk engine: one value per
// distinct trading day, chronological, invalid trades skipped.
func DailyReturns(trades []trade.Trade) []float64 {
	totals := GroupByCalendarDay(trades)
	if len(totals) == 0 {
		return nil
	}

	days := make([]string, 0, len(totals))
	for day := range totals {
		days = append(days, day)
	}
	// The YYYY-MM-DD format sorts lexicographically in date order.
	sort.Strings(days)

	out := make([]float64, 0, len(days))
	for _, day := range days {
		out = append(out, totals[day])
	}
	return out
}
