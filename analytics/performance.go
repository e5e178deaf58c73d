package analytics

import (
	"sort"
	"time"

	"github.com/dmoraes/futjournal/trade"
)

// ContractPerformance aggregates results for one contract label.
type ContractPerformance struct {
	Contract    string
	Trades      int
	TotalResult float64
}

// PerformanceByContract sums results per contract label, returned in
// first-seen order so report output is stable run to run.
func PerformanceByContract(trades []trade.Trade) []ContractPerformance {
	index := make(map[string]int)
	var out []ContractPerformance

	for _, t := range trades {
		i, ok := index[t.ContractType]
		if !ok {
			i = len(out)
			index[t.ContractType] = i
			out = append(out, ContractPerformance{Contract: t.ContractType})
		}
		out[i].Trades++
		out[i].TotalResult += t.Result
	}
	return out
}

// HourPerformance aggregates results for one hour of the trading day.
type HourPerformance struct {
	Hour        int
	Trades      int
	TotalResult float64
}

// PerformanceByHour sums results per hour-of-day, ascending by hour.
// Useful for spotting the session window where the strategy actually works.
func PerformanceByHour(trades []trade.Trade) []HourPerformance {
	totals := make(map[int]*HourPerformance)
	for _, t := range trades {
		h := t.Date.Hour()
		p, ok := totals[h]
		if !ok {
			p = &HourPerformance{Hour: h}
			totals[h] = p
		}
		p.Trades++
		p.TotalResult += t.Result
	}

	out := make([]HourPerformance, 0, len(totals))
	for _, p := range totals {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Hour < out[j].Hour })
	return out
}

// BestHour returns the hour with the highest total result. The boolean is
// false for an empty trade list.
func BestHour(trades []trade.Trade) (HourPerformance, bool) {
	perf := PerformanceByHour(trades)
	if len(perf) == 0 {
		return HourPerformance{}, false
	}
	best := perf[0]
	for _, p := range perf[1:] {
		if p.TotalResult > best.TotalResult {
			best = p
		}
	}
	return best, true
}

// MonthlyBalance sums the results of trades dated in the same calendar month
// as now. The dashboard compares this against the global risk limit.
func MonthlyBalance(trades []trade.Trade, now time.Time) float64 {
	sum := 0.0
	for _, t := range trades {
		if t.Date.Year() == now.Year() && t.Date.Month() == now.Month() {
			sum += t.Result
		}
	}
	return sum
}
