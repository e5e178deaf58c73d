// Package trade defines the journaled trade record and collection helpers.
package trade

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Trade is one logged futures execution. Result is the realized P/L in
// account currency (profit positive, loss negative) and is the only field
// the analytics engines depend on. ContractType is an open label set
// ("WIN", "WDO", ...); new contract symbols need no code change.
type Trade struct {
	ID           string    `json:"id" yaml:"id"`
	Date         time.Time `json:"date" yaml:"date"`
	ContractType string    `json:"contract_type" yaml:"contract_type"`
	Quantity     int       `json:"quantity" yaml:"quantity"`
	Result       float64   `json:"result" yaml:"result"`
}

// Validate reports whether the trade may participate in aggregation.
// A trade with a zero date or a non-finite result is excluded from every
// engine; callers skip it with a diagnostic rather than aborting the batch.
func (t Trade) Validate() error {
	if t.Date.IsZero() {
		return fmt.Errorf("trade %q: missing date", t.ID)
	}
	if math.IsNaN(t.Result) || math.IsInf(t.Result, 0) {
		return fmt.Errorf("trade %q: result is not finite", t.ID)
	}
	if t.Quantity < 0 {
		return fmt.Errorf("trade %q: negative quantity %d", t.ID, t.Quantity)
	}
	return nil
}

// Day returns the trade's date truncated to calendar-day granularity.
func (t Trade) Day() string {
	return t.Date.Format("2006-01-02")
}

// SortedByDate returns a copy of trades ordered by ascending date.
// The sort is stable: trades sharing a date keep their original order.
// The input slice is never mutated.
func SortedByDate(trades []Trade) []Trade {
	out := make([]Trade, len(trades))
	copy(out, trades)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// ByPeriod returns the trades whose date falls within [start, end].
func ByPeriod(trades []Trade, start, end time.Time) []Trade {
	var out []Trade
	for _, t := range trades {
		if t.Date.Before(start) || t.Date.After(end) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// ByContract returns the trades for a single contract label.
func ByContract(trades []Trade, label string) []Trade {
	var out []Trade
	for _, t := range trades {
		if t.ContractType == label {
			out = append(out, t)
		}
	}
	return out
}

// Contracts returns the distinct contract labels in first-seen order.
func Contracts(trades []Trade) []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range trades {
		if t.ContractType == "" || seen[t.ContractType] {
			continue
		}
		seen[t.ContractType] = true
		out = append(out, t.ContractType)
	}
	return out
}

// TotalResult sums the result of every trade in the slice.
func TotalResult(trades []Trade) float64 {
	sum := 0.0
	for _, t := range trades {
		sum += t.Result
	}
	return sum
}
