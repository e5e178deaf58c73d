package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dmoraes/futjournal/trade"
)

var csvHeader = []string{"id", "date", "contract_type", "quantity", "result"}

// WriteCSV exports the trade collection as a spreadsheet-friendly CSV.
func WriteCSV(w io.Writer, trades []trade.Trade) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, t := range trades {
		err := cw.Write([]string{
			t.ID,
			t.Date.Format(time.RFC3339),
			t.ContractType,
			strconv.Itoa(t.Quantity),
			strconv.FormatFloat(t.Result, 'f', 2, 64),
		})
		if err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV imports trades from a CSV produced by WriteCSV. Dates may be
// RFC 3339 or plain YYYY-MM-DD.
func ReadCSV(r io.Reader) ([]trade.Trade, error) {
	cr := csv.NewReader(r)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	var out []trade.Trade
	for i, rec := range records {
		if i == 0 && rec[0] == csvHeader[0] {
			continue
		}
		if len(rec) != len(csvHeader) {
			return nil, fmt.Errorf("row %d: expected %d fields, got %d", i+1, len(csvHeader), len(rec))
		}

		date, err := parseDate(rec[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		quantity, err := strconv.Atoi(rec[3])
		if err != nil {
			return nil, fmt.Errorf("row %d: quantity: %w", i+1, err)
		}
		result, err := strconv.ParseFloat(rec[4], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: result: %w", i+1, err)
		}

		out = append(out, trade.Trade{
			ID:           rec[0],
			Date:         date,
			ContractType: rec[2],
			Quantity:     quantity,
			Result:       result,
		})
	}
	return out, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
