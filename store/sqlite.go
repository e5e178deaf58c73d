package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/dmoraes/futjournal/trade"
)

// SQLite is the durable trade store.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (creating if needed) the journal database at path.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) SaveTrade(t trade.Trade) error {
	_, err := s.db.Exec(`
		INSERT INTO trades (id, date, contract_type, quantity, result)
		VALUES (?, ?, ?, ?, ?)`,
		t.ID, t.Date, t.ContractType, t.Quantity, t.Result,
	)
	return err
}

// GetAllTrades returns every trade ordered by date, then ID. ULIDs are
// time-sortable, so the tiebreak keeps same-date trades in insertion order.
func (s *SQLite) GetAllTrades() ([]trade.Trade, error) {
	rows, err := s.db.Query(`
		SELECT id, date, contract_type, quantity, result
		FROM trades
		ORDER BY date ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTrades(rows)
}

// GetTrade returns a single trade by ID.
func (s *SQLite) GetTrade(id string) (trade.Trade, error) {
	row := s.db.QueryRow(`
		SELECT id, date, contract_type, quantity, result
		FROM trades
		WHERE id = ?`, id)

	var t trade.Trade
	err := row.Scan(&t.ID, &t.Date, &t.ContractType, &t.Quantity, &t.Result)
	if err != nil {
		if err == sql.ErrNoRows {
			return trade.Trade{}, fmt.Errorf("trade %q: %w", id, ErrNotFound)
		}
		return trade.Trade{}, err
	}
	return t, nil
}

// ListTradesBetween returns trades dated within [start, end), date ascending.
func (s *SQLite) ListTradesBetween(start, end time.Time) ([]trade.Trade, error) {
	rows, err := s.db.Query(`
		SELECT id, date, contract_type, quantity, result
		FROM trades
		WHERE date >= ? AND date < ?
		ORDER BY date ASC, id ASC`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTrades(rows)
}

func (s *SQLite) UpdateTradeResult(id string, result float64) error {
	res, err := s.db.Exec(`UPDATE trades SET result = ? WHERE id = ?`, result, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("trade %q: %w", id, ErrNotFound)
	}
	return nil
}

func (s *SQLite) DeleteTrade(id string) error {
	res, err := s.db.Exec(`DELETE FROM trades WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("trade %q: %w", id, ErrNotFound)
	}
	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func scanTrades(rows *sql.Rows) ([]trade.Trade, error) {
	var out []trade.Trade
	for rows.Next() {
		var t trade.Trade
		if err := rows.Scan(&t.ID, &t.Date, &t.ContractType, &t.Quantity, &t.Result); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
