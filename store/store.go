// Package store persists the trade collection. The analytics engines never
// touch a store directly; they are handed the snapshot list a store returns.
package store

import (
	"errors"
	"sort"
	"sync"

	"github.com/dmoraes/futjournal/trade"
)

// ErrNotFound is returned when a trade ID does not exist in the store.
var ErrNotFound = errors.New("trade not found")

// Store is the trade persistence boundary.
type Store interface {
	GetAllTrades() ([]trade.Trade, error)
	SaveTrade(trade.Trade) error
	UpdateTradeResult(id string, result float64) error
	DeleteTrade(id string) error
	Close() error
}

// Memory is an in-memory Store, used in tests and for ephemeral sessions.
type Memory struct {
	mu     sync.Mutex
	trades map[string]trade.Trade
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{trades: make(map[string]trade.Trade)}
}

// GetAllTrades returns a fresh snapshot ordered by date, then ID.
func (m *Memory) GetAllTrades() ([]trade.Trade, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]trade.Trade, 0, len(m.trades))
	for _, t := range m.trades {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *Memory) SaveTrade(t trade.Trade) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trades[t.ID] = t
	return nil
}

func (m *Memory) UpdateTradeResult(id string, result float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.trades[id]
	if !ok {
		return ErrNotFound
	}
	t.Result = result
	m.trades[id] = t
	return nil
}

func (m *Memory) DeleteTrade(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.trades[id]; !ok {
		return ErrNotFound
	}
	delete(m.trades, id)
	return nil
}

func (m *Memory) Close() error { return nil }
