package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmoraes/futjournal/trade"
)

func newTestSQLite(t *testing.T) *SQLite {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")

	s, err := NewSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func TestSQLiteSaveAndGetAll(t *testing.T) {
	t.Parallel()

	s := newTestSQLite(t)

	trades := []trade.Trade{
		{ID: "T2", Date: day("2023-05-02"), ContractType: "WDO", Quantity: 1, Result: -50},
		{ID: "T1", Date: day("2023-05-01"), ContractType: "WIN", Quantity: 2, Result: 100},
	}
	for _, tr := range trades {
		require.NoError(t, s.SaveTrade(tr))
	}

	got, err := s.GetAllTrades()
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Date-ascending snapshot.
	assert.Equal(t, "T1", got[0].ID)
	assert.Equal(t, "WIN", got[0].ContractType)
	assert.Equal(t, 2, got[0].Quantity)
	assert.InDelta(t, 100, got[0].Result, 1e-9)
	assert.True(t, got[0].Date.Equal(day("2023-05-01")))
	assert.Equal(t, "T2", got[1].ID)
}

func TestSQLiteGetTrade(t *testing.T) {
	t.Parallel()

	s := newTestSQLite(t)
	require.NoError(t, s.SaveTrade(trade.Trade{
		ID: "T1", Date: day("2023-05-01"), ContractType: "WIN", Quantity: 1, Result: 42.5,
	}))

	got, err := s.GetTrade("T1")
	require.NoError(t, err)
	assert.InDelta(t, 42.5, got.Result, 1e-9)

	_, err = s.GetTrade("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteUpdateTradeResult(t *testing.T) {
	t.Parallel()

	s := newTestSQLite(t)
	require.NoError(t, s.SaveTrade(trade.Trade{
		ID: "T1", Date: day("2023-05-01"), ContractType: "WIN", Quantity: 1, Result: 10,
	}))

	require.NoError(t, s.UpdateTradeResult("T1", -25))
	got, err := s.GetTrade("T1")
	require.NoError(t, err)
	assert.InDelta(t, -25, got.Result, 1e-9)

	assert.ErrorIs(t, s.UpdateTradeResult("missing", 1), ErrNotFound)
}

func TestSQLiteDeleteTrade(t *testing.T) {
	t.Parallel()

	s := newTestSQLite(t)
	require.NoError(t, s.SaveTrade(trade.Trade{
		ID: "T1", Date: day("2023-05-01"), ContractType: "WIN", Quantity: 1, Result: 10,
	}))

	require.NoError(t, s.DeleteTrade("T1"))

	got, err := s.GetAllTrades()
	require.NoError(t, err)
	assert.Empty(t, got)

	assert.ErrorIs(t, s.DeleteTrade("T1"), ErrNotFound)
}

func TestSQLiteListTradesBetween(t *testing.T) {
	t.Parallel()

	s := newTestSQLite(t)
	for _, tr := range []trade.Trade{
		{ID: "T1", Date: day("2023-05-01"), ContractType: "WIN", Quantity: 1, Result: 1},
		{ID: "T2", Date: day("2023-05-10"), ContractType: "WIN", Quantity: 1, Result: 2},
		{ID: "T3", Date: day("2023-06-01"), ContractType: "WIN", Quantity: 1, Result: 3},
	} {
		require.NoError(t, s.SaveTrade(tr))
	}

	got, err := s.ListTradesBetween(day("2023-05-01"), day("2023-06-01"))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "T1", got[0].ID)
	assert.Equal(t, "T2", got[1].ID)
}
