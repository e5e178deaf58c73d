package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmoraes/futjournal/trade"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	m := NewMemory()

	require.NoError(t, m.SaveTrade(trade.Trade{ID: "T2", Date: day("2023-05-02"), Result: -50}))
	require.NoError(t, m.SaveTrade(trade.Trade{ID: "T1", Date: day("2023-05-01"), Result: 100}))

	got, err := m.GetAllTrades()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "T1", got[0].ID)

	require.NoError(t, m.UpdateTradeResult("T1", 7))
	got, _ = m.GetAllTrades()
	assert.InDelta(t, 7, got[0].Result, 1e-9)

	require.NoError(t, m.DeleteTrade("T2"))
	assert.ErrorIs(t, m.DeleteTrade("T2"), ErrNotFound)
	assert.ErrorIs(t, m.UpdateTradeResult("T2", 1), ErrNotFound)

	assert.NoError(t, m.Close())
}
