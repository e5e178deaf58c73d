package trade

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := Trade{ID: "T1", Date: day("2023-05-01"), ContractType: "WIN", Quantity: 1, Result: 100}
	assert.NoError(t, valid.Validate())

	missingDate := valid
	missingDate.Date = time.Time{}
	assert.Error(t, missingDate.Validate())

	nanResult := valid
	nanResult.Result = math.NaN()
	assert.Error(t, nanResult.Validate())

	infResult := valid
	infResult.Result = math.Inf(1)
	assert.Error(t, infResult.Validate())
}

func TestSortedByDateStable(t *testing.T) {
	t.Parallel()

	trades := []Trade{
		{ID: "b", Date: day("2023-05-02")},
		{ID: "first", Date: day("2023-05-01")},
		{ID: "second", Date: day("2023-05-01")},
		{ID: "third", Date: day("2023-05-01")},
	}

	sorted := SortedByDate(trades)

	// Ties keep their original relative order.
	assert.Equal(t, "first", sorted[0].ID)
	assert.Equal(t, "second", sorted[1].ID)
	assert.Equal(t, "third", sorted[2].ID)
	assert.Equal(t, "b", sorted[3].ID)

	// Input untouched.
	assert.Equal(t, "b", trades[0].ID)
}

func TestByPeriodAndContract(t *testing.T) {
	t.Parallel()

	trades := []Trade{
		{ID: "1", Date: day("2023-05-01"), ContractType: "WIN"},
		{ID: "2", Date: day("2023-05-10"), ContractType: "WDO"},
		{ID: "3", Date: day("2023-06-01"), ContractType: "WIN"},
	}

	may := ByPeriod(trades, day("2023-05-01"), day("2023-05-31"))
	assert.Len(t, may, 2)

	win := ByContract(trades, "WIN")
	assert.Len(t, win, 2)

	assert.Equal(t, []string{"WIN", "WDO"}, Contracts(trades))
}

func TestTotalResult(t *testing.T) {
	t.Parallel()

	trades := []Trade{
		{Result: 100},
		{Result: -50},
		{Result: 200},
	}
	assert.InDelta(t, 250, TotalResult(trades), 1e-9)
	assert.InDelta(t, 0, TotalResult(nil), 1e-9)
}
