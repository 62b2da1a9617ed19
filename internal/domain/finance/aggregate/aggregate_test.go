package aggregate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/complaint-analyzer/internal/domain/finance/miner"
)

func tx(date string, amount int64, bank string) miner.Transaction {
	return miner.Transaction{Date: date, Amount: amount, Bank: bank, Status: miner.StatusProcessed}
}

func TestDaily_GroupsByRawDateString(t *testing.T) {
	txns := []miner.Transaction{
		tx("05/01/2024", 10000, "HDFC Bank"),
		tx("05/01/2024", 5000, "ICICI Bank"),
		tx("06/01/2024", 20000, "ICICI Bank"),
	}

	days := Daily(txns)
	require.Len(t, days, 2)

	assert.Equal(t, "05/01/2024", days[0].Date)
	assert.Equal(t, int64(15000), days[0].Total)
	assert.Equal(t, 2, days[0].Count)
	assert.Equal(t, int64(7500), days[0].Average)
	assert.Equal(t, []string{"HDFC Bank", "ICICI Bank"}, days[0].Banks)

	assert.Equal(t, "06/01/2024", days[1].Date)
	assert.Equal(t, int64(20000), days[1].Total)
}

func TestDaily_AverageIsFloorDivision(t *testing.T) {
	days := Daily([]miner.Transaction{
		tx("01/01/2024", 100, "HDFC Bank"),
		tx("01/01/2024", 101, "HDFC Bank"),
		tx("01/01/2024", 101, "ICICI Bank"),
	})
	require.Len(t, days, 1)
	assert.Equal(t, int64(100), days[0].Average) // 302/3 floored
}

func TestDaily_AtMostThreeDistinctBanks(t *testing.T) {
	days := Daily([]miner.Transaction{
		tx("01/01/2024", 1, "A"),
		tx("01/01/2024", 1, "B"),
		tx("01/01/2024", 1, "A"),
		tx("01/01/2024", 1, "C"),
		tx("01/01/2024", 1, "D"),
	})
	require.Len(t, days, 1)
	assert.Equal(t, []string{"A", "B", "C"}, days[0].Banks)
}

// Ordering is by string sort of the raw date, not calendar order.
func TestDaily_LexicographicDateOrder(t *testing.T) {
	days := Daily([]miner.Transaction{
		tx("10/01/2023", 1, "A"),
		tx("02/01/2024", 1, "B"),
	})
	require.Len(t, days, 2)
	assert.Equal(t, "02/01/2024", days[0].Date)
	assert.Equal(t, "10/01/2023", days[1].Date)
}

func TestDestinations_RankedByTotalDescending(t *testing.T) {
	txns := []miner.Transaction{
		tx("05/01/2024", 10000, "HDFC Bank"),
		tx("06/01/2024", 20000, "ICICI Bank"),
	}

	banks := Destinations(txns)
	require.Len(t, banks, 2)

	assert.Equal(t, "ICICI Bank", banks[0].Bank)
	assert.Equal(t, "66.7", banks[0].PercentOfTotal)
	assert.Equal(t, "HDFC Bank", banks[1].Bank)
	assert.Equal(t, "33.3", banks[1].PercentOfTotal)
	assert.Equal(t, 1, banks[0].TransferCount)
	assert.Equal(t, miner.StatusProcessed, banks[0].Status)
	assert.Equal(t, "Pending Review", banks[0].RecoveryAction)
}

func TestDestinations_TiesKeepEncounterOrder(t *testing.T) {
	banks := Destinations([]miner.Transaction{
		tx("01/01/2024", 500, "B"),
		tx("01/01/2024", 500, "A"),
	})
	require.Len(t, banks, 2)
	assert.Equal(t, "B", banks[0].Bank)
	assert.Equal(t, "A", banks[1].Bank)
}

func TestDestinations_Empty(t *testing.T) {
	assert.Empty(t, Destinations(nil))
}

// Per-day totals and per-bank totals must both sum to the grand total, and
// percentage shares must sum to ~100.
func TestAggregates_Conservation(t *testing.T) {
	txns := []miner.Transaction{
		tx("01/01/2024", 3000, "A"),
		tx("01/01/2024", 7000, "B"),
		tx("02/01/2024", 1000, "C"),
		tx("03/01/2024", 9000, "A"),
	}

	var grand int64
	for _, x := range txns {
		grand += x.Amount
	}

	var dailySum int64
	for _, d := range Daily(txns) {
		dailySum += d.Total
	}
	assert.Equal(t, grand, dailySum)

	var bankSum int64
	percentSum := decimal.Zero
	for _, b := range Destinations(txns) {
		bankSum += b.Total
		p, err := decimal.NewFromString(b.PercentOfTotal)
		require.NoError(t, err)
		percentSum = percentSum.Add(p)
	}
	assert.Equal(t, grand, bankSum)

	diff := percentSum.Sub(decimal.NewFromInt(100)).Abs()
	assert.True(t, diff.LessThanOrEqual(decimal.NewFromFloat(0.3)), "percent sum %s", percentSum)
}
