// Package aggregate derives per-day and per-destination-bank rollups from
// mined transactions. Both derivations are pure and recomputed from scratch
// each run; there is no incremental state.
package aggregate

import (
	"sort"

	"github.com/FACorreiaa/complaint-analyzer/internal/domain/finance/miner"
	"github.com/FACorreiaa/complaint-analyzer/pkg/money"
)

// maxBanksPerDay caps how many bank names a daily row lists.
const maxBanksPerDay = 3

// DailyAggregate summarizes one distinct raw date string.
type DailyAggregate struct {
	Date    string
	Total   int64
	Count   int
	Average int64
	Banks   []string
}

// BankAggregate summarizes one destination bank or service.
type BankAggregate struct {
	Bank           string
	Total          int64
	TransferCount  int
	PercentOfTotal string
	Status         string
	RecoveryAction string
}

// Daily groups transactions by their raw date string and returns one row per
// date, ordered by lexicographic date sort. Grouping is on the literal mined
// substring, not a parsed calendar date, so 02/01/2024 sorts before
// 10/01/2023.
func Daily(txns []miner.Transaction) []DailyAggregate {
	byDate := make(map[string]*DailyAggregate)
	for _, tx := range txns {
		agg, exists := byDate[tx.Date]
		if !exists {
			agg = &DailyAggregate{Date: tx.Date}
			byDate[tx.Date] = agg
		}
		agg.Total += tx.Amount
		agg.Count++
		if len(agg.Banks) < maxBanksPerDay && !contains(agg.Banks, tx.Bank) {
			agg.Banks = append(agg.Banks, tx.Bank)
		}
	}

	out := make([]DailyAggregate, 0, len(byDate))
	for _, agg := range byDate {
		count := agg.Count
		if count == 0 {
			count = 1
		}
		agg.Average = agg.Total / int64(count)
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// Destinations groups transactions by canonical bank, ordered by descending
// total amount with encounter order breaking ties. Percentage shares are
// rendered to one decimal place of the grand total; a zero grand total
// leaves them empty.
func Destinations(txns []miner.Transaction) []BankAggregate {
	index := make(map[string]int)
	out := make([]BankAggregate, 0)
	var grandTotal int64

	for _, tx := range txns {
		i, exists := index[tx.Bank]
		if !exists {
			i = len(out)
			index[tx.Bank] = i
			out = append(out, BankAggregate{
				Bank:           tx.Bank,
				Status:         miner.StatusProcessed,
				RecoveryAction: "Pending Review",
			})
		}
		out[i].Total += tx.Amount
		out[i].TransferCount++
		grandTotal += tx.Amount
	}

	for i := range out {
		out[i].PercentOfTotal = money.PercentShare(out[i].Total, grandTotal)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
