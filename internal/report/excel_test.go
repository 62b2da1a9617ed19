package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/FACorreiaa/complaint-analyzer/internal/domain/complaint/extractor"
	"github.com/FACorreiaa/complaint-analyzer/internal/domain/finance/aggregate"
	"github.com/FACorreiaa/complaint-analyzer/internal/domain/finance/miner"
)

func sampleRecord() extractor.Record {
	r := make(extractor.Record, len(extractor.Schema))
	for _, f := range extractor.Schema {
		r[f] = extractor.SentinelNull
	}
	r[extractor.FieldComplaintID] = "1234567890"
	r[extractor.FieldComplainantName] = "A Kumar"
	r[extractor.FieldAmountLost] = "₹5,000"
	return r
}

func TestWriteComplaints(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, WriteComplaints([]extractor.Record{sampleRecord()}, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetComplaints)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, extractor.Schema, rows[0])
	assert.Equal(t, "1234567890", rows[1][0])
	assert.Equal(t, "A Kumar", rows[1][4])
}

func TestWriteComplaints_EmptyBatchStillHasHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, WriteComplaints(nil, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetComplaints)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, extractor.Schema, rows[0])
}

func TestWriteFinancial(t *testing.T) {
	rec := make(extractor.Record, len(extractor.Schema))
	for _, f := range extractor.Schema {
		rec[f] = ""
	}
	rec[extractor.FieldComplaintID] = "42"
	rec[extractor.FieldComplaintStatus] = "PENDING"

	txns := []miner.Transaction{
		{Sequence: 1, Date: "05/01/2024", Amount: 10000, Bank: "HDFC Bank", Status: miner.StatusProcessed},
		{Sequence: 2, Date: "06/01/2024", Amount: 20000, Bank: "ICICI Bank", Status: miner.StatusProcessed},
	}
	rep := &FinancialReport{
		MainFields:   rec,
		Transactions: txns,
		Daily:        aggregate.Daily(txns),
		Destinations: aggregate.Destinations(txns),
	}

	path := filepath.Join(t.TempDir(), "fin.xlsx")
	require.NoError(t, WriteFinancial(rep, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	main, err := f.GetRows(SheetMainFields)
	require.NoError(t, err)
	// Header + the two non-empty fields only.
	require.Len(t, main, 3)
	assert.Equal(t, []string{"Field", "Value"}, main[0])
	assert.Equal(t, []string{extractor.FieldComplaintID, "42"}, main[1])

	txRows, err := f.GetRows(SheetTransactions)
	require.NoError(t, err)
	require.Len(t, txRows, 3)
	assert.Equal(t, "₹10,000", txRows[1][2])

	daily, err := f.GetRows(SheetDaily)
	require.NoError(t, err)
	require.Len(t, daily, 3)
	assert.Equal(t, "HDFC Bank", daily[1][4])

	banks, err := f.GetRows(SheetDestinations)
	require.NoError(t, err)
	require.Len(t, banks, 3)
	assert.Equal(t, "ICICI Bank", banks[1][0])
	assert.Equal(t, "66.7%", banks[1][3])
}

// An empty result set produces an empty sheet with no header row.
func TestWriteFinancial_EmptyTables(t *testing.T) {
	rec := make(extractor.Record, len(extractor.Schema))
	for _, f := range extractor.Schema {
		rec[f] = ""
	}

	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, WriteFinancial(&FinancialReport{MainFields: rec}, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	for _, sheet := range []string{SheetMainFields, SheetTransactions, SheetDaily, SheetDestinations} {
		rows, err := f.GetRows(sheet)
		require.NoError(t, err)
		assert.Emptyf(t, rows, "sheet %s should have no rows", sheet)
	}
}

func TestWriteTransactionsCSV(t *testing.T) {
	txns := []miner.Transaction{
		{Sequence: 1, Date: "05/01/2024", Amount: 10000, Bank: "HDFC Bank", Status: miner.StatusProcessed},
	}

	path := filepath.Join(t.TempDir(), "txns.csv")
	require.NoError(t, WriteTransactionsCSV(txns, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Transaction #,Date,Amount,Bank,Status", lines[0])
	assert.Contains(t, lines[1], "HDFC Bank")
}
