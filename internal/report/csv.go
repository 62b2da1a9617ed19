package report

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/FACorreiaa/complaint-analyzer/internal/domain/finance/miner"
)

// WriteTransactionsCSV exports mined transactions to a CSV file with the
// same column order as the Transactions sheet. An empty transaction set
// still produces a file with only the header row.
func WriteTransactionsCSV(txns []miner.Transaction, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&txns, f); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}
