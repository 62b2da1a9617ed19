// Package report serializes pipeline output into styled Excel workbooks and
// CSV exports.
package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/FACorreiaa/complaint-analyzer/internal/domain/complaint/extractor"
	"github.com/FACorreiaa/complaint-analyzer/internal/domain/finance/aggregate"
	"github.com/FACorreiaa/complaint-analyzer/internal/domain/finance/miner"
	"github.com/FACorreiaa/complaint-analyzer/pkg/money"
)

// Sheet names of the two report variants.
const (
	SheetComplaints   = "Cyber Complaints"
	SheetMainFields   = "Main Fields"
	SheetTransactions = "Transactions"
	SheetDaily        = "Daily Breakdown"
	SheetDestinations = "Destination Banks"
)

// FinancialReport bundles the four tables of the financial variant.
type FinancialReport struct {
	MainFields   extractor.Record
	Transactions []miner.Transaction
	Daily        []aggregate.DailyAggregate
	Destinations []aggregate.BankAggregate
}

// WriteComplaints writes the consolidated complaint workbook: one header row
// in Schema order plus one row per record.
func WriteComplaints(records []extractor.Record, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetComplaints); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, len(extractor.Schema))
	for i, field := range extractor.Schema {
		header[i] = field
	}
	rows := make([][]interface{}, 0, len(records))
	for _, rec := range records {
		row := make([]interface{}, len(extractor.Schema))
		for i, field := range extractor.Schema {
			row[i] = rec[field]
		}
		rows = append(rows, row)
	}

	if err := writeTable(f, SheetComplaints, header, rows); err != nil {
		return err
	}
	if err := styleHeader(f, SheetComplaints, len(header)); err != nil {
		return err
	}
	return f.SaveAs(path)
}

// WriteFinancial writes the four-sheet financial workbook. An empty table
// produces an empty sheet with no header row.
func WriteFinancial(rep *FinancialReport, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetMainFields); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	for _, name := range []string{SheetTransactions, SheetDaily, SheetDestinations} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	if err := writeMainFields(f, rep.MainFields); err != nil {
		return err
	}
	if err := writeTransactions(f, rep.Transactions); err != nil {
		return err
	}
	if err := writeDaily(f, rep.Daily); err != nil {
		return err
	}
	if err := writeDestinations(f, rep.Destinations); err != nil {
		return err
	}
	return f.SaveAs(path)
}

// writeMainFields emits field/value pairs for the non-empty schema fields,
// in schema order.
func writeMainFields(f *excelize.File, rec extractor.Record) error {
	var rows [][]interface{}
	for _, field := range extractor.Schema {
		if v := rec[field]; v != "" {
			rows = append(rows, []interface{}{field, v})
		}
	}
	if len(rows) == 0 {
		return nil
	}
	if err := writeTable(f, SheetMainFields, []interface{}{"Field", "Value"}, rows); err != nil {
		return err
	}
	return styleHeader(f, SheetMainFields, 2)
}

func writeTransactions(f *excelize.File, txns []miner.Transaction) error {
	if len(txns) == 0 {
		return nil
	}
	rows := make([][]interface{}, 0, len(txns))
	for _, tx := range txns {
		rows = append(rows, []interface{}{tx.Sequence, tx.Date, money.FormatINR(tx.Amount), tx.Bank, tx.Status})
	}
	header := []interface{}{"Transaction #", "Date", "Amount", "Bank", "Status"}
	if err := writeTable(f, SheetTransactions, header, rows); err != nil {
		return err
	}
	return styleHeader(f, SheetTransactions, len(header))
}

func writeDaily(f *excelize.File, days []aggregate.DailyAggregate) error {
	if len(days) == 0 {
		return nil
	}
	rows := make([][]interface{}, 0, len(days))
	for _, d := range days {
		rows = append(rows, []interface{}{
			d.Date,
			money.FormatINR(d.Total),
			d.Count,
			money.FormatINR(d.Average),
			strings.Join(d.Banks, ", "),
		})
	}
	header := []interface{}{"Date", "Daily Total", "Transaction Count", "Average per Txn", "Banks Involved"}
	if err := writeTable(f, SheetDaily, header, rows); err != nil {
		return err
	}
	return styleHeader(f, SheetDaily, len(header))
}

func writeDestinations(f *excelize.File, banks []aggregate.BankAggregate) error {
	if len(banks) == 0 {
		return nil
	}
	rows := make([][]interface{}, 0, len(banks))
	for _, b := range banks {
		percent := b.PercentOfTotal
		if percent != "" {
			percent += "%"
		}
		rows = append(rows, []interface{}{
			b.Bank,
			money.FormatINR(b.Total),
			b.TransferCount,
			percent,
			b.Status,
			b.RecoveryAction,
		})
	}
	header := []interface{}{"Bank/Service", "Amount", "Transfer Count", "% of Total", "Status", "Recovery Action"}
	if err := writeTable(f, SheetDestinations, header, rows); err != nil {
		return err
	}
	return styleHeader(f, SheetDestinations, len(header))
}

// writeTable writes a header row followed by data rows starting at A1.
func writeTable(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header on %s: %w", sheet, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d on %s: %w", i+2, sheet, err)
		}
	}
	return nil
}

// styleHeader applies the report header look: bold white on dark blue,
// centered with wrapping, and a frozen top row.
func styleHeader(f *excelize.File, sheet string, cols int) error {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"1F4E78"}},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
			WrapText:   true,
		},
		Border: []excelize.Border{
			{Type: "left", Style: 1, Color: "000000"},
			{Type: "right", Style: 1, Color: "000000"},
			{Type: "top", Style: 1, Color: "000000"},
			{Type: "bottom", Style: 1, Color: "000000"},
		},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	endCell, err := excelize.CoordinatesToCellName(cols, 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", endCell, style); err != nil {
		return fmt.Errorf("apply header style: %w", err)
	}

	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}
