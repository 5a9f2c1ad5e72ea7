// Package reports renders inventory data as spreadsheet downloads.
package reports

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/rdmartins/drilltrack-backend/internal/analytics"
	"github.com/rdmartins/drilltrack-backend/internal/inventory"
)

const (
	stockSheet       = "Estoque"
	withdrawalsSheet = "Retiradas"
)

// WithdrawalsWorkbook builds an XLSX with the stock listing on one sheet and
// the full withdrawal log, newest first, on another.
func WithdrawalsWorkbook(state inventory.State) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	defaultSheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(defaultSheet, stockSheet); err != nil {
		return nil, fmt.Errorf("renaming stock sheet: %w", err)
	}
	if _, err := f.NewSheet(withdrawalsSheet); err != nil {
		return nil, fmt.Errorf("creating withdrawals sheet: %w", err)
	}

	if err := writeStockSheet(f, state); err != nil {
		return nil, err
	}
	if err := writeWithdrawalsSheet(f, state); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializing workbook: %w", err)
	}
	return buf, nil
}

func writeStockSheet(f *excelize.File, state inventory.State) error {
	header := []interface{}{"id", "item", "modelo", "categoria", "estoque", "mínimo", "status"}
	if err := f.SetSheetRow(stockSheet, "A1", &header); err != nil {
		return fmt.Errorf("writing stock header: %w", err)
	}

	row := 2
	for _, item := range state.Inventory {
		cells := []interface{}{
			item.ID,
			item.Name,
			string(item.Model),
			string(item.Category),
			item.Stock,
			item.MinStock,
			string(analytics.AlertLevelFor(item)),
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return fmt.Errorf("stock row %d: %w", row, err)
		}
		if err := f.SetSheetRow(stockSheet, cell, &cells); err != nil {
			return fmt.Errorf("writing stock row %d: %w", row, err)
		}
		row++
	}
	return nil
}

func writeWithdrawalsSheet(f *excelize.File, state inventory.State) error {
	header := []interface{}{"data", "item", "modelo", "quantidade", "supervisor", "motivo"}
	if err := f.SetSheetRow(withdrawalsSheet, "A1", &header); err != nil {
		return fmt.Errorf("writing withdrawals header: %w", err)
	}

	row := 2
	for _, w := range state.Withdrawals {
		cells := []interface{}{
			w.Date.Format(time.RFC3339),
			w.ToolName,
			string(w.Model),
			w.Quantity,
			string(w.Supervisor),
			string(w.Reason),
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return fmt.Errorf("withdrawal row %d: %w", row, err)
		}
		if err := f.SetSheetRow(withdrawalsSheet, cell, &cells); err != nil {
			return fmt.Errorf("writing withdrawal row %d: %w", row, err)
		}
		row++
	}
	return nil
}
