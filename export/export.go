// Package export writes dashboard tables to CSV streams and XLSX workbooks.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/spektr-org/skilltrend/engine"
	"github.com/spektr-org/skilltrend/i18n"
)

// Sheet names of the XLSX workbook.
const (
	SheetSeries   = "Series"
	SheetSnapshot = "Snapshot"
	SheetSummary  = "Summary"
)

// ============================================================================
// CSV
// ============================================================================

// WriteCSV writes the series table, a blank row, then the full snapshot
// table followed by its total row.
func WriteCSV(w io.Writer, d *engine.Dashboard) error {
	labels := i18n.For(d.Query.Lang)
	cw := csv.NewWriter(w)

	if err := writeTableCSV(cw, engine.BuildSeriesTable(d, labels)); err != nil {
		return err
	}
	if err := cw.Write([]string{}); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	if err := writeTableCSV(cw, engine.BuildSnapshotTable(d, labels, 0)); err != nil {
		return err
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func writeTableCSV(cw *csv.Writer, t *engine.TableData) error {
	if err := cw.Write(t.Headers()); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("write csv rows: %w", err)
	}
	if summary := t.SummaryRow(); summary != nil {
		if err := cw.Write(summary); err != nil {
			return fmt.Errorf("write csv summary: %w", err)
		}
	}
	return nil
}

// ============================================================================
// XLSX
// ============================================================================

// WriteXLSX saves a workbook with the series, the snapshot and the stat
// cards on separate sheets. Numeric columns are written as numbers.
func WriteXLSX(path string, d *engine.Dashboard) error {
	labels := i18n.For(d.Query.Lang)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSeries); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}
	for _, name := range []string{SheetSnapshot, SheetSummary} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("xlsx: new sheet %s: %w", name, err)
		}
	}

	tables := []struct {
		sheet string
		table *engine.TableData
	}{
		{SheetSeries, engine.BuildSeriesTable(d, labels)},
		{SheetSnapshot, engine.BuildSnapshotTable(d, labels, 0)},
		{SheetSummary, engine.BuildCardsTable(d, labels)},
	}
	for _, t := range tables {
		if err := writeSheet(f, t.sheet, t.table); err != nil {
			return err
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export dir %s: %w", dir, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, t *engine.TableData) error {
	headers := make([]interface{}, len(t.Columns))
	for i, c := range t.Columns {
		headers[i] = c.Label
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("xlsx %s header: %w", sheet, err)
	}
	if err := f.SetColWidth(sheet, "A", "A", 22); err != nil {
		return fmt.Errorf("xlsx %s: %w", sheet, err)
	}

	rows := t.Rows
	if summary := t.SummaryRow(); summary != nil {
		rows = append(rows[:len(rows):len(rows)], summary)
	}
	for r, row := range rows {
		if err := writeSheetRow(f, sheet, r+2, t.Columns, row); err != nil {
			return err
		}
	}
	return nil
}

// writeSheetRow writes one row cell by cell, leaving empty cells blank.
func writeSheetRow(f *excelize.File, sheet string, rowNum int, columns []engine.Column, row []string) error {
	for c, cell := range row {
		v := cellValue(columns[c], cell)
		if v == nil {
			continue
		}
		name, err := excelize.CoordinatesToCellName(c+1, rowNum)
		if err != nil {
			return fmt.Errorf("xlsx %s: %w", sheet, err)
		}
		if err := f.SetCellValue(sheet, name, v); err != nil {
			return fmt.Errorf("xlsx %s %s: %w", sheet, name, err)
		}
	}
	return nil
}

// cellValue turns numeric cells into numbers so spreadsheets can sum them.
// Empty cells stay empty.
func cellValue(col engine.Column, cell string) interface{} {
	if cell == "" {
		return nil
	}
	switch col.Type {
	case "number":
		if n, err := strconv.Atoi(cell); err == nil {
			return n
		}
	case "percent":
		if v, err := strconv.ParseFloat(cell, 64); err == nil {
			return v
		}
	}
	return cell
}
