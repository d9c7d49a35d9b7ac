package output

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/spektr-org/skilltrend/engine"
)

// Table provides table rendering utilities
type Table struct {
	table  *tablewriter.Table
	header []string
	rows   [][]string
	footer []string
}

// NewTable creates a borderless table; per-column alignment follows aligns
// ("left", "center", "right"), missing entries default to left.
func NewTable(w io.Writer, headers []string, aligns []string) *Table {
	columns := make([]tw.Align, len(headers))
	for i := range columns {
		columns[i] = tw.AlignLeft
		if i < len(aligns) {
			columns[i] = toAlign(aligns[i])
		}
	}

	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap: tw.WrapNone,
				},
				Alignment: tw.CellAlignment{
					Global:    tw.AlignLeft,
					PerColumn: columns,
				},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoFormat: tw.Off,
				},
				Alignment: tw.CellAlignment{
					Global:    tw.AlignLeft,
					PerColumn: columns,
				},
			},
			Footer: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap:   tw.WrapNone,
					AutoFormat: tw.Off,
				},
				Alignment: tw.CellAlignment{
					Global:    tw.AlignLeft,
					PerColumn: columns,
				},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{
					ShowHeader: tw.Off,
				},
			},
		}),
	)

	return &Table{table: table, header: headers}
}

// FromTableData builds a table from an engine table
func FromTableData(w io.Writer, data *engine.TableData) *Table {
	aligns := make([]string, len(data.Columns))
	for i, c := range data.Columns {
		aligns[i] = c.Align
	}
	t := NewTable(w, data.Headers(), aligns)
	t.AddRows(data.Rows)
	t.SetFooter(data.SummaryRow())
	return t
}

// AddRow adds a row to the table
func (t *Table) AddRow(row []string) {
	t.rows = append(t.rows, row)
}

// AddRows adds multiple rows to the table
func (t *Table) AddRows(rows [][]string) {
	t.rows = append(t.rows, rows...)
}

// SetFooter sets a totals row rendered under the body; nil clears it
func (t *Table) SetFooter(footer []string) {
	t.footer = footer
}

// Render outputs the table
func (t *Table) Render() error {
	t.table.Header(t.header)
	if err := t.table.Bulk(t.rows); err != nil {
		return err
	}
	if len(t.footer) > 0 {
		t.table.Footer(t.footer)
	}
	return t.table.Render()
}

func toAlign(s string) tw.Align {
	switch s {
	case "right":
		return tw.AlignRight
	case "center":
		return tw.AlignCenter
	default:
		return tw.AlignLeft
	}
}
