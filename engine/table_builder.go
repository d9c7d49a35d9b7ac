package engine

import (
	"fmt"
	"strconv"

	"github.com/spektr-org/skilltrend/i18n"
)

// ============================================================================
// TABLE BUILDER — Produces TableData from dashboard views
// ============================================================================
// Tables feed the CLI renderer and the CSV/XLSX exporters, so every cell is
// plain text and numeric columns are marked by Column.Type.
// ============================================================================

// BuildSeriesTable lays out the time series as Year + one column per skill.
// Cells are empty where the skill has no record that year.
func BuildSeriesTable(d *Dashboard, labels i18n.Labels) *TableData {
	columns := make([]Column, 0, len(d.Skills)+1)
	columns = append(columns, Column{Key: DimYear, Label: labels.Charts.Year, Type: "text", Align: "left"})
	for _, skill := range d.Skills {
		columns = append(columns, Column{Key: skill, Label: skill, Type: "number", Align: "right"})
	}

	rows := make([][]string, 0, len(d.Series))
	for _, r := range d.Series {
		row := make([]string, 0, len(columns))
		row = append(row, strconv.Itoa(r.Year))
		for _, skill := range d.Skills {
			if v, ok := r.Value(skill); ok {
				row = append(row, strconv.Itoa(v))
			} else {
				row = append(row, "")
			}
		}
		rows = append(rows, row)
	}

	return &TableData{
		Title:   labels.Charts.GrowthTrends,
		Columns: columns,
		Rows:    rows,
	}
}

// BuildSnapshotTable lists the first limit snapshot entries (0 = all) with
// count and percentage share. A non-empty snapshot gets a summary row with
// the job total over every entry, including those beyond limit.
func BuildSnapshotTable(d *Dashboard, labels i18n.Labels, limit int) *TableData {
	shares := d.Snapshot
	if limit > 0 && len(shares) > limit {
		shares = shares[:limit]
	}

	columns := []Column{
		{Key: DimSkill, Label: labels.Charts.Skill, Type: "text", Align: "left"},
		{Key: MeasureCount, Label: labels.Charts.Jobs, Type: "number", Align: "right"},
		{Key: "percent", Label: labels.Charts.Share, Type: "percent", Align: "right"},
	}

	rows := make([][]string, 0, len(shares))
	for _, s := range shares {
		rows = append(rows, []string{
			s.Skill,
			strconv.Itoa(s.Count),
			fmt.Sprintf("%.1f", s.Percent),
		})
	}

	t := &TableData{
		Title:   labels.TopSkillsTitle(len(rows)),
		Columns: columns,
		Rows:    rows,
	}
	if len(d.Snapshot) > 0 {
		var total int
		for _, s := range d.Snapshot {
			total += s.Count
		}
		t.Summary = &Summary{
			Label:  labels.TotalLabel(len(d.Snapshot)),
			Values: map[string]string{MeasureCount: strconv.Itoa(total)},
		}
	}
	return t
}

// BuildCardsTable lists the stat cards as label/value rows.
func BuildCardsTable(d *Dashboard, labels i18n.Labels) *TableData {
	rows := make([][]string, 0, len(d.Cards))
	for _, c := range d.Cards {
		rows = append(rows, []string{c.Label, c.Value})
	}
	return &TableData{
		Title: labels.Header.Title,
		Columns: []Column{
			{Key: "label", Label: "Metric", Type: "text", Align: "left"},
			{Key: "value", Label: "Value", Type: "text", Align: "right"},
		},
		Rows: rows,
	}
}
