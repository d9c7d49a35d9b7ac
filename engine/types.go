package engine

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/spektr-org/skilltrend/i18n"
)

// ============================================================================
// SKILLTREND ENGINE TYPES
// ============================================================================
// TrendRecord is the only data row the engine knows about. It is bound to
// the RecordView interface through a DomainAdapter so filters and groupers
// stay generic over dimension/measure keys.
// ============================================================================

// Dimension and measure keys registered for TrendRecord.
const (
	DimRegion    = "region"
	DimYear      = "year"
	DimCategory  = "category"
	DimSkill     = "skill"
	MeasureCount = "count"
)

// AllCategories is the category sentinel meaning "no category filter".
const AllCategories = "all"

// DefaultTopN is how many skills the overview ranking keeps.
const DefaultTopN = 10

// ============================================================================
// TRENDRECORD — one synthetic observation
// ============================================================================

// TrendRecord is one (year, region, category, skill) observation.
// Field order matches the snapshot file layout.
type TrendRecord struct {
	ID       int    `json:"id"`
	Year     int    `json:"year"`
	Skill    string `json:"skill"`
	Category string `json:"category"`
	Count    int    `json:"count"`
	Region   string `json:"region"`
}

// ============================================================================
// QUERY — user-selected filter state
// ============================================================================

// Query is the filter state a dashboard is derived from.
// Lang only changes label text, never the data.
type Query struct {
	Region   string    `json:"region"`
	Category string    `json:"category"`
	Search   string    `json:"search,omitempty"`
	Lang     i18n.Lang `json:"lang"`
}

// HasCategory reports whether a concrete category filter is active.
func (q Query) HasCategory() bool {
	c := strings.TrimSpace(q.Category)
	return c != "" && !strings.EqualFold(c, AllCategories)
}

// Filters converts the query's exact-match constraints into dimension filters.
func (q Query) Filters() Filters {
	f := Filters{Dimensions: map[string][]string{
		DimRegion: {q.Region},
	}}
	if q.HasCategory() {
		f.Dimensions[DimCategory] = []string{strings.TrimSpace(q.Category)}
	}
	return f
}

func (q Query) normalize() Query {
	q.Region = strings.TrimSpace(q.Region)
	q.Search = strings.TrimSpace(q.Search)
	if !q.HasCategory() {
		q.Category = AllCategories
	}
	if !q.Lang.Valid() {
		q.Lang = i18n.Default
	}
	return q
}

// ============================================================================
// DASHBOARD — derived view for one query
// ============================================================================

// Dashboard holds every derived view for one Query. It is rebuilt from the
// full record set on each call and never persisted.
type Dashboard struct {
	Query       Query        `json:"query"`
	Years       []int        `json:"years"`
	RecordCount int          `json:"recordCount"`
	TopSkills   []string     `json:"topSkills,omitempty"`
	Skills      []string     `json:"skills"`
	Series      []SeriesRow  `json:"series"`
	Snapshot    []SkillShare `json:"snapshot"`
	Stats       Stats        `json:"stats"`
	Cards       []StatCard   `json:"cards"`
	Reply       string       `json:"reply"`
	LineChart   *ChartConfig `json:"lineChart,omitempty"`
	BarChart    *ChartConfig `json:"barChart,omitempty"`

	// Filtered is the zero-copy filtered view the other fields derive from.
	Filtered RecordView `json:"-"`
}

// IsEmpty reports whether the filters matched nothing.
func (d *Dashboard) IsEmpty() bool { return d.RecordCount == 0 }

// SeriesRow is one year of the time series: skill → count for that year.
// Skills without a record for the year are absent from Values.
type SeriesRow struct {
	Year   int
	Values map[string]int
	skills []string
}

// Value returns the count for a skill and whether the row has it.
func (r SeriesRow) Value(skill string) (int, bool) {
	v, ok := r.Values[skill]
	return v, ok
}

// MarshalJSON flattens the row to {"year":2022,"React":120,...} in display order.
func (r SeriesRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"year":`)
	year, _ := json.Marshal(r.Year)
	buf.Write(year)
	for _, skill := range r.skills {
		v, ok := r.Values[skill]
		if !ok {
			continue
		}
		key, err := json.Marshal(skill)
		if err != nil {
			return nil, err
		}
		buf.WriteByte(',')
		buf.Write(key)
		buf.WriteByte(':')
		val, _ := json.Marshal(v)
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// SkillShare is one entry of the ranked skill snapshot.
type SkillShare struct {
	Skill   string  `json:"skill"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Stats are the summary statistics of a filtered view.
type Stats struct {
	Total         int     `json:"total"`
	FastestRising string  `json:"fastestRising,omitempty"`
	FastestRate   float64 `json:"fastestRate"`
	HasFastest    bool    `json:"hasFastest"`
	YearlyGrowth  float64 `json:"yearlyGrowth"`
	EarliestYear  int     `json:"earliestYear,omitempty"`
	PriorYear     int     `json:"priorYear,omitempty"`
	LatestYear    int     `json:"latestYear,omitempty"`
}

// StatCard is a label/value pair shown in the summary strip.
type StatCard struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// ============================================================================
// GROUP — Intermediate computation result
// ============================================================================

// Group represents a grouped/aggregated result.
type Group struct {
	Key   string     `json:"key"`
	Label string     `json:"label"`
	Value float64    `json:"value"`
	Count int        `json:"count"`
	View  RecordView `json:"-"`
}

// ============================================================================
// CHART TYPES
// ============================================================================

// ChartConfig defines how to render a chart.
type ChartConfig struct {
	ChartType  string        `json:"chartType"`
	Title      string        `json:"title"`
	XAxis      string        `json:"xAxis,omitempty"`
	YAxis      string        `json:"yAxis,omitempty"`
	Series     []ChartSeries `json:"series"`
	Colors     []string      `json:"colors,omitempty"`
	ShowLegend bool          `json:"showLegend"`
	ShowGrid   bool          `json:"showGrid"`
}

// ChartSeries represents a data series in a chart.
type ChartSeries struct {
	Name  string       `json:"name"`
	Data  []ChartPoint `json:"data"`
	Color string       `json:"color,omitempty"`
}

// ChartPoint represents a single data point.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ============================================================================
// TABLE TYPES
// ============================================================================

// TableData defines how to render a table.
type TableData struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Summary *Summary   `json:"summary,omitempty"`
}

// Headers returns the column labels in order.
func (t *TableData) Headers() []string {
	h := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		h[i] = c.Label
	}
	return h
}

// SummaryRow lays the summary out under the columns: the label in the
// first cell, each summed value under its column key. Nil without a summary.
func (t *TableData) SummaryRow() []string {
	if t.Summary == nil || len(t.Columns) == 0 {
		return nil
	}
	row := make([]string, len(t.Columns))
	row[0] = t.Summary.Label
	for i, c := range t.Columns[1:] {
		row[i+1] = t.Summary.Values[c.Key]
	}
	return row
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`  // "text", "number", "percent"
	Align string `json:"align"` // "left", "center", "right"
}

// Summary provides totals for a table.
type Summary struct {
	Label  string            `json:"label"`
	Values map[string]string `json:"values"`
}
