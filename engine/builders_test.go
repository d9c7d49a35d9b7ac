package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spektr-org/skilltrend/i18n"
)

// ============================================================================
// CHART & TABLE BUILDER TESTS
// ============================================================================

func TestBuildLineChart(t *testing.T) {
	records := append(smallFixture(),
		TrendRecord{ID: 5, Year: 2023, Skill: "Rust", Category: "Backend", Count: 5, Region: "TR"})
	d := Build(records, Query{Region: "TR", Lang: i18n.English})

	c := d.LineChart
	require.NotNil(t, c)
	assert.Equal(t, "line", c.ChartType)
	assert.Equal(t, "Growth Trends", c.Title)
	require.Len(t, c.Series, 3)

	assert.Equal(t, "React", c.Series[0].Name)
	assert.Equal(t, []ChartPoint{{Label: "2022", Value: 100}, {Label: "2023", Value: 150}}, c.Series[0].Data)
	assert.Equal(t, "#3b82f6", c.Series[0].Color)

	// Rust has no 2022 record, so its line starts in 2023.
	assert.Equal(t, "Rust", c.Series[2].Name)
	assert.Equal(t, []ChartPoint{{Label: "2023", Value: 5}}, c.Series[2].Data)
	assert.Len(t, c.Colors, 3)
}

func TestBuildBarChartLimit(t *testing.T) {
	d := Build(smallFixture(), Query{Region: "TR"}, WithSnapshotLimit(1))

	c := d.BarChart
	require.NotNil(t, c)
	assert.Equal(t, "bar", c.ChartType)
	assert.Equal(t, "İlk 1 Yetenek", c.Title)
	require.Len(t, c.Series, 1)
	assert.Equal(t, []ChartPoint{{Label: "React", Value: 150}}, c.Series[0].Data)

	assert.Len(t, BuildBarChart(d, i18n.For(i18n.Turkish), 0).Series[0].Data, 2)
}

func TestAssignColorsWraps(t *testing.T) {
	colors := assignColors(len(defaultColors) + 2)
	assert.Equal(t, defaultColors[0], colors[len(defaultColors)])
	assert.Equal(t, defaultColors[1], colors[len(defaultColors)+1])
}

func TestBuildSeriesTable(t *testing.T) {
	records := append(smallFixture(),
		TrendRecord{ID: 5, Year: 2023, Skill: "Rust", Category: "Backend", Count: 5, Region: "TR"})
	d := Build(records, Query{Region: "TR", Lang: i18n.English})

	tbl := BuildSeriesTable(d, i18n.For(i18n.English))
	assert.Equal(t, []string{"Year", "React", "Go", "Rust"}, tbl.Headers())
	assert.Equal(t, [][]string{
		{"2022", "100", "80", ""},
		{"2023", "150", "60", "5"},
	}, tbl.Rows)
}

func TestBuildSnapshotTable(t *testing.T) {
	d := Build(smallFixture(), Query{Region: "TR", Lang: i18n.English})

	tbl := BuildSnapshotTable(d, i18n.For(i18n.English), 1)
	assert.Equal(t, []string{"Skill", "Jobs", "Share %"}, tbl.Headers())
	assert.Equal(t, [][]string{{"React", "150", "71.4"}}, tbl.Rows)
	require.NotNil(t, tbl.Summary)
	assert.Equal(t, "210", tbl.Summary.Values[MeasureCount])
	assert.Equal(t, "Top 1 Skills", tbl.Title)
	assert.Equal(t, []string{"Total (2 skills)", "210", ""}, tbl.SummaryRow())

	tr := BuildSnapshotTable(d, i18n.For(i18n.Turkish), 0)
	assert.Equal(t, "İlk 2 Yetenek", tr.Title)
	assert.Equal(t, []string{"Toplam (2 yetenek)", "210", ""}, tr.SummaryRow())
}

func TestSummaryRowWithoutSummary(t *testing.T) {
	d := Build(smallFixture(), Query{Region: "TR"})
	assert.Nil(t, BuildSeriesTable(d, i18n.For(i18n.English)).SummaryRow())

	empty := Build(smallFixture(), Query{Region: "Global"})
	assert.Nil(t, BuildSnapshotTable(empty, i18n.For(i18n.English), 0).SummaryRow())
}

func TestBuildCardsTable(t *testing.T) {
	d := Build(smallFixture(), Query{Region: "TR", Lang: i18n.English})

	tbl := BuildCardsTable(d, i18n.For(i18n.English))
	require.Len(t, tbl.Rows, 5)
	assert.Equal(t, []string{"Analyzed Jobs", "390"}, tbl.Rows[0])
	assert.Equal(t, "Sector Trend Analysis", tbl.Title)
}
