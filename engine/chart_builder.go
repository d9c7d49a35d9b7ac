package engine

import (
	"strconv"

	"github.com/spektr-org/skilltrend/i18n"
)

// ============================================================================
// CHART BUILDER — Produces ChartConfig from dashboard views
// ============================================================================
// Line chart: one series per displayed skill, one point per year the skill
// has a record. Bar chart: the leading snapshot entries as a single series.
// ============================================================================

// Default color palette for chart series.
var defaultColors = []string{
	"#3b82f6", "#10b981", "#f59e0b", "#8b5cf6", "#ef4444", "#06b6d4", "#ec4899",
	"#6366f1", "#14b8a6", "#f97316", "#d946ef", "#84cc16", "#a855f7", "#0ea5e9",
	"#2dd4bf", "#fb923c", "#e879f9", "#a3e635",
}

// BuildLineChart produces the per-year growth chart. Nil when no skill is displayed.
func BuildLineChart(d *Dashboard, labels i18n.Labels) *ChartConfig {
	if len(d.Skills) == 0 || len(d.Series) == 0 {
		return nil
	}

	series := make([]ChartSeries, 0, len(d.Skills))
	for i, skill := range d.Skills {
		points := make([]ChartPoint, 0, len(d.Series))
		for _, row := range d.Series {
			if v, ok := row.Value(skill); ok {
				points = append(points, ChartPoint{
					Label: strconv.Itoa(row.Year),
					Value: float64(v),
				})
			}
		}
		series = append(series, ChartSeries{
			Name:  skill,
			Data:  points,
			Color: defaultColors[i%len(defaultColors)],
		})
	}

	return &ChartConfig{
		ChartType:  "line",
		Title:      labels.Charts.GrowthTrends,
		XAxis:      labels.Charts.Year,
		YAxis:      labels.Charts.Jobs,
		Series:     series,
		Colors:     assignColors(len(series)),
		ShowLegend: true,
		ShowGrid:   true,
	}
}

// BuildBarChart produces the ranked skill bar chart from the first limit
// snapshot entries (0 = all). Nil when the snapshot is empty.
func BuildBarChart(d *Dashboard, labels i18n.Labels, limit int) *ChartConfig {
	shares := d.Snapshot
	if len(shares) == 0 {
		return nil
	}
	if limit > 0 && len(shares) > limit {
		shares = shares[:limit]
	}

	points := make([]ChartPoint, 0, len(shares))
	for _, s := range shares {
		points = append(points, ChartPoint{Label: s.Skill, Value: float64(s.Count)})
	}

	return &ChartConfig{
		ChartType: "bar",
		Title:     labels.TopSkillsTitle(len(points)),
		XAxis:     labels.Charts.Jobs,
		YAxis:     labels.Charts.Skill,
		Series: []ChartSeries{{
			Name: labels.Charts.Jobs,
			Data: points,
		}},
		Colors:     assignColors(len(points)),
		ShowLegend: false,
		ShowGrid:   true,
	}
}

func assignColors(count int) []string {
	colors := make([]string, count)
	for i := 0; i < count; i++ {
		colors[i] = defaultColors[i%len(defaultColors)]
	}
	return colors
}
