package engine

import (
	"strings"

	"go.uber.org/zap"

	"github.com/spektr-org/skilltrend/i18n"
)

// ============================================================================
// EXECUTOR — Dashboard pipeline
// ============================================================================
// Entry point: Build(records, query, opts...)
//
// Pipeline (reruns in full on every call, never incremental):
//   1. Bind the full record set → RecordView
//   2. Apply region / category / search filters → SubView
//   3. Rank top skills (overview only)
//   4. Reshape per-year series, skill snapshot
//   5. Summary statistics + localized stat cards and reply
//   6. Chart configs
//
// All functions are total over empty input: no error path exists.
// ============================================================================

// Build derives every dashboard view for q from the full record set.
func Build(records []TrendRecord, q Query, opts ...Option) *Dashboard {
	cfg := applyOptions(opts)
	q = q.normalize()
	labels := i18n.For(q.Lang)

	root := BindRecords(records)
	years := cfg.Years
	if len(years) == 0 {
		years = UniqueYears(root)
	}

	// 1. Filter → SubView (zero-copy)
	filtered := FilterView(root, q)

	cfg.Logger.Debug("building dashboard",
		zap.String("region", q.Region),
		zap.String("category", q.Category),
		zap.String("search", q.Search),
		zap.Int("records", root.Len()),
		zap.Int("matched", filtered.Len()),
	)

	d := &Dashboard{
		Query:       q,
		Years:       years,
		RecordCount: filtered.Len(),
		Filtered:    filtered,
	}

	// 2. Displayed skills
	if q.HasCategory() {
		d.Skills = UniqueValues(filtered, DimSkill)
	} else {
		d.TopSkills = TopSkills(filtered, years, cfg.TopN)
		d.Skills = d.TopSkills
	}

	// 3. Reshape
	d.Series = BuildSeries(filtered, years, d.Skills)
	d.Snapshot = BuildSnapshot(filtered, years)

	// 4. Stats
	d.Stats = BuildStats(filtered, years)
	d.Cards = BuildCards(d.Stats, q, labels)
	d.Reply = ResolvePlaceholders(labels.Reply, d, labels)

	// 5. Charts
	d.LineChart = BuildLineChart(d, labels)
	d.BarChart = BuildBarChart(d, labels, cfg.SnapshotLimit)

	return d
}

// ============================================================================
// RANKING
// ============================================================================

// TopSkills ranks skills by total count in the latest year, falling back to
// all years when the latest year has no records. Ties keep first-seen order.
func TopSkills(view RecordView, years []int, n int) []string {
	source := latestOrAll(view, years)
	groups := GroupAndAggregate(source, DimSkill, MeasureCount, SortValueDesc, n)

	skills := make([]string, 0, len(groups))
	for _, g := range groups {
		skills = append(skills, g.Key)
	}
	return skills
}

// latestOrAll returns the latest-year subset, or the whole view if that
// subset is empty.
func latestOrAll(view RecordView, years []int) RecordView {
	if len(years) == 0 {
		return view
	}
	latest := FilterYear(view, years[len(years)-1])
	if latest.Len() == 0 {
		return view
	}
	return latest
}

// ============================================================================
// RESHAPING
// ============================================================================

// BuildSeries produces one row per year with a field for each displayed
// skill that has a record that year. Duplicate skill names across
// categories are summed.
func BuildSeries(view RecordView, years []int, skills []string) []SeriesRow {
	show := make(map[string]bool, len(skills))
	for _, s := range skills {
		show[s] = true
	}

	rows := make([]SeriesRow, 0, len(years))
	for _, year := range years {
		row := SeriesRow{Year: year, Values: make(map[string]int), skills: skills}
		yearView := FilterYear(view, year)
		for _, g := range GroupAndAggregate(yearView, DimSkill, MeasureCount, "", 0) {
			if show[g.Key] {
				row.Values[g.Key] = int(g.Value)
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// BuildSnapshot aggregates per-skill counts for the latest year (fallback
// all years) with each skill's percentage share, sorted descending.
func BuildSnapshot(view RecordView, years []int) []SkillShare {
	groups := GroupAndAggregate(latestOrAll(view, years), DimSkill, MeasureCount, SortValueDesc, 0)

	var total float64
	for _, g := range groups {
		total += g.Value
	}

	shares := make([]SkillShare, 0, len(groups))
	for _, g := range groups {
		var pct float64
		if total > 0 {
			pct = RoundTo1(g.Value / total * 100)
		}
		shares = append(shares, SkillShare{
			Skill:   g.Key,
			Count:   int(g.Value),
			Percent: pct,
		})
	}
	return shares
}

// ============================================================================
// PLACEHOLDER RESOLUTION
// ============================================================================

// ResolvePlaceholders substitutes computed values into the reply template.
func ResolvePlaceholders(template string, d *Dashboard, labels i18n.Labels) string {
	if template == "" {
		return ""
	}

	s := d.Stats
	fastest := labels.Stats.Analyzing
	rate := "-"
	if s.HasFastest {
		fastest = s.FastestRising
		rate = i18n.FormatRate(s.FastestRate)
	}

	replacements := map[string]string{
		"{total}":   i18n.FormatCount(labels.Lang, s.Total),
		"{region}":  labels.Region(d.Query.Region),
		"{fastest}": fastest,
		"{rate}":    rate,
		"{growth}":  i18n.FormatRate(s.YearlyGrowth),
	}
	if period := DerivePeriod(d.Years); period != "" {
		replacements["{period}"] = period
	}

	result := template
	for placeholder, value := range replacements {
		result = strings.ReplaceAll(result, placeholder, value)
	}

	// Safety net: strip unresolved placeholders
	return stripUnresolvedPlaceholders(result)
}

// ============================================================================
// INTERNAL HELPERS
// ============================================================================

func stripUnresolvedPlaceholders(text string) string {
	cleaned := placeholderRegex.ReplaceAllString(text, "")
	cleaned = strings.ReplaceAll(cleaned, "  ", " ")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return text
	}
	return cleaned
}
