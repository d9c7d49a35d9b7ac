package engine

import (
	"fmt"
	"regexp"

	"github.com/spektr-org/skilltrend/i18n"
)

// ============================================================================
// TEXT BUILDER — Summary statistics and stat cards
// ============================================================================
// All functions operate on RecordView — zero-copy access to any data source.
// ============================================================================

var placeholderRegex = regexp.MustCompile(`\{[a-z_]+\}`)

// BuildStats computes the summary statistics of a filtered view.
//
//   - Total: sum of counts across all years.
//   - Fastest rising: largest percent increase from the second-most-recent to
//     the most recent year. Skills missing or zero in the earlier year are
//     skipped; ties keep first-seen order.
//   - Yearly growth: total volume change from the earliest to the latest
//     year, 0 when the earliest total is 0.
func BuildStats(view RecordView, years []int) Stats {
	s := Stats{Total: int(SumMeasure(view, MeasureCount))}
	if len(years) == 0 {
		return s
	}

	s.EarliestYear = years[0]
	s.LatestYear = years[len(years)-1]

	earliestTotal := SumMeasure(FilterYear(view, s.EarliestYear), MeasureCount)
	latestView := FilterYear(view, s.LatestYear)
	latestTotal := SumMeasure(latestView, MeasureCount)
	s.YearlyGrowth = RoundTo1(PercentChange(earliestTotal, latestTotal))

	if len(years) < 2 {
		return s
	}
	s.PriorYear = years[len(years)-2]

	prior := SumByKey(FilterYear(view, s.PriorYear), DimSkill, MeasureCount)
	for _, g := range GroupAndAggregate(latestView, DimSkill, MeasureCount, "", 0) {
		prev, ok := prior[g.Key]
		if !ok || prev <= 0 {
			continue
		}
		rate := PercentChange(prev, g.Value)
		if !s.HasFastest || rate > s.FastestRate {
			s.FastestRising = g.Key
			s.FastestRate = rate
			s.HasFastest = true
		}
	}
	if s.HasFastest {
		s.FastestRate = RoundTo1(s.FastestRate)
	}
	return s
}

// BuildCards renders the summary strip: analyzed jobs, fastest rising skill,
// its velocity, volume growth and the selected region.
func BuildCards(s Stats, q Query, labels i18n.Labels) []StatCard {
	fastest := labels.Stats.Analyzing
	velocity := "-"
	if s.HasFastest {
		fastest = s.FastestRising
		velocity = i18n.FormatRate(s.FastestRate)
	}

	return []StatCard{
		{Key: "analyzedJobs", Label: labels.Stats.AnalyzedJobs, Value: i18n.FormatCount(labels.Lang, s.Total)},
		{Key: "fastestRising", Label: labels.Stats.FastestRising, Value: fastest},
		{Key: "trendVelocity", Label: labels.Stats.TrendVelocity, Value: velocity},
		{Key: "yearlyGrowth", Label: labels.Stats.YearlyGrowth, Value: i18n.FormatRate(s.YearlyGrowth)},
		{Key: "region", Label: labels.Stats.Region, Value: labels.Region(q.Region)},
	}
}

// ============================================================================
// PERIOD HELPER
// ============================================================================

// DerivePeriod builds a human-readable period string from the year list.
func DerivePeriod(years []int) string {
	switch len(years) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("%d", years[0])
	default:
		return fmt.Sprintf("%d – %d", years[0], years[len(years)-1])
	}
}
