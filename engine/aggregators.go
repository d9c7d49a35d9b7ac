package engine

import (
	"math"
	"sort"
	"strconv"

	"github.com/samber/lo"
)

// ============================================================================
// AGGREGATORS — Grouping, Aggregation, and Sorting via RecordView
// ============================================================================
// All functions operate on RecordView — zero-copy access to any data source.
// Grouping produces SubViews (index lists into parent view) and keeps the
// order in which keys were first seen; every sort below is stable so that
// first-seen order breaks ties.
// ============================================================================

// GroupAndAggregate is the main entry point for the aggregation pipeline.
// Pipeline: group → sum → sort → limit.
func GroupAndAggregate(
	view RecordView,
	groupBy string,
	measure string,
	sortBy string,
	limit int,
) []Group {
	if view.Len() == 0 {
		return nil
	}

	// 1. Group
	groups := groupBySingle(view, groupBy)

	// 2. Aggregate
	for i := range groups {
		groups[i].Count = groups[i].View.Len()
		groups[i].Value = SumMeasure(groups[i].View, measure)
	}

	// 3. Sort
	SortGroups(groups, sortBy)

	// 4. Limit
	if limit > 0 && len(groups) > limit {
		groups = groups[:limit]
	}

	return groups
}

// ============================================================================
// GROUPING
// ============================================================================

func groupBySingle(view RecordView, dimension string) []Group {
	grouped := make(map[string][]int)
	order := make([]string, 0)

	for i := 0; i < view.Len(); i++ {
		key := view.Dimension(i, dimension)
		if _, exists := grouped[key]; !exists {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], i)
	}

	groups := make([]Group, 0, len(order))
	for _, key := range order {
		groups = append(groups, Group{
			Key:   key,
			Label: key,
			View:  newSubView(view, grouped[key]),
		})
	}
	return groups
}

// ============================================================================
// AGGREGATION
// ============================================================================

// SumMeasure sums a named measure across a view.
func SumMeasure(view RecordView, measure string) float64 {
	var total float64
	for i := 0; i < view.Len(); i++ {
		total += view.Measure(i, measure)
	}
	return total
}

// SumByKey sums a measure per dimension value.
func SumByKey(view RecordView, dimension, measure string) map[string]float64 {
	totals := make(map[string]float64)
	for i := 0; i < view.Len(); i++ {
		totals[view.Dimension(i, dimension)] += view.Measure(i, measure)
	}
	return totals
}

// ============================================================================
// SORTING
// ============================================================================

// SortValueDesc orders groups by descending value.
const SortValueDesc = "value_desc"

// SortGroups sorts aggregate groups by the specified sort mode. Any other
// mode keeps grouping order. Ties keep their incoming order.
func SortGroups(groups []Group, sortBy string) {
	if sortBy == SortValueDesc {
		sort.SliceStable(groups, func(i, j int) bool { return groups[i].Value > groups[j].Value })
	}
}

// ============================================================================
// FORMATTING UTILITIES
// ============================================================================

func yearKey(year int) string { return strconv.Itoa(year) }

func parseYear(key string) int {
	y, err := strconv.Atoi(key)
	if err != nil {
		return 0
	}
	return y
}

// RoundTo1 rounds to 1 decimal place.
func RoundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}

// PercentChange returns (to − from) / from × 100, or 0 when from is 0.
func PercentChange(from, to float64) float64 {
	if from == 0 {
		return 0
	}
	return (to - from) / from * 100
}

// UniqueValues returns distinct values for a dimension in first-seen order.
func UniqueValues(view RecordView, dimension string) []string {
	values := make([]string, 0, view.Len())
	for i := 0; i < view.Len(); i++ {
		if val := view.Dimension(i, dimension); val != "" {
			values = append(values, val)
		}
	}
	return lo.Uniq(values)
}

// UniqueYears returns the distinct years present in a view, ascending.
func UniqueYears(view RecordView) []int {
	years := lo.FilterMap(UniqueValues(view, DimYear), func(key string, _ int) (int, bool) {
		y := parseYear(key)
		return y, y != 0
	})
	sort.Ints(years)
	return years
}
