package engine

import (
	"strings"
)

// ============================================================================
// FILTERS — Generic Dimension-Based Filtering via RecordView
// ============================================================================
// Single-pass filter: checks ALL dimension constraints per record in one loop.
// Returns a SubView (index list into parent) — zero data copy.
// ============================================================================

// Filters define which records to include.
// Keys are dimension names. Values are allowed values.
// OR within a dimension, AND across dimensions. Empty = all.
type Filters struct {
	Dimensions map[string][]string `json:"dimensions"`
}

// IsEmpty returns true if no filters are set.
func (f Filters) IsEmpty() bool {
	for _, vals := range f.Dimensions {
		if len(vals) > 0 {
			return false
		}
	}
	return true
}

// ApplyFilters returns a view of records matching all dimension filters.
// Dimensions are AND-combined; values within a dimension are OR-combined.
// Matching is case-insensitive. Empty filter = no restriction.
func ApplyFilters(view RecordView, filters Filters) RecordView {
	if filters.IsEmpty() {
		return view
	}

	// Pre-build lowercase lookup sets for each dimension filter
	sets := make(map[string]map[string]bool)
	for dim, allowed := range filters.Dimensions {
		if len(allowed) > 0 {
			sets[dim] = toLowerSet(allowed)
		}
	}

	// Single pass — record passes if it matches ALL dimension filters
	n := view.Len()
	indices := make([]int, 0, n)
	for i := 0; i < n; i++ {
		pass := true
		for dim, set := range sets {
			val := strings.ToLower(view.Dimension(i, dim))
			if !set[val] {
				pass = false
				break
			}
		}
		if pass {
			indices = append(indices, i)
		}
	}

	return newSubView(view, indices)
}

// ApplySearch keeps records whose dimension contains term, ignoring case.
// A term that is empty after trimming returns the view unchanged.
func ApplySearch(view RecordView, dimension, term string) RecordView {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return view
	}

	indices := make([]int, 0, view.Len())
	for i := 0; i < view.Len(); i++ {
		if strings.Contains(strings.ToLower(view.Dimension(i, dimension)), term) {
			indices = append(indices, i)
		}
	}
	return newSubView(view, indices)
}

// FilterView applies a Query to the full dataset view: region, optional
// category, then the skill search term.
func FilterView(view RecordView, q Query) RecordView {
	filtered := ApplyFilters(view, q.Filters())
	return ApplySearch(filtered, DimSkill, q.Search)
}

// Filter returns the records matching q. It always starts from the full
// record set, so repeated calls never narrow each other.
func Filter(records []TrendRecord, q Query) []TrendRecord {
	root := BindRecords(records)
	return Collect(root, FilterView(root, q.normalize()))
}

// FilterYear returns the records of a single year.
func FilterYear(view RecordView, year int) RecordView {
	return ApplyFilters(view, Filters{Dimensions: map[string][]string{
		DimYear: {yearKey(year)},
	}})
}

// toLowerSet converts a string slice to a lowercase lookup set.
func toLowerSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = true
	}
	return set
}
