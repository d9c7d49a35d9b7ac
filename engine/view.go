package engine

import "strconv"

// ============================================================================
// RECORD VIEW — Zero-Copy Data Access Interface
// ============================================================================
// The engine never copies the snapshot. It reads through this interface.
//
// Implementations:
//   DomainView[T]  — reads typed structs via accessor functions (zero-copy)
//   SubView        — filtered subset (indices into parent, zero-copy)
//
// Every derived view is a SubView chain rooted at the bound snapshot.
// ============================================================================

// RecordView provides indexed access to a dataset.
// The engine calls Dimension/Measure in tight loops; keep implementations fast.
type RecordView interface {
	Len() int
	Dimension(index int, key string) string
	Measure(index int, key string) float64
	DimensionKeys() []string
	MeasureKeys() []string
}

// sourceIndexer maps a view index back to the index in the bound slice.
type sourceIndexer interface {
	SourceIndex(i int) int
}

// ============================================================================
// SUB VIEW — filtered subset (zero-copy)
// ============================================================================

// SubView is a filtered subset of a parent RecordView.
// Holds indices into the parent; no data is copied.
type SubView struct {
	parent  RecordView
	indices []int
}

func newSubView(parent RecordView, indices []int) RecordView {
	return &SubView{parent: parent, indices: indices}
}

func (v *SubView) Len() int { return len(v.indices) }

func (v *SubView) Dimension(i int, key string) string {
	if i < 0 || i >= len(v.indices) {
		return ""
	}
	return v.parent.Dimension(v.indices[i], key)
}

func (v *SubView) Measure(i int, key string) float64 {
	if i < 0 || i >= len(v.indices) {
		return 0
	}
	return v.parent.Measure(v.indices[i], key)
}

func (v *SubView) DimensionKeys() []string { return v.parent.DimensionKeys() }
func (v *SubView) MeasureKeys() []string   { return v.parent.MeasureKeys() }

// SourceIndex resolves i through the parent chain.
func (v *SubView) SourceIndex(i int) int {
	idx := v.indices[i]
	if p, ok := v.parent.(sourceIndexer); ok {
		return p.SourceIndex(idx)
	}
	return idx
}

// ============================================================================
// DOMAIN ADAPTER — Zero-copy typed struct access
// ============================================================================

// DomainAdapter builds a RecordView from typed structs.
// Declare once, bind many times.
type DomainAdapter[T any] struct {
	dimOrder []string
	mesOrder []string
	dims     map[string]func(T) string
	meas     map[string]func(T) float64
}

// NewDomainAdapter creates a new adapter for type T.
func NewDomainAdapter[T any]() *DomainAdapter[T] {
	return &DomainAdapter[T]{
		dims: make(map[string]func(T) string),
		meas: make(map[string]func(T) float64),
	}
}

// Dimension registers a dimension accessor.
func (a *DomainAdapter[T]) Dimension(key string, fn func(T) string) *DomainAdapter[T] {
	if _, exists := a.dims[key]; !exists {
		a.dimOrder = append(a.dimOrder, key)
	}
	a.dims[key] = fn
	return a
}

// Measure registers a measure accessor.
func (a *DomainAdapter[T]) Measure(key string, fn func(T) float64) *DomainAdapter[T] {
	if _, exists := a.meas[key]; !exists {
		a.mesOrder = append(a.mesOrder, key)
	}
	a.meas[key] = fn
	return a
}

// Bind creates a RecordView from a data slice. Zero-copy: holds a reference.
func (a *DomainAdapter[T]) Bind(data []T) *DomainView[T] {
	return &DomainView[T]{
		data:     data,
		dims:     a.dims,
		meas:     a.meas,
		dimKeys:  a.dimOrder,
		measKeys: a.mesOrder,
	}
}

// DomainView reads typed struct fields via registered accessor functions.
type DomainView[T any] struct {
	data     []T
	dims     map[string]func(T) string
	meas     map[string]func(T) float64
	dimKeys  []string
	measKeys []string
}

func (v *DomainView[T]) Len() int { return len(v.data) }

func (v *DomainView[T]) Dimension(i int, key string) string {
	if i < 0 || i >= len(v.data) {
		return ""
	}
	if fn, ok := v.dims[key]; ok {
		return fn(v.data[i])
	}
	return ""
}

func (v *DomainView[T]) Measure(i int, key string) float64 {
	if i < 0 || i >= len(v.data) {
		return 0
	}
	if fn, ok := v.meas[key]; ok {
		return fn(v.data[i])
	}
	return 0
}

func (v *DomainView[T]) DimensionKeys() []string { return v.dimKeys }
func (v *DomainView[T]) MeasureKeys() []string   { return v.measKeys }

// SourceIndex is the identity for the root view.
func (v *DomainView[T]) SourceIndex(i int) int { return i }

// At returns the bound element at i.
func (v *DomainView[T]) At(i int) T { return v.data[i] }

// ============================================================================
// TRENDRECORD BINDING
// ============================================================================

var trendAdapter = NewDomainAdapter[TrendRecord]().
	Dimension(DimRegion, func(r TrendRecord) string { return r.Region }).
	Dimension(DimYear, func(r TrendRecord) string { return strconv.Itoa(r.Year) }).
	Dimension(DimCategory, func(r TrendRecord) string { return r.Category }).
	Dimension(DimSkill, func(r TrendRecord) string { return r.Skill }).
	Measure(MeasureCount, func(r TrendRecord) float64 { return float64(r.Count) })

// BindRecords exposes a record slice as a RecordView without copying it.
func BindRecords(records []TrendRecord) *DomainView[TrendRecord] {
	return trendAdapter.Bind(records)
}

// Collect materializes the records behind a view derived from root.
func Collect(root *DomainView[TrendRecord], view RecordView) []TrendRecord {
	out := make([]TrendRecord, 0, view.Len())
	idx, ok := view.(sourceIndexer)
	for i := 0; i < view.Len(); i++ {
		if ok {
			out = append(out, root.At(idx.SourceIndex(i)))
		} else {
			out = append(out, root.At(i))
		}
	}
	return out
}
