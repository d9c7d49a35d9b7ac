package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// AGGREGATION TESTS
// ============================================================================

func TestGroupAndAggregateSumSortLimit(t *testing.T) {
	view := BindRecords(smallFixture())

	groups := GroupAndAggregate(view, DimSkill, MeasureCount, SortValueDesc, 0)
	require.Len(t, groups, 2)
	assert.Equal(t, "React", groups[0].Key)
	assert.Equal(t, 250.0, groups[0].Value)
	assert.Equal(t, 2, groups[0].Count)
	assert.Equal(t, "Go", groups[1].Key)
	assert.Equal(t, 140.0, groups[1].Value)

	limited := GroupAndAggregate(view, DimSkill, MeasureCount, SortValueDesc, 1)
	require.Len(t, limited, 1)
	assert.Equal(t, "React", limited[0].Key)
}

func TestGroupAndAggregateKeepsGroupingOrder(t *testing.T) {
	view := BindRecords(smallFixture())

	byYear := GroupAndAggregate(view, DimYear, MeasureCount, "", 0)
	require.Len(t, byYear, 2)
	assert.Equal(t, "2022", byYear[0].Key)
	assert.Equal(t, 180.0, byYear[0].Value)
	assert.Equal(t, "2023", byYear[1].Key)
	assert.Equal(t, 210.0, byYear[1].Value)

	assert.Nil(t, GroupAndAggregate(BindRecords(nil), DimSkill, MeasureCount, "", 0))
}

func TestSortGroupsTiesKeepFirstSeenOrder(t *testing.T) {
	groups := []Group{
		{Key: "b", Value: 10},
		{Key: "a", Value: 20},
		{Key: "c", Value: 10},
		{Key: "d", Value: 20},
	}
	SortGroups(groups, SortValueDesc)

	keys := make([]string, len(groups))
	for i, g := range groups {
		keys[i] = g.Key
	}
	assert.Equal(t, []string{"a", "d", "b", "c"}, keys)
}

func TestSumByKey(t *testing.T) {
	totals := SumByKey(BindRecords(smallFixture()), DimCategory, MeasureCount)
	assert.Equal(t, map[string]float64{"Frontend": 250, "Backend": 140}, totals)
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		from, to float64
		want     float64
	}{
		{"rise", 100, 150, 50},
		{"fall", 200, 150, -25},
		{"flat", 80, 80, 0},
		{"zero base", 0, 90, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, PercentChange(tt.from, tt.to), 1e-9)
		})
	}
}

func TestRoundTo1(t *testing.T) {
	assert.Equal(t, 16.7, RoundTo1(50.0/3))
	assert.Equal(t, 71.4, RoundTo1(150.0/210*100))
	assert.Equal(t, -25.0, RoundTo1(-25))
}

func TestUniqueValuesAndYears(t *testing.T) {
	records := append(smallFixture(), TrendRecord{ID: 5, Year: 2021, Skill: "Go", Category: "Backend", Count: 5, Region: "TR"})
	view := BindRecords(records)

	assert.Equal(t, []string{"React", "Go"}, UniqueValues(view, DimSkill))
	assert.Equal(t, []int{2021, 2022, 2023}, UniqueYears(view))
	assert.Empty(t, UniqueYears(BindRecords(nil)))
}
