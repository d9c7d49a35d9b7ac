package engine

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spektr-org/skilltrend/i18n"
)

// ============================================================================
// DASHBOARD PIPELINE TESTS
// ============================================================================

func TestBuildOverview(t *testing.T) {
	d := Build(smallFixture(), Query{Region: "TR", Lang: i18n.English})

	assert.Equal(t, []int{2022, 2023}, d.Years)
	assert.Equal(t, 4, d.RecordCount)
	assert.False(t, d.IsEmpty())
	assert.Equal(t, AllCategories, d.Query.Category)
	assert.Equal(t, []string{"React", "Go"}, d.TopSkills)
	assert.Equal(t, d.TopSkills, d.Skills)

	require.Len(t, d.Series, 2)
	assert.Equal(t, map[string]int{"React": 100, "Go": 80}, d.Series[0].Values)
	assert.Equal(t, map[string]int{"React": 150, "Go": 60}, d.Series[1].Values)

	want := []SkillShare{
		{Skill: "React", Count: 150, Percent: 71.4},
		{Skill: "Go", Count: 60, Percent: 28.6},
	}
	if diff := cmp.Diff(want, d.Snapshot); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, 390, d.Stats.Total)
	assert.True(t, d.Stats.HasFastest)
	assert.Equal(t, "React", d.Stats.FastestRising)
	assert.Equal(t, 50.0, d.Stats.FastestRate)
	assert.Equal(t, 16.7, d.Stats.YearlyGrowth)
	assert.Equal(t, 2022, d.Stats.PriorYear)
	assert.Equal(t, 2023, d.Stats.LatestYear)

	values := make(map[string]string)
	for _, c := range d.Cards {
		values[c.Key] = c.Value
	}
	assert.Equal(t, map[string]string{
		"analyzedJobs":  "390",
		"fastestRising": "React",
		"trendVelocity": "+50.0%",
		"yearlyGrowth":  "+16.7%",
		"region":        "Turkey",
	}, values)

	assert.Equal(t,
		"390 jobs analyzed in Turkey for 2022 – 2023. Fastest rising: React (+50.0%). Total volume change: +16.7%.",
		d.Reply)
}

func TestBuildCategoryShowsEverySkill(t *testing.T) {
	d := Build(smallFixture(), Query{Region: "TR", Category: "Backend"})

	assert.Nil(t, d.TopSkills)
	assert.Equal(t, []string{"Go"}, d.Skills)
	assert.Equal(t, 140, d.Stats.Total)
	assert.Equal(t, "Go", d.Stats.FastestRising)
	assert.Equal(t, -25.0, d.Stats.FastestRate)
}

func TestBuildFastestSkipsSkillsWithoutPriorYear(t *testing.T) {
	records := append(smallFixture(),
		TrendRecord{ID: 5, Year: 2023, Skill: "Rust", Category: "Backend", Count: 500, Region: "TR"})

	d := Build(records, Query{Region: "TR"})

	assert.Equal(t, "Rust", d.TopSkills[0])
	assert.Equal(t, "React", d.Stats.FastestRising)
	assert.Equal(t, 50.0, d.Stats.FastestRate)
}

func TestBuildEmptyRegion(t *testing.T) {
	d := Build(smallFixture(), Query{Region: "Global", Lang: i18n.English})

	assert.True(t, d.IsEmpty())
	assert.Equal(t, []int{2022, 2023}, d.Years)
	assert.Empty(t, d.Skills)
	assert.Empty(t, d.Snapshot)
	assert.Equal(t, 0, d.Stats.Total)
	assert.Equal(t, 0.0, d.Stats.YearlyGrowth)
	assert.False(t, d.Stats.HasFastest)
	assert.Nil(t, d.LineChart)
	assert.Nil(t, d.BarChart)

	require.Len(t, d.Cards, 5)
	assert.Equal(t, "Calculating...", d.Cards[1].Value)
	assert.Equal(t, "-", d.Cards[2].Value)
	assert.Equal(t, "+0.0%", d.Cards[3].Value)
}

func TestBuildTopSkillsCappedAndSubset(t *testing.T) {
	var records []TrendRecord
	for i := 0; i < 15; i++ {
		records = append(records, TrendRecord{
			ID: i + 1, Year: 2026, Skill: fmt.Sprintf("skill-%02d", i),
			Category: "Tools", Count: 10 + i, Region: "TR",
		})
	}

	d := Build(records, Query{Region: "TR"})
	require.Len(t, d.TopSkills, DefaultTopN)
	assert.Equal(t, "skill-14", d.TopSkills[0])
	assert.Equal(t, "skill-05", d.TopSkills[9])

	present := UniqueValues(BindRecords(records), DimSkill)
	assert.Subset(t, present, d.TopSkills)

	d = Build(records, Query{Region: "TR"}, WithTopN(3))
	assert.Equal(t, []string{"skill-14", "skill-13", "skill-12"}, d.TopSkills)
}

func TestBuildFallsBackToAllYearsWhenLatestEmpty(t *testing.T) {
	d := Build(smallFixture(), Query{Region: "TR"}, WithYears([]int{2022, 2023, 2024}))

	assert.Equal(t, []string{"React", "Go"}, d.TopSkills)
	require.Len(t, d.Snapshot, 2)
	assert.Equal(t, 250, d.Snapshot[0].Count)
	require.Len(t, d.Series, 3)
	assert.Empty(t, d.Series[2].Values)
}

func TestBuildSumsDuplicateSkillNames(t *testing.T) {
	records := []TrendRecord{
		{ID: 1, Year: 2025, Skill: "Python", Category: "Backend", Count: 40, Region: "TR"},
		{ID: 2, Year: 2025, Skill: "Python", Category: "Data", Count: 60, Region: "TR"},
		{ID: 3, Year: 2026, Skill: "Python", Category: "Backend", Count: 50, Region: "TR"},
		{ID: 4, Year: 2026, Skill: "Python", Category: "Data", Count: 70, Region: "TR"},
	}

	d := Build(records, Query{Region: "TR"})
	assert.Equal(t, []string{"Python"}, d.TopSkills)
	assert.Equal(t, 100, d.Series[0].Values["Python"])
	assert.Equal(t, 120, d.Series[1].Values["Python"])
	assert.Equal(t, 20.0, d.Stats.FastestRate)
}

func TestBuildLanguageOnlyChangesText(t *testing.T) {
	tr := Build(smallFixture(), Query{Region: "TR", Lang: i18n.Turkish})
	en := Build(smallFixture(), Query{Region: "TR", Lang: i18n.English})

	assert.Equal(t, tr.Stats, en.Stats)
	assert.Equal(t, tr.Snapshot, en.Snapshot)
	assert.Equal(t, "Türkiye", tr.Cards[4].Value)
	assert.Equal(t, "Turkey", en.Cards[4].Value)
}

func TestSeriesRowJSON(t *testing.T) {
	d := Build(smallFixture(), Query{Region: "TR"})

	b, err := json.Marshal(d.Series[0])
	require.NoError(t, err)
	assert.Equal(t, `{"year":2022,"React":100,"Go":80}`, string(b))

	b, err = json.Marshal(SeriesRow{Year: 2024})
	require.NoError(t, err)
	assert.Equal(t, `{"year":2024}`, string(b))
}

func TestResolvePlaceholdersStripsUnknown(t *testing.T) {
	d := Build(smallFixture(), Query{Region: "TR", Lang: i18n.English})
	labels := i18n.For(i18n.English)

	got := ResolvePlaceholders("{total} in {region} {unknown}", d, labels)
	assert.Equal(t, "390 in Turkey", got)
	assert.Equal(t, "", ResolvePlaceholders("", d, labels))
}

func TestDerivePeriod(t *testing.T) {
	assert.Equal(t, "", DerivePeriod(nil))
	assert.Equal(t, "2024", DerivePeriod([]int{2024}))
	assert.Equal(t, "2022 – 2026", DerivePeriod([]int{2022, 2023, 2026}))
}

func TestBuildGrowthRateExample(t *testing.T) {
	records := []TrendRecord{
		{ID: 1, Year: 2025, Skill: "Kubernetes", Category: "DevOps", Count: 100, Region: "Global"},
		{ID: 2, Year: 2026, Skill: "Kubernetes", Category: "DevOps", Count: 150, Region: "Global"},
	}

	d := Build(records, Query{Region: "Global", Lang: i18n.English})
	assert.Equal(t, "Kubernetes", d.Stats.FastestRising)
	assert.Equal(t, 50.0, d.Stats.FastestRate)
	assert.Equal(t, "+50.0%", d.Cards[2].Value)
}
