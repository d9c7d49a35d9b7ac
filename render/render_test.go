package render

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spektr-org/skilltrend/engine"
	"github.com/spektr-org/skilltrend/i18n"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func fixture() []engine.TrendRecord {
	return []engine.TrendRecord{
		{ID: 1, Year: 2025, Skill: "Go", Category: "Backend", Count: 80, Region: "TR"},
		{ID: 2, Year: 2025, Skill: "Java", Category: "Backend", Count: 120, Region: "TR"},
		{ID: 3, Year: 2026, Skill: "Java", Category: "Backend", Count: 130, Region: "TR"},
		{ID: 4, Year: 2026, Skill: "Go", Category: "Backend", Count: 110, Region: "TR"},
	}
}

func assertPNG(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic), "expected PNG header")
}

func TestLineChartWritesPNG(t *testing.T) {
	d := engine.Build(fixture(), engine.Query{Region: "TR", Lang: i18n.English})
	path := filepath.Join(t.TempDir(), "charts", "growth.png")

	require.NoError(t, LineChart(d, path))
	assertPNG(t, path)
}

func TestBarChartWritesPNG(t *testing.T) {
	d := engine.Build(fixture(), engine.Query{Region: "TR"})
	path := filepath.Join(t.TempDir(), "top.png")

	require.NoError(t, BarChart(d, path, 8))
	assertPNG(t, path)
}

func TestEmptyDashboardHasNoData(t *testing.T) {
	d := engine.Build(fixture(), engine.Query{Region: "Global"})
	dir := t.TempDir()

	assert.ErrorIs(t, LineChart(d, filepath.Join(dir, "a.png")), ErrNoData)
	assert.ErrorIs(t, BarChart(d, filepath.Join(dir, "b.png"), 8), ErrNoData)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestParseHex(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 255}, parseHex("#3b82f6"))
	assert.Equal(t, color.RGBA{R: 128, G: 128, B: 128, A: 255}, parseHex("blue"))
	assert.Equal(t, color.RGBA{R: 128, G: 128, B: 128, A: 255}, parseHex("#zzzzzz"))
}
