// Package render draws dashboard charts to image files with gonum/plot.
// The output format follows the file extension (png, svg, pdf, ...).
package render

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/spektr-org/skilltrend/engine"
	"github.com/spektr-org/skilltrend/i18n"
)

// ErrNoData is returned when the dashboard has nothing to draw.
var ErrNoData = errors.New("no data to plot")

// Chart dimensions.
var (
	Width  = 10 * vg.Inch
	Height = 6 * vg.Inch
)

// LineChart draws the per-year growth lines of the displayed skills.
func LineChart(d *engine.Dashboard, path string) error {
	cfg := d.LineChart
	if cfg == nil || len(cfg.Series) == 0 {
		return fmt.Errorf("line chart: %w", ErrNoData)
	}

	p := newPlot(cfg)
	p.Legend.Top = true

	ticks := make([]plot.Tick, 0, len(d.Years))
	for _, y := range d.Years {
		ticks = append(ticks, plot.Tick{Value: float64(y), Label: strconv.Itoa(y)})
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)

	for i, s := range cfg.Series {
		pts := make(plotter.XYs, 0, len(s.Data))
		for _, pt := range s.Data {
			year, err := strconv.Atoi(pt.Label)
			if err != nil {
				return fmt.Errorf("line chart: series %s: bad year %q", s.Name, pt.Label)
			}
			pts = append(pts, plotter.XY{X: float64(year), Y: pt.Value})
		}
		if len(pts) == 0 {
			continue
		}

		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return fmt.Errorf("line chart: series %s: %w", s.Name, err)
		}
		c := seriesColor(cfg, s, i)
		line.Color = c
		line.Width = vg.Points(2)
		points.Color = c
		points.Radius = vg.Points(2.5)

		p.Add(line, points)
		p.Legend.Add(s.Name, line)
	}

	return save(p, path)
}

// BarChart draws the first limit entries of the skill snapshot (0 = all).
func BarChart(d *engine.Dashboard, path string, limit int) error {
	cfg := engine.BuildBarChart(d, i18n.For(d.Query.Lang), limit)
	if cfg == nil || len(cfg.Series) == 0 || len(cfg.Series[0].Data) == 0 {
		return fmt.Errorf("bar chart: %w", ErrNoData)
	}

	data := cfg.Series[0].Data
	p := newPlot(cfg)

	names := make([]string, len(data))
	for i, pt := range data {
		names[i] = pt.Label

		values := make(plotter.Values, len(data))
		values[i] = pt.Value
		bars, err := plotter.NewBarChart(values, vg.Points(28))
		if err != nil {
			return fmt.Errorf("bar chart: %w", err)
		}
		bars.Color = parseHex(cfg.Colors[i])
		bars.LineStyle.Width = vg.Length(0)
		p.Add(bars)
	}
	p.NominalX(names...)
	p.Y.Min = 0

	return save(p, path)
}

// ── Helpers ─────────────────────────────────────────────────────────────────

func newPlot(cfg *engine.ChartConfig) *plot.Plot {
	p := plot.New()
	p.Title.Text = cfg.Title
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = cfg.XAxis
	p.Y.Label.Text = cfg.YAxis
	if cfg.ChartType == "bar" {
		// Bars are vertical; the axis captions swap.
		p.X.Label.Text = cfg.YAxis
		p.Y.Label.Text = cfg.XAxis
	}
	if cfg.ShowGrid {
		p.Add(plotter.NewGrid())
	}
	return p
}

func save(p *plot.Plot, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create chart dir %s: %w", dir, err)
		}
	}
	if err := p.Save(Width, Height, path); err != nil {
		return fmt.Errorf("save chart %s: %w", path, err)
	}
	return nil
}

func seriesColor(cfg *engine.ChartConfig, s engine.ChartSeries, i int) color.Color {
	if s.Color != "" {
		return parseHex(s.Color)
	}
	if i < len(cfg.Colors) {
		return parseHex(cfg.Colors[i])
	}
	return color.Black
}

// parseHex converts "#rrggbb" to a color. Malformed input yields gray.
func parseHex(s string) color.RGBA {
	gray := color.RGBA{R: 128, G: 128, B: 128, A: 255}
	if len(s) != 7 || s[0] != '#' {
		return gray
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return gray
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}
