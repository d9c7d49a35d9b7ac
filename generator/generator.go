// Package generator produces the synthetic skill-trend dataset: one record
// per (region, year, category, skill) of the catalog, with a random base
// count shaped by growth bucket, regional bias and noise.
package generator

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spektr-org/skilltrend/catalog"
	"github.com/spektr-org/skilltrend/engine"
	"github.com/spektr-org/skilltrend/snapshot"
)

// Generator builds records from a catalog.
type Generator struct {
	cat    *catalog.Catalog
	rng    Rand
	logger *zap.Logger
}

// Summary describes one completed Run.
type Summary struct {
	RunID    string        `json:"runId"`
	Records  int           `json:"records"`
	Regions  []string      `json:"regions"`
	Years    []int         `json:"years"`
	Path     string        `json:"path"`
	Duration time.Duration `json:"duration"`
}

// New creates a Generator. A nil catalog uses catalog.Default(); a nil
// logger is replaced by a no-op logger.
func New(cat *catalog.Catalog, rng Rand, logger *zap.Logger) *Generator {
	if cat == nil {
		cat = catalog.Default()
	}
	if rng == nil {
		rng = NewRand(0)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{cat: cat, rng: rng, logger: logger}
}

// Generate returns the full sorted dataset. Unlike Run it has no
// cancellation point and cannot fail.
func (g *Generator) Generate() []engine.TrendRecord {
	records := make([]engine.TrendRecord, 0, g.cat.Total())
	for _, region := range g.cat.Regions() {
		records = g.appendRegion(records, region.Name)
	}
	SortRecords(records)
	return records
}

// Run generates the dataset and overwrites the snapshot at path.
// Cancellation is checked between regions.
func (g *Generator) Run(ctx context.Context, path string) (*Summary, error) {
	start := time.Now()
	runID := uuid.NewString()
	log := g.logger.With(zap.String("run_id", runID))

	log.Info("generating dataset",
		zap.Int("regions", len(g.cat.Regions())),
		zap.Int("years", len(g.cat.Years())),
		zap.Int("skills", g.cat.Size()),
	)

	records, err := g.generate(ctx)
	if err != nil {
		return nil, err
	}

	if err := snapshot.Save(path, records); err != nil {
		return nil, fmt.Errorf("write snapshot: %w", err)
	}

	s := &Summary{
		RunID:    runID,
		Records:  len(records),
		Regions:  g.cat.RegionNames(),
		Years:    g.cat.Years(),
		Path:     path,
		Duration: time.Since(start),
	}
	log.Info("dataset written",
		zap.Int("records", s.Records),
		zap.String("path", path),
		zap.Duration("took", s.Duration),
	)
	return s, nil
}

// ── Internals ───────────────────────────────────────────────────────────────

func (g *Generator) generate(ctx context.Context) ([]engine.TrendRecord, error) {
	records := make([]engine.TrendRecord, 0, g.cat.Total())
	for _, region := range g.cat.Regions() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("generation cancelled: %w", err)
		}
		records = g.appendRegion(records, region.Name)
	}
	SortRecords(records)
	return records, nil
}

// appendRegion enumerates year → category → skill for one region. Ids
// continue from the records already present.
func (g *Generator) appendRegion(records []engine.TrendRecord, region string) []engine.TrendRecord {
	for _, year := range g.cat.Years() {
		for _, cat := range g.cat.Categories() {
			for _, skill := range cat.Skills {
				records = append(records, engine.TrendRecord{
					ID:       len(records) + 1,
					Year:     year,
					Skill:    skill,
					Category: cat.Name,
					Count:    g.count(region, year, skill),
					Region:   region,
				})
			}
		}
	}
	g.logger.Debug("region generated", zap.String("region", region), zap.Int("records", len(records)))
	return records
}

// count draws the base first, then the noise.
func (g *Generator) count(region string, year int, skill string) int {
	r := g.cat.BaseRange(skill)
	base := r.Min + g.rng.Intn(r.Max-r.Min+1)

	growth := g.cat.GrowthFactor(skill, year) * g.cat.Bias(region, skill)

	band := g.cat.Noise
	noise := 1 - band + g.rng.Float64()*2*band

	n := int(math.Floor(float64(base) * growth * noise))
	if n < g.cat.Floor {
		n = g.cat.Floor
	}
	return n
}

// SortRecords orders records by region, then year ascending, then count
// descending. Equal keys keep their enumeration order.
func SortRecords(records []engine.TrendRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.Region != b.Region {
			return a.Region < b.Region
		}
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		return a.Count > b.Count
	})
}
