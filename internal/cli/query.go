package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spektr-org/skilltrend/catalog"
	"github.com/spektr-org/skilltrend/engine"
	"github.com/spektr-org/skilltrend/i18n"
)

// queryFlags are the dashboard filters shared by view, export and chart
type queryFlags struct {
	region   string
	category string
	search   string
	lang     string
	top      int
}

func (f *queryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.region, "region", "", "region tag (default from config: TR)")
	cmd.Flags().StringVar(&f.category, "category", engine.AllCategories, "category name, or 'all' for the overview")
	cmd.Flags().StringVar(&f.search, "search", "", "case-insensitive skill name filter")
	cmd.Flags().StringVar(&f.lang, "lang", "", "display language: tr or en (default from config)")
	cmd.Flags().IntVar(&f.top, "top", 0, "number of snapshot entries to show (default from config: 8)")
}

// query merges flags over the configured view defaults
func (a *app) query(f *queryFlags) engine.Query {
	q := engine.Query{
		Region:   a.cfg.View.Region,
		Category: f.category,
		Search:   f.search,
		Lang:     i18n.ParseLang(a.cfg.View.Lang),
	}
	if f.region != "" {
		q.Region = f.region
	}
	if f.lang != "" {
		q.Lang = i18n.ParseLang(f.lang)
	}
	return q
}

func (a *app) snapshotLimit(f *queryFlags) int {
	if f.top > 0 {
		return f.top
	}
	return a.cfg.View.Top
}

// dashboard loads the snapshot and derives the views for the flags
func (a *app) dashboard(f *queryFlags) (*engine.Dashboard, *catalog.Catalog, []engine.TrendRecord, error) {
	if f.top < 0 {
		return nil, nil, nil, usageError("--top must not be negative, got %d", f.top)
	}

	cat, err := a.loadCatalog()
	if err != nil {
		return nil, nil, nil, err
	}
	records, err := a.loadRecords()
	if err != nil {
		return nil, nil, nil, err
	}

	q := a.query(f)
	if q.HasCategory() && !cat.HasCategory(q.Category) {
		a.logger.Warn("unknown category, view will be empty", zap.String("category", q.Category))
	}

	d := engine.Build(records, q,
		engine.WithYears(cat.Years()),
		engine.WithSnapshotLimit(a.snapshotLimit(f)),
		engine.WithLogger(a.logger),
	)
	return d, cat, records, nil
}
