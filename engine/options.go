package engine

import "go.uber.org/zap"

// ============================================================================
// ENGINE OPTIONS — Functional options for Build()
// ============================================================================

// Option configures engine behavior via functional options pattern.
type Option func(*config)

type config struct {
	Years         []int // supported years; empty → derived from the dataset
	TopN          int   // overview ranking size
	SnapshotLimit int   // bar chart entries; 0 = all
	Logger        *zap.Logger
}

// WithYears fixes the supported year list (ascending). Without it the years
// present in the full dataset are used.
func WithYears(years []int) Option {
	return func(c *config) {
		c.Years = years
	}
}

// WithTopN overrides how many skills the overview ranking keeps.
func WithTopN(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.TopN = n
		}
	}
}

// WithSnapshotLimit caps the bar chart to the first n snapshot entries.
func WithSnapshotLimit(n int) Option {
	return func(c *config) {
		c.SnapshotLimit = n
	}
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.Logger = l
		}
	}
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{
		TopN:          DefaultTopN,
		SnapshotLimit: 8,
		Logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
