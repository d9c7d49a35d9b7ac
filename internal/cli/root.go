// Package cli contains all CLI commands for skilltrend
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/spektr-org/skilltrend/catalog"
	"github.com/spektr-org/skilltrend/engine"
	"github.com/spektr-org/skilltrend/internal/config"
	"github.com/spektr-org/skilltrend/internal/output"
	"github.com/spektr-org/skilltrend/snapshot"
)

// Build information, set at build time via ldflags
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// SetBuildInfo sets the version, commit hash and build time
func SetBuildInfo(v, c, bt string) {
	version = v
	commit = c
	buildTime = bt
}

// app is the state shared by all commands of one invocation
type app struct {
	cfgFile      string
	verbose      bool
	snapshotPath string
	noColor      bool

	cfg    *config.Config
	logger *zap.Logger
}

// Execute builds the command tree and runs it with args from os.Args
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd returns a fresh command tree
func NewRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "skilltrend",
		Short: "Synthetic IT skill-trend generator and dashboard",
		Long: `skilltrend generates a synthetic dataset of job-posting counts per
skill, category, region and year, and derives dashboard views from it.

Example usage:
  skilltrend generate --seed 42          # Write data/trends.json
  skilltrend view                        # Overview for the default region
  skilltrend view --category Data --lang en
  skilltrend export --format xlsx --out trends.xlsx
  skilltrend chart --kind line --out growth.png`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	// Global flags
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is .skilltrend.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().StringVar(&a.snapshotPath, "snapshot", "", "snapshot file (default from config: data/trends.json)")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &output.CLIError{
			Summary:    err.Error(),
			Suggestion: fmt.Sprintf("see '%s --help'", cmd.CommandPath()),
			ExitCode:   output.ExitUsageError,
			Err:        err,
		}
	})

	root.AddCommand(
		newGenerateCmd(a),
		newViewCmd(a),
		newExportCmd(a),
		newChartCmd(a),
		newCatalogCmd(a),
		newVersionCmd(),
	)
	return root
}

// init loads configuration and builds the logger
func (a *app) init() error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return &output.CLIError{
			Summary:    "invalid configuration",
			Detail:     err.Error(),
			Suggestion: "check .skilltrend.yaml and SKILLTREND_* environment variables",
			ExitCode:   output.ExitConfigError,
			Err:        err,
		}
	}
	if a.snapshotPath != "" {
		cfg.Snapshot.Path = a.snapshotPath
	}
	a.cfg = cfg

	logger, err := newLogger(cfg.Logging, a.verbose)
	if err != nil {
		return &output.CLIError{
			Summary:  "failed to initialize logger",
			Detail:   err.Error(),
			ExitCode: output.ExitConfigError,
			Err:      err,
		}
	}
	a.logger = logger

	a.logger.Debug("configuration loaded",
		zap.String("snapshot", cfg.Snapshot.Path),
		zap.String("catalog", cfg.Catalog.Path),
		zap.String("region", cfg.View.Region),
		zap.String("lang", cfg.View.Lang),
	)
	return nil
}

func newLogger(lc config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	var zc zap.Config
	if lc.Format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.Development = false
	}

	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}

// printer returns a Printer bound to the command's writers
func (a *app) printer(cmd *cobra.Command) *output.Printer {
	colors := true
	if a.cfg != nil {
		colors = a.cfg.Output.Colors
	}
	return output.NewPrinterWithWriters(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.ResolveColors(a.noColor, colors))
}

// ── Data loading ────────────────────────────────────────────────────────────

func (a *app) loadCatalog() (*catalog.Catalog, error) {
	if a.cfg.Catalog.Path == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.Load(a.cfg.Catalog.Path)
	if err != nil {
		return nil, &output.CLIError{
			Summary:    "cannot load catalog",
			Detail:     err.Error(),
			Suggestion: "fix catalog.path or remove it to use the built-in catalog",
			ExitCode:   output.ExitConfigError,
			Err:        err,
		}
	}
	return cat, nil
}

func (a *app) loadRecords() ([]engine.TrendRecord, error) {
	path := a.cfg.Snapshot.Path
	records, err := snapshot.Load(path)
	if err != nil {
		code := output.ExitGeneral
		if errors.Is(err, snapshot.ErrUnavailable) {
			code = output.ExitDataUnavailable
		}
		return nil, &output.CLIError{
			Summary:    fmt.Sprintf("snapshot %s is unavailable", path),
			Detail:     err.Error(),
			Suggestion: "run 'skilltrend generate' to create it",
			ExitCode:   code,
			Err:        err,
		}
	}
	a.logger.Debug("snapshot loaded", zap.String("path", path), zap.Int("records", len(records)))
	return records, nil
}

func usageError(format string, args ...interface{}) error {
	return &output.CLIError{
		Summary:  fmt.Sprintf(format, args...),
		ExitCode: output.ExitUsageError,
	}
}
