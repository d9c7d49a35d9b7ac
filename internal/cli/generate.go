package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spektr-org/skilltrend/generator"
	"github.com/spektr-org/skilltrend/internal/output"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		out  string
		seed int64
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the synthetic skill-trend snapshot",
		Long: `Generate one record per region, year, category and skill of the catalog
and overwrite the snapshot file.

Examples:
  skilltrend generate                    # Random dataset to data/trends.json
  skilltrend generate --seed 42          # Reproducible dataset
  skilltrend generate --out /tmp/t.json  # Custom location`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.loadCatalog()
			if err != nil {
				return err
			}

			path := a.cfg.Snapshot.Path
			if out != "" {
				path = out
			}
			if !cmd.Flags().Changed("seed") {
				seed = a.cfg.Generator.Seed
			}
			a.logger.Debug("generator seed", zap.Int64("seed", seed))

			gen := generator.New(cat, generator.NewRand(seed), a.logger)
			summary, err := gen.Run(cmd.Context(), path)
			if err != nil {
				return &output.CLIError{
					Summary:  "generation failed",
					Detail:   err.Error(),
					ExitCode: output.ExitGeneral,
					Err:      err,
				}
			}

			p := a.printer(cmd)
			p.Success("wrote %d records to %s", summary.Records, summary.Path)
			p.Print("  regions: %v  years: %d-%d  run: %s",
				summary.Regions, summary.Years[0], summary.Years[len(summary.Years)-1], summary.RunID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "snapshot file to write (default from config)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed, 0 for time-based")
	return cmd
}
