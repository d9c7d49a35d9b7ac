package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spektr-org/skilltrend/engine"
	"github.com/spektr-org/skilltrend/i18n"
	"github.com/spektr-org/skilltrend/internal/output"
	"github.com/spektr-org/skilltrend/snapshot"
)

func newViewCmd(a *app) *cobra.Command {
	var (
		flags      queryFlags
		jsonOutput bool
		verify     bool
	)

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Show the trend dashboard for a region and category",
		Long: `Show the summary cards, the per-year series and the skill snapshot
derived from the snapshot file.

Without --category the overview ranks the top 10 skills of the latest year.

Examples:
  skilltrend view                            # Default region, Turkish labels
  skilltrend view --region Global --lang en
  skilltrend view --category DevOps --search cloud
  skilltrend view --json                     # Machine-readable dashboard
  skilltrend view --verify                   # Check snapshot invariants`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, cat, records, err := a.dashboard(&flags)
			if err != nil {
				return err
			}
			p := a.printer(cmd)

			if verify {
				if err := snapshot.Validate(records, cat); err != nil {
					return &output.CLIError{
						Summary:    "snapshot does not match the catalog",
						Detail:     err.Error(),
						Suggestion: "regenerate it with 'skilltrend generate'",
						ExitCode:   output.ExitGeneral,
						Err:        err,
					}
				}
				if !jsonOutput {
					p.Success("snapshot verified: %d records", len(records))
				}
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(d)
			}
			return renderDashboard(p, d, a.snapshotLimit(&flags))
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output the dashboard as JSON")
	cmd.Flags().BoolVar(&verify, "verify", false, "validate the snapshot against the catalog")
	return cmd
}

func renderDashboard(p *output.Printer, d *engine.Dashboard, limit int) error {
	labels := i18n.For(d.Query.Lang)
	w := p.Out()

	p.Header(fmt.Sprintf("%s · %s", labels.Header.Title, labels.Category(d.Query.Category)))
	p.Print("%s", p.Dim(labels.Header.Subtitle))
	p.Print("")
	p.Cards(d.Cards)
	p.Print("")
	p.Print("%s", d.Reply)

	if d.IsEmpty() {
		p.Warning("no records match the current filters")
		return nil
	}

	p.Header(labels.Charts.GrowthTrends)
	if err := output.FromTableData(w, engine.BuildSeriesTable(d, labels)).Render(); err != nil {
		return err
	}

	p.Header(labels.Charts.YearlyAnalysis)
	return output.FromTableData(w, engine.BuildSnapshotTable(d, labels, limit)).Render()
}
