package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/spektr-org/skilltrend/internal/output"
	"github.com/spektr-org/skilltrend/render"
)

func newChartCmd(a *app) *cobra.Command {
	var (
		flags queryFlags
		kind  string
		out   string
	)

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render the growth or top-skills chart to an image",
		Long: `Render a chart for the selected filters. The image format follows the
file extension (png, svg, pdf).

  line  per-year counts of the displayed skills
  bar   the leading skills of the latest year (see --top)

Examples:
  skilltrend chart --kind line --out growth.png
  skilltrend chart --kind bar --top 5 --out top.svg --lang en`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if kind != "line" && kind != "bar" {
				return usageError("invalid chart kind %q: must be line or bar", kind)
			}
			if out == "" {
				return usageError("--out is required")
			}

			d, _, _, err := a.dashboard(&flags)
			if err != nil {
				return err
			}

			if kind == "line" {
				err = render.LineChart(d, out)
			} else {
				err = render.BarChart(d, out, a.snapshotLimit(&flags))
			}
			if err != nil {
				cliErr := &output.CLIError{
					Summary:  "chart rendering failed",
					Detail:   err.Error(),
					ExitCode: output.ExitGeneral,
					Err:      err,
				}
				if errors.Is(err, render.ErrNoData) {
					cliErr.Summary = "nothing to draw"
					cliErr.Suggestion = "widen the filters (--region, --category, --search)"
				}
				return cliErr
			}

			a.printer(cmd).Success("wrote %s chart to %s", kind, out)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&kind, "kind", "line", "chart kind: line or bar")
	cmd.Flags().StringVarP(&out, "out", "o", "", "image file to write")
	return cmd
}
