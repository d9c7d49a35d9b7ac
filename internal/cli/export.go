package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spektr-org/skilltrend/export"
	"github.com/spektr-org/skilltrend/internal/output"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		flags  queryFlags
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the dashboard tables as CSV or XLSX",
		Long: `Export the per-year series and the skill snapshot for the selected
filters.

CSV writes both tables to one stream separated by a blank line; '-' or an
empty --out writes to stdout. XLSX writes a workbook with Series, Snapshot
and Summary sheets and requires --out.

Examples:
  skilltrend export --format csv > trends.csv
  skilltrend export --format xlsx --out reports/trends.xlsx --category Data`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(strings.TrimSpace(format))
			if format != "csv" && format != "xlsx" {
				return usageError("invalid format %q: must be csv or xlsx", format)
			}
			if format == "xlsx" && (out == "" || out == "-") {
				return usageError("--out is required for xlsx export")
			}

			d, _, _, err := a.dashboard(&flags)
			if err != nil {
				return err
			}

			if format == "xlsx" {
				if err := export.WriteXLSX(out, d); err != nil {
					return exportError(err)
				}
				a.printer(cmd).Success("exported workbook to %s", out)
				return nil
			}

			if out == "" || out == "-" {
				if err := export.WriteCSV(cmd.OutOrStdout(), d); err != nil {
					return exportError(err)
				}
				return nil
			}
			f, err := os.Create(out)
			if err != nil {
				return exportError(err)
			}
			if err := export.WriteCSV(f, d); err != nil {
				f.Close()
				return exportError(err)
			}
			if err := f.Close(); err != nil {
				return exportError(err)
			}
			a.printer(cmd).Success("exported CSV to %s", out)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "csv", "output format: csv or xlsx")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file ('-' for stdout, csv only)")
	return cmd
}

func exportError(err error) error {
	return &output.CLIError{
		Summary:  "export failed",
		Detail:   fmt.Sprint(err),
		ExitCode: output.ExitGeneral,
		Err:      err,
	}
}
