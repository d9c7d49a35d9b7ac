package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/spektr-org/skilltrend/catalog"
	"github.com/spektr-org/skilltrend/internal/output"
)

func newCatalogCmd(a *app) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the categories, skills, years and regions",
		Long: `List the static catalog the generator enumerates.

Examples:
  skilltrend catalog           # Table of categories and skills
  skilltrend catalog --json    # Full catalog including growth buckets`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.loadCatalog()
			if err != nil {
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(cat)
			}
			return renderCatalog(a.printer(cmd), cat)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}

func renderCatalog(p *output.Printer, cat *catalog.Catalog) error {
	p.Header("Catalog")

	years := lo.Map(cat.Years(), func(y int, _ int) string { return strconv.Itoa(y) })
	regions := lo.Map(cat.Regions(), func(r catalog.Region, _ int) string {
		if r.Biased {
			return r.Name + " (biased)"
		}
		return r.Name
	})
	p.Print("Years:   %s", strings.Join(years, ", "))
	p.Print("Regions: %s", strings.Join(regions, ", "))
	p.Print("Records per run: %d", cat.Total())
	p.Print("")

	table := output.NewTable(p.Out(), []string{"CATEGORY", "SKILLS", "NAMES"}, []string{"left", "right", "left"})
	for _, c := range cat.Categories() {
		table.AddRow([]string{
			p.Bold(c.Name),
			fmt.Sprintf("%d", len(c.Skills)),
			strings.Join(c.Skills, ", "),
		})
	}
	return table.Render()
}
