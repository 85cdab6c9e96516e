package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/shenikar/neo_risk_system/internal/risk"
	"github.com/spf13/cobra"
)

func newMaterialsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "materials",
		Short: "List composition presets and their densities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := risk.DefaultConstants()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "MATERIAL\tDENSITY (kg/m3)")
			for _, m := range risk.Materials() {
				density, _ := c.MaterialDensity(m)
				fmt.Fprintf(tw, "%s\t%.0f\n", m, density)
			}
			return tw.Flush()
		},
	}
}
