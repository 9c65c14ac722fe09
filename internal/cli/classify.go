package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rose/pkg/rose"
)

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify NAME...",
		Short: "Show the category each item name maps to",
		Long: `Classify prints the update category and conjured flag for each name.

Example:
  rose classify "Aged Brie" "Conjured Mana Cake" "Backstage passes - Hall"`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tCATEGORY\tCONJURED")
			for _, name := range args {
				conjured, category := rose.Classify(name)
				fmt.Fprintf(tw, "%s\t%s\t%t\n", name, category, conjured)
			}
			return tw.Flush()
		},
	}
}
