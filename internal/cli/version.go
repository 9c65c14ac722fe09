package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rose/pkg/rose"
)

const modulePath = "github.com/mesh-intelligence/rose"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the rose version",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "rose v%s\nmodule: %s\n", rose.Version, modulePath)
			return nil
		},
	}
}
