package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stacks/pkg/stacks"
)

const modulePath = "github.com/mesh-intelligence/stacks"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the stacks version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "stacks v%s\nmodule: %s\n", stacks.Version, modulePath)
			return nil
		},
	}
}
