package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (s *Session) newSwapCmd() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:     "swap",
		Short:   "Exchange the contents of two occupied compartments",
		Args:    cobra.NoArgs,
		Example: "  swap --from 0,3 --to 2,14",
		RunE: func(cmd *cobra.Command, args []string) error {
			pos1, err := parsePosition(from)
			if err != nil {
				return err
			}
			pos2, err := parsePosition(to)
			if err != nil {
				return err
			}
			if err := s.inv.SwapItems(pos1, pos2); err != nil {
				return fmt.Errorf("swap: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Swapped %s and %s.\n", pos1, pos2)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", `first position as "shelf,compartment" (required)`)
	cmd.Flags().StringVar(&to, "to", "", `second position as "shelf,compartment" (required)`)
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
