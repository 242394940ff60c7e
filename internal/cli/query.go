package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stacks/pkg/types"
)

func (s *Session) newPeekCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "peek <shelf> <compartment>",
		Short: "Show what a compartment holds",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			shelf, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid shelf %q", args[0])
			}
			compartment, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid compartment %q", args[1])
			}
			pos := types.NewPosition(shelf, compartment)

			empty, err := s.inv.IsCompartmentEmpty(pos)
			if err != nil {
				return fmt.Errorf("peek: %w", err)
			}
			out := cmd.OutOrStdout()
			if empty {
				fmt.Fprintf(out, "Compartment at %s is empty.\n", pos)
				return nil
			}
			item, _ := s.inv.ItemAt(pos)
			fmt.Fprintf(out, "Compartment at %s holds:\n", pos)
			fmt.Fprint(out, item.Render())
			return nil
		},
	}
}

func (s *Session) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <item-id>",
		Short: "Show whether an item is checked out",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !s.inv.IsItemCheckedOut(id) {
				fmt.Fprintf(out, "Item %d is not checked out.\n", id)
				return nil
			}
			record, _ := s.inv.Record(id)
			fmt.Fprintf(out, "Item %d is checked out to %s, due %s.\n",
				id, record.Borrower, record.DueDate.Format(types.DueDateLayout))
			return nil
		},
	}
}
