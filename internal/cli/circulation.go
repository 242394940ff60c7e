package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stacks/pkg/types"
)

func (s *Session) newCheckoutCmd() *cobra.Command {
	var borrower string
	cmd := &cobra.Command{
		Use:     "checkout <item-id>",
		Short:   "Check an item out to a borrower",
		Args:    cobra.ExactArgs(1),
		Example: `  checkout 1000 --borrower "Alice"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			item, err := s.inv.CheckoutItem(id, borrower)
			if err != nil {
				return fmt.Errorf("checkout %d: %w", id, err)
			}
			record, _ := s.inv.Record(id)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Item checked out:")
			fmt.Fprint(out, item.Render())
			fmt.Fprintf(out, "Due date: %s\n", record.DueDate.Format(types.DueDateLayout))
			fmt.Fprintf(out, "Loan: %s\n", record.LoanID)
			return nil
		},
	}
	cmd.Flags().StringVar(&borrower, "borrower", "", "person checking the item out (required)")
	_ = cmd.MarkFlagRequired("borrower")
	return cmd
}

func (s *Session) newCheckinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkin <item-id>",
		Short: "Return a checked-out item to its shelf",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			// Grab the original position before the record is discarded.
			record, _ := s.inv.Record(id)
			if err := s.inv.CheckinItem(id); err != nil {
				return fmt.Errorf("checkin %d: %w", id, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Item %d checked in at %s.\n",
				id, record.OriginalPosition)
			return nil
		},
	}
}
