package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stacks/pkg/types"
)

func (s *Session) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every item in storage, in grid order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if s.json {
				return s.printItemsJSON(cmd.OutOrStdout())
			}
			s.inv.RenderItems(cmd.OutOrStdout())
			return nil
		},
	}
}

func (s *Session) newLoansCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "loans",
		Short: "List every checked-out item with its loan details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if s.json {
				return s.printLoansJSON(cmd.OutOrStdout())
			}
			s.inv.RenderLoans(cmd.OutOrStdout())
			return nil
		},
	}
}

// listEntry is the JSON shape of one stored item.
type listEntry struct {
	Shelf       int        `json:"shelf"`
	Compartment int        `json:"compartment"`
	Kind        string     `json:"kind"`
	Item        types.Item `json:"item"`
}

func (s *Session) printItemsJSON(w io.Writer) error {
	entries := make([]listEntry, 0)
	for _, stored := range s.inv.Items() {
		entries = append(entries, listEntry{
			Shelf:       stored.Position.Shelf,
			Compartment: stored.Position.Compartment,
			Kind:        stored.Item.Kind(),
			Item:        stored.Item,
		})
	}
	return printJSON(w, entries)
}

// loanEntry is the JSON shape of one checkout record.
type loanEntry struct {
	*types.CheckoutRecord
	ItemID int        `json:"item_id"`
	Kind   string     `json:"kind"`
	Item   types.Item `json:"item"`
}

func (s *Session) printLoansJSON(w io.Writer) error {
	entries := make([]loanEntry, 0)
	for _, record := range s.inv.Loans() {
		entries = append(entries, loanEntry{
			CheckoutRecord: record,
			ItemID:         record.Item.Info().ID,
			Kind:           record.Item.Kind(),
			Item:           record.Item,
		})
	}
	return printJSON(w, entries)
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}
