package inventory

import (
	"fmt"
	"io"

	"github.com/mesh-intelligence/stacks/pkg/types"
)

// RenderItems writes the full-inventory listing to w: every shelved
// item in grid order, or an absence message when the grid is empty.
func (inv *Inventory) RenderItems(w io.Writer) {
	fmt.Fprintln(w, "=== Items in Storage ===")
	items := inv.Items()
	if len(items) == 0 {
		fmt.Fprintln(w, "No items in storage.")
		return
	}
	for _, stored := range items {
		fmt.Fprintf(w, "Shelf: %d, Compartment: %d\n",
			stored.Position.Shelf, stored.Position.Compartment)
		fmt.Fprint(w, stored.Item.Render())
		fmt.Fprintln(w)
	}
}

// RenderLoans writes the checked-out listing to w: every active loan
// sorted by item ID, or an absence message when nothing is out.
func (inv *Inventory) RenderLoans(w io.Writer) {
	fmt.Fprintln(w, "=== Checked Out Items ===")
	loans := inv.Loans()
	if len(loans) == 0 {
		fmt.Fprintln(w, "No items are currently checked out.")
		return
	}
	for _, record := range loans {
		fmt.Fprint(w, record.Render())
		fmt.Fprintln(w, "------------------------")
	}
}

// Record returns the active checkout record for the ID, if any.
// Callers must not mutate the returned record.
func (inv *Inventory) Record(id int) (*types.CheckoutRecord, bool) {
	record, ok := inv.loans[id]
	return record, ok
}
