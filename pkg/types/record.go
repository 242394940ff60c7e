package types

import (
	"fmt"
	"strings"
	"time"
)

// DueDateLayout is how due dates are shown to the user.
const DueDateLayout = "2006-01-02"

// CheckoutRecord tracks one item while it is off the shelf. The record
// owns the item for the duration of the loan; check-in moves the item
// back to OriginalPosition and discards the record.
type CheckoutRecord struct {
	LoanID           string    `json:"loan_id"` // UUID v7, generated at checkout.
	Borrower         string    `json:"borrower"`
	DueDate          time.Time `json:"due_date"`
	OriginalPosition Position  `json:"original_position"`
	Item             Item      `json:"-"`
}

// Render returns the multi-line listing form of the record: the item
// itself, then the loan details.
func (r *CheckoutRecord) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Item ID: %d\n", r.Item.Info().ID)
	b.WriteString(r.Item.Render())
	fmt.Fprintf(&b, "Checked out by: %s\n", r.Borrower)
	fmt.Fprintf(&b, "Due date: %s\n", r.DueDate.Format(DueDateLayout))
	fmt.Fprintf(&b, "Loan: %s\n", r.LoanID)
	fmt.Fprintf(&b, "Original position: %s\n", r.OriginalPosition)
	return b.String()
}
