package types

import "errors"

// Inventory operation errors. All are caller-recoverable; the CLI
// reports them and keeps the session going.
var (
	ErrInvalidPosition   = errors.New("position is out of range")
	ErrSlotOccupied      = errors.New("compartment is not empty")
	ErrEmptyCompartment  = errors.New("compartment is empty")
	ErrItemNotFound      = errors.New("item not found on any shelf")
	ErrItemNotCheckedOut = errors.New("item is not checked out")
	ErrInvalidBorrower   = errors.New("borrower cannot be empty")
)
