// Package inventory implements the shelf-grid storage engine for
// stacks. An Inventory owns every item added to it: an item lives in
// exactly one place at a time, either a compartment slot on the grid
// or the checkout record of an active loan. Operations validate all
// inputs before mutating anything, so a failed call never leaves the
// grid or the loan registry half-changed.
package inventory

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/stacks/pkg/types"
)

// Inventory holds the fixed shelf grid and the registry of active
// loans. Not safe for concurrent use; the CLI drives it from a single
// session loop.
type Inventory struct {
	// slots is the grid in shelf-major order (types.Position.Index).
	// A nil entry is a vacant compartment.
	slots [types.NumSlots]types.Item

	// loans is keyed by the native item ID.
	loans map[int]*types.CheckoutRecord

	loanPeriodDays int
	now            func() time.Time
}

// Option configures an Inventory.
type Option func(*Inventory)

// WithLoanPeriod sets the number of days between checkout and due
// date. Values below one are ignored.
func WithLoanPeriod(days int) Option {
	return func(inv *Inventory) {
		if days > 0 {
			inv.loanPeriodDays = days
		}
	}
}

// WithClock overrides the time source used for due dates. Tests use
// this to pin the checkout date.
func WithClock(now func() time.Time) Option {
	return func(inv *Inventory) {
		if now != nil {
			inv.now = now
		}
	}
}

// New creates an empty inventory with every compartment vacant.
func New(opts ...Option) *Inventory {
	inv := &Inventory{
		loans:          make(map[int]*types.CheckoutRecord),
		loanPeriodDays: types.DefaultLoanPeriodDays,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(inv)
	}
	return inv
}

// AddItem stores item in the compartment at pos. The inventory takes
// ownership; the item stays until checked out or swapped around, and
// never leaves the system.
// Returns ErrInvalidPosition if pos is off the grid, ErrSlotOccupied
// if the compartment already holds an item.
func (inv *Inventory) AddItem(pos types.Position, item types.Item) error {
	if !pos.Valid() {
		return types.ErrInvalidPosition
	}
	if inv.slots[pos.Index()] != nil {
		return types.ErrSlotOccupied
	}
	inv.slots[pos.Index()] = item
	return nil
}

// CheckoutItem lends out the shelved item with the given ID. The grid
// is scanned in shelf-major order and the first match wins; duplicate
// caller-assigned IDs resolve to the earliest slot. The item moves
// from its slot into a new checkout record with the borrower, a
// freshly generated loan ID, and a due date loanPeriodDays from now.
// The returned item is for display; the record keeps ownership.
// Returns ErrInvalidBorrower if borrower is empty, ErrItemNotFound if
// no shelved item has the ID. An item already checked out is not on
// any shelf, so a repeated checkout also returns ErrItemNotFound.
func (inv *Inventory) CheckoutItem(id int, borrower string) (types.Item, error) {
	if borrower == "" {
		return nil, types.ErrInvalidBorrower
	}
	for i, item := range inv.slots {
		if item == nil || item.Info().ID != id {
			continue
		}
		inv.loans[id] = &types.CheckoutRecord{
			LoanID:           newLoanID(),
			Borrower:         borrower,
			DueDate:          inv.now().AddDate(0, 0, inv.loanPeriodDays),
			OriginalPosition: types.PositionAt(i),
			Item:             item,
		}
		inv.slots[i] = nil
		return item, nil
	}
	return nil, types.ErrItemNotFound
}

// CheckinItem ends the loan for the given item ID and puts the item
// back in the compartment it was taken from. That compartment is
// vacant whenever the loan exists: the item vacated it at checkout
// and nothing else can have been added under the same position while
// the record held the slot's occupant.
// Returns ErrItemNotCheckedOut if no loan exists for the ID.
func (inv *Inventory) CheckinItem(id int) error {
	record, ok := inv.loans[id]
	if !ok {
		return types.ErrItemNotCheckedOut
	}
	inv.slots[record.OriginalPosition.Index()] = record.Item
	delete(inv.loans, id)
	return nil
}

// SwapItems exchanges the contents of two occupied compartments.
// Active loan records are untouched: an item checked out after a swap
// elsewhere still returns to the slot it was actually taken from.
// Returns ErrInvalidPosition if either position is off the grid,
// ErrEmptyCompartment if either compartment is vacant.
func (inv *Inventory) SwapItems(pos1, pos2 types.Position) error {
	if !pos1.Valid() || !pos2.Valid() {
		return types.ErrInvalidPosition
	}
	i, j := pos1.Index(), pos2.Index()
	if inv.slots[i] == nil || inv.slots[j] == nil {
		return types.ErrEmptyCompartment
	}
	inv.slots[i], inv.slots[j] = inv.slots[j], inv.slots[i]
	return nil
}

// IsCompartmentEmpty reports whether the compartment at pos is vacant.
// Returns ErrInvalidPosition if pos is off the grid.
func (inv *Inventory) IsCompartmentEmpty(pos types.Position) (bool, error) {
	if !pos.Valid() {
		return false, types.ErrInvalidPosition
	}
	return inv.slots[pos.Index()] == nil, nil
}

// IsItemCheckedOut reports whether an active loan exists for the ID.
// Unknown IDs are simply not checked out; this never fails.
func (inv *Inventory) IsItemCheckedOut(id int) bool {
	_, ok := inv.loans[id]
	return ok
}

// ItemAt returns the item in the compartment at pos, or nil if the
// compartment is vacant.
// Returns ErrInvalidPosition if pos is off the grid.
func (inv *Inventory) ItemAt(pos types.Position) (types.Item, error) {
	if !pos.Valid() {
		return nil, types.ErrInvalidPosition
	}
	return inv.slots[pos.Index()], nil
}

// StoredItem pairs an item with the compartment it occupies.
type StoredItem struct {
	Position types.Position
	Item     types.Item
}

// Items returns every shelved item in shelf-major grid order.
func (inv *Inventory) Items() []StoredItem {
	var items []StoredItem
	for i, item := range inv.slots {
		if item == nil {
			continue
		}
		items = append(items, StoredItem{Position: types.PositionAt(i), Item: item})
	}
	return items
}

// Loans returns every active checkout record, sorted by item ID so
// listings are deterministic.
func (inv *Inventory) Loans() []*types.CheckoutRecord {
	ids := make([]int, 0, len(inv.loans))
	for id := range inv.loans {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	records := make([]*types.CheckoutRecord, len(ids))
	for i, id := range ids {
		records[i] = inv.loans[id]
	}
	return records
}

// newLoanID generates a UUID v7 loan identifier, falling back to a
// random UUID if v7 generation fails.
func newLoanID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
