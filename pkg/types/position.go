package types

import "fmt"

// Grid dimensions. The library has a fixed number of shelves, each with
// a fixed number of compartments, and every slot holds at most one item.
const (
	NumShelves      = 3
	NumCompartments = 15
	NumSlots        = NumShelves * NumCompartments
)

// Position identifies one compartment slot on the shelf grid.
// Positions are immutable values; compare them with ==.
type Position struct {
	Shelf       int `json:"shelf"`
	Compartment int `json:"compartment"`
}

// NewPosition returns the position for the given shelf and compartment.
// No range check is performed; call Valid to check.
func NewPosition(shelf, compartment int) Position {
	return Position{Shelf: shelf, Compartment: compartment}
}

// Valid reports whether the position lies on the grid. Validity is
// advisory: consumers enforce it, returning ErrInvalidPosition for
// positions off the grid.
func (p Position) Valid() bool {
	return p.Shelf >= 0 && p.Shelf < NumShelves &&
		p.Compartment >= 0 && p.Compartment < NumCompartments
}

// Index returns the flat slot index in shelf-major order.
// Meaningful only for valid positions.
func (p Position) Index() int {
	return p.Shelf*NumCompartments + p.Compartment
}

// PositionAt returns the position for a flat slot index, inverting Index.
func PositionAt(index int) Position {
	return Position{
		Shelf:       index / NumCompartments,
		Compartment: index % NumCompartments,
	}
}

// String formats the position the way the CLI prints it.
func (p Position) String() string {
	return fmt.Sprintf("shelf %d, compartment %d", p.Shelf, p.Compartment)
}
