// Package puzzle core types and sentinel errors.
package puzzle

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/chromasort/colour"
)

// Capacity is the fixed number of slots in every container.
const Capacity = 4

// Sentinel errors for puzzle construction and move application.
var (
	// ErrGridStructure indicates a raw grid that cannot form a collection
	// (no containers, or a container holding more than Capacity items).
	ErrGridStructure = errors.New("puzzle: invalid grid structure")

	// ErrIllegalMove indicates a move that violates the pour rules.
	ErrIllegalMove = errors.New("puzzle: illegal move")

	// ErrIndexRange indicates a container index outside [0, N).
	ErrIndexRange = errors.New("puzzle: container index out of range")
)

// Item is a single coloured thing. Its colour is fixed at construction.
type Item struct {
	c colour.Colour
}

// NewItem wraps c in an Item.
func NewItem(c colour.Colour) Item { return Item{c: c} }

// Colour returns the item's colour.
func (i Item) Colour() colour.Colour { return i.c }

// String returns the canonical colour name.
func (i Item) String() string { return i.c.String() }

// Move is an ordered pour between two containers, by index.
type Move struct {
	Src  int
	Dest int
}

// Reverse returns the opposite pour.
func (m Move) Reverse() Move { return Move{Src: m.Dest, Dest: m.Src} }

// String renders the move in tuple style, e.g. "(1, 2)".
func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.Src, m.Dest)
}
