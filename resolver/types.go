// Package resolver types and sentinel errors.
package resolver

import (
	"errors"

	"github.com/katalvlaran/chromasort/puzzle"
)

// Sentinel errors for needed-colour computation. Each marks a raw grid
// whose hidden slots cannot be completed into full colour sets.
var (
	// ErrTooManyOfColour: some visible colour already appears more than
	// puzzle.Capacity times.
	ErrTooManyOfColour = errors.New("resolver: colour appears more than capacity times")

	// ErrOverConstrained: the visible colours need more completion slots
	// than the grid has hidden positions.
	ErrOverConstrained = errors.New("resolver: hidden slots cannot cover required completions")

	// ErrUnalignedHiddenSlots: the leftover hidden positions are not a
	// multiple of capacity, so they cannot form whole colour sets.
	ErrUnalignedHiddenSlots = errors.New("resolver: leftover hidden slots do not form complete sets")

	// ErrInsufficientHiddenColours: more fully hidden colour sets are
	// required than the palette has unused colours.
	ErrInsufficientHiddenColours = errors.New("resolver: not enough unused colours for hidden sets")
)

// Slot addresses one position in a raw grid: container r, stack position c
// counted from the bottom.
type Slot struct {
	Row int
	Col int
}

// PuzzleData is the partitioned view of a raw grid: the visible items and
// the ordered list of hidden positions.
type PuzzleData struct {
	// Raw is the grid as loaded, hidden markers included.
	Raw [][]string

	// Items holds every visible colour name, in reading order.
	Items []string

	// Unknowns lists the hidden positions, in reading order. Candidate
	// permutations are applied to these slots index by index.
	Unknowns []Slot
}

// Solution is one solvable completion: the fully resolved grid and the move
// sequence that solves it.
type Solution struct {
	Grid  [][]string
	Moves []puzzle.Move
}
