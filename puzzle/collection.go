package puzzle

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/chromasort/colour"
)

// Collection is one puzzle position: an ordered sequence of containers.
// Container identity is positional, so equality and the canonical key are
// both order-preserving.
type Collection struct {
	containers []Container
}

// New parses a raw grid (one string slice per container, bottom-to-top)
// into a Collection.
// Returns ErrGridStructure for an empty grid or an oversized container, and
// colour.ErrUnknownName (wrapped) for an unparseable colour string.
func New(grid [][]string) (*Collection, error) {
	if len(grid) == 0 {
		return nil, fmt.Errorf("%w: no containers", ErrGridStructure)
	}
	containers := make([]Container, len(grid))
	for r, row := range grid {
		if len(row) > Capacity {
			return nil, fmt.Errorf("%w: container %d holds %d items (max %d)",
				ErrGridStructure, r, len(row), Capacity)
		}
		items := make([]Item, len(row))
		for i, name := range row {
			c, err := colour.Parse(name)
			if err != nil {
				return nil, fmt.Errorf("container %d, position %d: %w", r, i, err)
			}
			items[i] = Item{c: c}
		}
		containers[r] = Container{items: items}
	}

	return &Collection{containers: containers}, nil
}

// Len returns the number of containers.
func (s *Collection) Len() int { return len(s.containers) }

// Container returns the container at index i.
// The boolean is false when i is out of range.
func (s *Collection) Container(i int) (Container, bool) {
	if i < 0 || i >= len(s.containers) {
		return Container{}, false
	}

	return s.containers[i], true
}

// IsSolved reports whether every container is empty or a full stack of a
// single colour.
func (s *Collection) IsSolved() bool {
	for _, c := range s.containers {
		if !c.IsSorted() {
			return false
		}
	}

	return true
}

// HasUnknown reports whether any slot anywhere holds the hidden placeholder.
func (s *Collection) HasUnknown() bool {
	for _, c := range s.containers {
		if c.HasUnknown() {
			return true
		}
	}

	return false
}

// Key packs the position into Len()*Capacity bytes: one byte per slot,
// containers padded with zero. The result is the canonical visited-set key;
// two collections are equal iff their keys are equal.
func (s *Collection) Key() string {
	var b strings.Builder
	b.Grow(len(s.containers) * Capacity)
	for _, c := range s.containers {
		for _, it := range c.items {
			// +1 keeps a filled Unknown slot distinct from an empty one.
			b.WriteByte(byte(it.Colour()) + 1)
		}
		for i := c.Len(); i < Capacity; i++ {
			b.WriteByte(0)
		}
	}

	return b.String()
}

// Equal reports positional equality with other.
func (s *Collection) Equal(other *Collection) bool {
	if other == nil || len(s.containers) != len(other.containers) {
		return false
	}

	return s.Key() == other.Key()
}

// IsValid reports whether m can be played from this position:
// distinct in-range indices, a non-empty source with a visible top colour,
// and a destination that is empty or colour-matched with free space.
func (s *Collection) IsValid(m Move) bool {
	if m.Src == m.Dest {
		return false
	}
	if m.Src < 0 || m.Src >= len(s.containers) || m.Dest < 0 || m.Dest >= len(s.containers) {
		return false
	}
	src, dest := s.containers[m.Src], s.containers[m.Dest]
	top, ok := src.Top()
	if !ok || top.Colour().IsUnknown() {
		return false
	}
	if dest.IsFull() {
		return false
	}
	if dest.IsEmpty() {
		return true
	}
	dtop, _ := dest.Top()

	return dtop.Colour() == top.Colour()
}

// After returns the position reached by playing m: min(run, free) items of
// the source's top colour move across. Unaffected containers are shared
// with the receiver.
// Returns ErrIllegalMove when m is not valid here.
func (s *Collection) After(m Move) (*Collection, error) {
	if !s.IsValid(m) {
		return nil, fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}
	src, dest := s.containers[m.Src], s.containers[m.Dest]
	col, run := src.TopRun()
	n := run
	if free := dest.Free(); n > free {
		n = free
	}

	next := make([]Container, len(s.containers))
	copy(next, s.containers)
	next[m.Src] = src.take(n)
	next[m.Dest] = dest.put(col, n)

	return &Collection{containers: next}, nil
}

// Grid converts the position back to raw form, bottom-to-top canonical
// colour names per container.
func (s *Collection) Grid() [][]string {
	out := make([][]string, len(s.containers))
	for i, c := range s.containers {
		out[i] = c.Names()
	}

	return out
}

// Counts tallies items per colour across the whole position.
func (s *Collection) Counts() map[colour.Colour]int {
	counts := make(map[colour.Colour]int)
	for _, c := range s.containers {
		for _, it := range c.items {
			counts[it.Colour()]++
		}
	}

	return counts
}

// String renders one container per line, e.g.
//
//	0: [RED RED GREEN]
//	1: [empty]
func (s *Collection) String() string {
	lines := make([]string, len(s.containers))
	for i, c := range s.containers {
		lines[i] = fmt.Sprintf("%d: %s", i, c)
	}

	return strings.Join(lines, "\n")
}
