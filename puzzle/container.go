package puzzle

import (
	"strings"

	"github.com/katalvlaran/chromasort/colour"
)

// Container is a bounded stack of items. The last element of items is the
// top of the stack. A Container value is never mutated in place: pour
// operations copy, so containers may be shared freely between collections.
type Container struct {
	items []Item
}

// NewContainer builds a container from bottom to top.
// Returns ErrGridStructure if more than Capacity items are supplied.
func NewContainer(items ...Item) (Container, error) {
	if len(items) > Capacity {
		return Container{}, ErrGridStructure
	}
	cp := make([]Item, len(items))
	copy(cp, items)

	return Container{items: cp}, nil
}

// Len returns the number of items held.
func (c Container) Len() int { return len(c.items) }

// Free returns the number of empty slots remaining.
func (c Container) Free() int { return Capacity - len(c.items) }

// IsEmpty reports whether the container holds no items.
func (c Container) IsEmpty() bool { return len(c.items) == 0 }

// IsFull reports whether the container has no free slots.
func (c Container) IsFull() bool { return len(c.items) == Capacity }

// Item returns the item at position i, counted from the bottom.
func (c Container) Item(i int) (Item, bool) {
	if i < 0 || i >= len(c.items) {
		return Item{}, false
	}

	return c.items[i], true
}

// Top returns the topmost item, if any.
func (c Container) Top() (Item, bool) {
	if len(c.items) == 0 {
		return Item{}, false
	}

	return c.items[len(c.items)-1], true
}

// TopRun returns the colour of the topmost item and the length of the
// maximal contiguous run of that colour at the top of the stack.
// An empty container reports (Unknown, 0).
func (c Container) TopRun() (colour.Colour, int) {
	n := len(c.items)
	if n == 0 {
		return colour.Unknown, 0
	}
	top := c.items[n-1].Colour()
	run := 1
	for i := n - 2; i >= 0 && c.items[i].Colour() == top; i-- {
		run++
	}

	return top, run
}

// IsSingleColour reports whether the container is non-empty and every item
// shares one colour. Such a container poured into an empty one makes no
// progress, so Moves skips that pair.
func (c Container) IsSingleColour() bool {
	if len(c.items) == 0 {
		return false
	}
	first := c.items[0].Colour()
	for _, it := range c.items[1:] {
		if it.Colour() != first {
			return false
		}
	}

	return true
}

// IsSorted reports whether the container is terminal: empty, or a full
// stack of one colour.
func (c Container) IsSorted() bool {
	if c.IsEmpty() {
		return true
	}

	return c.IsFull() && c.IsSingleColour()
}

// HasUnknown reports whether any slot holds the hidden placeholder.
func (c Container) HasUnknown() bool {
	for _, it := range c.items {
		if it.Colour().IsUnknown() {
			return true
		}
	}

	return false
}

// take returns the container with its top n items removed.
func (c Container) take(n int) Container {
	rest := make([]Item, len(c.items)-n)
	copy(rest, c.items[:len(c.items)-n])

	return Container{items: rest}
}

// put returns the container with n items of colour col pushed on top.
// Callers guarantee n ≤ Free().
func (c Container) put(col colour.Colour, n int) Container {
	grown := make([]Item, len(c.items), len(c.items)+n)
	copy(grown, c.items)
	for i := 0; i < n; i++ {
		grown = append(grown, Item{c: col})
	}

	return Container{items: grown}
}

// Names returns the container's colours bottom-to-top as canonical strings.
func (c Container) Names() []string {
	out := make([]string, len(c.items))
	for i, it := range c.items {
		out[i] = it.Colour().String()
	}

	return out
}

// String renders the stack bottom-to-top, e.g. "[RED RED GREEN]".
func (c Container) String() string {
	if c.IsEmpty() {
		return "[empty]"
	}

	return "[" + strings.Join(c.Names(), " ") + "]"
}
