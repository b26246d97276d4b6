package resolver

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/chromasort/colour"
	"github.com/katalvlaran/chromasort/puzzle"
	"github.com/katalvlaran/chromasort/search"
)

// Inspect partitions a raw grid into visible items and hidden positions.
// Both "?" and "UNKNOWN" count as hidden; everything else is taken as a
// visible item (name validity is checked later, at collection build time).
func Inspect(grid [][]string) *PuzzleData {
	data := &PuzzleData{Raw: grid}
	for r, row := range grid {
		for c, name := range row {
			if name == "?" || name == "UNKNOWN" {
				data.Unknowns = append(data.Unknowns, Slot{Row: r, Col: c})
			} else {
				data.Items = append(data.Items, name)
			}
		}
	}

	return data
}

// NeededColours computes the multiset of colour names that must fill the
// hidden slots so that every colour ends up with exactly puzzle.Capacity
// items.
//
// Visible colours short of a full set contribute their missing copies
// first. Any hidden slots beyond those completions must form whole sets of
// fresh colours, chosen from the palette in canonical order, skipping
// colours already visible.
//
// Returns ErrTooManyOfColour, ErrOverConstrained, ErrUnalignedHiddenSlots,
// or ErrInsufficientHiddenColours when no completion can exist.
func NeededColours(data *PuzzleData) ([]string, error) {
	// 1. Count visible items per colour name, keeping first-seen order so
	//    the needed multiset is reproducible.
	counts := make(map[string]int, len(data.Items))
	order := make([]string, 0, len(data.Items))
	for _, name := range data.Items {
		if _, seen := counts[name]; !seen {
			order = append(order, name)
		}
		counts[name]++
	}

	// 2. Completions for partially visible colours.
	need := make([]string, 0, len(data.Unknowns))
	for _, name := range order {
		n := counts[name]
		if n > puzzle.Capacity {
			return nil, fmt.Errorf("%w: %s appears %d times", ErrTooManyOfColour, name, n)
		}
		for i := n; i < puzzle.Capacity; i++ {
			need = append(need, name)
		}
	}

	// 3. Leftover hidden slots must hold whole sets of fresh colours.
	gap := len(data.Unknowns) - len(need)
	switch {
	case gap < 0:
		return nil, fmt.Errorf("%w: %d hidden slots, %d completions required",
			ErrOverConstrained, len(data.Unknowns), len(need))
	case gap == 0:
		return need, nil
	case gap%puzzle.Capacity != 0:
		return nil, fmt.Errorf("%w: %d leftover slots", ErrUnalignedHiddenSlots, gap)
	}

	sets := gap / puzzle.Capacity
	fresh := make([]string, 0, sets)
	for _, c := range colour.Palette() {
		if _, used := counts[c.String()]; used {
			continue
		}
		fresh = append(fresh, c.String())
		if len(fresh) == sets {
			break
		}
	}
	if len(fresh) < sets {
		return nil, fmt.Errorf("%w: need %d fresh colours, %d available",
			ErrInsufficientHiddenColours, sets, len(fresh))
	}
	for _, name := range fresh {
		for i := 0; i < puzzle.Capacity; i++ {
			need = append(need, name)
		}
	}

	return need, nil
}

// EachCandidate streams the candidate grids produced by filling the hidden
// slots with every distinct permutation of need, in lexicographic order.
// Identical colours are indistinguishable, so each distinct assignment
// appears exactly once. fn returning an error stops the stream.
func EachCandidate(data *PuzzleData, need []string, fn func(grid [][]string) error) error {
	perm := make([]string, len(need))
	copy(perm, need)
	sort.Strings(perm)

	for {
		if err := fn(fill(data, perm)); err != nil {
			return err
		}
		if !nextPermutation(perm) {
			return nil
		}
	}
}

// Candidates materialises the EachCandidate stream into a slice.
func Candidates(data *PuzzleData, need []string) [][][]string {
	var grids [][][]string
	_ = EachCandidate(data, need, func(grid [][]string) error {
		grids = append(grids, grid)
		return nil
	})

	return grids
}

// fill deep-copies the raw grid and writes perm into the hidden slots.
func fill(data *PuzzleData, perm []string) [][]string {
	grid := make([][]string, len(data.Raw))
	for r, row := range data.Raw {
		grid[r] = make([]string, len(row))
		copy(grid[r], row)
	}
	for i, slot := range data.Unknowns {
		grid[slot.Row][slot.Col] = perm[i]
	}

	return grid
}

// nextPermutation advances perm to its lexicographic successor, treating
// equal strings as indistinguishable. Returns false when perm was the last
// permutation.
func nextPermutation(perm []string) bool {
	// Find the rightmost ascent.
	i := len(perm) - 2
	for i >= 0 && perm[i] >= perm[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	// Swap with the rightmost element above perm[i], then reverse the tail.
	j := len(perm) - 1
	for perm[j] <= perm[i] {
		j--
	}
	perm[i], perm[j] = perm[j], perm[i]
	for l, r := i+1, len(perm)-1; l < r; l, r = l+1, r-1 {
		perm[l], perm[r] = perm[r], perm[l]
	}

	return true
}

// SolveAll runs the selected search on every candidate grid and collects
// the solvable ones, preserving candidate order. A candidate that cannot
// even be constructed is silently dropped: it simply is not a valid
// completion.
func SolveAll(grids [][][]string, algo search.Algorithm, opts ...search.Option) []Solution {
	solutions := make([]Solution, 0, len(grids))
	for _, grid := range grids {
		start, err := puzzle.New(grid)
		if err != nil {
			continue
		}
		res, err := search.Run(algo, start, opts...)
		if err != nil || res == nil {
			continue
		}
		solutions = append(solutions, Solution{Grid: grid, Moves: res.Moves})
	}

	return solutions
}
