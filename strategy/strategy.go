// Package strategy aggregates per-candidate solutions into advice that is
// safe whichever completion turns out to be the hidden truth.
//
// FindAllSolutions enumerates every feasible completion of a raw grid and
// solves each. Analyze reduces the solution set to one of three outcomes:
// no solution at all, a unique solution (the hidden items are thereby
// deduced), or a guaranteed-safe common move prefix, with a first-move
// distribution as advisory data when even the first move diverges.
//
// Any move in the common prefix is correct regardless of which candidate
// matches reality: every candidate is a feasible completion, and the move
// is legal and productive under all of them.
package strategy

import (
	"sort"

	"github.com/katalvlaran/chromasort/puzzle"
	"github.com/katalvlaran/chromasort/resolver"
	"github.com/katalvlaran/chromasort/search"
)

// Identification records one deduced hidden item.
type Identification struct {
	Row    int
	Col    int
	Colour string
}

// MoveCount pairs a first move with the number of solutions opening with it.
type MoveCount struct {
	Move  puzzle.Move
	Count int
}

// Kind classifies the aggregate outcome.
type Kind uint8

const (
	// NoSolution: no candidate completion is solvable.
	NoSolution Kind = iota
	// Unique: exactly one completion solves — the hidden items are known.
	Unique
	// Prefix: several completions solve; only the common prefix is safe.
	Prefix
)

// Outcome is the reduced advice for one raw grid.
type Outcome struct {
	Kind Kind

	// Solutions is the underlying per-candidate solution set.
	Solutions []resolver.Solution

	// SafeMoves is the full move list for Unique, the common prefix for
	// Prefix, and empty for NoSolution.
	SafeMoves []puzzle.Move

	// Deduced lists the resolved hidden items when Kind == Unique.
	Deduced []Identification

	// FirstMoves is the first-move distribution, populated for Prefix when
	// SafeMoves is empty (the very first move already diverges).
	FirstMoves []MoveCount
}

// FindAllSolutions solves every feasible completion of a raw grid.
//
// A grid without hidden items degenerates to a single standard solve: the
// result is a one-element (or empty) solution set. For grids with hidden
// items, resolver preconditions that fail are returned as the error; the
// caller reports it diagnostically and treats the set as empty.
func FindAllSolutions(grid [][]string, algo search.Algorithm, opts ...search.Option) ([]resolver.Solution, error) {
	data := resolver.Inspect(grid)
	if len(data.Unknowns) == 0 {
		return resolver.SolveAll([][][]string{grid}, algo, opts...), nil
	}

	need, err := resolver.NeededColours(data)
	if err != nil {
		return nil, err
	}

	return resolver.SolveAll(resolver.Candidates(data, need), algo, opts...), nil
}

// CommonPrefix returns the longest move sequence opening every solution.
// Moves compare by (Src, Dest). An empty solution set yields an empty
// prefix.
func CommonPrefix(solutions []resolver.Solution) []puzzle.Move {
	if len(solutions) == 0 {
		return []puzzle.Move{}
	}
	shortest := len(solutions[0].Moves)
	for _, s := range solutions[1:] {
		if len(s.Moves) < shortest {
			shortest = len(s.Moves)
		}
	}

	prefix := make([]puzzle.Move, 0, shortest)
	for i := 0; i < shortest; i++ {
		first := solutions[0].Moves[i]
		agreed := true
		for _, s := range solutions[1:] {
			if s.Moves[i] != first {
				agreed = false
				break
			}
		}
		if !agreed {
			break
		}
		prefix = append(prefix, first)
	}

	return prefix
}

// FirstMoveDistribution tallies the opening move of each solution, sorted
// by descending count, then by (Src, Dest) for equal counts. Solutions with
// no moves at all do not contribute.
func FirstMoveDistribution(solutions []resolver.Solution) []MoveCount {
	counts := make(map[puzzle.Move]int)
	for _, s := range solutions {
		if len(s.Moves) > 0 {
			counts[s.Moves[0]]++
		}
	}

	out := make([]MoveCount, 0, len(counts))
	for m, n := range counts {
		out = append(out, MoveCount{Move: m, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if out[i].Move.Src != out[j].Move.Src {
			return out[i].Move.Src < out[j].Move.Src
		}

		return out[i].Move.Dest < out[j].Move.Dest
	})

	return out
}

// IdentifyHidden compares a raw grid with a resolved grid pointwise and
// reports the colour behind every hidden marker.
func IdentifyHidden(raw, resolved [][]string) []Identification {
	var ids []Identification
	for r, row := range raw {
		for c, item := range row {
			if item != "?" && item != "UNKNOWN" {
				continue
			}
			if r < len(resolved) && c < len(resolved[r]) {
				ids = append(ids, Identification{Row: r, Col: c, Colour: resolved[r][c]})
			}
		}
	}

	return ids
}

// Analyze reduces a raw grid's solution set to its Outcome.
func Analyze(raw [][]string, solutions []resolver.Solution) Outcome {
	switch len(solutions) {
	case 0:
		return Outcome{Kind: NoSolution, SafeMoves: []puzzle.Move{}}
	case 1:
		only := solutions[0]
		return Outcome{
			Kind:      Unique,
			Solutions: solutions,
			SafeMoves: only.Moves,
			Deduced:   IdentifyHidden(raw, only.Grid),
		}
	}

	out := Outcome{
		Kind:      Prefix,
		Solutions: solutions,
		SafeMoves: CommonPrefix(solutions),
	}
	if len(out.SafeMoves) == 0 {
		out.FirstMoves = FirstMoveDistribution(solutions)
	}

	return out
}
