// Package search types, options, and sentinel errors shared by BFS and DFS.
package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/chromasort/puzzle"
)

// Sentinel errors for search execution.
var (
	// ErrCollectionNil is returned if a nil start position is passed.
	ErrCollectionNil = errors.New("search: start collection is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrUnknownAlgorithm is returned by ParseAlgorithm for anything that is
	// neither "BFS" nor "DFS".
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

// Algorithm selects which frontier discipline Run uses.
type Algorithm uint8

const (
	// AlgorithmBFS explores in FIFO order and returns a minimum-length
	// move sequence.
	AlgorithmBFS Algorithm = iota
	// AlgorithmDFS explores in LIFO order; sequences are typically longer
	// but fewer states may be touched on deep puzzles.
	AlgorithmDFS
)

// ParseAlgorithm maps the CLI spellings ("BFS"/"DFS", case-insensitive via
// the caller) to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "BFS":
		return AlgorithmBFS, nil
	case "DFS":
		return AlgorithmDFS, nil
	default:
		return AlgorithmBFS, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// String returns the canonical spelling.
func (a Algorithm) String() string {
	if a == AlgorithmDFS {
		return "DFS"
	}

	return "BFS"
}

// Option configures search behaviour via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks shared by BFS and DFS.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per frontier pop.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring move sequences beyond this length.
	// A value of 0 explicitly disables the limit.
	MaxDepth int

	// OnVisit is called when a position is discovered, with the number of
	// moves taken to reach it. Returning an error aborts the search.
	OnVisit func(s *puzzle.Collection, depth int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, no depth limit,
// and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: 0,
		OnVisit:  func(*puzzle.Collection, int) error { return nil },
		err:      nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth bounds the explored sequence length.
//
//	d > 0: limit to d moves
//	d == 0: explicit no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers a discovery hook; returning an error aborts.
func WithOnVisit(fn func(s *puzzle.Collection, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds a successful search outcome.
type Result struct {
	// Final is the solved position that ended the search.
	Final *puzzle.Collection

	// Moves is the sequence leading from the start to Final. Empty when the
	// start was already solved.
	Moves []puzzle.Move

	// Expanded counts positions popped from the frontier; a diagnostic, not
	// part of the behavioural contract.
	Expanded int
}

// node is one entry of the search tree: a position plus the edge that
// discovered it. Parent links drive path reconstruction.
type node struct {
	state  *puzzle.Collection
	parent *node
	move   puzzle.Move
	depth  int
}

// path rebuilds the move sequence root→n by walking parent links.
func (n *node) path() []puzzle.Move {
	if n.parent == nil {
		return []puzzle.Move{}
	}
	moves := make([]puzzle.Move, 0, n.depth)
	for cur := n; cur.parent != nil; cur = cur.parent {
		moves = append(moves, cur.move)
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}

	return moves
}
