package search

import (
	"fmt"

	"github.com/katalvlaran/chromasort/puzzle"
)

// bfsWalker encapsulates mutable BFS state for one invocation. The visited
// set and parent links live exactly as long as the call.
type bfsWalker struct {
	opts     Options
	queue    []*node
	visited  map[string]struct{}
	expanded int
}

// BFS searches breadth-first from start and returns a minimum-length move
// sequence reaching a solved position.
//
// A nil Result with a nil error means the frontier emptied without reaching
// a solved position — a domain outcome, not a failure. A start that is
// already solved yields an empty move sequence.
// Returns ErrCollectionNil for nil input, ErrOptionViolation for bad
// options, the context error on cancellation, or a wrapped hook error.
func BFS(start *puzzle.Collection, opts ...Option) (*Result, error) {
	o, err := buildOptions(start, opts)
	if err != nil {
		return nil, err
	}
	if start.IsSolved() {
		return &Result{Final: start, Moves: []puzzle.Move{}}, nil
	}

	root := &node{state: start}
	w := &bfsWalker{
		opts:    o,
		queue:   []*node{root},
		visited: map[string]struct{}{start.Key(): {}},
	}

	return w.loop()
}

// loop processes the FIFO frontier until a solved position is discovered,
// the frontier empties, or the context is cancelled.
func (w *bfsWalker) loop() (*Result, error) {
	for len(w.queue) > 0 {
		// cancellation check (once per pop)
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		cur := w.queue[0]
		w.queue = w.queue[1:]
		w.expanded++

		goal, err := w.enqueueSuccessors(cur)
		if err != nil {
			return nil, err
		}
		if goal != nil {
			return &Result{Final: goal.state, Moves: goal.path(), Expanded: w.expanded}, nil
		}
	}

	// Frontier exhausted: no solution from this start.
	return nil, nil
}

// enqueueSuccessors discovers cur's successors in enumeration order,
// deduplicating against the visited set at discovery time. A solved
// successor ends the search immediately: under FIFO discipline the first
// one discovered closes a shortest move sequence.
func (w *bfsWalker) enqueueSuccessors(cur *node) (*node, error) {
	nextDepth := cur.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil, nil
	}
	for _, succ := range cur.state.Successors() {
		key := succ.Next.Key()
		if _, seen := w.visited[key]; seen {
			continue
		}
		w.visited[key] = struct{}{}

		child := &node{state: succ.Next, parent: cur, move: succ.Move, depth: nextDepth}
		if err := w.opts.OnVisit(child.state, child.depth); err != nil {
			return nil, fmt.Errorf("search: OnVisit at depth %d: %w", child.depth, err)
		}
		if child.state.IsSolved() {
			return child, nil
		}
		w.queue = append(w.queue, child)
	}

	return nil, nil
}

// buildOptions validates the start position and folds functional options.
func buildOptions(start *puzzle.Collection, opts []Option) (Options, error) {
	if start == nil {
		return Options{}, ErrCollectionNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}

// Run dispatches to BFS or DFS by algorithm tag.
func Run(algo Algorithm, start *puzzle.Collection, opts ...Option) (*Result, error) {
	if algo == AlgorithmDFS {
		return DFS(start, opts...)
	}

	return BFS(start, opts...)
}
