package search

import (
	"fmt"

	"github.com/katalvlaran/chromasort/puzzle"
)

// dfsWalker encapsulates mutable DFS state for one invocation.
// The frontier is an explicit stack: puzzle depths can exceed any sane call
// stack, so recursion is off the table.
type dfsWalker struct {
	opts     Options
	stack    []*node
	visited  map[string]struct{}
	expanded int
}

// DFS searches depth-first from start. The returned move sequence ends in a
// solved position but carries no minimality guarantee; on deep-branching
// puzzles DFS often touches far fewer states than BFS.
//
// Successors are expanded in the same enumeration order as BFS: they are
// pushed in reverse so the first-listed successor is explored first.
// A nil Result with a nil error means no solution exists from this start.
// Error conditions match BFS.
func DFS(start *puzzle.Collection, opts ...Option) (*Result, error) {
	o, err := buildOptions(start, opts)
	if err != nil {
		return nil, err
	}
	if start.IsSolved() {
		return &Result{Final: start, Moves: []puzzle.Move{}}, nil
	}

	root := &node{state: start}
	w := &dfsWalker{
		opts:    o,
		stack:   []*node{root},
		visited: map[string]struct{}{start.Key(): {}},
	}

	return w.loop()
}

// loop processes the LIFO frontier until a solved position is discovered,
// the stack empties, or the context is cancelled.
func (w *dfsWalker) loop() (*Result, error) {
	for len(w.stack) > 0 {
		// cancellation check (once per pop)
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		cur := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		w.expanded++

		goal, err := w.pushSuccessors(cur)
		if err != nil {
			return nil, err
		}
		if goal != nil {
			return &Result{Final: goal.state, Moves: goal.path(), Expanded: w.expanded}, nil
		}
	}

	return nil, nil
}

// pushSuccessors discovers cur's successors, deduplicating at discovery
// time, and pushes the survivors in reverse enumeration order.
func (w *dfsWalker) pushSuccessors(cur *node) (*node, error) {
	nextDepth := cur.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil, nil
	}
	succs := cur.state.Successors()
	fresh := make([]*node, 0, len(succs))
	for _, succ := range succs {
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
		fresh = append(fresh, child)
	}
	for i := len(fresh) - 1; i >= 0; i-- {
		w.stack = append(w.stack, fresh[i])
	}

	return nil, nil
}
