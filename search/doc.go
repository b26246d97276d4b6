// Package search runs breadth-first and depth-first search over puzzle
// positions, returning the move sequence that reaches a solved position.
//
// What
//
//   - BFS(start, opts...): FIFO frontier; the returned sequence has minimum
//     length (fewest pours).
//   - DFS(start, opts...): explicit-stack LIFO frontier; no minimality
//     guarantee, often fewer states touched on deep puzzles.
//   - Run(algo, start, opts...): dispatch by Algorithm tag.
//   - Result: the solved position, the move sequence, and an Expanded
//     diagnostic counter.
//
// Contract
//
//   - A start that is already solved returns an empty move sequence.
//   - Positions are deduplicated at discovery time through a visited set
//     keyed by puzzle.Collection.Key — the packed byte encoding doubles as
//     the hash key, so no structural rehashing happens on the hot path.
//   - Parent links record (predecessor, move); the move sequence is
//     rebuilt by walking them from the goal back to the start.
//   - An exhausted frontier returns (nil, nil): "no solution" is a domain
//     outcome, never an error.
//
// Determinism
//
//	Both variants expand successors in puzzle.Collection.Moves order. BFS
//	enqueues in that order; DFS pushes in reverse so the first-listed
//	successor is expanded first. Given one start position, exploration
//	order — and therefore the returned sequence — is fully reproducible.
//
// Options
//
//   - WithContext(ctx):  cancellation, checked once per frontier pop.
//   - WithMaxDepth(d):   stop exploring sequences longer than d (0 = no limit).
//   - WithOnVisit(fn):   discovery hook; returning an error aborts.
//
// Complexity (S = reachable positions, b = legal moves per position)
//
//   - Time:   O(S · b) position expansions
//   - Memory: O(S) for the visited set and parent links
//
// Errors
//
//   - ErrCollectionNil   if the start position is nil.
//   - ErrOptionViolation if an invalid Option was supplied.
//   - context.Canceled / DeadlineExceeded if the context ends the search.
//   - Wrapped user-supplied hook errors from OnVisit.
package search
