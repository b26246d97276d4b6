// Package resolver turns a raw grid with hidden items into the set of
// concrete positions it could be, and solves each of them.
//
// What
//
//   - Inspect(grid): partition a raw grid into visible items and the
//     ordered list of hidden positions.
//   - NeededColours(data): the multiset of colours that must fill the
//     hidden slots so every colour reaches exactly puzzle.Capacity copies.
//     Leftover slots beyond those completions must form whole sets of
//     fresh palette colours, taken in canonical palette order.
//   - EachCandidate / Candidates: every distinct permutation of the needed
//     multiset written into the hidden slots, streamed in lexicographic
//     order. Equal colours are indistinguishable, so no assignment repeats.
//   - SolveAll(grids, algo): run the search on each candidate and keep the
//     solvable ones, in candidate order. Unbuildable candidates are
//     dropped without comment — they are not valid completions.
//
// Failure modes
//
//	NeededColours rejects grids with no possible completion:
//	ErrTooManyOfColour, ErrOverConstrained, ErrUnalignedHiddenSlots, and
//	ErrInsufficientHiddenColours. Callers report these diagnostically and
//	treat the puzzle as having no candidates.
//
// Scale
//
//	The number of distinct permutations is |need|! divided by the product
//	of the multiplicities' factorials. Practical puzzles keep this in the
//	hundreds; EachCandidate generates in O(|need|) per step with no
//	up-front materialisation for callers that stream.
package resolver
