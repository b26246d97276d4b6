// Package puzzle models a colour-sorting position and its move semantics.
//
// What
//
//   - Item: a single coloured thing; compares by colour identity.
//   - Container: a bounded stack of up to Capacity items. All mutating
//     operations produce a fresh Container value; shared state is never
//     written through.
//   - Collection: an ordered sequence of containers — one full puzzle
//     position. Equality is positional: two collections are equal iff the
//     container at each index holds an identical stack.
//   - Move: an ordered (Src, Dest) pair of container indices.
//   - Replay: apply a recorded move sequence to a raw grid that may still
//     contain hidden items, reporting the first move that cannot be played.
//
// Move semantics
//
//	A move (src, dest) is valid when src and dest are distinct in-range
//	indices, src is non-empty with a visible (non-Unknown) top colour c, and
//	dest is either empty or topped with c and has at least one free slot.
//	Applying a valid move pours min(run, free) items, where run is the
//	length of src's top run of c and free is dest's remaining capacity.
//	A pour into a full compatible destination is invalid: zero-transfer
//	moves are filtered out.
//
// Successor enumeration
//
//	Moves() walks src in 0..N and dest in 0..N (dest ≠ src) and keeps every
//	valid move except the unproductive single-colour-source-to-empty shuffle.
//	The order is part of the contract: search results are reproducible only
//	because successors always come back in this sequence.
//
// Canonical key
//
//	Key() packs the position into one byte per slot (containers padded to
//	Capacity), so the visited sets of a search can use plain string map keys
//	with no structural hashing.
//
// Complexity (N = containers, K = Capacity)
//
//   - IsValid / After: O(K)
//   - Moves:           O(N² · K)
//   - Key / IsSolved:  O(N · K)
package puzzle
