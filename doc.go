// Package chromasort is your toolkit for cracking colour-sorting puzzles —
// including the mean ones that hide some of their items.
//
// 🚀 What is chromasort?
//
//	A deterministic solver library plus CLI that brings together:
//
//	  • Core primitives: immutable containers, positions, and pour moves
//	  • Graph search: BFS (fewest pours) and explicit-stack DFS
//	  • Hidden-information play: candidate enumeration, per-candidate
//	    solving, and the longest move prefix that is safe whatever the
//	    hidden items turn out to be
//
// ✨ Why choose chromasort?
//
//   - Reproducible   — successor order is a contract, not an accident
//   - Honest         — "no solution" is an answer, never an error
//   - Deductive      — a unique surviving candidate pins the hidden items
//
// Everything is organised into small, single-purpose packages:
//
//	colour/      — the closed colour enumeration, Unknown included
//	puzzle/      — containers, positions, move legality, replay
//	search/      — BFS and DFS with visited dedup and parent links
//	resolver/    — hidden slots → needed colours → candidate grids
//	strategy/    — common safe prefix, unique-solution deduction
//	gridio/      — JSON/YAML grid loading, validation, saving
//	matchsteps/  — compare opening moves across a folder of puzzles
//	cli/         — the chromasort command surface
//
// Start with search.BFS for fully known puzzles, or
// strategy.FindAllSolutions when the grid contains "?" markers.
package chromasort
