// Package falconry computes the odds that a ship crossing a galaxy of
// timed hyperspace routes reaches its destination before a countdown
// expires, while dodging scheduled bounty hunters along the way.
//
// 🚀 What is falconry?
//
//	A small, focused library around one constrained search problem:
//		• galaxy/    — the route map: symmetric weighted adjacency + connectivity
//		• hunters/   — the sighting schedule: O(1) "hunters here today?" predicate
//		• navigator/ — the core: BFS over (planet, day, fuel, encounters)
//		               under a deadline and fuel autonomy, plus 0.9^k odds
//		• mission/   — JSON/YAML input records, validated eagerly
//		• odds/      — the facade: build once, query many, itinerary reports
//		• cmd/give-me-the-odds — the CLI
//
// ✨ Why falconry?
//
//   - Unreachable is a value, not an error: callers branch, never recover
//   - Immutable collaborators: one graph, one schedule, any number of
//     parallel queries, zero locks
//   - Hooks and contexts on the hot loop for tracing and cancellation
//
// Quick ASCII galaxy (the classic reference scenario):
//
//	Tatooine ───6─── Dagobah ───4─── Endor
//	     \              │1            /
//	      6─────────── Hoth ────────1
//
//	autonomy 6, hunters on Hoth days 6-8:
//	countdown  7 → odds 0.00 (unreachable)
//	countdown  8 → odds 0.81 (two encounters)
//	countdown  9 → odds 0.90 (one encounter)
//	countdown 10 → odds 1.00 (clean run)
//
//	go get github.com/katalvlaran/falconry
package falconry
