// Package navigator implements the constrained state-space search at the
// heart of the mission-odds calculator: given a galaxy route map, a bounty
// hunter schedule, a fuel autonomy and a countdown, it finds the itinerary
// that reaches the destination in time with the fewest hunter encounters.
//
// What
//
//   - Explore the joint state space (planet, day, fuel, encounters) with a
//     breadth-first search over three actions, each advancing day by ≥ 1:
//   - Travel: jump to a neighbor whose travel time fits in the tank.
//   - Refuel: stay put one day, tank back to full (only below full).
//   - Wait:   stay put one day at full tank (refueling dominates waiting
//     below full, so waiting is only a distinct action when full).
//   - Every arrival, refuel day or waiting day that coincides with a
//     scheduled sighting counts as one encounter.
//   - Returns the minimum achievable encounter count plus one optimal path,
//     or the sentinel (-1, nil) when the destination cannot be reached
//     within the countdown. Unreachable is a value, not an error.
//   - SuccessProbability converts an encounter count into mission odds:
//     0.9^k, each encounter carrying an independent 10% capture chance.
//
// Why FIFO instead of a priority queue
//
//	Every action advances day by at least one, so the frontier is explored
//	in non-decreasing day order; a plain FIFO queue gives the layered
//	exploration a priority queue would, without the log-factor.
//
// Pruning and termination
//
//	At dequeue time, in order: states past the countdown are discarded;
//	states whose encounter count already matches or exceeds the best
//	complete path are discarded (admissible, since encounters never
//	decrease along a path); destination states are recorded and never
//	expanded. A state (planet, day, fuel) is re-enqueued only when reached
//	with strictly fewer encounters than before, which bounds the frontier
//	and guarantees termination: day ≤ countdown, fuel ≤ autonomy.
//
// Tie-breaking
//
//	Among equally good paths, whichever complete path is dequeued first
//	under FIFO order wins. That choice is deliberately unspecified beyond
//	"first found"; do not rely on exact path equality across versions.
//
// Complexity (P = planets, D = countdown, F = autonomy, E = routes)
//
//   - Time:   O(P × D × F × deg) ≈ O(D × F × E) state expansions
//   - Memory: O(P × D × F) for the visited map, plus path storage.
//     Frontier entries carry copy-on-append paths; fine for the small
//     state spaces this models. A parent-pointer arena would drop the
//     path overhead if ever needed.
//
// Errors
//
//   - ErrGraphNil / ErrScheduleNil     nil collaborator passed in.
//   - ErrEmptyPlanet                   start or destination not set.
//   - ErrPlanetNotFound                start or destination absent from the map.
//   - ErrBadAutonomy / ErrBadCountdown invalid numeric options.
//   - ErrNegativeEncounters            SuccessProbability on a negative count.
//   - Context cancellation errors when a custom context expires mid-search.
//
// Usage
//
//	res, err := navigator.FindMinEncounters(g, sched,
//	    navigator.Start("Tatooine"),
//	    navigator.Destination("Endor"),
//	    navigator.WithAutonomy(6),
//	    navigator.WithCountdown(8),
//	)
//	if err != nil { ... }
//	if res.Encounters < 0 { /* unreachable in time */ }
//	odds, _ := navigator.SuccessProbability(res.Encounters)
package navigator
