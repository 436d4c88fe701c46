// Package galaxy provides the route map of the mission: an undirected,
// weighted adjacency structure over planets connected by hyperspace routes.
//
// What
//
//   - Build a Galaxy from a non-empty list of Route values.
//   - Each Route is inserted in both directions with equal travel time,
//     since hyperspace routes are traversable either way at the same cost.
//   - Query the map through:
//   - Neighbors: planets one jump away, with travel times
//   - HasPlanet: membership test
//   - Planets:   the full set of known planets
//   - IsConnected: unweighted reachability between two planets
//
// Why
//
//   - The navigator needs O(1) amortized neighbor lookups inside its
//     state-space search.
//   - IsConnected is a cheap pre-filter: when two planets sit in different
//     components, the expensive fuel/time-constrained search cannot succeed
//     either, so callers can short-circuit without running it.
//
// Complexity (V = |planets|, E = |routes|)
//
//   - Build:       O(V + E)
//   - Neighbors:   O(1) map lookup (plus the returned slice itself)
//   - IsConnected: O(V + E) breadth-first traversal, weights ignored
//   - Memory:      O(V + E)
//
// Immutability
//
//	A Galaxy is read-only after New returns. It carries no locks; concurrent
//	readers are safe because nothing mutates it post-construction.
//
// Errors
//
//   - ErrNoRoutes      if the route list is empty.
//   - ErrEmptyPlanet   if a route names an empty origin or destination.
//   - ErrBadTravelTime if a route carries a non-positive travel time.
//
// See: navigator for the constrained search that consumes this package.
package galaxy
