package galaxy

// Galaxy is the immutable route map: planets connected by symmetric,
// weighted hyperspace routes.
//
// Internally it keeps an adjacency list (planet → neighbors with travel
// times) plus a planet set for O(1) membership checks. Both are frozen
// after New returns.
type Galaxy struct {
	adjacency map[string][]Neighbor
	planets   map[string]struct{}
}

// New builds a Galaxy from routes.
//
// Every route is validated eagerly and inserted as two directed adjacency
// entries of equal weight. Returns ErrNoRoutes for an empty list, or the
// first route validation failure encountered.
func New(routes []Route) (*Galaxy, error) {
	if len(routes) == 0 {
		return nil, ErrNoRoutes
	}

	g := &Galaxy{
		adjacency: make(map[string][]Neighbor, len(routes)*2),
		planets:   make(map[string]struct{}, len(routes)*2),
	}

	var r Route
	for _, r = range routes {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		// Symmetric insert: the route is traversable either way at the same cost.
		g.adjacency[r.Origin] = append(g.adjacency[r.Origin], Neighbor{Planet: r.Destination, Days: r.TravelTime})
		g.adjacency[r.Destination] = append(g.adjacency[r.Destination], Neighbor{Planet: r.Origin, Days: r.TravelTime})
		g.planets[r.Origin] = struct{}{}
		g.planets[r.Destination] = struct{}{}
	}

	return g, nil
}

// Neighbors returns all planets one jump away from planet, with travel times.
// Unknown planets yield a nil slice, not an error.
//
// The returned slice is owned by the Galaxy; callers must not mutate it.
func (g *Galaxy) Neighbors(planet string) []Neighbor {
	return g.adjacency[planet]
}

// HasPlanet reports whether planet appears in the route map.
func (g *Galaxy) HasPlanet(planet string) bool {
	_, ok := g.planets[planet]
	return ok
}

// Planets returns the set of all planet names as a fresh copy,
// so callers can safely retain or mutate it.
func (g *Galaxy) Planets() map[string]struct{} {
	out := make(map[string]struct{}, len(g.planets))
	for p := range g.planets {
		out[p] = struct{}{}
	}

	return out
}

// IsConnected reports whether any path exists between start and end,
// ignoring travel times, fuel and deadlines entirely.
//
// Trivially true when start == end (and the planet exists); false when
// either planet is unknown. Runs a plain breadth-first traversal, so the
// cost is O(V + E) in the worst case.
func (g *Galaxy) IsConnected(start, end string) bool {
	if !g.HasPlanet(start) || !g.HasPlanet(end) {
		return false
	}
	if start == end {
		return true
	}

	visited := map[string]bool{start: true}
	queue := []string{start}

	var current string
	for len(queue) > 0 {
		current = queue[0]
		queue = queue[1:]

		for _, nb := range g.adjacency[current] {
			if nb.Planet == end {
				return true
			}
			if !visited[nb.Planet] {
				visited[nb.Planet] = true
				queue = append(queue, nb.Planet)
			}
		}
	}

	return false
}
