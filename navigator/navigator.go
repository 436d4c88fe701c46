package navigator

import (
	"fmt"

	"github.com/katalvlaran/falconry/galaxy"
	"github.com/katalvlaran/falconry/hunters"
)

// stateKey identifies a dedup slot in the visited map. Encounters is
// deliberately excluded: for a fixed (planet, day, fuel) we only care about
// the best encounter count seen so far.
type stateKey struct {
	planet string
	day    int
	fuel   int
}

// entry pairs a frontier state with the full path that produced it.
type entry struct {
	state State
	path  []State
}

// walker encapsulates the mutable state of one search invocation.
type walker struct {
	graph *galaxy.Galaxy
	sched *hunters.Schedule
	cfg   Options

	queue   []entry
	visited map[stateKey]int // (planet, day, fuel) → fewest encounters seen

	found    bool
	best     int
	bestPath []State
}

// FindMinEncounters searches for the itinerary from Start to Destination
// that arrives no later than Countdown with the fewest bounty hunter
// encounters, honoring the fuel autonomy.
//
// Preconditions are checked eagerly, before any search work: options must be
// valid, both collaborators non-nil, and both endpoints present in the
// galaxy. When the endpoints sit in different connected components the
// search short-circuits to the unreachable result without exploring —
// the constrained search could not succeed either, and the unweighted
// reachability check is far cheaper.
//
// The returned Result carries (-1, nil) when no itinerary fits the
// countdown; that is a normal outcome, not an error.
func FindMinEncounters(g *galaxy.Galaxy, sched *hunters.Schedule, opts ...Option) (Result, error) {
	// 1) Build options and catch invalid ones immediately.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}

	// 2) Validate collaborators and endpoints.
	if g == nil {
		return Result{}, ErrGraphNil
	}
	if sched == nil {
		return Result{}, ErrScheduleNil
	}
	if cfg.Start == "" || cfg.Destination == "" {
		return Result{}, ErrEmptyPlanet
	}
	if cfg.Autonomy <= 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrBadAutonomy, cfg.Autonomy)
	}
	if !g.HasPlanet(cfg.Start) {
		return Result{}, fmt.Errorf("%w: start %q", ErrPlanetNotFound, cfg.Start)
	}
	if !g.HasPlanet(cfg.Destination) {
		return Result{}, fmt.Errorf("%w: destination %q", ErrPlanetNotFound, cfg.Destination)
	}

	// 3) Cheap pre-filter: disjoint components can never connect, with or
	//    without fuel and time constraints.
	if !g.IsConnected(cfg.Start, cfg.Destination) {
		return Result{Encounters: -1}, nil
	}

	// 4) Seed the frontier with the initial state: day 0, full tank,
	//    no encounters yet.
	initial := State{Planet: cfg.Start, Day: 0, Fuel: cfg.Autonomy}
	w := &walker{
		graph:   g,
		sched:   sched,
		cfg:     cfg,
		queue:   []entry{{state: initial, path: []State{initial}}},
		visited: map[stateKey]int{{planet: cfg.Start, day: 0, fuel: cfg.Autonomy}: 0},
	}

	if err := w.loop(); err != nil {
		return Result{}, err
	}

	if !w.found {
		return Result{Encounters: -1}, nil
	}

	return Result{Encounters: w.best, Path: w.bestPath}, nil
}

// loop processes the frontier until exhausted or the context expires.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-w.cfg.Ctx.Done():
			return w.cfg.Ctx.Err()
		default:
		}

		e := w.dequeue()
		s := e.state

		// Pruning, in order: past the deadline, then no-better-than-best.
		// Encounters only ever grow along a path, so a frontier state that
		// already matches the best complete path cannot improve on it.
		if s.Day > w.cfg.Countdown {
			continue
		}
		if w.found && s.Encounters >= w.best {
			continue
		}

		// Destination reached: record and do not expand further. The guard
		// above makes this a strict improvement (or the first solution).
		if s.Planet == w.cfg.Destination {
			w.found = true
			w.best = s.Encounters
			w.bestPath = e.path
			continue
		}

		w.expandTravel(e)
		w.expandRefuel(e)
		w.expandWait(e)
	}

	return nil
}

// dequeue pops the head of the FIFO frontier and fires the OnDequeue hook.
func (w *walker) dequeue() entry {
	e := w.queue[0]
	w.queue = w.queue[1:]
	w.cfg.OnDequeue(e.state)

	return e
}

// expandTravel enqueues one successor per neighbor whose travel time fits in
// the tank. Arriving on a day with a scheduled sighting costs an encounter.
func (w *walker) expandTravel(e entry) {
	s := e.state
	for _, nb := range w.graph.Neighbors(s.Planet) {
		if nb.Days > s.Fuel {
			continue
		}
		day := s.Day + nb.Days
		w.push(e, State{
			Planet:     nb.Planet,
			Day:        day,
			Fuel:       s.Fuel - nb.Days,
			Encounters: s.Encounters + w.risk(nb.Planet, day),
		})
	}
}

// expandRefuel enqueues the stay-and-refuel successor: one day on the same
// planet, tank back to full. Pointless at full tank, so skipped there.
func (w *walker) expandRefuel(e entry) {
	s := e.state
	if s.Fuel >= w.cfg.Autonomy {
		return
	}
	day := s.Day + 1
	w.push(e, State{
		Planet:     s.Planet,
		Day:        day,
		Fuel:       w.cfg.Autonomy,
		Encounters: s.Encounters + w.risk(s.Planet, day),
	})
}

// expandWait enqueues the stay-put successor. Below full tank, refueling
// dominates waiting (same day cost, strictly more fuel), so waiting is only
// generated at full tank — its one genuine use is letting a sighting
// window pass.
func (w *walker) expandWait(e entry) {
	s := e.state
	if s.Fuel != w.cfg.Autonomy {
		return
	}
	day := s.Day + 1
	w.push(e, State{
		Planet:     s.Planet,
		Day:        day,
		Fuel:       s.Fuel,
		Encounters: s.Encounters + w.risk(s.Planet, day),
	})
}

// push enqueues next unless the same (planet, day, fuel) slot was already
// reached with as few or fewer encounters. The path is extended
// copy-on-append so every frontier entry owns its history.
func (w *walker) push(parent entry, next State) {
	k := stateKey{planet: next.Planet, day: next.Day, fuel: next.Fuel}
	if prev, seen := w.visited[k]; seen && next.Encounters >= prev {
		return
	}
	w.visited[k] = next.Encounters

	path := make([]State, len(parent.path)+1)
	copy(path, parent.path)
	path[len(parent.path)] = next

	w.queue = append(w.queue, entry{state: next, path: path})
}

// risk returns 1 when hunters are scheduled on planet that day, else 0.
func (w *walker) risk(planet string, day int) int {
	if w.sched.Present(planet, day) {
		return 1
	}

	return 0
}
