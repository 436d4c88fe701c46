// Package odds wires the galaxy, hunters and navigator packages into the
// single-call interface the CLI consumes.
package odds

import (
	"github.com/katalvlaran/falconry/galaxy"
	"github.com/katalvlaran/falconry/hunters"
	"github.com/katalvlaran/falconry/mission"
	"github.com/katalvlaran/falconry/navigator"
)

// Default endpoints of the reference scenario.
const (
	DefaultStart       = "Tatooine"
	DefaultDestination = "Endor"
)

// Option configures a Calculator at construction time.
type Option func(*Calculator)

// WithEndpoints overrides the default Tatooine → Endor pair.
func WithEndpoints(start, destination string) Option {
	return func(c *Calculator) {
		c.start = start
		c.destination = destination
	}
}

// Calculator computes mission odds against a fixed ship configuration.
// The route map is built once in NewCalculator and shared, read-only,
// by every subsequent query.
type Calculator struct {
	graph       *galaxy.Galaxy
	autonomy    int
	start       string
	destination string

	// memoized outcome of the most recent query
	ran            bool
	lastEncounters int
	lastPath       []navigator.State
}

// NewCalculator validates cfg, builds the route map and returns a ready
// Calculator. Endpoint existence is not checked here: a ship record is not
// tied to one itinerary, and the navigator validates endpoints per query.
func NewCalculator(cfg mission.FalconConfig, opts ...Option) (*Calculator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g, err := galaxy.New(cfg.Routes)
	if err != nil {
		return nil, err
	}

	c := &Calculator{
		graph:       g,
		autonomy:    cfg.Autonomy,
		start:       DefaultStart,
		destination: DefaultDestination,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// NewCalculatorFromFile loads a ship record from path and builds a
// Calculator from it.
func NewCalculatorFromFile(path string, opts ...Option) (*Calculator, error) {
	cfg, err := mission.LoadFalcon(path)
	if err != nil {
		return nil, err
	}

	return NewCalculator(cfg, opts...)
}

// GiveMeTheOdds runs the constrained search against intel and returns the
// success probability in [0, 1]: 0.0 when no itinerary fits the countdown,
// 0.9^k for the best itinerary's k encounters, 1.0 for a clean run.
func (c *Calculator) GiveMeTheOdds(intel mission.EmpireConfig) (float64, error) {
	if err := intel.Validate(); err != nil {
		return 0, err
	}

	sched, err := hunters.NewSchedule(intel.Sightings)
	if err != nil {
		return 0, err
	}

	res, err := navigator.FindMinEncounters(c.graph, sched,
		navigator.Start(c.start),
		navigator.Destination(c.destination),
		navigator.WithAutonomy(c.autonomy),
		navigator.WithCountdown(intel.Countdown),
	)
	if err != nil {
		return 0, err
	}

	c.ran = true
	c.lastEncounters = res.Encounters
	c.lastPath = res.Path

	if !res.Found() {
		return 0.0, nil
	}

	return navigator.SuccessProbability(res.Encounters)
}

// GiveMeTheOddsFile loads an intelligence record from path and computes the
// odds against it.
func (c *Calculator) GiveMeTheOddsFile(path string) (float64, error) {
	intel, err := mission.LoadEmpire(path)
	if err != nil {
		return 0, err
	}

	return c.GiveMeTheOdds(intel)
}

// LastEncounters returns the encounter count of the most recent query
// (-1 for unreachable) and whether any query has run yet.
func (c *Calculator) LastEncounters() (int, bool) {
	return c.lastEncounters, c.ran
}

// LastPath returns the optimal path of the most recent query, or nil when
// no query has run or the destination was unreachable.
func (c *Calculator) LastPath() []navigator.State {
	return c.lastPath
}

// Autonomy returns the ship's fuel capacity in travel-days.
func (c *Calculator) Autonomy() int { return c.autonomy }
