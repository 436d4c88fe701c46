// Package navigator defines the search state model, result type, functional
// options and error taxonomy for the constrained itinerary search.
package navigator

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for the navigator.
var (
	// ErrGraphNil is returned when a nil galaxy is passed in.
	ErrGraphNil = errors.New("navigator: galaxy is nil")

	// ErrScheduleNil is returned when a nil hunter schedule is passed in.
	ErrScheduleNil = errors.New("navigator: hunter schedule is nil")

	// ErrEmptyPlanet is returned when the start or destination option is missing.
	ErrEmptyPlanet = errors.New("navigator: start and destination must be set")

	// ErrPlanetNotFound is returned when the start or destination is absent
	// from the galaxy.
	ErrPlanetNotFound = errors.New("navigator: planet not found in galaxy")

	// ErrBadAutonomy is returned for a non-positive fuel autonomy.
	ErrBadAutonomy = errors.New("navigator: autonomy must be positive")

	// ErrBadCountdown is returned for a negative countdown.
	ErrBadCountdown = errors.New("navigator: countdown must be non-negative")

	// ErrNegativeEncounters is returned by SuccessProbability for a negative count.
	ErrNegativeEncounters = errors.New("navigator: encounters must be non-negative")
)

// State is one point in the search space: where the ship is, on which day,
// with how much fuel left, and how many hunter encounters it has accumulated
// getting there. States are immutable values; the search never mutates one
// after creation.
type State struct {
	// Planet is the ship's current location.
	Planet string

	// Day counts from 0 at mission start.
	Day int

	// Fuel is the remaining travel-days before mandatory refueling (≤ autonomy).
	Fuel int

	// Encounters is the number of hunter sightings crossed so far.
	Encounters int
}

// Result is the outcome of one FindMinEncounters query.
//
// Encounters is -1 and Path is nil when no itinerary reaches the destination
// within the countdown; that is a normal outcome, not an error. Otherwise
// Path[0] is the initial state and the last element sits on the destination.
type Result struct {
	Encounters int
	Path       []State
}

// Found reports whether any itinerary reached the destination in time.
func (r Result) Found() bool { return r.Encounters >= 0 }

// Option configures FindMinEncounters via functional arguments.
// Invalid values (e.g. a negative countdown) are recorded internally and
// surfaced as the matching sentinel error when the search is invoked.
type Option func(*Options)

// Options holds the parameters of one search invocation.
type Options struct {
	// Ctx allows cancellation; the search checks it once per dequeue.
	Ctx context.Context

	// Start is the departure planet.
	Start string

	// Destination is the planet to reach before the countdown expires.
	Destination string

	// Autonomy is the maximum travel-days coverable on a full tank. Required.
	Autonomy int

	// Countdown is the last day by which Destination must be reached.
	Countdown int

	// OnDequeue is called for every state popped off the frontier,
	// before pruning. Useful for tracing and instrumentation.
	OnDequeue func(State)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, a no-op
// OnDequeue hook, countdown 0, and no start/destination/autonomy set
// (those must be supplied explicitly).
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnDequeue: func(State) {},
	}
}

// Start sets the departure planet.
func Start(planet string) Option {
	return func(o *Options) { o.Start = planet }
}

// Destination sets the target planet.
func Destination(planet string) Option {
	return func(o *Options) { o.Destination = planet }
}

// WithAutonomy sets the fuel capacity in travel-days. Must be positive;
// non-positive values surface as ErrBadAutonomy.
func WithAutonomy(days int) Option {
	return func(o *Options) {
		if days <= 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadAutonomy, days)
			return
		}
		o.Autonomy = days
	}
}

// WithCountdown sets the deadline day. Must be non-negative; negative
// values surface as ErrBadCountdown.
func WithCountdown(day int) Option {
	return func(o *Options) {
		if day < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadCountdown, day)
			return
		}
		o.Countdown = day
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnDequeue registers a hook invoked for every dequeued state.
func WithOnDequeue(fn func(State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}
