// Package mission defines the validated configuration records consumed by
// the odds calculator, plus the loader's error taxonomy.
package mission

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/falconry/galaxy"
	"github.com/katalvlaran/falconry/hunters"
)

// Sentinel errors for loading and validating mission input.
var (
	// ErrParse wraps file access and syntax failures (unreadable file,
	// malformed JSON/YAML). Distinct from validation errors so callers can
	// tell "broken file" from "well-formed but invalid values".
	ErrParse = errors.New("mission: cannot parse input file")

	// ErrMissingField is returned when a required top-level field is absent.
	ErrMissingField = errors.New("mission: missing required field")

	// ErrBadAutonomy is returned for a non-positive fuel autonomy.
	ErrBadAutonomy = errors.New("mission: autonomy must be positive")

	// ErrBadCountdown is returned for a negative countdown.
	ErrBadCountdown = errors.New("mission: countdown must be non-negative")

	// ErrNoRoutes is returned when the route list is empty.
	ErrNoRoutes = errors.New("mission: route list is empty")
)

// FalconConfig is the validated ship record: how many travel-days fit in
// the tank, and which hyperspace routes exist.
type FalconConfig struct {
	Autonomy int
	Routes   []galaxy.Route
}

// Validate checks the record eagerly: positive autonomy, a non-empty route
// list, and every route structurally sound. Per-route failures are wrapped
// with the offending index.
func (c FalconConfig) Validate() error {
	if c.Autonomy <= 0 {
		return fmt.Errorf("%w: got %d", ErrBadAutonomy, c.Autonomy)
	}
	if len(c.Routes) == 0 {
		return ErrNoRoutes
	}
	for i, r := range c.Routes {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("mission: route %d: %w", i, err)
		}
	}

	return nil
}

// EmpireConfig is the validated intelligence record: the countdown and the
// known bounty hunter sightings. The sighting list may be empty.
type EmpireConfig struct {
	Countdown int
	Sightings []hunters.Sighting
}

// Validate checks the record eagerly: non-negative countdown and every
// sighting structurally sound, wrapped with the offending index.
func (c EmpireConfig) Validate() error {
	if c.Countdown < 0 {
		return fmt.Errorf("%w: got %d", ErrBadCountdown, c.Countdown)
	}
	for i, s := range c.Sightings {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("mission: sighting %d: %w", i, err)
		}
	}

	return nil
}
