// Package galaxy defines the Route value type and the error taxonomy for
// building the hyperspace route map.
package galaxy

import (
	"errors"
	"fmt"
)

// Sentinel errors for Galaxy construction.
var (
	// ErrNoRoutes is returned when New is called with an empty route list.
	ErrNoRoutes = errors.New("galaxy: route list is empty")

	// ErrEmptyPlanet is returned when a route names an empty origin or destination.
	ErrEmptyPlanet = errors.New("galaxy: route planet name is empty")

	// ErrBadTravelTime is returned when a route carries a non-positive travel time.
	ErrBadTravelTime = errors.New("galaxy: travel time must be positive")
)

// Route is a bidirectional hyperspace route between two planets.
//
// Origin and Destination are planet names; TravelTime is the number of days
// the jump takes in either direction. Routes are immutable values: validate
// once, then share freely.
type Route struct {
	Origin      string
	Destination string
	TravelTime  int
}

// Validate reports whether the route is structurally sound.
// Empty planet names and non-positive travel times are rejected;
// origin == destination is tolerated (a pointless but harmless loop).
func (r Route) Validate() error {
	if r.Origin == "" || r.Destination == "" {
		return fmt.Errorf("%w: %q→%q", ErrEmptyPlanet, r.Origin, r.Destination)
	}
	if r.TravelTime <= 0 {
		return fmt.Errorf("%w: %s→%s travelTime=%d", ErrBadTravelTime, r.Origin, r.Destination, r.TravelTime)
	}

	return nil
}

// Neighbor pairs an adjacent planet with the travel time of the connecting route.
type Neighbor struct {
	// Planet is the adjacent planet's name.
	Planet string

	// Days is the travel time of the route leading there.
	Days int
}
