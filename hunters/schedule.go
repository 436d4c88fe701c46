package hunters

import (
	"errors"
	"fmt"
)

// Sentinel errors for Schedule construction.
var (
	// ErrEmptyPlanet is returned when a sighting names an empty planet.
	ErrEmptyPlanet = errors.New("hunters: sighting planet name is empty")

	// ErrNegativeDay is returned when a sighting carries a negative day.
	ErrNegativeDay = errors.New("hunters: sighting day must be non-negative")
)

// Sighting records one bounty-hunter presence fact: hunters will be on
// Planet on Day (day 0 is mission start). Multiple sightings may share a
// planet or a day; duplicates are harmless.
type Sighting struct {
	Planet string
	Day    int
}

// Validate reports whether the sighting is structurally sound.
func (s Sighting) Validate() error {
	if s.Planet == "" {
		return ErrEmptyPlanet
	}
	if s.Day < 0 {
		return fmt.Errorf("%w: planet=%s day=%d", ErrNegativeDay, s.Planet, s.Day)
	}

	return nil
}

// Schedule is an immutable presence predicate over (planet, day) pairs.
type Schedule struct {
	byPlanet map[string]map[int]struct{}
}

// NewSchedule builds a Schedule from sightings. The list may be empty;
// each entry is validated eagerly and the first failure aborts construction.
func NewSchedule(sightings []Sighting) (*Schedule, error) {
	s := &Schedule{byPlanet: make(map[string]map[int]struct{}, len(sightings))}

	var sg Sighting
	for _, sg = range sightings {
		if err := sg.Validate(); err != nil {
			return nil, err
		}
		days, ok := s.byPlanet[sg.Planet]
		if !ok {
			days = make(map[int]struct{})
			s.byPlanet[sg.Planet] = days
		}
		days[sg.Day] = struct{}{}
	}

	return s, nil
}

// Present reports whether some sighting matches both planet and day exactly.
func (s *Schedule) Present(planet string, day int) bool {
	days, ok := s.byPlanet[planet]
	if !ok {
		return false
	}
	_, ok = days[day]

	return ok
}

// Len returns the number of distinct (planet, day) presence facts.
func (s *Schedule) Len() int {
	n := 0
	for _, days := range s.byPlanet {
		n += len(days)
	}

	return n
}
