// Package hunters_test verifies Schedule construction and the Present predicate.
package hunters_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/falconry/hunters"
)

func TestNewSchedule_Empty(t *testing.T) {
	s, err := hunters.NewSchedule(nil)
	if err != nil {
		t.Fatalf("empty sightings should be valid, got %v", err)
	}
	if s.Present("Hoth", 0) {
		t.Error("empty schedule must never report presence")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d; want 0", s.Len())
	}
}

func TestNewSchedule_Validation(t *testing.T) {
	_, err := hunters.NewSchedule([]hunters.Sighting{{Planet: "", Day: 1}})
	if !errors.Is(err, hunters.ErrEmptyPlanet) {
		t.Errorf("empty planet: want ErrEmptyPlanet, got %v", err)
	}

	_, err = hunters.NewSchedule([]hunters.Sighting{{Planet: "Hoth", Day: -1}})
	if !errors.Is(err, hunters.ErrNegativeDay) {
		t.Errorf("negative day: want ErrNegativeDay, got %v", err)
	}
}

func TestPresent_ExactMatchOnly(t *testing.T) {
	s, err := hunters.NewSchedule([]hunters.Sighting{
		{Planet: "Hoth", Day: 6},
		{Planet: "Hoth", Day: 7},
		{Planet: "Dagobah", Day: 5},
	})
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		planet string
		day    int
		want   bool
	}{
		{"Hoth", 6, true},
		{"Hoth", 7, true},
		{"Hoth", 8, false},    // right planet, wrong day
		{"Dagobah", 6, false}, // right day elsewhere, wrong here
		{"Dagobah", 5, true},
		{"Endor", 6, false}, // planet never sighted
	}
	for _, tc := range cases {
		if got := s.Present(tc.planet, tc.day); got != tc.want {
			t.Errorf("Present(%s, %d) = %v; want %v", tc.planet, tc.day, got, tc.want)
		}
	}
}

func TestNewSchedule_DuplicatesCollapse(t *testing.T) {
	s, _ := hunters.NewSchedule([]hunters.Sighting{
		{Planet: "Hoth", Day: 6},
		{Planet: "Hoth", Day: 6},
	})
	if s.Len() != 1 {
		t.Errorf("duplicate sighting should collapse: Len() = %d; want 1", s.Len())
	}
	if !s.Present("Hoth", 6) {
		t.Error("Present(Hoth, 6) = false; want true")
	}
}
