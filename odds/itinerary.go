package odds

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/falconry/navigator"
)

// Itinerary renders the most recent query's optimal path as a day-by-day,
// human-readable report: the action taken each day, the fuel gauge, and a
// warning wherever bounty hunters were crossed.
//
//	Day 0: depart Tatooine (fuel 6/6)
//	Day 6: travel to Hoth (fuel 0/6) [bounty hunters!]
//	Day 7: refuel on Hoth (fuel 6/6) [bounty hunters!]
//	Day 8: travel to Endor (fuel 5/6)
//
//	Total encounters: 2
//	Success odds: 81.0%
func (c *Calculator) Itinerary() string {
	if !c.ran {
		return "No mission computed yet."
	}
	if c.lastEncounters < 0 {
		return fmt.Sprintf("No route reaches %s within the countdown.", c.destination)
	}

	var b strings.Builder
	var prev navigator.State
	for i, s := range c.lastPath {
		fmt.Fprintf(&b, "Day %d: %s %s (fuel %d/%d)", s.Day, action(i, prev, s), s.Planet, s.Fuel, c.autonomy)
		if i > 0 && s.Encounters > prev.Encounters {
			b.WriteString(" [bounty hunters!]")
		}
		b.WriteByte('\n')
		prev = s
	}

	probability, err := navigator.SuccessProbability(c.lastEncounters)
	if err != nil {
		// Unreachable: lastEncounters is non-negative on every path above.
		return err.Error()
	}

	fmt.Fprintf(&b, "\nTotal encounters: %d\n", c.lastEncounters)
	fmt.Fprintf(&b, "Success odds: %.1f%%\n", probability*100)

	return b.String()
}

// action classifies the step that produced state s: the first state is the
// departure, a planet change is travel, a fuel gain in place is a refuel,
// anything else is a waiting day.
func action(i int, prev, s navigator.State) string {
	switch {
	case i == 0:
		return "depart"
	case s.Planet != prev.Planet:
		return "travel to"
	case s.Fuel > prev.Fuel:
		return "refuel on"
	default:
		return "wait on"
	}
}
