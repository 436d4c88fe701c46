// Package odds is the high-level facade of the calculator: build it once
// from a ship configuration, then ask for the mission odds against any
// number of intelligence records.
//
// The route map is constructed a single time and reused across queries;
// every query gets its own search frontier, so a Calculator may serve
// concurrent queries as long as callers do not rely on the memoized
// last-result accessors (LastEncounters, LastPath, Itinerary), which track
// only the most recent query.
//
// The endpoints default to Tatooine → Endor, the fixed pair of the
// reference scenario, and can be overridden with WithEndpoints.
//
// Usage
//
//	calc, err := odds.NewCalculatorFromFile("millennium-falcon.json")
//	if err != nil { ... }
//	p, err := calc.GiveMeTheOddsFile("empire.json")
//	if err != nil { ... }
//	fmt.Println(p)                // 0.81
//	fmt.Println(calc.Itinerary()) // day-by-day report
package odds
