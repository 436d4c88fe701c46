// Package hunters answers one question fast: are bounty hunters present on
// planet P on day D?
//
// A Schedule is built once from a (possibly empty) list of Sighting values
// and is read-only afterwards. The backing structure maps each planet to the
// set of its sighting days, so Present is an O(1) average double map lookup.
//
// An empty sighting list is perfectly valid and yields a schedule where
// Present is always false.
//
// Errors
//
//   - ErrEmptyPlanet if a sighting names an empty planet.
//   - ErrNegativeDay if a sighting carries a negative day.
package hunters
