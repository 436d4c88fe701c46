// Package mission loads and validates the two input records of the odds
// calculator: the ship configuration (fuel autonomy plus the route map) and
// the intercepted intelligence (countdown plus bounty hunter sightings).
//
// Files are canonical JSON; the same schema is also accepted as YAML when
// the file extension is .yaml or .yml. Route travel times may be spelled
// either travel_time or travelTime.
//
//	{
//	  "autonomy": 6,
//	  "routes": [
//	    {"origin": "Tatooine", "destination": "Dagobah", "travel_time": 6}
//	  ]
//	}
//
//	{
//	  "countdown": 7,
//	  "bounty_hunters": [
//	    {"planet": "Hoth", "day": 6}
//	  ]
//	}
//
// All validation happens here, eagerly, before any search work: required
// fields must be present, autonomy positive, countdown non-negative, the
// route list non-empty, and every route and sighting structurally sound.
// Malformed files surface as ErrParse; structurally invalid values surface
// as the matching sentinel from this package or from galaxy/hunters. The
// downstream packages can therefore assume well-formed input.
package mission
