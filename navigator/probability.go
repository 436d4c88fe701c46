package navigator

import (
	"fmt"
	"math"
)

// escapeChance is the probability of slipping past one bounty hunter
// sighting unharmed; each encounter carries an independent 10% capture risk.
const escapeChance = 0.9

// SuccessProbability converts an encounter count into the odds of
// completing the mission uncaptured: escaping k independent encounters
// multiplies the per-encounter escape chance, so the result is 0.9^k.
//
// Zero encounters yield exactly 1.0. Negative counts are rejected with
// ErrNegativeEncounters; note that the -1 unreachable sentinel from a
// Result must be handled by the caller before calling this.
func SuccessProbability(encounters int) (float64, error) {
	if encounters < 0 {
		return 0, fmt.Errorf("%w: got %d", ErrNegativeEncounters, encounters)
	}
	if encounters == 0 {
		return 1.0, nil
	}

	return math.Pow(escapeChance, float64(encounters)), nil
}
