package wheel

import (
	"math/rand"
	"strconv"

	"github.com/lixenwraith/prize-wheel/constants"
)

// NoRequest marks the absence of an externally forced reward index
const NoRequest = -1

// ParseRewardID parses the external reward-id string (the rewardId query
// parameter of the original experience). Returns (index, true) for an
// unsigned integer in range; anything else, signs included, is rejected and
// the caller falls back to random selection.
func ParseRewardID(s string) (int, bool) {
	if s == "" {
		return NoRequest, false
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil || n >= constants.SegmentCount {
		return NoRequest, false
	}
	return int(n), true
}

// PickIndex returns the requested segment when it is a valid index, otherwise
// a uniform random segment. Uniformity over the 8 outcomes is load-bearing:
// the reveal distribution is asserted statistically in tests.
func PickIndex(rng *rand.Rand, requested int) int {
	if requested >= 0 && requested < constants.SegmentCount {
		return requested
	}
	return rng.Intn(constants.SegmentCount)
}
