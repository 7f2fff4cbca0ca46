package wheel

import (
	"github.com/lixenwraith/prize-wheel/constants"
	"github.com/lixenwraith/prize-wheel/vmath"
)

// AngleForIndex maps a segment index to its resting rotation in radians.
// Segment 0 sits under the pointer at zero rotation; each further segment is
// reached by rotating one 45° slot clockwise (negative).
func AngleForIndex(i int) float64 {
	return vmath.DegToRad(-float64(i) * constants.SegmentDegrees)
}
