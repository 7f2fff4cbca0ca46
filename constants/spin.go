package constants

// Wheel Geometry
const (
	// SegmentCount is the number of reward wedges on the wheel
	SegmentCount = 8

	// SegmentDegrees is the angular width of one wedge
	SegmentDegrees = 360.0 / SegmentCount
)

// Spin Easing
//
// The spin is a scripted exponential approach toward a fixed target angle,
// with a minimum step floor so the residual error reaches the snap threshold
// in a bounded number of frames instead of asymptoting.
const (
	// SnapEpsilon is the residual angle (radians) below which the wheel
	// snaps exactly onto the target
	SnapEpsilon = 0.002

	// SpinMinStep is the per-frame step floor (radians)
	SpinMinStep = 0.006

	// SpinDecayFactor is the fraction of the remaining angle consumed per
	// frame while above the step floor
	SpinDecayFactor = 0.048
)

// Spin Choreography
const (
	// RevolutionsAnchored is the full-turn count for the surface-anchored
	// variant; purely cosmetic, any count >= 1 lands on the same segment
	RevolutionsAnchored = 10

	// RevolutionsPreview is the full-turn count for the fixed-offset and
	// desktop-preview variants
	RevolutionsPreview = 5

	// SpinDirection is the canonical forward rotation sign. Negative spins
	// clockwise, matching the segment angle convention.
	SpinDirection = -1.0
)
