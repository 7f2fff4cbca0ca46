package constants

// Placement Scales
//
// The model is authored small; each variant scales it to read correctly at
// its viewing distance.
const (
	ScaleSurfaceAnchored = 8.0
	ScaleFixedOffset     = 10.0
	ScaleDesktopPreview  = 1.0
)

// Placement Positions
const (
	// FixedOffsetDistance places the wheel this many units in front of the
	// viewer in the fixed-offset variant
	FixedOffsetDistance = 2.0

	// SurfaceFallbackDistance is where the wheel lands when surface
	// detection times out
	SurfaceFallbackDistance = 1.5

	// SurfaceFallbackHeight drops the timeout fallback below eye level so
	// the wheel still reads as floor-placed
	SurfaceFallbackHeight = -1.0
)
