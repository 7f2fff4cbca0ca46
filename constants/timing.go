package constants

import "time"

// Frame Loop Timing
const (
	// FrameUpdateInterval is the render loop tick; the spin state machine
	// advances once per frame
	FrameUpdateInterval = 33 * time.Millisecond
)

// Placement Timing
const (
	// PlacementPollInterval is the retry interval for applying a resolved
	// placement while the model root is still loading
	PlacementPollInterval = 100 * time.Millisecond

	// SurfaceDetectTimeout is the wall-clock budget for surface detection
	// before the fallback position is forced
	SurfaceDetectTimeout = 3 * time.Second
)

// Reveal Timing
const (
	// RevealDelay is the dramatic pause between the wheel settling and the
	// reward overlay appearing
	RevealDelay = 500 * time.Millisecond
)
