package placement

import (
	"github.com/lixenwraith/prize-wheel/constants"
	"github.com/lixenwraith/prize-wheel/vmath"
)

// Source names recorded by the sequencer
const (
	SourceSurface = "surface"
	SourceTimeout = "timeout"
	SourceFixed   = "fixed-offset"
	SourceOrigin  = "origin"
)

// HitResult is one surface intersection from the detection source
type HitResult struct {
	WorldTransform vmath.Mat4
}

// WorldExtractor pulls a world position out of a hit transform. The default
// reads the translation column; the detection source may substitute its own.
type WorldExtractor func(HitResult) vmath.Vec3

// DefaultExtractor reads the transform's translation column
func DefaultExtractor(r HitResult) vmath.Vec3 {
	return r.WorldTransform.Position()
}

// ConsumeHits feeds one hit-test callback into the sequencer. Only the
// first non-empty results list matters: it resolves placement at the hit
// position with the surface-anchored scale. Empty lists and anything after
// resolution are ignored.
func ConsumeHits(q *Sequencer, results []HitResult, extract WorldExtractor) bool {
	if len(results) == 0 {
		return false
	}
	if extract == nil {
		extract = DefaultExtractor
	}
	return q.Resolve(SourceSurface, Placement{
		Position: extract(results[0]),
		Scale:    constants.ScaleSurfaceAnchored,
	})
}

// FixedOffset is the fixed-offset variant's placement: a literal offset in
// front of the viewer, no detection step
func FixedOffset() Placement {
	return Placement{
		Position: vmath.Vec3{Z: -constants.FixedOffsetDistance},
		Scale:    constants.ScaleFixedOffset,
	}
}

// DesktopOrigin is the desktop-preview placement at the world origin
func DesktopOrigin() Placement {
	return Placement{
		Position: vmath.Vec3{},
		Scale:    constants.ScaleDesktopPreview,
	}
}

// TimeoutFallback is where the wheel lands when no surface shows up within
// the detection budget, so the experience is never stuck waiting
func TimeoutFallback() Placement {
	return Placement{
		Position: vmath.Vec3{
			Y: constants.SurfaceFallbackHeight,
			Z: -constants.SurfaceFallbackDistance,
		},
		Scale: constants.ScaleSurfaceAnchored,
	}
}
