// Package session owns the AR/preview session handle. One Manager is
// constructed at startup and passed by reference to whatever needs to enter
// the session or query its state; there is no package-level session
// singleton.
package session

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/lixenwraith/prize-wheel/engine"
	"github.com/lixenwraith/prize-wheel/placement"
	"github.com/lixenwraith/prize-wheel/vmath"
)

// Mode selects the deployment variant
type Mode uint8

const (
	// ModeSurfaceAnchored waits for a detected surface (with a timeout
	// fallback) and anchors the wheel to it
	ModeSurfaceAnchored Mode = iota
	// ModeFixedOffset places the wheel a fixed distance in front of the
	// viewer immediately
	ModeFixedOffset
	// ModeDesktopPreview places the wheel at the origin immediately
	ModeDesktopPreview
)

func (m Mode) String() string {
	switch m {
	case ModeSurfaceAnchored:
		return "surface-anchored"
	case ModeFixedOffset:
		return "fixed-offset"
	case ModeDesktopPreview:
		return "desktop-preview"
	default:
		return "unknown"
	}
}

// ParseMode resolves the -variant flag value
func ParseMode(s string) (Mode, error) {
	switch s {
	case "surface", "ar":
		return ModeSurfaceAnchored, nil
	case "fixed":
		return ModeFixedOffset, nil
	case "desktop", "preview":
		return ModeDesktopPreview, nil
	default:
		return ModeDesktopPreview, fmt.Errorf("unknown variant %q (want surface, fixed or desktop)", s)
	}
}

// Manager is the session handle. All methods are called from the frame
// loop goroutine.
type Manager struct {
	mode  Mode
	clock engine.Clock

	entered   bool
	enteredAt time.Time

	// Simulated plane detection for the surface variant: a plane shows up
	// after a randomized scan delay, at a randomized floor point.
	scanDelay  time.Duration
	surfacePos vmath.Vec3
}

// NewManager creates a session manager for the given variant
func NewManager(mode Mode, clock engine.Clock, rng *rand.Rand) *Manager {
	return &Manager{
		mode:      mode,
		clock:     clock,
		scanDelay: time.Duration(600+rng.Intn(3400)) * time.Millisecond,
		surfacePos: vmath.Vec3{
			X: (rng.Float64() - 0.5) * 0.6,
			Y: -1.3,
			Z: -2 - rng.Float64()*0.5,
		},
	}
}

// Mode returns the deployment variant
func (m *Manager) Mode() Mode {
	return m.mode
}

// SetScanDelay overrides the randomized detection delay. Used by demo
// tooling and tests to script which side of the timeout race wins.
func (m *Manager) SetScanDelay(d time.Duration) {
	m.scanDelay = d
}

// Enter starts the session. Idempotent; returns true on the first call,
// which is when the detection clock starts.
func (m *Manager) Enter() bool {
	if m.entered {
		return false
	}
	m.entered = true
	m.enteredAt = m.clock.Now()
	return true
}

// Entered reports whether the session has started
func (m *Manager) Entered() bool {
	return m.entered
}

// EnteredAt returns when the session started
func (m *Manager) EnteredAt() time.Time {
	return m.enteredAt
}

// PollHits returns this frame's hit-test results. Only the surface variant
// ever produces any, and only once the simulated scan delay has elapsed;
// the scan can outlast the detection timeout, in which case the fallback
// placement wins the race and these results are ignored downstream.
func (m *Manager) PollHits() []placement.HitResult {
	if m.mode != ModeSurfaceAnchored || !m.entered {
		return nil
	}
	if m.clock.Now().Sub(m.enteredAt) < m.scanDelay {
		return nil
	}
	return []placement.HitResult{
		{WorldTransform: vmath.Mat4Translation(m.surfacePos)},
	}
}
