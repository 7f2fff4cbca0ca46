// Package placement resolves where the wheel model sits in the world and
// applies that decision to the scene exactly once. Resolution (a surface
// hit, a fixed offset, the origin, or the detection-timeout fallback) and
// model load finish in either order; the sequencer waits for whichever is
// missing and never applies twice.
package placement

import (
	"sync"

	"github.com/lixenwraith/prize-wheel/scene"
	"github.com/lixenwraith/prize-wheel/vmath"
)

// State is the placement lifecycle state
type State uint8

const (
	StateUnresolved State = iota
	StateResolved
)

func (s State) String() string {
	if s == StateResolved {
		return "resolved"
	}
	return "unresolved"
}

// Placement is a resolved anchor position and scale for the model root
type Placement struct {
	Position vmath.Vec3
	Scale    float64
}

// RootFunc reports the model root once the asset has loaded
type RootFunc func() (*scene.Node, bool)

// Sequencer transitions Unresolved -> Resolved exactly once and applies the
// winning placement to the model root exactly once. Safe for the frame loop
// and loader callbacks to race on.
type Sequencer struct {
	mu sync.Mutex

	state     State
	placement Placement
	source    string

	root    RootFunc
	applied bool
}

// NewSequencer creates an unresolved sequencer over the given root lookup
func NewSequencer(root RootFunc) *Sequencer {
	return &Sequencer{root: root}
}

// Resolve offers a placement from a named source. The first offer wins and
// the sequencer tries to apply it immediately; any later offer, including a
// late hit-test racing the timeout fallback, is a no-op returning false.
func (q *Sequencer) Resolve(source string, p Placement) bool {
	q.mu.Lock()
	if q.state == StateResolved {
		q.mu.Unlock()
		return false
	}
	q.state = StateResolved
	q.placement = p
	q.source = source
	q.mu.Unlock()

	q.TryApply()
	return true
}

// TryApply applies the resolved placement to the model root if both exist.
// Idempotent: once applied it stays applied and further calls are no-ops.
// Returns true once application has happened. Callers re-invoke it from the
// loader-done notification and from the poll fallback until it sticks.
func (q *Sequencer) TryApply() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.applied {
		return true
	}
	if q.state != StateResolved {
		return false
	}
	node, ok := q.root()
	if !ok {
		return false
	}

	node.Position = q.placement.Position
	node.RotationY = 0
	node.Scale = q.placement.Scale
	node.Visible = true
	q.applied = true
	return true
}

// State returns the resolution state
func (q *Sequencer) State() State {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.state
}

// Applied reports whether the placement has reached the scene
func (q *Sequencer) Applied() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.applied
}

// Winner returns the resolved placement and the source that won
func (q *Sequencer) Winner() (Placement, string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.state != StateResolved {
		return Placement{}, "", false
	}
	return q.placement, q.source, true
}
