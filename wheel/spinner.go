package wheel

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/prize-wheel/constants"
	"github.com/lixenwraith/prize-wheel/vmath"
)

// Phase is the spin state machine phase
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseSpinning
	PhaseSettled
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSpinning:
		return "spinning"
	case PhaseSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// Event is emitted by Advance when the phase changes
type Event uint8

const (
	EventNone Event = iota
	// EventSettled fires exactly once per spin, on the frame the wheel
	// snaps onto its target
	EventSettled
)

// Params tunes one spin cycle
type Params struct {
	// Revolutions is the cosmetic full-turn count added before the segment
	// angle. Any count >= 1 lands on the same segment (a full turn is a
	// no-op modulo 2π).
	Revolutions int

	// Direction is the rotation sign of the revolution term, -1 for
	// clockwise
	Direction float64

	// Easing constants, see constants package for the reference values
	MinStep     float64
	DecayFactor float64
	SnapEpsilon float64

	// SingleSpin keeps the machine in Settled permanently after one spin.
	// When false, Settled re-arms and the wheel can be spun again.
	SingleSpin bool
}

// DefaultParams returns the preview-variant tuning
func DefaultParams() Params {
	return Params{
		Revolutions: constants.RevolutionsPreview,
		Direction:   constants.SpinDirection,
		MinStep:     constants.SpinMinStep,
		DecayFactor: constants.SpinDecayFactor,
		SnapEpsilon: constants.SnapEpsilon,
	}
}

// Spinner drives one spin-and-settle cycle per trigger. It owns the single
// orientation scalar; the caller copies it onto the rotating scene node once
// per frame. All methods are single-goroutine, called from the frame loop.
type Spinner struct {
	params Params
	rng    *rand.Rand

	phase   Phase
	current float64 // orientation in radians
	target  float64 // immutable while a spin is in flight

	reward    int
	hasReward bool
}

// NewSpinner creates an idle spinner at orientation zero
func NewSpinner(params Params, rng *rand.Rand) *Spinner {
	return &Spinner{
		params: params,
		rng:    rng,
		reward: NoRequest,
	}
}

// Phase returns the current state machine phase
func (s *Spinner) Phase() Phase {
	return s.phase
}

// Orientation returns the current rotation in radians
func (s *Spinner) Orientation() float64 {
	return s.current
}

// Target returns the destination angle of the in-flight or last spin
func (s *Spinner) Target() float64 {
	return s.target
}

// Reward returns the segment chosen for the in-flight or last spin
func (s *Spinner) Reward() (int, bool) {
	return s.reward, s.hasReward
}

// Exhausted reports whether a single-spin machine has already settled
func (s *Spinner) Exhausted() bool {
	return s.params.SingleSpin && s.phase == PhaseSettled
}

// Trigger starts a spin toward the requested segment (or a random one when
// requested is NoRequest). The trigger is a silent no-op while a spin is in
// flight and after a single-spin machine has settled; no state is mutated in
// either case.
func (s *Spinner) Trigger(requested int) (int, bool) {
	if s.phase == PhaseSpinning || s.Exhausted() {
		return NoRequest, false
	}

	index := PickIndex(s.rng, requested)

	// The revolution term only adds drama; the segment term decides where
	// the wheel rests.
	s.target = s.current +
		s.params.Direction*float64(s.params.Revolutions)*vmath.TwoPi +
		AngleForIndex(index)
	s.reward = index
	s.hasReward = true
	s.phase = PhaseSpinning

	return index, true
}

// Advance steps the easing once. Called once per rendered frame. The step is
// an exponential approach with a floor, clamped so the residual never
// overshoots: |target-current| decreases strictly monotonically to exactly
// zero in a bounded number of frames.
func (s *Spinner) Advance() Event {
	if s.phase != PhaseSpinning {
		return EventNone
	}

	remaining := s.target - s.current
	if math.Abs(remaining) > s.params.SnapEpsilon {
		step := math.Abs(remaining) * s.params.DecayFactor
		if step < s.params.MinStep {
			step = s.params.MinStep
		}
		if step > math.Abs(remaining) {
			step = math.Abs(remaining)
		}
		if remaining < 0 {
			step = -step
		}
		s.current += step
		return EventNone
	}

	// Snap out the residual so the pointer rests exactly on the segment
	s.current = s.target
	s.phase = PhaseSettled
	return EventSettled
}

// Rearm returns a settled multi-spin machine to Idle. No-op in any other
// phase and under the single-spin policy.
func (s *Spinner) Rearm() {
	if s.phase == PhaseSettled && !s.params.SingleSpin {
		s.phase = PhaseIdle
	}
}
