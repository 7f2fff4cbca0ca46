// Package experience orchestrates one prize-wheel run: asset loading,
// session entry, placement resolution, the spin cycle, and the reward
// reveal. Everything advances from a single per-frame Update call; waits
// are expressed as scheduler tasks or next-frame re-checks, never blocking.
package experience

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/prize-wheel/constants"
	"github.com/lixenwraith/prize-wheel/engine"
	"github.com/lixenwraith/prize-wheel/placement"
	"github.com/lixenwraith/prize-wheel/scene"
	"github.com/lixenwraith/prize-wheel/session"
	"github.com/lixenwraith/prize-wheel/vmath"
	"github.com/lixenwraith/prize-wheel/wheel"
)

// Cues is the audio surface the experience drives. A nil Cues is valid and
// silent.
type Cues interface {
	SpinTick()
	Fanfare()
}

// Config selects the variant and its tuning
type Config struct {
	Mode    session.Mode
	Rewards wheel.RewardTable

	// Requested forces the reward segment (the external rewardId input);
	// wheel.NoRequest selects randomly
	Requested int

	Spin        wheel.Params
	RevealDelay time.Duration
}

// DefaultConfig returns the canonical tuning for a variant: the
// surface-anchored variant spins 10 turns and permits a single spin; the
// preview variants spin 5 turns and re-arm after dismissal.
func DefaultConfig(mode session.Mode) Config {
	spin := wheel.DefaultParams()
	if mode == session.ModeSurfaceAnchored {
		spin.Revolutions = constants.RevolutionsAnchored
		spin.SingleSpin = true
	}
	return Config{
		Mode:        mode,
		Rewards:     wheel.DefaultRewards,
		Requested:   wheel.NoRequest,
		Spin:        spin,
		RevealDelay: constants.RevealDelay,
	}
}

// Experience is the per-run state machine aggregate. All methods run on the
// frame loop goroutine.
type Experience struct {
	cfg   Config
	clock engine.Clock
	sched *engine.Scheduler
	rng   *rand.Rand
	cues  Cues

	sess    *session.Manager
	loader  *scene.Loader
	seq     *placement.Sequencer
	spinner *wheel.Spinner

	loadDone    <-chan struct{}
	root        *scene.Node
	spinnerNode *scene.Node

	pollTask    *engine.Task
	timeoutTask *engine.Task
	revealTask  *engine.Task

	revealed   bool
	revealText string

	lastSegment int
	frame       uint64
	tornDown    bool
}

// Snapshot is a per-frame copy of everything the renderers need
type Snapshot struct {
	Mode        session.Mode
	Entered     bool
	Placement   placement.State
	Applied     bool
	Phase       wheel.Phase
	Orientation float64
	Root        *scene.Node
	Rewards     wheel.RewardTable
	Revealed    bool
	RevealText  string
	SpinAllowed bool
	Frame       uint64
}

// New wires an experience for the given variant. cues may be nil.
func New(cfg Config, clock engine.Clock, rng *rand.Rand, cues Cues) *Experience {
	e := &Experience{
		cfg:     cfg,
		clock:   clock,
		sched:   engine.NewScheduler(clock),
		rng:     rng,
		cues:    cues,
		sess:    session.NewManager(cfg.Mode, clock, rng),
		loader:  scene.NewLoader(),
		spinner: wheel.NewSpinner(cfg.Spin, rng),
	}
	e.seq = placement.NewSequencer(func() (*scene.Node, bool) {
		return e.loader.Get(scene.ModelPrizeWheel)
	})
	return e
}

// Start begins the asynchronous asset load and arms the placement-apply
// poll. The poll is the portability fallback; the loader's done channel is
// the primary readiness signal, checked every frame in Update.
func (e *Experience) Start() error {
	done, err := e.loader.Load(scene.ModelPrizeWheel)
	if err != nil {
		return err
	}
	e.loadDone = done
	e.pollTask = e.sched.Every(constants.PlacementPollInterval, func() {
		e.seq.TryApply()
	})
	return nil
}

// EnterSession starts the immersive/preview session. The fixed-offset and
// desktop variants resolve placement immediately; the surface variant
// starts the detection race against the timeout fallback.
func (e *Experience) EnterSession() {
	if !e.sess.Enter() {
		return
	}
	switch e.cfg.Mode {
	case session.ModeFixedOffset:
		e.seq.Resolve(placement.SourceFixed, placement.FixedOffset())
	case session.ModeDesktopPreview:
		e.seq.Resolve(placement.SourceOrigin, placement.DesktopOrigin())
	case session.ModeSurfaceAnchored:
		e.timeoutTask = e.sched.After(constants.SurfaceDetectTimeout, func() {
			if e.seq.Resolve(placement.SourceTimeout, placement.TimeoutFallback()) {
				log.Printf("surface detection timed out, using fallback placement")
			}
		})
	}
}

// TriggerSpin requests a spin. Silently ignored before the session has
// started, before the rotating part is discovered and placed, while a spin
// is in flight, during the pre-reveal pause, while the reveal is up, and
// after a single-spin variant has settled.
func (e *Experience) TriggerSpin() bool {
	if !e.sess.Entered() || e.spinnerNode == nil || !e.seq.Applied() || e.revealed || e.revealTask != nil {
		return false
	}
	_, ok := e.spinner.Trigger(e.cfg.Requested)
	if ok {
		e.lastSegment = e.currentSegment()
	}
	return ok
}

// Dismiss closes the reveal overlay. Preview variants re-arm for another
// spin; the single-spin variant stays settled.
func (e *Experience) Dismiss() bool {
	if !e.revealed {
		return false
	}
	e.revealed = false
	e.spinner.Rearm()
	return true
}

// Update advances everything one frame
func (e *Experience) Update() {
	if e.tornDown {
		return
	}
	e.frame++

	// Asset readiness: bind the model on the frame the load lands
	if e.root == nil && e.loadDone != nil {
		select {
		case <-e.loadDone:
			e.bindModel()
		default:
		}
	}

	e.sched.Tick()

	// First non-empty hit-test result wins placement for the surface
	// variant; everything after resolution is discarded by the sequencer
	if e.sess.Entered() && e.seq.State() == placement.StateUnresolved {
		placement.ConsumeHits(e.seq, e.sess.PollHits(), nil)
	}

	if e.seq.Applied() {
		e.stopPlacementTasks()
	}

	ev := e.spinner.Advance()
	if e.spinnerNode != nil {
		e.spinnerNode.RotationY = e.spinner.Orientation()
	}
	if e.spinner.Phase() == wheel.PhaseSpinning {
		e.playSegmentTicks()
	}

	if ev == wheel.EventSettled {
		reward, _ := e.spinner.Reward()
		text := e.cfg.Rewards.Label(reward)
		// The pending task also locks out re-triggers until the overlay
		// is up, so the reveal always matches the pose on screen
		e.revealTask = e.sched.After(e.cfg.RevealDelay, func() {
			e.revealTask = nil
			e.revealed = true
			e.revealText = text
			if e.cues != nil {
				e.cues.Fanfare()
			}
		})
	}
}

// Teardown cancels all pending timers. The experience goes inert: further
// Update calls do nothing, so nothing writes into a disposed scene.
func (e *Experience) Teardown() {
	e.sched.CancelAll()
	e.tornDown = true
}

// Session exposes the owned session manager
func (e *Experience) Session() *session.Manager {
	return e.sess
}

// Revealed returns the reward text once the reveal has fired
func (e *Experience) Revealed() (string, bool) {
	return e.revealText, e.revealed
}

// Snapshot copies the render-facing state for this frame
func (e *Experience) Snapshot() Snapshot {
	return Snapshot{
		Mode:        e.cfg.Mode,
		Entered:     e.sess.Entered(),
		Placement:   e.seq.State(),
		Applied:     e.seq.Applied(),
		Phase:       e.spinner.Phase(),
		Orientation: e.spinner.Orientation(),
		Root:        e.root,
		Rewards:     e.cfg.Rewards,
		Revealed:    e.revealed,
		RevealText:  e.revealText,
		SpinAllowed: e.spinAllowed(),
		Frame:       e.frame,
	}
}

func (e *Experience) bindModel() {
	root, ok := e.loader.Get(scene.ModelPrizeWheel)
	if !ok {
		return
	}
	e.root = root

	spinnerNode, found := scene.FindSpinner(root)
	if !found {
		log.Printf("model has no wheel part, spinning the whole model")
	}
	e.spinnerNode = spinnerNode

	// A placement resolved while the asset was loading applies now
	e.seq.TryApply()
}

func (e *Experience) stopPlacementTasks() {
	if e.pollTask != nil {
		e.sched.Cancel(e.pollTask)
		e.pollTask = nil
	}
	if e.timeoutTask != nil {
		e.sched.Cancel(e.timeoutTask)
		e.timeoutTask = nil
	}
}

func (e *Experience) spinAllowed() bool {
	return e.sess.Entered() &&
		e.spinnerNode != nil &&
		e.seq.Applied() &&
		!e.revealed &&
		e.revealTask == nil &&
		!e.spinner.Exhausted() &&
		e.spinner.Phase() != wheel.PhaseSpinning
}

func (e *Experience) currentSegment() int {
	seg := vmath.WrapAngle(e.spinner.Orientation()) / vmath.DegToRad(constants.SegmentDegrees)
	return int(math.Floor(seg)) % constants.SegmentCount
}

func (e *Experience) playSegmentTicks() {
	seg := e.currentSegment()
	if seg != e.lastSegment {
		e.lastSegment = seg
		if e.cues != nil {
			e.cues.SpinTick()
		}
	}
}
