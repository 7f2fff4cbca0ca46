package experience

import (
	"math/rand"
	"testing"
	"time"

	"github.com/lixenwraith/prize-wheel/constants"
	"github.com/lixenwraith/prize-wheel/engine"
	"github.com/lixenwraith/prize-wheel/placement"
	"github.com/lixenwraith/prize-wheel/session"
	"github.com/lixenwraith/prize-wheel/wheel"
)

// countingCues records cue playback without a speaker
type countingCues struct {
	ticks    int
	fanfares int
}

func (c *countingCues) SpinTick() { c.ticks++ }
func (c *countingCues) Fanfare()  { c.fanfares++ }

type harness struct {
	t     *testing.T
	clock *engine.MockClock
	exp   *Experience
	cues  *countingCues
}

func newHarness(t *testing.T, cfg Config, seed int64) *harness {
	t.Helper()
	clock := engine.NewMockClock(time.Unix(1000, 0))
	cues := &countingCues{}
	exp := New(cfg, clock, rand.New(rand.NewSource(seed)), cues)
	if err := exp.Start(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(exp.Teardown)
	return &harness{t: t, clock: clock, exp: exp, cues: cues}
}

// frame advances the mock clock one frame interval and runs Update
func (h *harness) frame() {
	h.clock.Advance(constants.FrameUpdateInterval)
	h.exp.Update()
}

// waitModel runs frames until the asynchronously built model is bound
func (h *harness) waitModel() {
	h.t.Helper()
	for i := 0; i < 1000; i++ {
		h.frame()
		if h.exp.Snapshot().Root != nil {
			return
		}
		time.Sleep(time.Millisecond)
	}
	h.t.Fatal("model never loaded")
}

// spinToSettle triggers a spin and frames until the wheel settles
func (h *harness) spinToSettle() {
	h.t.Helper()
	if !h.exp.TriggerSpin() {
		h.t.Fatal("spin rejected")
	}
	for i := 0; i < 1000; i++ {
		h.frame()
		if h.exp.Snapshot().Phase == wheel.PhaseSettled {
			return
		}
	}
	h.t.Fatal("spin never settled")
}

// waitReveal frames past the reveal delay until the overlay is up
func (h *harness) waitReveal() string {
	h.t.Helper()
	for i := 0; i < 100; i++ {
		h.frame()
		if text, ok := h.exp.Revealed(); ok {
			return text
		}
	}
	h.t.Fatal("reveal never fired")
	return ""
}

func TestForcedRewardEndToEnd(t *testing.T) {
	// rewardId=3 all the way through: enter, spin, settle, reveal
	cfg := DefaultConfig(session.ModeDesktopPreview)
	idx, ok := wheel.ParseRewardID("3")
	if !ok {
		t.Fatal("rewardId=3 rejected")
	}
	cfg.Requested = idx

	h := newHarness(t, cfg, 99)
	h.exp.EnterSession()
	h.waitModel()
	h.spinToSettle()

	if _, up := h.exp.Revealed(); up {
		t.Fatal("reveal fired before the dramatic pause")
	}
	text := h.waitReveal()
	if text != "Tarjeta de regalo $200" {
		t.Errorf("revealed %q, want table entry 3", text)
	}
	if h.cues.fanfares != 1 {
		t.Errorf("fanfares = %d, want 1", h.cues.fanfares)
	}
	if h.cues.ticks == 0 {
		t.Error("no segment ticks during a 5-revolution spin")
	}
}

func TestSpinRejectedBeforeModelLoads(t *testing.T) {
	h := newHarness(t, DefaultConfig(session.ModeDesktopPreview), 1)
	h.exp.EnterSession()
	// No waitModel: the rotating reference may not exist yet. The trigger
	// must be a silent no-op either way on the very first frames.
	if h.exp.Snapshot().Root == nil && h.exp.TriggerSpin() {
		t.Error("spin accepted before the rotating reference existed")
	}
}

func TestSpinRejectedBeforeSessionEntry(t *testing.T) {
	h := newHarness(t, DefaultConfig(session.ModeDesktopPreview), 1)
	h.waitModel()
	if h.exp.TriggerSpin() {
		t.Error("spin accepted before session entry")
	}
}

func TestSingleSpinVariantExhausts(t *testing.T) {
	cfg := DefaultConfig(session.ModeSurfaceAnchored)
	cfg.Requested = 5
	h := newHarness(t, cfg, 3)
	h.exp.Session().SetScanDelay(time.Second)

	h.exp.EnterSession()
	h.waitModel()

	// Frame past the scan delay so the surface resolves placement
	for i := 0; i < 60; i++ {
		h.frame()
	}
	if !h.exp.Snapshot().Applied {
		t.Fatal("placement not applied after surface detection")
	}

	h.spinToSettle()
	h.waitReveal()

	if h.exp.TriggerSpin() {
		t.Error("spin accepted while reveal is up")
	}
	if !h.exp.Dismiss() {
		t.Fatal("dismiss rejected")
	}
	// Dismiss closes the overlay but never re-opens spinning
	if h.exp.TriggerSpin() {
		t.Error("single-spin variant re-spun after dismissal")
	}
	if snap := h.exp.Snapshot(); snap.SpinAllowed {
		t.Error("spin affordance still present after exhaustion")
	}
}

func TestPreviewVariantRepeatSpins(t *testing.T) {
	h := newHarness(t, DefaultConfig(session.ModeDesktopPreview), 4)
	h.exp.EnterSession()
	h.waitModel()

	for run := 0; run < 3; run++ {
		h.spinToSettle()
		h.waitReveal()
		if !h.exp.Dismiss() {
			t.Fatalf("run %d: dismiss rejected", run)
		}
		if !h.exp.Snapshot().SpinAllowed {
			t.Fatalf("run %d: not re-armed after dismissal", run)
		}
	}
}

func TestSpinRejectedDuringRevealPause(t *testing.T) {
	cfg := DefaultConfig(session.ModeDesktopPreview)
	cfg.Requested = 1
	h := newHarness(t, cfg, 9)
	h.exp.EnterSession()
	h.waitModel()
	h.spinToSettle()

	// The dramatic pause is running; a re-trigger here must be a no-op,
	// or the scheduled reveal would fire mid-flight with stale text
	if h.exp.TriggerSpin() {
		t.Fatal("spin accepted during the reveal pause")
	}
	if h.exp.Snapshot().SpinAllowed {
		t.Error("spin affordance present during the reveal pause")
	}

	text := h.waitReveal()
	if text != wheel.DefaultRewards.Label(1) {
		t.Errorf("revealed %q, want table entry 1", text)
	}
	if h.exp.Snapshot().Phase != wheel.PhaseSettled {
		t.Error("wheel left the settled pose during the pause")
	}
	if h.cues.fanfares != 1 {
		t.Errorf("fanfares = %d, want 1", h.cues.fanfares)
	}

	// Dismissal re-arms the preview variant as usual
	if !h.exp.Dismiss() {
		t.Fatal("dismiss rejected")
	}
	if !h.exp.TriggerSpin() {
		t.Error("not re-armed after dismissal")
	}
}

func TestSurfaceTimeoutFallback(t *testing.T) {
	h := newHarness(t, DefaultConfig(session.ModeSurfaceAnchored), 5)
	// Detection slower than the budget: the timeout must win
	h.exp.Session().SetScanDelay(10 * time.Second)

	h.exp.EnterSession()
	h.waitModel()

	deadline := constants.SurfaceDetectTimeout + time.Second
	for elapsed := time.Duration(0); elapsed < deadline; elapsed += constants.FrameUpdateInterval {
		h.frame()
	}

	snap := h.exp.Snapshot()
	if snap.Placement != placement.StateResolved || !snap.Applied {
		t.Fatal("experience stuck waiting for a surface")
	}
	want := placement.TimeoutFallback().Position
	if snap.Root.Position != want {
		t.Errorf("root at %v, want timeout fallback %v", snap.Root.Position, want)
	}

	// The detection eventually reporting a plane must change nothing
	for i := 0; i < 300; i++ {
		h.frame()
	}
	if h.exp.Snapshot().Root.Position != want {
		t.Error("late surface hit moved an already-placed wheel")
	}
}

func TestSurfaceDetectionBeatsTimeout(t *testing.T) {
	h := newHarness(t, DefaultConfig(session.ModeSurfaceAnchored), 6)
	h.exp.Session().SetScanDelay(time.Second)

	h.exp.EnterSession()
	h.waitModel()

	for i := 0; i < 60; i++ { // ~2s of frames
		h.frame()
	}
	snap := h.exp.Snapshot()
	if !snap.Applied {
		t.Fatal("placement not applied after detection")
	}
	pos := snap.Root.Position
	if pos == placement.TimeoutFallback().Position {
		t.Fatal("timeout fallback won despite early detection")
	}
	if snap.Root.Scale != constants.ScaleSurfaceAnchored {
		t.Errorf("scale = %v", snap.Root.Scale)
	}

	// Frame past the timeout deadline: the cancelled fallback must not fire
	for elapsed := time.Duration(0); elapsed < constants.SurfaceDetectTimeout; elapsed += constants.FrameUpdateInterval {
		h.frame()
	}
	if h.exp.Snapshot().Root.Position != pos {
		t.Error("timeout fallback re-placed the wheel")
	}
}

func TestTeardownStopsTimers(t *testing.T) {
	h := newHarness(t, DefaultConfig(session.ModeSurfaceAnchored), 7)
	h.exp.Session().SetScanDelay(time.Hour)
	h.exp.EnterSession()
	h.waitModel()

	h.exp.Teardown()
	pos := h.exp.Snapshot().Root.Position

	// Frames after teardown are inert: no timeout placement, no spin
	for i := 0; i < 200; i++ {
		h.clock.Advance(constants.FrameUpdateInterval)
		h.exp.Update()
	}
	snap := h.exp.Snapshot()
	if snap.Root.Position != pos || snap.Applied {
		t.Error("torn-down experience still mutated the scene")
	}
}

func TestRevealDistributionUniform(t *testing.T) {
	const runs = 1000
	cfg := DefaultConfig(session.ModeDesktopPreview)
	h := newHarness(t, cfg, 8)
	h.exp.EnterSession()
	h.waitModel()

	counts := make(map[string]int, constants.SegmentCount)
	for run := 0; run < runs; run++ {
		h.spinToSettle()
		counts[h.waitReveal()]++
		if !h.exp.Dismiss() {
			t.Fatalf("run %d: dismiss rejected", run)
		}
	}

	if len(counts) != constants.SegmentCount {
		t.Fatalf("only %d distinct rewards revealed", len(counts))
	}
	expected := float64(runs) / constants.SegmentCount
	chi2 := 0.0
	for _, c := range counts {
		d := float64(c) - expected
		chi2 += d * d / expected
	}
	// df=7 critical value at p=0.001
	if chi2 > 24.322 {
		t.Errorf("reveal distribution not uniform: chi2 = %v, counts = %v", chi2, counts)
	}
}
