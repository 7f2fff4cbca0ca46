// Package audio plays the experience's two synthesized cues: a short tick
// as wheel segments pass the pointer and a fanfare when the reward is
// revealed. Audio is strictly cosmetic: if the speaker cannot initialize
// the experience runs silent.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRateHz = 44100

// Engine owns the speaker. Construct once at startup; a failed Init leaves
// the engine permanently silent rather than erroring the experience.
type Engine struct {
	sr    beep.SampleRate
	ready bool
}

// NewEngine initializes the speaker. The returned error is informational;
// the engine is usable (silently) either way.
func NewEngine() (*Engine, error) {
	e := &Engine{sr: beep.SampleRate(sampleRateHz)}
	if err := speaker.Init(e.sr, e.sr.N(time.Second/10)); err != nil {
		return e, err
	}
	e.ready = true
	return e, nil
}

// SpinTick plays the segment-pass click
func (e *Engine) SpinTick() {
	e.tone(1320, 18*time.Millisecond)
}

// Fanfare plays the reveal arpeggio
func (e *Engine) Fanfare() {
	if !e.ready {
		return
	}
	notes := []float64{523.25, 659.25, 783.99, 1046.50} // C5 E5 G5 C6
	parts := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		sine, err := generators.SineTone(e.sr, f)
		if err != nil {
			return
		}
		parts = append(parts, beep.Take(e.sr.N(120*time.Millisecond), sine))
	}
	speaker.Play(beep.Seq(parts...))
}

// Close releases the speaker
func (e *Engine) Close() {
	if e.ready {
		speaker.Close()
		e.ready = false
	}
}

func (e *Engine) tone(freq float64, d time.Duration) {
	if !e.ready {
		return
	}
	sine, err := generators.SineTone(e.sr, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(e.sr.N(d), sine))
}
