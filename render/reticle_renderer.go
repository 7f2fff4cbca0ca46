package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/prize-wheel/experience"
	"github.com/lixenwraith/prize-wheel/placement"
	"github.com/lixenwraith/prize-wheel/session"
)

// ReticleRenderer draws the pulsing scan reticle while the surface-anchored
// variant is still waiting for a plane
type ReticleRenderer struct{}

// NewReticleRenderer creates the reticle renderer
func NewReticleRenderer() *ReticleRenderer {
	return &ReticleRenderer{}
}

func (rr *ReticleRenderer) Render(snap experience.Snapshot, buf *Buffer) {
	if snap.Mode != session.ModeSurfaceAnchored || !snap.Entered {
		return
	}
	if snap.Placement == placement.StateResolved {
		return
	}

	w, h := buf.Size()
	cx, cy := w/2, (h-2)/2

	// Breathing pulse, one cycle per ~second of frames
	pulse := 5 + int(2*math.Sin(float64(snap.Frame)*0.2))
	style := tcell.StyleDefault.Foreground(tcell.ColorAqua)

	const points = 24
	for i := 0; i < points; i++ {
		if i%2 == 1 {
			continue // dashed ring
		}
		a := float64(i) / points * 2 * math.Pi
		x := cx + int(math.Round(math.Cos(a)*float64(pulse*2)))
		y := cy + int(math.Round(math.Sin(a)*float64(pulse)))
		buf.Set(x, y, '·', style)
	}
	buf.Set(cx, cy, '+', style.Bold(true))

	msg := "Buscando superficie..."
	buf.SetString(cx-len([]rune(msg))/2, cy+pulse+2, msg, style)
}
