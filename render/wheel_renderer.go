package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/prize-wheel/constants"
	"github.com/lixenwraith/prize-wheel/experience"
	"github.com/lixenwraith/prize-wheel/vmath"
)

// WheelRenderer projects the placed wheel model onto the cell grid: a
// tilted disc of 8 colored wedges, a hub, a pointer above the top wedge,
// the base pedestal, and the reward legend.
type WheelRenderer struct{}

// NewWheelRenderer creates the scene renderer
func NewWheelRenderer() *WheelRenderer {
	return &WheelRenderer{}
}

// segmentColor returns the wedge fill for a segment. Adjacent wedges
// alternate brightness so the spin reads at low color depth.
func segmentColor(i int) tcell.Color {
	value := 0.78
	if i%2 == 1 {
		value = 0.58
	}
	c := colorful.Hsv(float64(i)*constants.SegmentDegrees, 0.68, value)
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func (wr *WheelRenderer) Render(snap experience.Snapshot, buf *Buffer) {
	root := snap.Root
	if root == nil || !root.Visible {
		return
	}

	w, h := buf.Size()
	cx, cy := w/2, (h-2)/2

	// Apparent size from scale and viewer distance; terminal cells are
	// roughly twice as tall as wide, and the disc is drawn foreshortened.
	factor := root.Scale / (1 + math.Abs(root.Position.Z))
	maxRy := (h - 8) / 2
	ry := int(float64(maxRy) * math.Min(factor/3.4, 1))
	if ry < 3 {
		ry = 3
	}
	rx := ry * 2

	segRad := vmath.DegToRad(constants.SegmentDegrees)
	hubStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray)
	rimStyle := tcell.StyleDefault.Background(tcell.NewRGBColor(60, 45, 20))

	for y := cy - ry; y <= cy+ry; y++ {
		for x := cx - rx; x <= cx+rx; x++ {
			nx := float64(x-cx) / float64(rx)
			ny := float64(y-cy) / float64(ry)
			d := nx*nx + ny*ny
			if d > 1 {
				continue
			}
			switch {
			case d > 0.90:
				buf.Set(x, y, ' ', rimStyle)
			case d < 0.015:
				buf.Set(x, y, ' ', hubStyle)
			default:
				// Clockwise screen angle from the top, shifted by the
				// wheel's rotation, picks the wedge under this cell
				screenCW := math.Atan2(nx, -ny)
				seg := int(math.Floor(vmath.WrapAngle(screenCW-snap.Orientation) / segRad))
				seg %= constants.SegmentCount
				buf.Set(x, y, ' ', tcell.StyleDefault.Background(segmentColor(seg)))
			}
		}
	}

	// Pointer above the top wedge
	pointerStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	buf.Set(cx, cy-ry-1, '▼', pointerStyle)

	// Base pedestal
	baseStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for x := cx - rx/3; x <= cx+rx/3; x++ {
		buf.Set(x, cy+ry+1, '▀', baseStyle)
	}

	wr.renderLegend(snap, buf)
}

func (wr *WheelRenderer) renderLegend(snap experience.Snapshot, buf *Buffer) {
	labelStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i := 0; i < constants.SegmentCount; i++ {
		swatch := tcell.StyleDefault.Foreground(segmentColor(i))
		buf.Set(1, 1+i, '■', swatch)
		buf.SetString(3, 1+i, snap.Rewards.Label(i), labelStyle)
	}
}
