package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/prize-wheel/experience"
)

// OverlayRenderer draws the one-shot reward reveal dialog after the wheel
// settles
type OverlayRenderer struct{}

// NewOverlayRenderer creates the overlay renderer
func NewOverlayRenderer() *OverlayRenderer {
	return &OverlayRenderer{}
}

func (or *OverlayRenderer) Render(snap experience.Snapshot, buf *Buffer) {
	if !snap.Revealed {
		return
	}

	lines := []string{
		"¡FELICIDADES!",
		"",
		snap.RevealText,
		"",
		"[ESC] Cerrar",
	}

	width := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > width {
			width = n
		}
	}
	width += 6
	height := len(lines) + 2

	w, h := buf.Size()
	x0 := (w - width) / 2
	y0 := (h - height) / 2

	border := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	fill := tcell.StyleDefault
	title := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	prize := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	hint := tcell.StyleDefault.Foreground(tcell.ColorGray)

	for y := y0; y < y0+height; y++ {
		for x := x0; x < x0+width; x++ {
			r := ' '
			style := fill
			switch {
			case y == y0 && x == x0:
				r, style = '╔', border
			case y == y0 && x == x0+width-1:
				r, style = '╗', border
			case y == y0+height-1 && x == x0:
				r, style = '╚', border
			case y == y0+height-1 && x == x0+width-1:
				r, style = '╝', border
			case y == y0 || y == y0+height-1:
				r, style = '═', border
			case x == x0 || x == x0+width-1:
				r, style = '║', border
			}
			buf.Set(x, y, r, style)
		}
	}

	for i, l := range lines {
		style := fill
		switch i {
		case 0:
			style = title
		case 2:
			style = prize
		case 4:
			style = hint
		}
		buf.SetString(x0+(width-len([]rune(l)))/2, y0+1+i, l, style)
	}
}
