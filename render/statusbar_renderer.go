package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/prize-wheel/experience"
	"github.com/lixenwraith/prize-wheel/wheel"
)

// StatusBarRenderer draws the title line and the bottom status/help bar
type StatusBarRenderer struct{}

// NewStatusBarRenderer creates the status bar renderer
func NewStatusBarRenderer() *StatusBarRenderer {
	return &StatusBarRenderer{}
}

func (sr *StatusBarRenderer) Render(snap experience.Snapshot, buf *Buffer) {
	w, h := buf.Size()
	if h < 2 {
		return
	}

	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	barStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkBlue)
	hintStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorDarkBlue)

	title := "RULETA DE PREMIOS"
	buf.SetString((w-len([]rune(title)))/2, 0, title, titleStyle)

	for x := 0; x < w; x++ {
		buf.Set(x, h-1, ' ', barStyle)
	}

	status := fmt.Sprintf(" %s | %s | %s", snap.Mode, snap.Placement, snap.Phase)
	buf.SetString(0, h-1, status, barStyle)

	hint := sr.hint(snap)
	buf.SetString(w-len([]rune(hint))-1, h-1, hint, hintStyle)
}

func (sr *StatusBarRenderer) hint(snap experience.Snapshot) string {
	switch {
	case !snap.Entered:
		return "[ENTER] Iniciar  [Q] Salir"
	case snap.Revealed:
		return "[ESC] Cerrar  [Q] Salir"
	case snap.SpinAllowed:
		return "[ESPACIO] Girar  [Q] Salir"
	case snap.Phase == wheel.PhaseSpinning:
		return "Girando..."
	default:
		return "[Q] Salir"
	}
}
