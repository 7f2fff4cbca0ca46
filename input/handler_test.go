package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func TestMap(t *testing.T) {
	tests := []struct {
		name string
		ev   tcell.Event
		want Action
	}{
		{"enter", key(tcell.KeyEnter, 0), ActionEnter},
		{"space spins", key(tcell.KeyRune, ' '), ActionSpin},
		{"escape dismisses", key(tcell.KeyEscape, 0), ActionDismiss},
		{"q quits", key(tcell.KeyRune, 'q'), ActionQuit},
		{"Q quits", key(tcell.KeyRune, 'Q'), ActionQuit},
		{"ctrl-c quits", key(tcell.KeyCtrlC, 0), ActionQuit},
		{"other rune ignored", key(tcell.KeyRune, 'x'), ActionNone},
		{"other key ignored", key(tcell.KeyTab, 0), ActionNone},
		{"resize ignored", tcell.NewEventResize(80, 24), ActionNone},
	}
	for _, tt := range tests {
		if got := Map(tt.ev); got != tt.want {
			t.Errorf("%s: Map = %v, want %v", tt.name, got, tt.want)
		}
	}
}
