// Package input maps terminal events onto the experience's four user
// actions. The mapping is stateless; whether an action is currently
// meaningful is the experience's call (ignored triggers are silent no-ops).
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Action is one user intent
type Action uint8

const (
	ActionNone Action = iota
	// ActionEnter starts the immersive/preview session
	ActionEnter
	// ActionSpin requests a spin
	ActionSpin
	// ActionDismiss closes the reward reveal
	ActionDismiss
	// ActionQuit exits the program
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionEnter:
		return "enter"
	case ActionSpin:
		return "spin"
	case ActionDismiss:
		return "dismiss"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// Map translates a terminal event to an action
func Map(ev tcell.Event) Action {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return ActionNone
	}

	switch key.Key() {
	case tcell.KeyEnter:
		return ActionEnter
	case tcell.KeyEscape:
		return ActionDismiss
	case tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
		switch key.Rune() {
		case ' ':
			return ActionSpin
		case 'q', 'Q':
			return ActionQuit
		}
	}
	return ActionNone
}
