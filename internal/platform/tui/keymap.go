package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/apetrov-dev/flappy-tui/internal/core"
)

// mapKey translates a key press to a game action.
// Returns ActionNone for keys the game does not use.
func mapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case " ", "up", "w":
		return core.ActionFlap
	case "p", "enter":
		return core.ActionStart
	case "q", "ctrl+c", "esc":
		return core.ActionQuit
	}
	return core.ActionNone
}
