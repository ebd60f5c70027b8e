// Package input implements quill's keyboard handling. Keys resolve to
// actions through the user-configurable keybind registry, and actions
// dispatch to handler functions.
package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/dodorz/quill/internal/app"
)

// HandleInput is the main input coordinator that routes messages to the
// appropriate handlers.
func HandleInput(msg tea.Msg, a *app.App) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return HandleKeyPress(msg, a)
	case tea.MouseWheelMsg:
		return handleMouseWheel(msg, a)
	default:
		return a, nil
	}
}

// HandleKeyPress resolves a key press to an action and dispatches it.
func HandleKeyPress(msg tea.KeyPressMsg, a *app.App) (tea.Model, tea.Cmd) {
	key := msg.String()

	// The help overlay intercepts everything except its own toggles.
	if a.ShowHelp {
		switch a.KeybindRegistry.ActionFor(key) {
		case "toggle_help", "quit":
		default:
			if key == "esc" {
				a.ShowHelp = false
				return a, nil
			}
			return a, nil
		}
	}

	action := a.KeybindRegistry.ActionFor(key)
	if action == "" {
		return a, nil
	}
	return GetDispatcher().Dispatch(action, msg, a)
}

// handleMouseWheel scrolls the document.
func handleMouseWheel(msg tea.MouseWheelMsg, a *app.App) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	switch mouse.Button {
	case tea.MouseWheelUp:
		a.ScrollBy(-3)
	case tea.MouseWheelDown:
		a.ScrollBy(3)
	}
	return a, nil
}
