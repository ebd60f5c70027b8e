package app

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// TickerMsg is a periodic tick used to expire notifications.
type TickerMsg time.Time

// InputHandler handles input messages. The handler is registered by the
// input package so Update can delegate without a circular dependency.
type InputHandler func(msg tea.Msg, a *App) (tea.Model, tea.Cmd)

var inputHandler InputHandler

// SetInputHandler registers the input handler function. It must be called
// during initialization, before the update loop runs.
func SetInputHandler(handler InputHandler) {
	inputHandler = handler
}

// TickCmd schedules a notification-expiry tick.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second/4, func(t time.Time) tea.Msg {
		return TickerMsg(t)
	})
}

// Init starts the model. The expiry ticker only runs while notifications
// are on screen, so there is nothing to schedule up front.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update handles all incoming messages and state transitions.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickerMsg:
		a.CleanupNotifications()
		if len(a.Notifications) > 0 {
			return a, TickCmd()
		}
		return a, nil

	case tea.KeyPressMsg, tea.MouseWheelMsg:
		hadNotifications := len(a.Notifications) > 0
		if inputHandler != nil {
			model, cmd := inputHandler(msg, a)
			// A fresh notification needs the expiry ticker running.
			if !hadNotifications && len(a.Notifications) > 0 {
				return model, tea.Batch(cmd, TickCmd())
			}
			return model, cmd
		}
		return a, nil

	case tea.WindowSizeMsg:
		// Size changes cover both window resizes and font metric
		// changes; the terminal reports either as a new cell grid.
		a.Width = msg.Width
		a.Height = msg.Height
		hadNotifications := len(a.Notifications) > 0
		a.RecalculateLayout()
		a.ClampOffset()
		if !hadNotifications && len(a.Notifications) > 0 {
			return a, TickCmd()
		}
		return a, nil
	}

	return a, nil
}
