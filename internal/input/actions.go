package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/dodorz/quill/internal/app"
)

// ActionHandler is a function that handles a specific action
type ActionHandler func(_ tea.KeyPressMsg, a *app.App) (*app.App, tea.Cmd)

// ActionDispatcher maps action names to handler functions
type ActionDispatcher struct {
	handlers map[string]ActionHandler
}

// NewActionDispatcher creates a new action dispatcher with all handlers registered
func NewActionDispatcher() *ActionDispatcher {
	d := &ActionDispatcher{
		handlers: make(map[string]ActionHandler),
	}
	d.registerHandlers()
	return d
}

// registerHandlers registers all action handlers
func (d *ActionDispatcher) registerHandlers() {
	// Navigation actions
	d.Register("scroll_up", handleScrollUp)
	d.Register("scroll_down", handleScrollDown)
	d.Register("half_page_up", handleHalfPageUp)
	d.Register("half_page_down", handleHalfPageDown)
	d.Register("go_top", handleGoTop)
	d.Register("go_bottom", handleGoBottom)

	// Body width actions
	d.Register("widen", handleWiden)
	d.Register("narrow", handleNarrow)
	d.Register("reset_width", handleResetWidth)

	// Mode control actions
	d.Register("toggle_focus", handleToggleFocus)
	d.Register("toggle_status_line", handleToggleStatusLine)
	d.Register("toggle_help", handleToggleHelp)
	d.Register("quit", handleQuit)
}

// Register adds an action handler
func (d *ActionDispatcher) Register(action string, handler ActionHandler) {
	d.handlers[action] = handler
}

// Dispatch executes the handler for a given action
func (d *ActionDispatcher) Dispatch(action string, msg tea.KeyPressMsg, a *app.App) (*app.App, tea.Cmd) {
	if handler, ok := d.handlers[action]; ok {
		return handler(msg, a)
	}
	return a, nil
}

// HasAction checks if an action is registered
func (d *ActionDispatcher) HasAction(action string) bool {
	_, ok := d.handlers[action]
	return ok
}

// Global action dispatcher instance
var globalDispatcher = NewActionDispatcher()

// GetDispatcher returns the global action dispatcher
func GetDispatcher() *ActionDispatcher {
	return globalDispatcher
}

// ============================================================================
// Navigation Action Handlers
// ============================================================================

func handleScrollUp(_ tea.KeyPressMsg, a *app.App) (*app.App, tea.Cmd) {
	a.ScrollBy(-1)
	return a, nil
}

func handleScrollDown(_ tea.KeyPressMsg, a *app.App) (*app.App, tea.Cmd) {
	a.ScrollBy(1)
	return a, nil
}

func handleHalfPageUp(_ tea.KeyPressMsg, a *app.App) (*app.App, tea.Cmd) {
	a.ScrollBy(-a.HalfPage())
	return a, nil
}

func handleHalfPageDown(_ tea.KeyPressMsg, a *app.App) (*app.App, tea.Cmd) {
	a.ScrollBy(a.HalfPage())
	return a, nil
}

func handleGoTop(_ tea.KeyPressMsg, a *app.App) (*app.App, tea.Cmd) {
	a.GoTop()
	return a, nil
}

func handleGoBottom(_ tea.KeyPressMsg, a *app.App) (*app.App, tea.Cmd) {
	a.GoBottom()
	return a, nil
}

// ============================================================================
// Body Width Action Handlers
// ============================================================================

func handleWiden(_ tea.KeyPressMsg, a *app.App) (*app.App, tea.Cmd) {
	a.Widen()
	return a, nil
}

func handleNarrow(_ tea.KeyPressMsg, a *app.App) (*app.App, tea.Cmd) {
	a.Narrow()
	return a, nil
}

func handleResetWidth(_ tea.KeyPressMsg, a *app.App) (*app.App, tea.Cmd) {
	a.ResetWidth()
	return a, nil
}

// ============================================================================
// Mode Control Action Handlers
// ============================================================================

func handleToggleFocus(_ tea.KeyPressMsg, a *app.App) (*app.App, tea.Cmd) {
	a.ToggleFocus()
	return a, nil
}

func handleToggleStatusLine(_ tea.KeyPressMsg, a *app.App) (*app.App, tea.Cmd) {
	a.ToggleStatusLine()
	return a, nil
}

func handleToggleHelp(_ tea.KeyPressMsg, a *app.App) (*app.App, tea.Cmd) {
	a.ShowHelp = !a.ShowHelp
	return a, nil
}

func handleQuit(_ tea.KeyPressMsg, a *app.App) (*app.App, tea.Cmd) {
	return a, tea.Quit
}
