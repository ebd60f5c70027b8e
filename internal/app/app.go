// Package app provides the core quill application logic: the layout state
// for one terminal window showing one document in a centered column.
package app

import (
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/google/uuid"

	"github.com/dodorz/quill/internal/config"
	"github.com/dodorz/quill/internal/document"
	"github.com/dodorz/quill/internal/layout"
)

// StatusLineState is the visibility of the status line. Transitions are
// synchronous and last-writer-wins: whichever toggle ran most recently
// decides what the next render shows.
type StatusLineState int

const (
	// StatusShown renders the status line on the bottom row.
	StatusShown StatusLineState = iota
	// StatusHidden gives the bottom row back to the document.
	StatusHidden
)

// Notification represents a temporary notification message.
type Notification struct {
	ID        string
	Message   string
	Type      string // "info", "warning", "error"
	StartTime time.Time
	Duration  time.Duration
}

// App is the Bubble Tea model for a quill session. It owns the document,
// the scroll position, and the configured body width, and recomputes the
// centering margin whenever the window size or the width settings change.
type App struct {
	Width  int
	Height int

	Doc    *document.Document
	Offset int // First visible document line

	// Body width settings, threaded explicitly rather than read from
	// package globals so the layout math stays a pure function of them.
	BodyWidth        layout.BodyWidth
	MinimumBodyWidth int

	// Margin and BodyCols are the cached result of the last successful
	// layout pass. LayoutValid is false until the first WindowSizeMsg.
	Margin      int
	BodyCols    int
	LayoutValid bool

	// FocusEnabled gates the centered column. Disabled, the document
	// renders at the full window width with zero margins.
	FocusEnabled bool

	StatusLine       StatusLineState
	CenterVertically bool
	ShowLineProgress bool

	ShowHelp         bool
	HelpScrollOffset int

	Notifications []Notification

	KeybindRegistry *config.KeybindRegistry

	// SSH mode fields
	SSHSession ssh.Session // nil in local mode
	IsSSHMode  bool
	ReadOnly   bool // Width adjustments disabled (served sessions)
}

// Option configures an App during construction.
type Option func(*App)

// WithSSHSession marks the App as serving an SSH session.
func WithSSHSession(sess ssh.Session) Option {
	return func(a *App) {
		a.SSHSession = sess
		a.IsSSHMode = true
	}
}

// WithReadOnly disables runtime width adjustments.
func WithReadOnly() Option {
	return func(a *App) { a.ReadOnly = true }
}

// WithSize seeds the window size before the first WindowSizeMsg arrives.
func WithSize(width, height int) Option {
	return func(a *App) {
		a.Width = width
		a.Height = height
	}
}

// New builds an App for doc from the resolved user configuration. An
// unparseable body_width falls back to the default column count with a
// visible diagnostic rather than failing.
func New(doc *document.Document, cfg *config.UserConfig, opts ...Option) *App {
	a := &App{
		Doc:              doc,
		MinimumBodyWidth: cfg.Appearance.MinimumBodyWidth,
		FocusEnabled:     true,
		StatusLine:       StatusShown,
		CenterVertically: true,
		ShowLineProgress: true,
		KeybindRegistry:  config.NewKeybindRegistry(cfg),
	}

	if cfg.Appearance.HideStatusLine {
		a.StatusLine = StatusHidden
	}
	if cfg.Appearance.CenterVertically != nil {
		a.CenterVertically = *cfg.Appearance.CenterVertically
	}
	if cfg.Appearance.ShowLineProgress != nil {
		a.ShowLineProgress = *cfg.Appearance.ShowLineProgress
	}

	spec, err := layout.ParseBodyWidth(cfg.Appearance.BodyWidth)
	if err != nil {
		spec = layout.DefaultBodyWidth()
		a.ShowNotification(err.Error(), "error", config.NotificationDuration)
	}
	a.BodyWidth = spec

	for _, opt := range opts {
		opt(a)
	}

	if a.Width > 0 {
		a.RecalculateLayout()
	}

	return a
}

// RecalculateLayout recomputes the centering margin and body column count
// from the current window size and width settings. An invalid body width
// spec leaves the prior margins untouched and surfaces a diagnostic; it is
// never fatal.
func (a *App) RecalculateLayout() {
	if !a.FocusEnabled {
		// Focus mode off: host default layout, no margins.
		a.Margin = 0
		a.BodyCols = a.Width
		a.LayoutValid = true
		return
	}

	margin, ok := layout.Margins(a.BodyWidth, a.Width, a.MinimumBodyWidth)
	if !ok {
		a.ShowNotification(layout.ErrInvalidBodyWidth.Error(), "error", config.NotificationDuration)
		a.BodyWidth = layout.DefaultBodyWidth()
		margin, ok = layout.Margins(a.BodyWidth, a.Width, a.MinimumBodyWidth)
		if !ok {
			return
		}
	}

	cols, err := layout.BodyColumns(a.BodyWidth, a.Width, a.MinimumBodyWidth)
	if err != nil {
		return
	}

	a.Margin = margin
	a.BodyCols = cols
	a.LayoutValid = true
}

// ToggleFocus flips focus mode. Disabling resets margins to the host
// default; enabling recomputes them from the configured width.
func (a *App) ToggleFocus() {
	a.FocusEnabled = !a.FocusEnabled
	a.RecalculateLayout()
	if a.FocusEnabled {
		a.ShowNotification("Focus: ON", "info", config.NotificationDuration)
	} else {
		a.ShowNotification("Focus: OFF", "info", config.NotificationDuration)
	}
}

// ToggleStatusLine flips the status line between Shown and Hidden.
func (a *App) ToggleStatusLine() {
	if a.StatusLine == StatusShown {
		a.StatusLine = StatusHidden
	} else {
		a.StatusLine = StatusShown
	}
	a.ClampOffset()
}

// ViewHeight returns the number of rows available to the document.
func (a *App) ViewHeight() int {
	h := a.Height
	if a.StatusLine == StatusShown {
		h -= config.StatusLineHeight
	}
	if h < 0 {
		return 0
	}
	return h
}

// ClampOffset keeps the scroll offset inside the document bounds.
func (a *App) ClampOffset() {
	max := a.Doc.MaxOffset(a.ViewHeight())
	if a.Offset > max {
		a.Offset = max
	}
	if a.Offset < 0 {
		a.Offset = 0
	}
}

// ScrollBy moves the view by delta lines, clamped to the document.
func (a *App) ScrollBy(delta int) {
	a.Offset += delta
	a.ClampOffset()
}

// HalfPage returns the half-page scroll distance, at least one line.
func (a *App) HalfPage() int {
	half := a.ViewHeight() / 2
	if half < 1 {
		return 1
	}
	return half
}

// GoTop scrolls to the start of the document.
func (a *App) GoTop() { a.Offset = 0 }

// GoBottom scrolls to the end of the document.
func (a *App) GoBottom() {
	a.Offset = a.Doc.MaxOffset(a.ViewHeight())
}

// Widen grows the configured body width by one step and relayouts. Column
// widths grow by WidthAdjustStep; fractions by five hundredths.
func (a *App) Widen() {
	a.adjustWidth(1)
}

// Narrow shrinks the configured body width by one step and relayouts.
func (a *App) Narrow() {
	a.adjustWidth(-1)
}

// ResetWidth restores the compile-time default body width.
func (a *App) ResetWidth() {
	if a.ReadOnly {
		return
	}
	a.BodyWidth = layout.DefaultBodyWidth()
	a.RecalculateLayout()
	a.ShowNotification("Body width: "+a.BodyWidth.String(), "info", config.NotificationDuration)
}

func (a *App) adjustWidth(direction int) {
	if a.ReadOnly {
		return
	}

	if a.BodyWidth.IsFraction() {
		f := a.BodyWidth.Frac() + float64(direction)*0.05
		if f < 0.05 {
			f = 0.05
		}
		if f > 0.95 {
			f = 0.95
		}
		a.BodyWidth = layout.Fraction(f)
	} else {
		n := a.BodyWidth.Cols() + direction*config.WidthAdjustStep
		if n < config.WidthAdjustStep {
			n = config.WidthAdjustStep
		}
		if n > config.MaxBodyColumns {
			n = config.MaxBodyColumns
		}
		a.BodyWidth = layout.Columns(n)
	}

	a.RecalculateLayout()
	a.ShowNotification("Body width: "+a.BodyWidth.String(), "info", config.NotificationDuration)
}

func createID() string {
	return uuid.New().String()
}

// ShowNotification displays a temporary notification message.
func (a *App) ShowNotification(message, notifType string, duration time.Duration) {
	a.Notifications = append(a.Notifications, Notification{
		ID:        createID(),
		Message:   message,
		Type:      notifType,
		StartTime: time.Now(),
		Duration:  duration,
	})
}

// CleanupNotifications removes expired notifications.
func (a *App) CleanupNotifications() {
	now := time.Now()
	var active []Notification
	for _, notif := range a.Notifications {
		if now.Sub(notif.StartTime) < notif.Duration {
			active = append(active, notif)
		}
	}
	a.Notifications = active
}
