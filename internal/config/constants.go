// Package config provides configuration constants, keybinding management,
// and user settings for quill.
package config

import "time"

// =============================================================================
// Body Width Defaults
// =============================================================================

const (
	// DefaultBodyWidth is the default configured body width, in the
	// configuration-surface form (a column count or a fraction).
	DefaultBodyWidth = "66"

	// DefaultMinimumBodyWidth is the default floor below which the body
	// never shrinks.
	DefaultMinimumBodyWidth = 40

	// MinimumBodyWidthFloor is the smallest accepted minimum body width.
	MinimumBodyWidthFloor = 1

	// WidthAdjustStep is how many columns the widen/narrow commands move
	// the configured body width per press. Two keeps the width even and
	// the margins symmetric.
	WidthAdjustStep = 2

	// MaxBodyColumns caps runtime widening so the setting stays sane on
	// very wide terminals.
	MaxBodyColumns = 400
)

// =============================================================================
// UI Layout Dimensions
// =============================================================================

const (
	// StatusLineHeight is the height of the status line when shown.
	StatusLineHeight = 1

	// TabStopWidth is the width tabs expand to in the document view.
	TabStopWidth = 4
)

// =============================================================================
// FPS and Refresh Rates
// =============================================================================

const (
	// NormalFPS is the refresh rate during regular operation.
	NormalFPS = 60
)

// =============================================================================
// Notifications
// =============================================================================

// NotificationDuration is how long a notification stays on screen.
const NotificationDuration = 3 * time.Second

const (
	// NotificationIconError is the error notification icon
	NotificationIconError = "[X]"

	// NotificationIconWarning is the warning notification icon
	NotificationIconWarning = "[!]"

	// NotificationIconInfo is the info notification icon
	NotificationIconInfo = "[i]"
)

// =============================================================================
// Z-Index Layering
// =============================================================================

const (
	// ZIndexDocument is the base layer for document content
	ZIndexDocument = 0

	// ZIndexHelp is the layer for the help overlay
	ZIndexHelp = 100

	// ZIndexNotifications is the layer for notifications (always on top)
	ZIndexNotifications = 200
)

// =============================================================================
// Global applied settings
// =============================================================================

// UseASCIIOnly replaces decorative glyphs with ASCII characters.
var UseASCIIOnly = false

// GetStatusSeparator returns the separator between status line segments
// based on UseASCIIOnly.
func GetStatusSeparator() string {
	if UseASCIIOnly {
		return " | "
	}
	return " · "
}