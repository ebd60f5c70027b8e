// Package theme provides color themes and styling for the quill display.
package theme

import (
	"image/color"
	"log"

	"charm.land/lipgloss/v2"
	tint "github.com/lrstanley/bubbletint/v2"
)

var enabled bool

// Initialize sets up the theme registry with the specified theme name.
// Call this once at application startup.
// If themeName is empty, theming will be disabled and standard terminal colors will be used.
func Initialize(themeName string) error {
	if themeName == "" {
		enabled = false
		return nil
	}

	enabled = true
	tint.NewDefaultRegistry()

	// Load custom themes from user's themes directory
	if themesDir, err := GetThemesDir(); err == nil {
		if _, err := LoadCustomThemes(themesDir); err != nil {
			log.Printf("Warning: error loading custom themes: %v", err)
		}
	}

	ok := tint.SetTintID(themeName)
	if !ok {
		// Theme not found, set to default
		tint.SetTintID("default")
	}

	return nil
}

// IsEnabled returns true if theming is enabled
func IsEnabled() bool {
	return enabled
}

// Current returns the currently active theme.
// Returns nil if theming is disabled.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// BodyFg returns the foreground color for document text.
func BodyFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#e5e5e5")
	}
	return t.Fg
}

// BodyBg returns the background color for the display.
func BodyBg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#000000")
	}
	return t.Bg
}

// DimFg returns the color for de-emphasized chrome: truncation markers,
// vertical filler, and secondary status text.
func DimFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#7f7f7f")
	}
	return t.BrightBlack
}

// StatusLineFg returns the foreground color for the status line.
func StatusLineFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#a0a0b0")
	}
	return t.White
}

// StatusLineBg returns the background color for the status line.
func StatusLineBg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#1a1a2e")
	}
	return t.BrightBlack
}

// Accent returns the accent color for the active width indicator and
// other highlighted status elements.
func Accent() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#00cdcd")
	}
	return t.Cyan
}

// HelpTitle returns the color for help overlay section titles.
func HelpTitle() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("14")
	}
	return t.BrightCyan
}

// HelpKey returns the color for key names in the help overlay.
func HelpKey() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("11")
	}
	return t.BrightYellow
}

// NotificationInfo returns the color for informational notifications.
func NotificationInfo() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#5c5cff")
	}
	return t.BrightBlue
}

// NotificationWarning returns the color for warning notifications.
func NotificationWarning() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#cdcd00")
	}
	return t.Yellow
}

// NotificationError returns the color for error notifications.
func NotificationError() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#cd0000")
	}
	return t.Red
}
