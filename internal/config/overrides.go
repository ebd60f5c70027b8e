package config

import (
	"log"

	"github.com/dodorz/quill/internal/theme"
)

// Overrides contains CLI flag values that can override user config.
// Zero values indicate the flag was not set and should use the user config default.
type Overrides struct {
	// BodyWidth overrides the configured body width ("66" or "0.62")
	BodyWidth string

	// MinimumBodyWidth overrides the minimum body width (0 means use default)
	MinimumBodyWidth int

	// HideStatusLine starts with the status line hidden
	HideStatusLine bool

	// ASCIIOnly uses ASCII characters instead of decorative glyphs
	ASCIIOnly bool

	// ThemeName is the theme to load
	ThemeName string
}

// ApplyOverrides merges CLI flag overrides into the user config, flag values
// taking precedence, and initializes the theme. The merged config is the
// single source the application model is built from; the calculator inputs
// are threaded through it explicitly rather than read from ambient state.
// If userConfig is nil a default config is used as the base.
func ApplyOverrides(overrides Overrides, userConfig *UserConfig) *UserConfig {
	if userConfig == nil {
		userConfig = DefaultConfig()
	}

	if overrides.BodyWidth != "" {
		userConfig.Appearance.BodyWidth = overrides.BodyWidth
	}

	if overrides.MinimumBodyWidth > 0 {
		userConfig.Appearance.MinimumBodyWidth = overrides.MinimumBodyWidth
	}

	// Hide Status Line - OR of CLI flag and user config
	userConfig.Appearance.HideStatusLine = overrides.HideStatusLine || userConfig.Appearance.HideStatusLine

	if overrides.ASCIIOnly {
		UseASCIIOnly = true
	}

	// Theme - CLI flag takes precedence, otherwise use user config
	themeName := overrides.ThemeName
	if themeName == "" {
		themeName = userConfig.Appearance.Theme
	}
	if themeName != "" {
		userConfig.Appearance.Theme = themeName
		if err := theme.Initialize(themeName); err != nil {
			log.Printf("Warning: Failed to load theme '%s': %v", themeName, err)
		}
	}

	return userConfig
}
