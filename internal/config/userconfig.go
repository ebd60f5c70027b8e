package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// UserConfig represents the user's custom configuration
type UserConfig struct {
	Appearance  AppearanceConfig  `toml:"appearance"`
	Keybindings KeybindingsConfig `toml:"keybindings"`
}

// AppearanceConfig holds appearance-related settings
type AppearanceConfig struct {
	BodyWidth        string `toml:"body_width"`         // Body width: column count ("66") or fraction of the window ("0.62")
	MinimumBodyWidth int    `toml:"minimum_body_width"` // Floor below which the body never shrinks (default: 40)
	HideStatusLine   bool   `toml:"hide_status_line"`   // Start with the status line hidden (default: false)
	Theme            string `toml:"theme"`              // Color theme name (e.g., dracula, nord). Empty means standard terminal colors.
	CenterVertically *bool  `toml:"center_vertically"`  // Pad short documents toward the vertical center (default: true)
	ShowLineProgress *bool  `toml:"show_line_progress"` // Show line position in the status line (default: true)
}

// KeybindingsConfig holds all keybinding configurations
type KeybindingsConfig struct {
	Navigation  map[string][]string `toml:"navigation"`
	Width       map[string][]string `toml:"width"`
	ModeControl map[string][]string `toml:"mode_control"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *UserConfig {
	return &UserConfig{
		Appearance: AppearanceConfig{
			BodyWidth:        DefaultBodyWidth,
			MinimumBodyWidth: DefaultMinimumBodyWidth,
			HideStatusLine:   false,
			Theme:            "",
		},
		Keybindings: KeybindingsConfig{
			Navigation: map[string][]string{
				"scroll_up":      {"k", "up"},
				"scroll_down":    {"j", "down"},
				"half_page_up":   {"ctrl+u", "pgup"},
				"half_page_down": {"ctrl+d", "pgdown"},
				"go_top":         {"g", "home"},
				"go_bottom":      {"G", "end"},
			},
			Width: map[string][]string{
				"widen":       {"+", "="},
				"narrow":      {"-", "_"},
				"reset_width": {"0"},
			},
			ModeControl: map[string][]string{
				"toggle_focus":       {"f"},
				"toggle_status_line": {"s"},
				"toggle_help":        {"?"},
				"quit":               {"q", "ctrl+c"},
			},
		},
	}
}

// LoadUserConfig loads the user configuration from XDG config directory
func LoadUserConfig() (*UserConfig, error) {
	configPath, err := xdg.SearchConfigFile("quill/config.toml")
	if err != nil {
		// Config doesn't exist, create default
		return createDefaultConfig()
	}

	// #nosec G304 - configPath is from XDG search, reading user config is intentional
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg UserConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	defaultCfg := DefaultConfig()
	fillMissingAppearance(&cfg, defaultCfg)
	fillMissingKeybinds(&cfg, defaultCfg)

	validation := ValidateConfig(&cfg)
	if validation.HasErrors() {
		for _, err := range validation.Errors {
			fmt.Fprintf(os.Stderr, "Config error in [%s]: %s - %s\n", err.Field, err.Key, err.Message)
		}
		return nil, fmt.Errorf("configuration has %d error(s), please fix and restart", len(validation.Errors))
	}

	if validation.HasWarnings() {
		for _, warn := range validation.Warnings {
			fmt.Fprintf(os.Stderr, "Config warning in [%s]: %s - %s\n", warn.Field, warn.Key, warn.Message)
		}
	}

	return &cfg, nil
}

// createDefaultConfig creates a default config file in the user's config directory
func createDefaultConfig() (*UserConfig, error) {
	cfg := DefaultConfig()

	configPath, err := xdg.ConfigFile("quill/config.toml")
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# Quill Configuration File\n")
	sb.WriteString("# This file allows you to customize appearance and keybindings\n")
	sb.WriteString("#\n")
	sb.WriteString("# Configuration location: " + configPath + "\n\n")

	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# APPEARANCE SETTINGS\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# body_width: Width of the centered text column\n")
	sb.WriteString("#   A bare integer is a column count (e.g. \"66\").\n")
	sb.WriteString("#   A decimal between 0 and 1 is a fraction of the window (e.g. \"0.62\").\n")
	sb.WriteString("#   Default: \"66\"\n")
	sb.WriteString("#\n")
	sb.WriteString("# minimum_body_width: Floor below which the body never shrinks\n")
	sb.WriteString("#   Default: 40\n")
	sb.WriteString("#\n")
	sb.WriteString("# hide_status_line: Start with the status line hidden\n")
	sb.WriteString("#   Options: true, false\n")
	sb.WriteString("#   Default: false\n")
	sb.WriteString("#\n")
	sb.WriteString("# theme: Color theme name (e.g., dracula, nord, my-custom-theme)\n")
	sb.WriteString("#   Leave empty to use standard terminal colors.\n")
	sb.WriteString("#   CLI flag --theme overrides this. Custom themes: ~/.config/quill/themes/*.json\n")
	sb.WriteString("#   Default: (empty - no theme)\n")
	sb.WriteString("# ============================================================================\n\n")

	if _, err := sb.Write(data); err != nil {
		return nil, fmt.Errorf("failed to write config data: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(sb.String()), 0600); err != nil {
		return nil, fmt.Errorf("failed to write config file: %w", err)
	}

	return cfg, nil
}

// fillMissingAppearance fills in any missing appearance settings with defaults
func fillMissingAppearance(cfg, defaultCfg *UserConfig) {
	if cfg.Appearance.BodyWidth == "" {
		cfg.Appearance.BodyWidth = defaultCfg.Appearance.BodyWidth
	}

	if cfg.Appearance.MinimumBodyWidth <= 0 {
		cfg.Appearance.MinimumBodyWidth = defaultCfg.Appearance.MinimumBodyWidth
	}

	// HideStatusLine defaults to false (zero value)
	// Theme defaults to empty (no theme)
}

// fillMissingKeybinds fills in any missing keybindings with defaults
func fillMissingKeybinds(cfg, defaultCfg *UserConfig) {
	if cfg.Keybindings.Navigation == nil {
		cfg.Keybindings.Navigation = make(map[string][]string)
	}
	if cfg.Keybindings.Width == nil {
		cfg.Keybindings.Width = make(map[string][]string)
	}
	if cfg.Keybindings.ModeControl == nil {
		cfg.Keybindings.ModeControl = make(map[string][]string)
	}

	fillMapDefaults(cfg.Keybindings.Navigation, defaultCfg.Keybindings.Navigation)
	fillMapDefaults(cfg.Keybindings.Width, defaultCfg.Keybindings.Width)
	fillMapDefaults(cfg.Keybindings.ModeControl, defaultCfg.Keybindings.ModeControl)
}

func fillMapDefaults(target, defaults map[string][]string) {
	for k, v := range defaults {
		if _, exists := target[k]; !exists {
			target[k] = v
		}
	}
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	path, err := xdg.SearchConfigFile("quill/config.toml")
	if err != nil {
		// Return where it would be created
		return xdg.ConfigFile("quill/config.toml")
	}
	return path, nil
}
