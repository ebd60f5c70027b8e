package config

import (
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	result := ValidateConfig(DefaultConfig())
	if result.HasErrors() {
		t.Fatalf("default config has errors: %+v", result.Errors)
	}
	if result.HasWarnings() {
		t.Fatalf("default config has warnings: %+v", result.Warnings)
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(*UserConfig)
		wantErrors   int
		wantWarnings int
	}{
		{
			name:   "valid fraction body width",
			mutate: func(c *UserConfig) { c.Appearance.BodyWidth = "0.62" },
		},
		{
			name:         "invalid body width is a warning",
			mutate:       func(c *UserConfig) { c.Appearance.BodyWidth = "abc" },
			wantWarnings: 1,
		},
		{
			name:         "fraction out of range is a warning",
			mutate:       func(c *UserConfig) { c.Appearance.BodyWidth = "1.5" },
			wantWarnings: 1,
		},
		{
			name:       "zero minimum width is an error",
			mutate:     func(c *UserConfig) { c.Appearance.MinimumBodyWidth = 0 },
			wantErrors: 1,
		},
		{
			name:       "negative minimum width is an error",
			mutate:     func(c *UserConfig) { c.Appearance.MinimumBodyWidth = -3 },
			wantErrors: 1,
		},
		{
			name: "unbound action is a warning",
			mutate: func(c *UserConfig) {
				c.Keybindings.ModeControl["toggle_focus"] = nil
			},
			wantWarnings: 1,
		},
		{
			name: "empty key is an error",
			mutate: func(c *UserConfig) {
				c.Keybindings.Navigation["scroll_up"] = []string{""}
			},
			wantErrors: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			result := ValidateConfig(cfg)
			if len(result.Errors) != tt.wantErrors {
				t.Errorf("errors = %d (%+v), want %d", len(result.Errors), result.Errors, tt.wantErrors)
			}
			if len(result.Warnings) != tt.wantWarnings {
				t.Errorf("warnings = %d (%+v), want %d", len(result.Warnings), result.Warnings, tt.wantWarnings)
			}
		})
	}
}

func TestKeybindRegistry(t *testing.T) {
	registry := NewKeybindRegistry(DefaultConfig())

	tests := []struct {
		key    string
		action string
	}{
		{"q", "quit"},
		{"ctrl+c", "quit"},
		{"f", "toggle_focus"},
		{"s", "toggle_status_line"},
		{"+", "widen"},
		{"=", "widen"},
		{"-", "narrow"},
		{"0", "reset_width"},
		{"j", "scroll_down"},
		{"down", "scroll_down"},
		{"G", "go_bottom"},
		{"ctrl+u", "half_page_up"},
	}

	for _, tt := range tests {
		if got := registry.ActionFor(tt.key); got != tt.action {
			t.Errorf("ActionFor(%q) = %q, want %q", tt.key, got, tt.action)
		}
		if !registry.Matches(tt.key, tt.action) {
			t.Errorf("Matches(%q, %q) = false, want true", tt.key, tt.action)
		}
	}

	if got := registry.ActionFor("ctrl+x"); got != "" {
		t.Errorf("ActionFor(unbound) = %q, want empty", got)
	}
}

func TestKeybindRegistryCustomOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Keybindings.ModeControl["quit"] = []string{"x"}

	registry := NewKeybindRegistry(cfg)
	if got := registry.ActionFor("x"); got != "quit" {
		t.Errorf("ActionFor(x) = %q, want quit", got)
	}
	if got := registry.ActionFor("q"); got != "" {
		t.Errorf("ActionFor(q) = %q, want empty after rebind", got)
	}
}

func TestGetKeybindingsSections(t *testing.T) {
	sections := GetKeybindings(NewKeybindRegistry(DefaultConfig()))
	if len(sections) != 4 {
		t.Fatalf("got %d sections, want 4", len(sections))
	}
	for _, section := range sections {
		if len(section.Bindings) == 0 {
			t.Errorf("section %q has no bindings", section.Title)
		}
	}
}

func TestApplyOverrides(t *testing.T) {
	tests := []struct {
		name      string
		overrides Overrides
		base      *UserConfig
		check     func(t *testing.T, cfg *UserConfig)
	}{
		{
			name:      "flag body width wins",
			overrides: Overrides{BodyWidth: "0.5"},
			base:      DefaultConfig(),
			check: func(t *testing.T, cfg *UserConfig) {
				if cfg.Appearance.BodyWidth != "0.5" {
					t.Errorf("BodyWidth = %q, want 0.5", cfg.Appearance.BodyWidth)
				}
			},
		},
		{
			name:      "unset flags keep config values",
			overrides: Overrides{},
			base:      DefaultConfig(),
			check: func(t *testing.T, cfg *UserConfig) {
				if cfg.Appearance.BodyWidth != DefaultBodyWidth {
					t.Errorf("BodyWidth = %q, want default", cfg.Appearance.BodyWidth)
				}
				if cfg.Appearance.MinimumBodyWidth != DefaultMinimumBodyWidth {
					t.Errorf("MinimumBodyWidth = %d, want default", cfg.Appearance.MinimumBodyWidth)
				}
			},
		},
		{
			name:      "hide status line is OR of flag and config",
			overrides: Overrides{HideStatusLine: true},
			base:      DefaultConfig(),
			check: func(t *testing.T, cfg *UserConfig) {
				if !cfg.Appearance.HideStatusLine {
					t.Error("HideStatusLine = false, want true")
				}
			},
		},
		{
			name:      "nil base uses defaults",
			overrides: Overrides{MinimumBodyWidth: 50},
			base:      nil,
			check: func(t *testing.T, cfg *UserConfig) {
				if cfg.Appearance.MinimumBodyWidth != 50 {
					t.Errorf("MinimumBodyWidth = %d, want 50", cfg.Appearance.MinimumBodyWidth)
				}
				if cfg.Appearance.BodyWidth != DefaultBodyWidth {
					t.Errorf("BodyWidth = %q, want default", cfg.Appearance.BodyWidth)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyOverrides(tt.overrides, tt.base)
			tt.check(t, got)
		})
	}
}
