package config

import (
	"fmt"

	"github.com/dodorz/quill/internal/layout"
)

// ValidationIssue describes a single problem found in a configuration file.
type ValidationIssue struct {
	Field   string // Config section, e.g. "appearance"
	Key     string // Offending key, e.g. "body_width"
	Message string
}

// ValidationResult collects errors (reject the config) and warnings
// (log and continue) from a validation pass.
type ValidationResult struct {
	Errors   []ValidationIssue
	Warnings []ValidationIssue
}

// HasErrors reports whether the configuration must be rejected.
func (r *ValidationResult) HasErrors() bool { return len(r.Errors) > 0 }

// HasWarnings reports whether non-fatal issues were found.
func (r *ValidationResult) HasWarnings() bool { return len(r.Warnings) > 0 }

func (r *ValidationResult) addError(field, key, message string) {
	r.Errors = append(r.Errors, ValidationIssue{Field: field, Key: key, Message: message})
}

func (r *ValidationResult) addWarning(field, key, message string) {
	r.Warnings = append(r.Warnings, ValidationIssue{Field: field, Key: key, Message: message})
}

// ValidateConfig checks a loaded configuration for problems. An invalid
// body width is a warning, not an error: the application falls back to the
// default width and surfaces a diagnostic instead of refusing to start.
func ValidateConfig(cfg *UserConfig) *ValidationResult {
	result := &ValidationResult{}

	if _, err := layout.ParseBodyWidth(cfg.Appearance.BodyWidth); err != nil {
		result.addWarning("appearance", "body_width",
			fmt.Sprintf("%v; falling back to %q", err, DefaultBodyWidth))
	}

	if cfg.Appearance.MinimumBodyWidth < MinimumBodyWidthFloor {
		result.addError("appearance", "minimum_body_width",
			fmt.Sprintf("must be at least %d, got %d", MinimumBodyWidthFloor, cfg.Appearance.MinimumBodyWidth))
	}

	for group, bindings := range map[string]map[string][]string{
		"navigation":   cfg.Keybindings.Navigation,
		"width":        cfg.Keybindings.Width,
		"mode_control": cfg.Keybindings.ModeControl,
	} {
		for action, keys := range bindings {
			if len(keys) == 0 {
				result.addWarning("keybindings."+group, action, "no keys bound; action is unreachable")
			}
			for _, key := range keys {
				if key == "" {
					result.addError("keybindings."+group, action, "empty key binding")
				}
			}
		}
	}

	return result
}
