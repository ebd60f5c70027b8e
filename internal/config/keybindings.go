package config

import (
	"sort"
	"strings"
)

// Keybinding represents a single keybinding entry
type Keybinding struct {
	Key         string
	Description string
}

// KeybindingSection represents a section of related keybindings
type KeybindingSection struct {
	Title    string
	Bindings []Keybinding
}

// KeybindRegistry resolves user-configured keys to actions. It is built
// once from the merged user config and read-only afterwards.
type KeybindRegistry struct {
	actions map[string][]string // action -> key strings
	lookup  map[string]string   // key string -> action
}

// NewKeybindRegistry builds a registry from the user's keybinding config.
// When two actions claim the same key, the first registered wins; the
// groups are merged in a fixed order so the result is deterministic.
func NewKeybindRegistry(cfg *UserConfig) *KeybindRegistry {
	r := &KeybindRegistry{
		actions: make(map[string][]string),
		lookup:  make(map[string]string),
	}

	for _, group := range []map[string][]string{
		cfg.Keybindings.ModeControl,
		cfg.Keybindings.Navigation,
		cfg.Keybindings.Width,
	} {
		actions := make([]string, 0, len(group))
		for action := range group {
			actions = append(actions, action)
		}
		sort.Strings(actions)

		for _, action := range actions {
			for _, key := range group[action] {
				if key == "" {
					continue
				}
				r.actions[action] = append(r.actions[action], key)
				if _, taken := r.lookup[key]; !taken {
					r.lookup[key] = action
				}
			}
		}
	}

	return r
}

// ActionFor returns the action bound to the given key string, or "" if the
// key is unbound. Key strings are the canonical Bubble Tea forms, e.g.
// "ctrl+u", "pgup", "G".
func (r *KeybindRegistry) ActionFor(key string) string {
	return r.lookup[key]
}

// Matches reports whether the given key string triggers the action.
func (r *KeybindRegistry) Matches(key, action string) bool {
	return r.lookup[key] == action
}

// GetKeysForDisplay returns a comma-joined display string of the keys bound
// to an action, for the help overlay. Empty if nothing is bound.
func (r *KeybindRegistry) GetKeysForDisplay(action string) string {
	return strings.Join(r.actions[action], ", ")
}

// GetKeybindings returns all keybinding sections for the help overlay.
// If registry is nil, hard-coded defaults are shown.
func GetKeybindings(registry *KeybindRegistry) []KeybindingSection {
	if registry == nil {
		registry = NewKeybindRegistry(DefaultConfig())
	}

	sections := []KeybindingSection{}

	focus := KeybindingSection{Title: "FOCUS"}
	addBinding(&focus, registry, "toggle_focus", "Toggle focus mode (margins on/off)")
	addBinding(&focus, registry, "toggle_status_line", "Toggle status line")
	addBinding(&focus, registry, "toggle_help", "Toggle help")
	if len(focus.Bindings) > 0 {
		sections = append(sections, focus)
	}

	width := KeybindingSection{Title: "BODY WIDTH"}
	addBinding(&width, registry, "widen", "Widen the text column")
	addBinding(&width, registry, "narrow", "Narrow the text column")
	addBinding(&width, registry, "reset_width", "Reset to configured width")
	if len(width.Bindings) > 0 {
		sections = append(sections, width)
	}

	nav := KeybindingSection{Title: "NAVIGATION"}
	addBinding(&nav, registry, "scroll_up", "Scroll up one line")
	addBinding(&nav, registry, "scroll_down", "Scroll down one line")
	addBinding(&nav, registry, "half_page_up", "Scroll up half a page")
	addBinding(&nav, registry, "half_page_down", "Scroll down half a page")
	addBinding(&nav, registry, "go_top", "Go to the first line")
	addBinding(&nav, registry, "go_bottom", "Go to the last line")
	if len(nav.Bindings) > 0 {
		sections = append(sections, nav)
	}

	system := KeybindingSection{Title: "SYSTEM"}
	addBinding(&system, registry, "quit", "Quit")
	if len(system.Bindings) > 0 {
		sections = append(sections, system)
	}

	return sections
}

// addBinding adds a keybinding to a section if the action has keys configured
func addBinding(section *KeybindingSection, registry *KeybindRegistry, action, description string) {
	keys := registry.GetKeysForDisplay(action)
	if keys != "" {
		section.Bindings = append(section.Bindings, Keybinding{
			Key:         keys,
			Description: description,
		})
	}
}
