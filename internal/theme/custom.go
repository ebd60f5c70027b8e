package theme

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	tint "github.com/lrstanley/bubbletint/v2"
)

// GetThemesDir returns the path to the custom themes directory
// (~/.config/quill/themes/). Creates the directory if it doesn't exist.
func GetThemesDir() (string, error) {
	// Use xdg.ConfigFile to get the path and ensure parent dirs exist
	keepFile, err := xdg.ConfigFile("quill/themes/.keep")
	if err != nil {
		return "", fmt.Errorf("failed to get themes directory: %w", err)
	}
	return filepath.Dir(keepFile), nil
}

// LoadCustomThemes reads all *.json files from the themes directory,
// loads each as a custom theme, and registers them with bubbletint.
// Returns the list of successfully loaded theme IDs.
// Logs warnings for bad files but doesn't fail startup.
func LoadCustomThemes(themesDir string) ([]string, error) {
	entries, err := os.ReadDir(themesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read themes directory: %w", err)
	}

	var loaded []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".json") {
			continue
		}

		path := filepath.Join(themesDir, entry.Name())
		t, err := LoadCustomThemeFile(path)
		if err != nil {
			log.Printf("Warning: skipping custom theme %s: %v", entry.Name(), err)
			continue
		}

		tint.Register(t)
		loaded = append(loaded, t.ID)
	}

	return loaded, nil
}

// LoadCustomThemeFile reads a JSON file and returns a *tint.Tint.
// Derives ID from filename if the id field is empty.
// Sets DisplayName from ID if empty. Fills missing color fields with defaults.
func LoadCustomThemeFile(path string) (*tint.Tint, error) {
	// #nosec G304 - path is from user's config directory, reading custom themes is intentional
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var t tint.Tint
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse theme JSON: %w", err)
	}

	if t.ID == "" {
		base := filepath.Base(path)
		t.ID = strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
	}

	if t.ID == "" {
		return nil, fmt.Errorf("theme has no ID")
	}

	if t.DisplayName == "" {
		t.DisplayName = t.ID
	}

	fillDefaults(&t)

	return &t, nil
}

// fillDefaults fills nil color pointers. Foreground, background, and the
// eight normal ANSI colors fall back to xterm defaults; the cursor falls
// back to the foreground and bright variants to their normal counterparts.
func fillDefaults(t *tint.Tint) {
	base := []struct {
		dst **tint.Color
		hex string
	}{
		{&t.Fg, "#e5e5e5"},
		{&t.Bg, "#000000"},
		{&t.Black, "#000000"},
		{&t.Red, "#cd0000"},
		{&t.Green, "#00cd00"},
		{&t.Yellow, "#cdcd00"},
		{&t.Blue, "#0000ee"},
		{&t.Purple, "#cd00cd"},
		{&t.Cyan, "#00cdcd"},
		{&t.White, "#e5e5e5"},
	}
	for _, c := range base {
		if *c.dst == nil {
			*c.dst = tint.FromHex(c.hex)
		}
	}

	if t.Cursor == nil {
		t.Cursor = copyColor(t.Fg)
	}

	bright := []struct {
		dst **tint.Color
		src *tint.Color
	}{
		{&t.BrightBlack, t.Black},
		{&t.BrightRed, t.Red},
		{&t.BrightGreen, t.Green},
		{&t.BrightYellow, t.Yellow},
		{&t.BrightBlue, t.Blue},
		{&t.BrightPurple, t.Purple},
		{&t.BrightCyan, t.Cyan},
		{&t.BrightWhite, t.White},
	}
	for _, c := range bright {
		if *c.dst == nil {
			*c.dst = copyColor(c.src)
		}
	}
}

// copyColor creates a copy of a tint.Color.
func copyColor(c *tint.Color) *tint.Color {
	if c == nil {
		return nil
	}
	dup := *c
	return &dup
}
