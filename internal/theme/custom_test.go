package theme

import (
	"os"
	"path/filepath"
	"testing"

	tint "github.com/lrstanley/bubbletint/v2"
)

// TestLoadCustomThemeFile_FullTheme tests loading a complete theme JSON file.
func TestLoadCustomThemeFile_FullTheme(t *testing.T) {
	dir := t.TempDir()
	themeJSON := `{
		"id": "test-full",
		"display_name": "Test Full Theme",
		"dark": true,
		"fg": "#d4d4d4",
		"bg": "#1e1e2e",
		"cursor": "#f5e0dc",
		"black": "#45475a",
		"red": "#f38ba8",
		"green": "#a6e3a1",
		"yellow": "#f9e2af",
		"blue": "#89b4fa",
		"purple": "#cba6f7",
		"cyan": "#94e2d5",
		"white": "#bac2de",
		"bright_black": "#585b70",
		"bright_red": "#f38ba8",
		"bright_green": "#a6e3a1",
		"bright_yellow": "#f9e2af",
		"bright_blue": "#89b4fa",
		"bright_purple": "#cba6f7",
		"bright_cyan": "#94e2d5",
		"bright_white": "#a6adc8"
	}`

	path := filepath.Join(dir, "test-full.json")
	if err := os.WriteFile(path, []byte(themeJSON), 0600); err != nil {
		t.Fatal(err)
	}

	theme, err := LoadCustomThemeFile(path)
	if err != nil {
		t.Fatalf("LoadCustomThemeFile failed: %v", err)
	}

	if theme.ID != "test-full" {
		t.Errorf("expected ID 'test-full', got %q", theme.ID)
	}
	if theme.DisplayName != "Test Full Theme" {
		t.Errorf("expected DisplayName 'Test Full Theme', got %q", theme.DisplayName)
	}
	if !theme.Dark {
		t.Error("expected Dark to be true")
	}

	// Verify all color fields are populated
	colors := []*tint.Color{
		theme.Fg, theme.Bg, theme.Cursor,
		theme.Black, theme.Red, theme.Green, theme.Yellow,
		theme.Blue, theme.Purple, theme.Cyan, theme.White,
		theme.BrightBlack, theme.BrightRed, theme.BrightGreen, theme.BrightYellow,
		theme.BrightBlue, theme.BrightPurple, theme.BrightCyan, theme.BrightWhite,
	}
	for i, c := range colors {
		if c == nil {
			t.Errorf("color at index %d is nil", i)
		}
	}
}

// TestLoadCustomThemeFile_Partial tests loading a minimal theme (only fg/bg);
// missing colors are filled with defaults.
func TestLoadCustomThemeFile_Partial(t *testing.T) {
	dir := t.TempDir()
	themeJSON := `{
		"id": "minimal-dark",
		"fg": "#c0c0c0",
		"bg": "#1a1a1a"
	}`

	path := filepath.Join(dir, "minimal-dark.json")
	if err := os.WriteFile(path, []byte(themeJSON), 0600); err != nil {
		t.Fatal(err)
	}

	theme, err := LoadCustomThemeFile(path)
	if err != nil {
		t.Fatalf("LoadCustomThemeFile failed: %v", err)
	}

	if theme.ID != "minimal-dark" {
		t.Errorf("expected ID 'minimal-dark', got %q", theme.ID)
	}
	if theme.DisplayName != "minimal-dark" {
		t.Error("expected DisplayName to default to ID")
	}
	if theme.Cursor == nil {
		t.Error("expected Cursor to be filled from Fg")
	}
	if theme.Red == nil || theme.BrightRed == nil {
		t.Error("expected ANSI colors to be filled with defaults")
	}
}

// TestLoadCustomThemeFile_IDFromFilename tests deriving the theme ID from the filename.
func TestLoadCustomThemeFile_IDFromFilename(t *testing.T) {
	dir := t.TempDir()
	themeJSON := `{"fg": "#ffffff", "bg": "#000000"}`

	path := filepath.Join(dir, "My-Theme.json")
	if err := os.WriteFile(path, []byte(themeJSON), 0600); err != nil {
		t.Fatal(err)
	}

	theme, err := LoadCustomThemeFile(path)
	if err != nil {
		t.Fatalf("LoadCustomThemeFile failed: %v", err)
	}

	if theme.ID != "my-theme" {
		t.Errorf("expected ID 'my-theme', got %q", theme.ID)
	}
}

// TestLoadCustomThemeFile_BadJSON tests that malformed JSON is rejected.
func TestLoadCustomThemeFile_BadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadCustomThemeFile(path); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

// TestLoadCustomThemes tests the directory loader skips bad files and
// loads good ones.
func TestLoadCustomThemes(t *testing.T) {
	dir := t.TempDir()

	good := `{"id": "good-theme", "fg": "#ffffff", "bg": "#000000"}`
	if err := os.WriteFile(filepath.Join(dir, "good.json"), []byte(good), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{oops"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a theme"), 0600); err != nil {
		t.Fatal(err)
	}

	tint.NewDefaultRegistry()
	loaded, err := LoadCustomThemes(dir)
	if err != nil {
		t.Fatalf("LoadCustomThemes failed: %v", err)
	}

	if len(loaded) != 1 || loaded[0] != "good-theme" {
		t.Errorf("loaded = %v, want [good-theme]", loaded)
	}
}
