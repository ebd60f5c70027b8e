package main

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	tint "github.com/lrstanley/bubbletint/v2"
	"golang.org/x/term"

	"github.com/dodorz/quill/internal/config"
	"github.com/dodorz/quill/internal/theme"
)

func printConfigPath() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to determine config path: %w", err)
	}
	fmt.Println(path)
	return nil
}

// findEditor returns the editor to use: $EDITOR, $VISUAL, then common
// fallbacks on PATH.
func findEditor() (string, error) {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if editor := os.Getenv(env); editor != "" {
			return editor, nil
		}
	}
	for _, candidate := range []string{"vim", "vi", "nano", "emacs"} {
		if path, err := exec.LookPath(candidate); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no editor found: set $EDITOR or install vim, vi, nano, or emacs")
}

func editConfigFile() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("config edit requires an interactive terminal")
	}

	// Loading creates the file with commented defaults on first run.
	if _, err := config.LoadUserConfig(); err != nil {
		return fmt.Errorf("failed to prepare config file: %w", err)
	}

	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to determine config path: %w", err)
	}

	editor, err := findEditor()
	if err != nil {
		return err
	}

	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor exited with error: %w", err)
	}
	return nil
}

func resetConfigToDefaults() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to determine config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil && term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Printf("This will overwrite %s with defaults. Continue? [y/N] ", path)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove config file: %w", err)
	}
	if _, err := config.LoadUserConfig(); err != nil {
		return fmt.Errorf("failed to recreate config file: %w", err)
	}

	fmt.Printf("Configuration reset: %s\n", path)
	return nil
}

// previewThemeColors prints the 16 ANSI colors of a theme, downsampled to
// whatever the terminal supports.
func previewThemeColors(name string) error {
	if err := theme.Initialize(name); err != nil {
		return fmt.Errorf("failed to initialize themes: %w", err)
	}
	if !tint.SetTintID(name) {
		return fmt.Errorf("unknown theme %q (use --list-themes)", name)
	}
	t := tint.Current()

	w := colorprofile.NewWriter(os.Stdout, os.Environ())

	swatch := func(label string, c *tint.Color) {
		if c == nil {
			return
		}
		block := lipgloss.NewStyle().
			Background(c).
			Render(strings.Repeat(" ", 8))
		fmt.Fprintf(w, "  %-14s %s\n", label, block)
	}

	fmt.Fprintf(w, "%s\n\n", name)
	swatch("foreground", t.Fg)
	swatch("background", t.Bg)
	fmt.Fprintln(w)
	swatch("black", t.Black)
	swatch("red", t.Red)
	swatch("green", t.Green)
	swatch("yellow", t.Yellow)
	swatch("blue", t.Blue)
	swatch("purple", t.Purple)
	swatch("cyan", t.Cyan)
	swatch("white", t.White)
	swatch("bright black", t.BrightBlack)
	swatch("bright red", t.BrightRed)
	swatch("bright green", t.BrightGreen)
	swatch("bright yellow", t.BrightYellow)
	swatch("bright blue", t.BrightBlue)
	swatch("bright purple", t.BrightPurple)
	swatch("bright cyan", t.BrightCyan)
	swatch("bright white", t.BrightWhite)
	return nil
}

func listKeybindings() error {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		userConfig = config.DefaultConfig()
	}
	registry := config.NewKeybindRegistry(userConfig)

	for i, section := range config.GetKeybindings(registry) {
		if i > 0 {
			fmt.Println()
		}
		fmt.Println(section.Title)
		for _, b := range section.Bindings {
			fmt.Printf("  %-20s %s\n", b.Key, b.Description)
		}
	}
	return nil
}
