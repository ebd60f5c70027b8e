// Package main implements quill, a distraction-free reading view for the
// terminal. Quill centers a text column of configurable width inside the
// window and keeps everything else out of the way.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	tint "github.com/lrstanley/bubbletint/v2"
	"github.com/spf13/cobra"

	"github.com/dodorz/quill/internal/theme"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Global flags
var (
	bodyWidth    string
	minWidth     int
	hideStatus   bool
	themeName    string
	listThemes   bool
	previewTheme string
	asciiOnly    bool
	debugMode    bool
	cpuProfile   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "quill [file]",
		Short: "Distraction-free reading for the terminal",
		Long: `quill - distraction-free reading for the terminal

Quill shows a text file as a centered column of configurable width with
symmetric margins, a toggleable status line, and nothing else. The column
width follows you through window resizes and never drops below a minimum.`,
		Example: `  # Read a file
  quill essay.txt

  # Use a 72-column body
  quill --body-width 72 essay.txt

  # Use 62% of the window width
  quill --body-width 0.62 essay.txt

  # Start with the status line hidden
  quill --hide-status essay.txt

  # Read with a theme
  quill --theme dracula essay.txt

  # List all available themes
  quill --list-themes

  # Preview a theme's colors
  quill --preview-theme dracula

  # Serve a file over SSH
  quill serve --port 2222 essay.txt

  # Edit configuration
  quill config edit`,
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if previewTheme != "" {
				return previewThemeColors(previewTheme)
			}

			if listThemes {
				if err := theme.Initialize("default"); err != nil {
					return fmt.Errorf("failed to initialize themes: %w", err)
				}
				for _, t := range tint.TintIDs() {
					fmt.Println(t)
				}
				return nil
			}

			if len(args) == 0 {
				return cmd.Help()
			}
			return runLocal(args[0])
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&bodyWidth, "body-width", "", "Body width: column count (\"66\") or fraction of the window (\"0.62\") (default: from config)")
	rootCmd.PersistentFlags().IntVar(&minWidth, "min-width", 0, "Floor below which the body never shrinks (default: from config or 40)")
	rootCmd.PersistentFlags().BoolVar(&hideStatus, "hide-status", false, "Start with the status line hidden")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Color theme to use (e.g., dracula, nord). Leave empty to use standard terminal colors")
	rootCmd.PersistentFlags().BoolVar(&listThemes, "list-themes", false, "List all available themes and exit")
	rootCmd.PersistentFlags().StringVar(&previewTheme, "preview-theme", "", "Preview a theme's 16 ANSI colors")
	rootCmd.PersistentFlags().BoolVar(&asciiOnly, "ascii-only", false, "Use ASCII characters instead of Unicode glyphs")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cpuProfile, "cpuprofile", "", "Write CPU profile to file")

	var servePort, serveHost, serveKeyPath string

	serveCmd := &cobra.Command{
		Use:   "serve <file>",
		Short: "Serve a file over SSH",
		Long: `Serve a file over SSH

Starts an SSH server delivering a read-only quill view of the file to
every connection. The host key is generated automatically if not
specified.`,
		Example: `  # Serve on the default port
  quill serve essay.txt

  # Serve on a custom port
  quill serve --port 2222 essay.txt

  # Specify a custom host key
  quill serve --key-path /path/to/host_key essay.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runServe(serveHost, servePort, serveKeyPath, args[0])
		},
	}

	serveCmd.Flags().StringVar(&servePort, "port", "2222", "SSH server port")
	serveCmd.Flags().StringVar(&serveHost, "host", "localhost", "SSH server host")
	serveCmd.Flags().StringVar(&serveKeyPath, "key-path", ".ssh/quill_ed25519", "Path to SSH host key (auto-generated if not specified)")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage quill configuration",
		Long:  `Manage quill configuration file and settings`,
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		Long:  `Print the path to the quill configuration file`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return printConfigPath()
		},
	}

	configEditCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit configuration in $EDITOR",
		Long: `Open the quill configuration file in your default editor

The editor is determined by checking $EDITOR, $VISUAL, or common editors
like vim, vi, nano, and emacs in that order.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return editConfigFile()
		},
	}

	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long: `Reset the quill configuration file to default settings

This will overwrite your existing configuration after confirmation.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return resetConfigToDefaults()
		},
	}

	configCmd.AddCommand(configPathCmd, configEditCmd, configResetCmd)

	keybindsCmd := &cobra.Command{
		Use:     "keybinds",
		Aliases: []string{"keys", "kb"},
		Short:   "List all keybindings",
		Long:    `Display all configured keybindings grouped by section`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return listKeybindings()
		},
	}

	rootCmd.AddCommand(serveCmd, configCmd, keybindsCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}
