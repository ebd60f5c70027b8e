package app

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/dodorz/quill/internal/config"
	"github.com/dodorz/quill/internal/theme"
)

// renderHelpOverlay renders the centered keybinding reference.
func (a *App) renderHelpOverlay() string {
	sections := config.GetKeybindings(a.KeybindRegistry)

	titleStyle := lipgloss.NewStyle().Bold(true)
	keyStyle := lipgloss.NewStyle().Bold(true)
	if theme.IsEnabled() {
		titleStyle = titleStyle.Foreground(theme.HelpTitle())
		keyStyle = keyStyle.Foreground(theme.HelpKey())
	}

	keyColWidth := 0
	for _, section := range sections {
		for _, b := range section.Bindings {
			if len(b.Key) > keyColWidth {
				keyColWidth = len(b.Key)
			}
		}
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("KEYBINDINGS"))
	sb.WriteString("\n")
	for _, section := range sections {
		sb.WriteString("\n")
		sb.WriteString(titleStyle.Render(section.Title))
		sb.WriteString("\n")
		for _, b := range section.Bindings {
			pad := strings.Repeat(" ", keyColWidth-len(b.Key))
			sb.WriteString("  ")
			sb.WriteString(keyStyle.Render(b.Key))
			sb.WriteString(pad)
			sb.WriteString("  ")
			sb.WriteString(b.Description)
			sb.WriteString("\n")
		}
	}

	border := lipgloss.RoundedBorder()
	if config.UseASCIIOnly {
		border = lipgloss.NormalBorder()
	}
	box := lipgloss.NewStyle().
		Border(border).
		Padding(1, 3).
		Render(strings.TrimRight(sb.String(), "\n"))

	return lipgloss.Place(a.Width, a.Height, lipgloss.Center, lipgloss.Center, box)
}
