package app

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/dodorz/quill/internal/config"
	"github.com/dodorz/quill/internal/theme"
)

// renderStatusLine builds the bottom status row: document name on the
// left, counts and the current body-width setting on the right.
func (a *App) renderStatusLine() string {
	if a.Width <= 0 {
		return ""
	}

	sep := config.GetStatusSeparator()

	left := " " + a.Doc.Name
	if a.IsSSHMode {
		left += sep + "read-only"
	}

	segments := []string{
		fmt.Sprintf("%d words", a.Doc.Words()),
		fmt.Sprintf("%d chars", a.Doc.Graphemes()),
		fmt.Sprintf("width %s", a.BodyWidth.String()),
	}
	if a.ShowLineProgress {
		segments = append(segments,
			fmt.Sprintf("%d%%", a.Doc.Progress(a.Offset, a.ViewHeight())))
	}
	right := strings.Join(segments, sep) + " "

	gap := a.Width - ansi.StringWidth(left) - ansi.StringWidth(right)
	var line string
	switch {
	case gap >= 0:
		line = left + strings.Repeat(" ", gap) + right
	default:
		line = ansi.Truncate(left, a.Width, "")
		if pad := a.Width - ansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
	}

	style := lipgloss.NewStyle().Faint(true)
	if theme.IsEnabled() {
		style = lipgloss.NewStyle().
			Foreground(theme.StatusLineFg()).
			Background(theme.StatusLineBg())
	}
	return style.Render(line)
}
