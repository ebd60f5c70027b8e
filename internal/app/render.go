package app

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/dodorz/quill/internal/config"
	"github.com/dodorz/quill/internal/theme"
)

// View renders the full frame: the centered document column, the status
// line, and any overlays.
func (a *App) View() tea.View {
	var view tea.View
	view.SetContent(lipgloss.Sprint(a.renderCanvas().Render()))
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion
	return view
}

func (a *App) renderCanvas() *lipgloss.Canvas {
	canvas := lipgloss.NewCanvas(a.Width, a.Height)

	docLayer := lipgloss.NewLayer(a.renderDocument()).
		X(0).Y(0).Z(config.ZIndexDocument).ID("document")
	canvas.Compose(docLayer)

	if a.StatusLine == StatusShown && a.Height > 0 {
		statusLayer := lipgloss.NewLayer(a.renderStatusLine()).
			X(0).Y(a.Height - config.StatusLineHeight).
			Z(config.ZIndexDocument).ID("statusline")
		canvas.Compose(statusLayer)
	}

	if a.ShowHelp {
		helpLayer := lipgloss.NewLayer(a.renderHelpOverlay()).
			X(0).Y(0).Z(config.ZIndexHelp).ID("help")
		canvas.Compose(helpLayer)
	}

	for _, layer := range a.renderNotifications() {
		canvas.Compose(layer)
	}

	return canvas
}

// renderDocument renders the visible document window inside the computed
// margins. Long lines are truncated to the body width; there is no reflow.
func (a *App) renderDocument() string {
	viewHeight := a.ViewHeight()
	if viewHeight <= 0 || a.Width <= 0 {
		return ""
	}

	bodyCols := a.BodyCols
	if !a.LayoutValid || bodyCols <= 0 {
		bodyCols = a.Width
	}
	margin := a.Margin
	if !a.LayoutValid || margin < 0 {
		margin = 0
	}

	lines := a.Doc.Window(a.Offset, viewHeight)

	topPad := 0
	if a.CenterVertically && len(lines) < viewHeight {
		topPad = (viewHeight - len(lines)) / 2
	}

	bodyStyle := lipgloss.NewStyle()
	if theme.IsEnabled() {
		bodyStyle = bodyStyle.Foreground(theme.BodyFg())
	}

	tail := "…"
	if config.UseASCIIOnly {
		tail = "~"
	}

	pad := strings.Repeat(" ", margin)
	var sb strings.Builder
	for range topPad {
		sb.WriteByte('\n')
	}
	for i, line := range lines {
		if i > 0 || topPad > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(pad)
		sb.WriteString(bodyStyle.Render(ansi.Truncate(line, bodyCols, tail)))
	}
	return sb.String()
}

func (a *App) renderNotifications() []*lipgloss.Layer {
	if len(a.Notifications) == 0 {
		return nil
	}

	var layers []*lipgloss.Layer
	notifY := 1
	notifSpacing := 2
	for i, notif := range a.Notifications {
		if i >= 3 {
			break
		}

		var bgColor color.Color
		var icon string
		switch notif.Type {
		case "error":
			bgColor = lipgloss.Color("#dc2626")
			icon = config.NotificationIconError
		case "warning":
			bgColor = lipgloss.Color("#d97706")
			icon = config.NotificationIconWarning
		default:
			bgColor = lipgloss.Color("#2563eb")
			icon = config.NotificationIconInfo
		}

		maxNotifWidth := min(max(a.Width-8, 20), 60)

		message := notif.Message
		maxMessageLen := maxNotifWidth - 10
		if len(message) > maxMessageLen && maxMessageLen > 3 {
			message = message[:maxMessageLen-3] + "..."
		}

		notifBox := lipgloss.NewStyle().
			Background(bgColor).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true).
			MaxWidth(maxNotifWidth).
			Render(fmt.Sprintf(" %s  %s ", icon, message))

		notifX := max(a.Width-lipgloss.Width(notifBox)-2, 0)

		layers = append(layers, lipgloss.NewLayer(notifBox).
			X(notifX).Y(notifY+i*notifSpacing).Z(config.ZIndexNotifications).
			ID(fmt.Sprintf("notif-%s", notif.ID)))
	}
	return layers
}
