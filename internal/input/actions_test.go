package input

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/dodorz/quill/internal/app"
	"github.com/dodorz/quill/internal/config"
	"github.com/dodorz/quill/internal/document"
)

func newTestApp(t *testing.T) *app.App {
	t.Helper()
	content := strings.Repeat("line\n", 100)
	doc := document.New("test.txt", content)
	return app.New(doc, config.DefaultConfig(), app.WithSize(100, 30))
}

func keyPress(key string) tea.KeyPressMsg {
	if len(key) == 1 {
		r := rune(key[0])
		return tea.KeyPressMsg{Code: r, Text: key}
	}
	switch key {
	case "ctrl+u":
		return tea.KeyPressMsg{Code: 'u', Mod: tea.ModCtrl}
	case "ctrl+d":
		return tea.KeyPressMsg{Code: 'd', Mod: tea.ModCtrl}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	}
	return tea.KeyPressMsg{}
}

func TestNavigationKeys(t *testing.T) {
	tests := []struct {
		name       string
		keys       []string
		wantOffset int
	}{
		{name: "scroll down one line", keys: []string{"j"}, wantOffset: 1},
		{name: "scroll down with arrow", keys: []string{"down"}, wantOffset: 1},
		{name: "scroll down then up", keys: []string{"j", "j", "k"}, wantOffset: 1},
		{name: "up clamps at the top", keys: []string{"k"}, wantOffset: 0},
		{name: "half page down", keys: []string{"ctrl+d"}, wantOffset: 14},
		{name: "go to bottom", keys: []string{"G"}, wantOffset: 71},
		{name: "bottom then top", keys: []string{"G", "g"}, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t)
			for _, key := range tt.keys {
				model, _ := HandleKeyPress(keyPress(key), a)
				a = model.(*app.App)
			}
			if a.Offset != tt.wantOffset {
				t.Errorf("Offset = %d, want %d", a.Offset, tt.wantOffset)
			}
		})
	}
}

func TestWidthKeys(t *testing.T) {
	a := newTestApp(t)

	model, _ := HandleKeyPress(keyPress("+"), a)
	a = model.(*app.App)
	if got := a.BodyWidth.Cols(); got != 68 {
		t.Errorf("Cols() = %d after widen key, want 68", got)
	}

	model, _ = HandleKeyPress(keyPress("0"), a)
	a = model.(*app.App)
	if got := a.BodyWidth.Cols(); got != 66 {
		t.Errorf("Cols() = %d after reset key, want 66", got)
	}
}

func TestToggleKeys(t *testing.T) {
	a := newTestApp(t)

	model, _ := HandleKeyPress(keyPress("s"), a)
	a = model.(*app.App)
	if a.StatusLine != app.StatusHidden {
		t.Errorf("StatusLine = %v after toggle key, want StatusHidden", a.StatusLine)
	}

	model, _ = HandleKeyPress(keyPress("f"), a)
	a = model.(*app.App)
	if a.FocusEnabled {
		t.Error("focus still enabled after toggle key")
	}
	if a.Margin != 0 {
		t.Errorf("Margin = %d with focus off, want 0", a.Margin)
	}
}

func TestQuitKeyReturnsQuitCmd(t *testing.T) {
	a := newTestApp(t)

	_, cmd := HandleKeyPress(keyPress("q"), a)
	if cmd == nil {
		t.Fatal("expected a command from the quit key")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg from the quit key")
	}
}

func TestHelpOverlayInterceptsKeys(t *testing.T) {
	a := newTestApp(t)

	model, _ := HandleKeyPress(keyPress("?"), a)
	a = model.(*app.App)
	if !a.ShowHelp {
		t.Fatal("help not shown after toggle key")
	}

	// Navigation is swallowed while help is open.
	model, _ = HandleKeyPress(keyPress("j"), a)
	a = model.(*app.App)
	if a.Offset != 0 {
		t.Errorf("Offset = %d with help open, want 0", a.Offset)
	}

	model, _ = HandleKeyPress(keyPress("esc"), a)
	a = model.(*app.App)
	if a.ShowHelp {
		t.Error("help still shown after escape")
	}
}

func TestUnboundKeyIsIgnored(t *testing.T) {
	a := newTestApp(t)

	model, cmd := HandleKeyPress(keyPress("z"), a)
	a = model.(*app.App)
	if cmd != nil {
		t.Error("unbound key produced a command")
	}
	if a.Offset != 0 {
		t.Errorf("Offset = %d after unbound key, want 0", a.Offset)
	}
}

func TestMouseWheelScrolls(t *testing.T) {
	a := newTestApp(t)

	model, _ := HandleInput(tea.MouseWheelMsg{Button: tea.MouseWheelDown}, a)
	a = model.(*app.App)
	if a.Offset != 3 {
		t.Errorf("Offset = %d after wheel down, want 3", a.Offset)
	}

	model, _ = HandleInput(tea.MouseWheelMsg{Button: tea.MouseWheelUp}, a)
	a = model.(*app.App)
	if a.Offset != 0 {
		t.Errorf("Offset = %d after wheel up, want 0", a.Offset)
	}
}
