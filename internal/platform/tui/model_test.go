package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/boostout/internal/core"
	"github.com/vovakirdan/boostout/internal/games/breakout"
)

func newTestModel(t *testing.T) (Model, *breakout.Game) {
	t.Helper()
	g := breakout.New()
	m := NewModel(g, core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  25,
		TickRate: 60,
		Seed:     1,
	}, Options{ShowHelp: true})
	m.Init()
	return m, g
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestModelWorldFollowsTerminal(t *testing.T) {
	m, g := newTestModel(t)

	// 80x24 game rows below a one-row HUD.
	if w := g.World(); w == nil || w.Width != 1280 || w.Height != 736 {
		t.Fatalf("initial world = %+v, want 1280x736", w)
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 25})
	if g.World().Width != 1280 {
		t.Error("resize applied before the next frame")
	}

	m = update(t, m, TickMsg(time.Now()))
	if g.World().Width != 1600 {
		t.Errorf("world width after resize = %g, want 1600", g.World().Width)
	}
	if len(m.resizes) != 0 {
		t.Errorf("resizes not consumed: %v", m.resizes)
	}
}

func TestModelFrameDT(t *testing.T) {
	m, _ := newTestModel(t)
	t0 := time.Unix(1000, 0)

	if got := m.frameDT(t0); got != 1.0/60 {
		t.Errorf("first frame dt = %g, want 1/60", got)
	}

	m = update(t, m, TickMsg(t0))
	tests := []struct {
		after time.Duration
		want  float64
	}{
		{50 * time.Millisecond, 0.05},
		{time.Second, maxFrameDT},
	}
	for _, tt := range tests {
		if got := m.frameDT(t0.Add(tt.after)); got < tt.want-1e-9 || got > tt.want+1e-9 {
			t.Errorf("dt after %v = %g, want %g", tt.after, got, tt.want)
		}
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if view := next.View(); view != "" {
		t.Errorf("view after quit = %q, want empty", view)
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 25 {
		t.Fatalf("view has %d lines, want 25", len(lines))
	}
	if !strings.Contains(lines[0], "Score: 0") {
		t.Errorf("HUD line = %q", lines[0])
	}
	if !strings.Contains(lines[24], "quit") {
		t.Errorf("help line = %q", lines[24])
	}
}

func TestModelPauseKey(t *testing.T) {
	m, g := newTestModel(t)
	t0 := time.Unix(1000, 0)

	// Finish the serve countdown first.
	for i := range 80 {
		m = update(t, m, TickMsg(t0.Add(time.Duration(i)*50*time.Millisecond)))
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m = update(t, m, TickMsg(t0.Add(5*time.Second)))

	if !g.State().Paused || !m.State().Paused {
		t.Error("p should pause the game on the next frame")
	}
}
