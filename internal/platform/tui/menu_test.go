package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/boostout/internal/core"
)

func TestMenuSelection(t *testing.T) {
	tests := []struct {
		name     string
		keys     []tea.KeyMsg
		wantGame string
		wantDiff string
		wantQuit bool
	}{
		{
			name:     "default",
			keys:     []tea.KeyMsg{{Type: tea.KeyEnter}},
			wantGame: "breakout",
			wantDiff: "normal",
		},
		{
			name:     "practice on hard",
			keys:     []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyRight}, {Type: tea.KeyEnter}},
			wantGame: "practice",
			wantDiff: "hard",
		},
		{
			name:     "difficulty wraps",
			keys:     []tea.KeyMsg{{Type: tea.KeyLeft}, {Type: tea.KeyLeft}, {Type: tea.KeyEnter}},
			wantGame: "breakout",
			wantDiff: "hard",
		},
		{
			name:     "cursor stops at the top",
			keys:     []tea.KeyMsg{{Type: tea.KeyUp}, {Type: tea.KeyEnter}},
			wantGame: "breakout",
			wantDiff: "normal",
		},
		{
			name:     "quit",
			keys:     []tea.KeyMsg{{Type: tea.KeyEsc}},
			wantDiff: "normal",
			wantQuit: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m tea.Model = NewMenuModel(core.DefaultConfig(), "")
			for _, k := range tt.keys {
				m, _ = m.Update(k)
			}

			res := m.(MenuModel).Result()
			if res.Quit != tt.wantQuit {
				t.Fatalf("Quit = %v, want %v", res.Quit, tt.wantQuit)
			}
			if res.GameID != tt.wantGame {
				t.Errorf("GameID = %q, want %q", res.GameID, tt.wantGame)
			}
			if res.Difficulty != tt.wantDiff {
				t.Errorf("Difficulty = %q, want %q", res.Difficulty, tt.wantDiff)
			}
		})
	}
}

func TestMenuPreselectsDifficulty(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), "easy")
	if got := m.Result().Difficulty; got != "easy" {
		t.Errorf("Difficulty = %q, want easy", got)
	}
}
