package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/boostout/internal/core"
)

// DefaultHold is how long a direction key stays held after its last press.
const DefaultHold = 150 * time.Millisecond

// KeyMap holds the key bindings for the game. It implements help.KeyMap.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	BoostLeft  key.Binding
	BoostRight key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		BoostLeft: key.NewBinding(
			key.WithKeys("shift+left", "A"),
			key.WithHelp("shift+←/→", "boost"),
		),
		BoostRight: key.NewBinding(
			key.WithKeys("shift+right", "D"),
			key.WithHelp("shift+←/→", "boost"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the controls line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.BoostLeft, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns all bindings grouped by column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.BoostLeft},
		{k.Pause, k.Restart, k.Screenshot, k.Quit},
	}
}

// HeldKeys approximates key-up events for terminals, which only report
// presses and auto-repeats. An action stays held until hold has passed
// since its last press.
type HeldKeys struct {
	hold  time.Duration
	until map[core.Action]time.Time
}

// NewHeldKeys creates a latch. A non-positive hold uses DefaultHold.
func NewHeldKeys(hold time.Duration) *HeldKeys {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &HeldKeys{
		hold:  hold,
		until: make(map[core.Action]time.Time),
	}
}

// Press marks an action held from now.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	h.until[a] = now.Add(h.hold)
}

// Release drops an action immediately.
func (h *HeldKeys) Release(a core.Action) {
	delete(h.until, a)
}

// Held reports whether an action is still held at now.
func (h *HeldKeys) Held(a core.Action, now time.Time) bool {
	t, ok := h.until[a]
	return ok && now.Before(t)
}

// Fill sets every action still held at now and forgets the expired ones.
func (h *HeldKeys) Fill(frame *core.InputFrame, now time.Time) {
	for a, t := range h.until {
		if now.Before(t) {
			frame.Set(a)
		} else {
			delete(h.until, a)
		}
	}
}

// KeyMapper translates Bubble Tea key messages into per-frame input.
// Movement and boost go through the held-key latch; pause and restart
// are edge-triggered and delivered once on the next frame.
type KeyMapper struct {
	keys    KeyMap
	held    *HeldKeys
	pending core.InputFrame
}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper(hold time.Duration) *KeyMapper {
	return &KeyMapper{
		keys:    DefaultKeyMap(),
		held:    NewHeldKeys(hold),
		pending: core.NewInputFrame(),
	}
}

// Keys returns the bindings, for help rendering.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey records a key press at now.
// Returns the edge action it triggered (Quit, Pause, Restart) or ActionNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, now time.Time) core.Action {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.keys.Pause):
		km.pending.Set(core.ActionPause)
		return core.ActionPause
	case key.Matches(msg, km.keys.Restart):
		km.pending.Set(core.ActionRestart)
		return core.ActionRestart
	case key.Matches(msg, km.keys.BoostLeft):
		km.steer(core.ActionLeft, true, now)
	case key.Matches(msg, km.keys.BoostRight):
		km.steer(core.ActionRight, true, now)
	case key.Matches(msg, km.keys.Left):
		km.steer(core.ActionLeft, false, now)
	case key.Matches(msg, km.keys.Right):
		km.steer(core.ActionRight, false, now)
	}
	return core.ActionNone
}

// steer holds one direction, releasing the opposite one.
func (km *KeyMapper) steer(dir core.Action, boost bool, now time.Time) {
	opposite := core.ActionLeft
	if dir == core.ActionLeft {
		opposite = core.ActionRight
	}
	km.held.Release(opposite)
	km.held.Press(dir, now)
	if boost {
		km.held.Press(core.ActionBoost, now)
	} else {
		km.held.Release(core.ActionBoost)
	}
}

// Frame returns the input for the frame starting at now and consumes the
// pending edge actions.
func (km *KeyMapper) Frame(now time.Time) core.InputFrame {
	frame := km.pending.Clone()
	km.pending.Clear()
	km.held.Fill(&frame, now)
	return frame
}
