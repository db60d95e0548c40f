package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/boostout/internal/core"
)

// Held keys per action. Movement and boost are polled every frame.
var heldKeys = map[core.Action][]ebiten.Key{
	core.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionBoost: {ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
}

// Edge-triggered keys: delivered only on the frame they go down.
var pressKeys = map[core.Action][]ebiten.Key{
	core.ActionPause:   {ebiten.KeyP, ebiten.KeyEscape},
	core.ActionRestart: {ebiten.KeyR},
	core.ActionQuit:    {ebiten.KeyQ},
}

// pollInput reads the keyboard into an input frame.
func pollInput() core.InputFrame {
	frame := core.NewInputFrame()
	for action, keys := range heldKeys {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				frame.Set(action)
				break
			}
		}
	}
	for action, keys := range pressKeys {
		for _, k := range keys {
			if inpututil.IsKeyJustPressed(k) {
				frame.Set(action)
				break
			}
		}
	}
	return frame
}
