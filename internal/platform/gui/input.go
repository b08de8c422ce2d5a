package gui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/platformer/internal/core"
)

// binding maps a physical key to an action.
type binding struct {
	key    ebiten.Key
	action core.Action
}

// bindings are polled in this order every tick.
var bindings = []binding{
	{ebiten.KeyA, core.ActionMoveLeft},
	{ebiten.KeyArrowLeft, core.ActionMoveLeft},
	{ebiten.KeyD, core.ActionMoveRight},
	{ebiten.KeyArrowRight, core.ActionMoveRight},
	{ebiten.KeyW, core.ActionJump},
	{ebiten.KeyArrowUp, core.ActionJump},
	{ebiten.KeySpace, core.ActionJump},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyEscape, core.ActionPause},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyQ, core.ActionQuit},
}

// keyEdges turns key transitions into events. Windows report real key
// releases, so movement keys get both edges; the other actions only fire
// on press.
func keyEdges(justPressed, justReleased func(ebiten.Key) bool) core.InputFrame {
	var frame core.InputFrame
	for _, b := range bindings {
		if justPressed(b.key) {
			frame.Push(core.Down(b.action))
		}
		if justReleased(b.key) && (b.action == core.ActionMoveLeft || b.action == core.ActionMoveRight) {
			frame.Push(core.Up(b.action))
		}
	}
	return frame
}
