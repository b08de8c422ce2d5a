package platformer

import (
	"github.com/vovakirdan/platformer/internal/config"
	"github.com/vovakirdan/platformer/internal/core"
)

// Actor is the player-controlled character.
// Width and Height always match the display size of the current sprite variant.
type Actor struct {
	Position    core.Vec2
	Velocity    core.Vec2
	Width       float64
	Height      float64
	Speed       float64
	JumpImpulse float64
	State       AnimState
	Frame       int
}

// NewActor spawns an actor at the configured start point, standing and
// facing right.
func NewActor(p config.PlayerConfig, table SpriteTable) Actor {
	a := Actor{
		Position:    core.Vec2{X: p.StartX, Y: p.StartY},
		Speed:       p.Speed,
		JumpImpulse: p.JumpImpulse,
	}
	a.setState(StandingRight, table)
	return a
}

// setState switches the sprite variant and resizes the actor to match.
// The frame counter is left alone.
func (a *Actor) setState(s AnimState, table SpriteTable) {
	v := table.Variant(s)
	a.State = s
	a.Width = v.DisplayWidth
	a.Height = v.DisplayHeight
}

// Rect returns the actor's bounding box.
func (a *Actor) Rect() core.Rect {
	return core.NewRect(a.Position.X, a.Position.Y, a.Width, a.Height)
}

// Bottom returns the y coordinate of the actor's feet.
func (a *Actor) Bottom() float64 {
	return a.Position.Y + a.Height
}
