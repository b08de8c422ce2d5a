package platformer

import (
	"github.com/vovakirdan/platformer/internal/config"
	"github.com/vovakirdan/platformer/internal/core"
)

// StaticBody is a platform or scenery layer. It never moves on its own;
// only world scroll shifts it horizontally.
type StaticBody struct {
	Position core.Vec2
	Width    float64
	Height   float64
	Asset    config.Asset
}

// NewStaticBody creates a body sized after its asset.
func NewStaticBody(asset config.Asset, x, y float64) StaticBody {
	return StaticBody{
		Position: core.Vec2{X: x, Y: y},
		Width:    asset.Width,
		Height:   asset.Height,
		Asset:    asset,
	}
}

// Rect returns the body's bounding box.
func (b StaticBody) Rect() core.Rect {
	return core.NewRect(b.Position.X, b.Position.Y, b.Width, b.Height)
}

// Top returns the y coordinate of the walkable surface.
func (b StaticBody) Top() float64 {
	return b.Position.Y
}
