package platformer

import (
	"github.com/vovakirdan/platformer/internal/config"
	"github.com/vovakirdan/platformer/internal/core"
)

// AnimState is the actor's facing and motion.
type AnimState int

const (
	StandingRight AnimState = iota
	StandingLeft
	RunningRight
	RunningLeft
)

// String returns a human-readable name for the state.
func (s AnimState) String() string {
	switch s {
	case StandingRight:
		return "standing-right"
	case StandingLeft:
		return "standing-left"
	case RunningRight:
		return "running-right"
	case RunningLeft:
		return "running-left"
	default:
		return "unknown"
	}
}

// Running reports whether the state uses the run sheet.
func (s AnimState) Running() bool {
	return s == RunningRight || s == RunningLeft
}

// SpriteVariant describes how to draw the actor in one animation state.
type SpriteVariant struct {
	Asset         config.Asset
	CropWidth     float64
	CropHeight    float64
	DisplayWidth  float64
	DisplayHeight float64
	FrameLimit    int // the frame counter resets once it exceeds this
}

// SpriteTable maps every AnimState to its variant.
type SpriteTable [4]SpriteVariant

// NewSpriteTable resolves the sprite sheets against the asset manifest.
func NewSpriteTable(cfg config.PlatformerConfig) SpriteTable {
	variant := func(sheet config.SpriteSheet, assetName string) SpriteVariant {
		asset, _ := cfg.Asset(assetName)
		return SpriteVariant{
			Asset:         asset,
			CropWidth:     sheet.CropWidth,
			CropHeight:    sheet.CropHeight,
			DisplayWidth:  sheet.DisplayWidth,
			DisplayHeight: sheet.DisplayHeight,
			FrameLimit:    sheet.FrameLimit,
		}
	}

	var t SpriteTable
	t[StandingRight] = variant(cfg.Sprites.Stand, cfg.Sprites.Stand.Right)
	t[StandingLeft] = variant(cfg.Sprites.Stand, cfg.Sprites.Stand.Left)
	t[RunningRight] = variant(cfg.Sprites.Run, cfg.Sprites.Run.Right)
	t[RunningLeft] = variant(cfg.Sprites.Run, cfg.Sprites.Run.Left)
	return t
}

// Variant returns the variant for a state.
func (t SpriteTable) Variant(s AnimState) SpriteVariant {
	return t[s]
}

// CycleFrame advances the actor's animation counter, wrapping to 0 once it
// passes the current variant's frame limit.
func CycleFrame(a *Actor, table SpriteTable) {
	a.Frame++
	if a.Frame > table.Variant(a.State).FrameLimit {
		a.Frame = 0
	}
}

// Animate applies at most one sprite transition, in priority order:
// run right, run left, stand right, stand left.
// Reports whether the state changed.
func Animate(a *Actor, in Input, table SpriteTable) bool {
	next := a.State
	switch {
	case in.Right && in.Last == DirRight && a.State != RunningRight:
		next = RunningRight
	case in.Left && in.Last == DirLeft && a.State != RunningLeft:
		next = RunningLeft
	case !in.Right && in.Last == DirRight && a.State != StandingRight:
		next = StandingRight
	case !in.Left && in.Last == DirLeft && a.State != StandingLeft:
		next = StandingLeft
	default:
		return false
	}
	a.setState(next, table)
	return true
}

// SourceRect returns the part of the sprite sheet showing the actor's
// current frame.
func SourceRect(a *Actor, table SpriteTable) core.Rect {
	v := table.Variant(a.State)
	return core.NewRect(v.CropWidth*float64(a.Frame), 0, v.CropWidth, v.CropHeight)
}
