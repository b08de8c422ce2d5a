package platformer

import (
	"github.com/vovakirdan/platformer/internal/config"
	"github.com/vovakirdan/platformer/internal/core"
)

// World holds all mutable simulation state.
type World struct {
	Actor        Actor
	Platforms    []StaticBody
	Backgrounds  []StaticBody
	Input        Input
	ScrollOffset float64

	// Ticks counts ticks since the last reset.
	Ticks int
	// Won is set the first tick the win threshold is crossed and stays set
	// until the next reset.
	Won bool
	// Falls counts resets caused by falling out of the world.
	Falls int

	cfg   config.PlatformerConfig
	table SpriteTable
	jump  JumpRule
	frame []DrawCall
}

// TickReport describes what happened during one tick.
type TickReport struct {
	Outcome ScrollOutcome
	Jumped  bool // a jump press took off
	Landed  bool // the actor's fall was stopped by a platform
	Won     bool // the win threshold was crossed for the first time this attempt
	Fell    bool // the actor fell out of the world and the level was reset
}

// NewWorld creates a world in its initial state.
// The configuration is assumed to be valid.
func NewWorld(cfg config.PlatformerConfig) *World {
	w := &World{
		cfg:   cfg,
		table: NewSpriteTable(cfg),
		jump:  NewJumpRule(cfg.Jump),
	}
	w.Reset()
	return w
}

// Reset rebuilds the level and respawns the actor. The held input flags
// survive because they mirror keys that are still physically down.
func (w *World) Reset() {
	w.Actor = NewActor(w.cfg.Player, w.table)
	w.Platforms, w.Backgrounds = BuildLevel(w.cfg)
	w.ScrollOffset = 0
	w.Ticks = 0
	w.Won = false
	w.captureFrame()
}

// Config returns the configuration the world was built from.
func (w *World) Config() config.PlatformerConfig {
	return w.cfg
}

// Sprites returns the sprite table.
func (w *World) Sprites() SpriteTable {
	return w.table
}

// WinThreshold returns the scroll offset that completes the level.
func (w *World) WinThreshold() float64 {
	return w.cfg.WinThreshold()
}

// HandleKey applies a key event immediately. A jump press is resolved
// against the current platform positions; the return value reports
// whether it took off.
func (w *World) HandleKey(e core.KeyEvent) bool {
	if e.Action == core.ActionJump {
		if e.Kind != core.KeyDown {
			return false
		}
		return TryJump(&w.Actor, w.Platforms, w.jump)
	}
	w.Input.Apply(e)
	return false
}

// Tick applies the given key events in order, then advances the world
// by one step:
// frame cycle, draw capture, physics, scroll, landings, animation,
// then the win and lose checks.
func (w *World) Tick(events ...core.KeyEvent) TickReport {
	var r TickReport
	for _, e := range events {
		if w.HandleKey(e) {
			r.Jumped = true
		}
	}

	w.Ticks++
	CycleFrame(&w.Actor, w.table)
	w.captureFrame()

	ApplyPhysics(&w.Actor, w.cfg.Physics.Gravity, w.cfg.Viewport.Height)
	r.Outcome = Arbitrate(w)
	r.Landed = ResolveLandings(&w.Actor, w.Platforms)
	Animate(&w.Actor, w.Input, w.table)

	if !w.Won && w.ScrollOffset > w.WinThreshold() {
		w.Won = true
		r.Won = true
	}

	if w.Actor.Position.Y > w.cfg.Viewport.Height {
		w.Falls++
		w.Reset()
		r.Fell = true
	}
	return r
}

// Progress returns the scroll offset as a fraction of the win threshold,
// clamped to [0, 1].
func (w *World) Progress() float64 {
	threshold := w.WinThreshold()
	if threshold <= 0 {
		return 1
	}
	return core.ClampF(w.ScrollOffset/threshold, 0, 1)
}
