// Package platformer implements a side-scrolling platformer.
// A character runs and jumps across a fixed row of platforms while the
// world scrolls past with parallax scenery. The simulation is pure: hosts
// feed key events into Step and draw the frame it captures.
package platformer

import (
	"fmt"

	"github.com/vovakirdan/platformer/internal/config"
	"github.com/vovakirdan/platformer/internal/core"
)

// Game implements core.Game on top of a World.
type Game struct {
	world   *World
	cfg     config.PlatformerConfig
	runtime core.RuntimeConfig
	paused  bool
}

// New creates a game from a validated configuration.
func New(cfg config.PlatformerConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "platformer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Platformer"
}

// World exposes the simulation state.
func (g *Game) World() *World {
	return g.world
}

// Reset starts the level over. Held movement keys carry over.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	if g.world == nil {
		g.world = NewWorld(g.cfg)
		return
	}
	g.world.Reset()
}

// Step advances the game by one tick.
// Pause and restart are handled here; everything else goes to the world.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []core.Event
	moves := make([]core.KeyEvent, 0, len(in.Events))

	for _, e := range in.Events {
		switch e.Action {
		case core.ActionPause:
			if e.Kind == core.KeyDown {
				g.paused = !g.paused
			}
		case core.ActionRestart:
			if e.Kind == core.KeyDown {
				g.applyHeld(moves)
				moves = moves[:0]
				g.Reset(g.runtime)
				events = append(events, core.Event{Kind: core.EventRestart})
			}
		case core.ActionMoveLeft, core.ActionMoveRight, core.ActionJump:
			moves = append(moves, e)
		}
	}

	if g.paused {
		// Releases must still land or keys would stick after unpausing.
		g.applyHeld(moves)
		return core.StepResult{State: g.State(), Events: events}
	}

	report := g.world.Tick(moves...)
	if report.Won {
		events = append(events, core.Event{Kind: core.EventLevelComplete, Tick: g.world.Ticks})
	}
	if report.Fell {
		events = append(events, core.Event{Kind: core.EventFell})
	}

	return core.StepResult{State: g.State(), Events: events}
}

// applyHeld updates the held movement flags without simulating.
// Jump presses are dropped.
func (g *Game) applyHeld(moves []core.KeyEvent) {
	for _, e := range moves {
		if e.Action != core.ActionJump {
			g.world.Input.Apply(e)
		}
	}
}

// DrawTo replays the last captured frame onto a surface.
func (g *Game) DrawTo(s Surface) {
	g.world.DrawTo(s)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	surface := NewScreenSurface(dst, g.cfg.Viewport.Width, g.cfg.Viewport.Height)
	g.DrawTo(surface)

	// Draw HUD
	progress := fmt.Sprintf(" Progress: %3.0f%% ", g.world.Progress()*100)
	dst.DrawText(2, 0, progress)

	if g.world.Falls > 0 {
		falls := fmt.Sprintf(" Falls: %d ", g.world.Falls)
		dst.DrawText(dst.Width()-len(falls)-2, 0, falls)
	}

	if g.world.Won {
		win := " YOU WIN! "
		dst.DrawTextColored((dst.Width()-len(win))/2, 1, win, core.ColorBanner)
	}

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Ticks:        g.world.Ticks,
		ScrollOffset: g.world.ScrollOffset,
		Progress:     g.world.Progress(),
		Won:          g.world.Won,
		Falls:        g.world.Falls,
		Paused:       g.paused,
	}
}

var _ core.Game = (*Game)(nil)
