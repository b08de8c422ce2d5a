package platformer

import (
	"strings"
	"testing"

	"github.com/vovakirdan/platformer/internal/config"
	"github.com/vovakirdan/platformer/internal/core"
)

func TestGameDeterminism(t *testing.T) {
	// Same inputs produce identical runs
	inputs := make([]core.InputFrame, 400)
	for i := range inputs {
		switch {
		case i == 10:
			inputs[i] = core.NewInputFrame(core.Down(core.ActionMoveRight))
		case i == 300:
			inputs[i] = core.NewInputFrame(core.Up(core.ActionMoveRight))
		case i%50 == 0:
			inputs[i] = core.NewInputFrame(core.Down(core.ActionJump))
		}
	}

	run := func() core.GameState {
		g := New(config.DefaultPlatformerConfig())
		var state core.GameState
		for _, in := range inputs {
			state = g.Step(in).State
		}
		return state
	}

	s1, s2 := run(), run()
	if s1 != s2 {
		t.Errorf("Determinism failed: %+v != %+v", s1, s2)
	}
}

func TestGamePause(t *testing.T) {
	g := New(config.DefaultPlatformerConfig())
	g.Step(core.NewInputFrame())
	ticks := g.State().Ticks

	res := g.Step(core.NewInputFrame(core.Down(core.ActionPause)))
	if !res.State.Paused {
		t.Fatal("P should pause")
	}
	if res.State.Ticks != ticks {
		t.Error("the pausing step should not advance the world")
	}

	// Movement keys still register while paused, jumps do not
	g.Step(core.NewInputFrame(core.Down(core.ActionMoveRight), core.Down(core.ActionJump)))
	if !g.World().Input.Right {
		t.Error("held keys should update while paused")
	}
	if g.State().Ticks != ticks {
		t.Error("paused steps should not advance the world")
	}

	// Pause key releases are ignored
	if res := g.Step(core.NewInputFrame(core.Up(core.ActionPause))); !res.State.Paused {
		t.Error("releasing P should not unpause")
	}

	res = g.Step(core.NewInputFrame(core.Down(core.ActionPause)))
	if res.State.Paused || res.State.Ticks != ticks+1 {
		t.Errorf("unpausing should resume the simulation, got %+v", res.State)
	}
}

func TestGameRestart(t *testing.T) {
	g := New(config.DefaultPlatformerConfig())
	g.Step(core.NewInputFrame(core.Down(core.ActionMoveRight)))
	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.State().ScrollOffset == 0 {
		t.Fatal("expected the world to have scrolled")
	}

	res := g.Step(core.NewInputFrame(core.Down(core.ActionRestart)))
	if !res.Has(core.EventRestart) {
		t.Error("restart should be reported")
	}
	// The restart step also ticks once from the fresh level
	if res.State.Ticks != 1 || res.State.ScrollOffset != 0 {
		t.Errorf("restart should start the level over, got %+v", res.State)
	}
	if !g.World().Input.Right {
		t.Error("held keys should survive a restart")
	}
}

func TestGameEvents(t *testing.T) {
	g := New(config.DefaultPlatformerConfig())
	w := g.World()
	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame())
	}

	w.Actor.Position.X = 400
	w.ScrollOffset = w.WinThreshold()
	res := g.Step(core.NewInputFrame(core.Down(core.ActionMoveRight)))
	if !res.Has(core.EventLevelComplete) || !res.State.Won {
		t.Errorf("expected a level complete event, got %+v", res)
	}
	if res.State.Progress != 1 {
		t.Errorf("progress = %g, expected 1", res.State.Progress)
	}

	w.Actor.Position.Y = 1000
	res = g.Step(core.NewInputFrame())
	if !res.Has(core.EventFell) || res.State.Falls != 1 || res.State.Won {
		t.Errorf("expected a fall that clears the win, got %+v", res)
	}
}

func TestGameRender(t *testing.T) {
	g := New(config.DefaultPlatformerConfig())
	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Progress:   0%") {
		t.Errorf("HUD should show progress, row 0 = %q", screen.Row(0))
	}
	if !strings.ContainsRune(screen.String(), HeadChar) {
		t.Error("actor should be visible")
	}
	if !strings.ContainsRune(screen.String(), GrassChar) {
		t.Error("platforms should be visible")
	}

	g.Step(core.NewInputFrame(core.Down(core.ActionPause)))
	screen.Clear()
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused game should say so")
	}
}

func TestGameIdentity(t *testing.T) {
	g := New(config.DefaultPlatformerConfig())
	if g.ID() != "platformer" || g.Title() != "Platformer" {
		t.Errorf("unexpected identity %q / %q", g.ID(), g.Title())
	}
}
