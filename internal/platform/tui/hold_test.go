package tui

import (
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/platformer/internal/core"
)

func TestHoldTracker(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	at := func(ms int) time.Time { return start.Add(time.Duration(ms) * time.Millisecond) }

	h := NewHoldTracker(550 * time.Millisecond)

	// First press goes down
	if got := h.Press(core.ActionMoveRight, at(0)); !reflect.DeepEqual(got, []core.KeyEvent{core.Down(core.ActionMoveRight)}) {
		t.Errorf("first press = %v", got)
	}

	// Auto-repeat extends the hold without new events
	if got := h.Press(core.ActionMoveRight, at(500)); len(got) != 0 {
		t.Errorf("repeat should not emit events, got %v", got)
	}
	if got := h.Expire(at(1000)); len(got) != 0 {
		t.Errorf("key repeated 500ms ago should still be held, got %v", got)
	}

	// No repeat for the hold duration releases it
	if got := h.Expire(at(1050)); !reflect.DeepEqual(got, []core.KeyEvent{core.Up(core.ActionMoveRight)}) {
		t.Errorf("expire = %v, expected a release", got)
	}
	if h.Held(core.ActionMoveRight) {
		t.Error("released key should not be held")
	}
	if got := h.Expire(at(5000)); len(got) != 0 {
		t.Errorf("nothing left to release, got %v", got)
	}
}

func TestHoldTrackerOpposite(t *testing.T) {
	now := time.Now()
	h := NewHoldTracker(time.Second)

	h.Press(core.ActionMoveLeft, now)
	got := h.Press(core.ActionMoveRight, now.Add(10*time.Millisecond))

	want := []core.KeyEvent{core.Up(core.ActionMoveLeft), core.Down(core.ActionMoveRight)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("switching direction = %v, expected %v", got, want)
	}
	if h.Held(core.ActionMoveLeft) || !h.Held(core.ActionMoveRight) {
		t.Error("only the new direction should be held")
	}
}
