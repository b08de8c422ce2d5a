package tui

import (
	"time"

	"github.com/vovakirdan/platformer/internal/core"
)

// HoldTracker turns terminal key repeats into press/release pairs.
// Terminals never report key releases, so a movement key counts as held
// while auto-repeat keeps re-sending it and is released once no repeat has
// arrived for the hold duration. Pressing one direction releases the other.
type HoldTracker struct {
	hold time.Duration
	last map[core.Action]time.Time
}

// trackedActions are checked for release in this order.
var trackedActions = []core.Action{core.ActionMoveLeft, core.ActionMoveRight}

// NewHoldTracker creates a tracker releasing keys after hold.
func NewHoldTracker(hold time.Duration) *HoldTracker {
	return &HoldTracker{
		hold: hold,
		last: make(map[core.Action]time.Time),
	}
}

// Press records a movement key at now. Only the first press of a hold
// produces a KeyDown; repeats just extend it.
func (h *HoldTracker) Press(a core.Action, now time.Time) []core.KeyEvent {
	var events []core.KeyEvent
	if other := opposite(a); other != core.ActionNone {
		if _, held := h.last[other]; held {
			delete(h.last, other)
			events = append(events, core.Up(other))
		}
	}
	if _, held := h.last[a]; !held {
		events = append(events, core.Down(a))
	}
	h.last[a] = now
	return events
}

// Expire releases every key whose last repeat is at least the hold
// duration old.
func (h *HoldTracker) Expire(now time.Time) []core.KeyEvent {
	var events []core.KeyEvent
	for _, a := range trackedActions {
		at, held := h.last[a]
		if held && now.Sub(at) >= h.hold {
			delete(h.last, a)
			events = append(events, core.Up(a))
		}
	}
	return events
}

// Held reports whether the key is currently considered down.
func (h *HoldTracker) Held(a core.Action) bool {
	_, held := h.last[a]
	return held
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionMoveLeft:
		return core.ActionMoveRight
	case core.ActionMoveRight:
		return core.ActionMoveLeft
	default:
		return core.ActionNone
	}
}
