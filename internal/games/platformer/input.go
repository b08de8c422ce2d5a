package platformer

import (
	"sync"

	"github.com/vovakirdan/platformer/internal/core"
)

// Direction is the last horizontal direction the player pressed.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

// String returns "none", "left" or "right".
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Input mirrors the physical movement keys.
type Input struct {
	Left  bool
	Right bool
	Last  Direction
}

// Apply updates the held flags from a movement key event.
// Pressing a direction releases the opposite one. Releasing a key keeps
// Last unchanged. Other actions are ignored.
func (in *Input) Apply(e core.KeyEvent) {
	switch e.Action {
	case core.ActionMoveLeft:
		if e.Kind == core.KeyDown {
			in.Right = false
			in.Left = true
			in.Last = DirLeft
		} else {
			in.Left = false
		}
	case core.ActionMoveRight:
		if e.Kind == core.KeyDown {
			in.Left = false
			in.Right = true
			in.Last = DirRight
		} else {
			in.Right = false
		}
	}
}

// EventQueue collects key events from other goroutines until the tick
// goroutine drains them.
type EventQueue struct {
	mu     sync.Mutex
	events []core.KeyEvent
}

// Push appends an event. Safe for concurrent use.
func (q *EventQueue) Push(e core.KeyEvent) {
	q.mu.Lock()
	q.events = append(q.events, e)
	q.mu.Unlock()
}

// Drain returns all queued events in arrival order and empties the queue.
func (q *EventQueue) Drain() core.InputFrame {
	q.mu.Lock()
	defer q.mu.Unlock()

	frame := core.NewInputFrame(q.events...)
	q.events = nil
	return frame
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
