package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to the host's drawing area.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters (terminal hosts only)
	ScreenH  int // Screen height in characters (terminal hosts only)
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Ticks        int     // Simulation ticks since the last reset
	ScrollOffset float64 // How far the world has scrolled to the right
	Progress     float64 // ScrollOffset relative to the win threshold, 0..1
	Won          bool    // Whether the win threshold was crossed this attempt
	Falls        int     // Number of resets caused by falling off the world
	Paused       bool    // Whether the game is paused
}

// EventKind identifies something noteworthy that happened during a tick.
type EventKind int

const (
	EventNone EventKind = iota
	// EventLevelComplete fires once per attempt when the win threshold is crossed.
	EventLevelComplete
	// EventFell fires when the actor dropped below the world and the level reset.
	EventFell
	// EventRestart fires when the player restarted manually.
	EventRestart
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventLevelComplete:
		return "level complete"
	case EventFell:
		return "fell off the world, level reset"
	case EventRestart:
		return "restart"
	default:
		return "none"
	}
}

// Event is a single occurrence reported by Step.
type Event struct {
	Kind EventKind
	Tick int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind occurred during the step.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
