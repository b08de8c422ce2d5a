package platformer

// ScrollOutcome is the arbiter's decision for one tick.
type ScrollOutcome int

const (
	Idle ScrollOutcome = iota
	MoveActorRight
	MoveActorLeft
	ScrollWorldRight
	ScrollWorldLeft
)

// String returns a human-readable name for the outcome.
func (o ScrollOutcome) String() string {
	switch o {
	case MoveActorRight:
		return "move-right"
	case MoveActorLeft:
		return "move-left"
	case ScrollWorldRight:
		return "scroll-right"
	case ScrollWorldLeft:
		return "scroll-left"
	default:
		return "idle"
	}
}

// Arbitrate decides whether the actor walks or the world scrolls.
// Inside the dead zone the actor moves; at its edges the actor stops and
// platforms and scenery shift instead, scenery by the parallax factor.
// The scroll offset never goes below zero.
func Arbitrate(w *World) ScrollOutcome {
	a := &w.Actor
	in := w.Input
	bounds := w.cfg.Scroll

	switch {
	case in.Right && a.Position.X < bounds.RightBound:
		a.Velocity.X = a.Speed
		return MoveActorRight
	case in.Left && a.Position.X > bounds.LeftBound,
		in.Left && w.ScrollOffset == 0 && a.Position.X > 0:
		a.Velocity.X = -a.Speed
		return MoveActorLeft
	}

	a.Velocity.X = 0

	switch {
	case in.Right:
		w.shift(-a.Speed)
		return ScrollWorldRight
	case in.Left && w.ScrollOffset > 0:
		w.shift(a.Speed)
		return ScrollWorldLeft
	}
	return Idle
}

// shift moves the world by dx: platforms by dx, scenery by dx scaled by
// the parallax factor. Scrolling right is a negative dx.
func (w *World) shift(dx float64) {
	w.ScrollOffset -= dx
	for i := range w.Platforms {
		w.Platforms[i].Position.X += dx
	}
	for i := range w.Backgrounds {
		w.Backgrounds[i].Position.X += dx * w.cfg.Scroll.Parallax
	}
}
