package platformer

import (
	"math"

	"github.com/vovakirdan/platformer/internal/config"
)

// JumpRule decides when a jump press takes off from a platform.
type JumpRule struct {
	Epsilon   float64 // resting height above a platform top
	Nudge     float64 // lift applied before the impulse
	Tolerance float64 // allowed distance from the resting height; 0 = exact
}

// NewJumpRule builds a JumpRule from configuration.
func NewJumpRule(c config.JumpConfig) JumpRule {
	return JumpRule{Epsilon: c.Epsilon, Nudge: c.Nudge, Tolerance: c.Tolerance}
}

// ResolveLandings stops the actor's fall onto any platform it is about to
// pass through. Every platform is checked; there is no early exit.
// Reports whether any landing happened.
func ResolveLandings(a *Actor, platforms []StaticBody) bool {
	landed := false
	for _, p := range platforms {
		if a.Bottom() <= p.Top() &&
			a.Bottom()+a.Velocity.Y >= p.Top() &&
			a.Rect().SpansX(p.Rect()) {
			a.Velocity.Y = 0
			landed = true
		}
	}
	return landed
}

// TryJump handles a jump key press. For every platform the actor rests on,
// the actor is nudged up and the jump impulse is subtracted from its
// vertical velocity. Returns false, leaving the actor untouched, when the
// actor is not resting on any platform.
func TryJump(a *Actor, platforms []StaticBody, rule JumpRule) bool {
	jumped := false
	for _, p := range platforms {
		rest := p.Top() - rule.Epsilon
		if !restingAt(a.Bottom(), rest, rule.Tolerance) {
			continue
		}
		if !a.Rect().SpansX(p.Rect()) {
			continue
		}
		a.Position.Y -= rule.Nudge
		a.Velocity.Y -= a.JumpImpulse
		jumped = true
	}
	return jumped
}

func restingAt(bottom, rest, tolerance float64) bool {
	if tolerance == 0 {
		return bottom == rest
	}
	return math.Abs(bottom-rest) <= tolerance
}
