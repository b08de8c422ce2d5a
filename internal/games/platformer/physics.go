package platformer

// ApplyPhysics advances the actor by one tick.
// Position is integrated before gravity is added, so a resting actor
// with zero velocity does not move on the tick gravity starts acting.
// Gravity stops accruing once the actor's next bottom would pass worldHeight.
func ApplyPhysics(a *Actor, gravity, worldHeight float64) {
	a.Position = a.Position.Add(a.Velocity)

	if a.Position.Y+a.Height+a.Velocity.Y <= worldHeight {
		a.Velocity.Y += gravity
	}
}
