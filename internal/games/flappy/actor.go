package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Actor is the player-controlled object. It only moves vertically; X is
// fixed for the lifetime of a session.
type Actor struct {
	X, Y          float64
	Width, Height float64
	Velocity      float64 // Positive is down
	Gravity       float64
	Lift          float64 // Velocity set by ApplyImpulse (negative = up)
}

// NewActor creates an actor from the configuration, centered vertically.
func NewActor(cfg config.FlappyConfig) Actor {
	a := Actor{
		X:       cfg.Actor.X,
		Width:   cfg.Actor.Width,
		Height:  cfg.Actor.Height,
		Gravity: cfg.Physics.Gravity,
		Lift:    cfg.Physics.Lift,
	}
	a.Reset(cfg.Surface.Height)
	return a
}

// Reset puts the actor back at mid-height with no velocity.
func (a *Actor) Reset(surfaceHeight float64) {
	a.Y = surfaceHeight / 2
	a.Velocity = 0
}

// Integrate advances the actor by one tick: gravity, then position, then
// clamping into [0, surfaceHeight-Height]. Hitting either bound zeroes the
// velocity.
func (a *Actor) Integrate(surfaceHeight float64) {
	a.Velocity += a.Gravity
	a.Y += a.Velocity

	if floor := surfaceHeight - a.Height; a.Y > floor {
		a.Y = floor
		a.Velocity = 0
	}
	if a.Y < 0 {
		a.Y = 0
		a.Velocity = 0
	}
}

// ApplyImpulse sets the velocity to Lift. It replaces the current velocity
// rather than adding to it, so every flap feels the same.
func (a *Actor) ApplyImpulse() {
	a.Velocity = a.Lift
}

// Box returns the actor's hitbox.
func (a Actor) Box() core.Box {
	return core.Box{X: a.X, Y: a.Y, W: a.Width, H: a.Height}
}
