package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration describes a playable field.
// All violations are reported together.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Surface.Width > 0, "surface.width must be positive, got %v", c.Surface.Width)
	check(c.Surface.Height > 0, "surface.height must be positive, got %v", c.Surface.Height)

	check(c.Physics.Gravity >= 0, "physics.gravity must not be negative, got %v", c.Physics.Gravity)
	check(c.Physics.Lift < 0, "physics.lift must be negative (upward), got %v", c.Physics.Lift)

	check(c.Actor.X >= 0, "actor.x must not be negative, got %v", c.Actor.X)
	check(c.Actor.Width > 0, "actor.width must be positive, got %v", c.Actor.Width)
	check(c.Actor.Height > 0, "actor.height must be positive, got %v", c.Actor.Height)
	check(c.Actor.Height < c.Surface.Height, "actor.height %v must be below surface.height %v", c.Actor.Height, c.Surface.Height)

	check(c.Obstacles.Width > 0, "obstacles.width must be positive, got %v", c.Obstacles.Width)
	check(c.Obstacles.GapHeight > c.Actor.Height, "obstacles.gap_height %v must exceed actor.height %v", c.Obstacles.GapHeight, c.Actor.Height)
	check(c.Obstacles.Speed > 0, "obstacles.speed must be positive, got %v", c.Obstacles.Speed)
	check(c.Obstacles.SpawnPeriod > 0, "obstacles.spawn_period must be positive, got %d", c.Obstacles.SpawnPeriod)
	check(c.Obstacles.TopClearance >= 0, "obstacles.top_clearance must not be negative, got %v", c.Obstacles.TopClearance)
	check(c.Obstacles.ReservedClearance >= 0, "obstacles.reserved_clearance must not be negative, got %v", c.Obstacles.ReservedClearance)

	check(c.Store.Key != "", "store.key must not be empty")

	return errors.Join(errs...)
}
