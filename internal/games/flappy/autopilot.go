package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Autopilot is a simple controller that keeps the actor just above the
// bottom of the next gap. It drives `flappy simulate` and the long-run tests.
type Autopilot struct {
	// Margin is how far above the gap bottom the actor's bottom edge is kept.
	Margin float64
	// Cooldown is the velocity a flap must have decayed to before the next
	// flap. Flapping again while still rising fast overshoots the gap.
	Cooldown float64
}

// NewAutopilot returns an autopilot tuned for the given physics.
func NewAutopilot(cfg config.FlappyConfig) Autopilot {
	return Autopilot{
		Margin:   20,
		Cooldown: cfg.Physics.Lift / 2,
	}
}

// Decide returns the action to queue before the next tick. It starts a game
// from the title screen and does nothing once the run is over.
func (p Autopilot) Decide(s Snapshot) core.Action {
	switch s.Mode {
	case ModeNotStarted:
		return core.ActionPrimary
	case ModeOver:
		return core.ActionNone
	}

	target := s.SurfaceHeight/2 + s.Actor.H
	if o, ok := s.NextObstacle(); ok {
		target = o.Top + s.GapHeight - p.Margin
	}

	if s.Actor.Bottom() > target && s.Velocity > p.Cooldown {
		return core.ActionPrimary
	}
	return core.ActionNone
}
