package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// CollisionCause tells what ended a run.
type CollisionCause int

const (
	CauseNone CollisionCause = iota
	CauseObstacle
	CauseGround
)

// String returns a human-readable name for the cause.
func (c CollisionCause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseObstacle:
		return "obstacle"
	case CauseGround:
		return "ground"
	default:
		return "unknown"
	}
}

// Rules holds the geometry Evaluate needs besides the actor and obstacles.
type Rules struct {
	ObstacleWidth float64
	GapHeight     float64
	SurfaceHeight float64
}

// Evaluation is the outcome of one Evaluate call.
type Evaluation struct {
	Passed int            // Obstacles cleared this tick
	Cause  CollisionCause // CauseNone if the actor is safe
}

// Collided reports whether the actor hit anything.
func (e Evaluation) Collided() bool {
	return e.Cause != CauseNone
}

// Evaluate checks the actor against the obstacles.
//
// Every obstacle not yet passed whose right edge is strictly left of the
// actor is marked passed and counted. An obstacle whose horizontal span
// overlaps the actor's is a hit unless the actor's vertical span lies fully
// inside the gap. Touching the bottom of the surface is a hit as well; the
// ceiling is not.
func Evaluate(actor core.Box, obstacles []Obstacle, rules Rules) Evaluation {
	var ev Evaluation

	for i := range obstacles {
		o := &obstacles[i]
		if !o.Passed && o.X+rules.ObstacleWidth < actor.X {
			o.Passed = true
			ev.Passed++
		}
	}

	for _, o := range obstacles {
		span := core.Box{X: o.X, W: rules.ObstacleWidth}
		if !actor.OverlapsX(span) {
			continue
		}
		if !actor.WithinY(o.Top, o.Top+rules.GapHeight) {
			ev.Cause = CauseObstacle
			return ev
		}
	}

	if actor.Bottom() >= rules.SurfaceHeight {
		ev.Cause = CauseGround
	}

	return ev
}
