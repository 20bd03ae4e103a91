package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Snapshot captures everything needed to draw a frame or compare two runs.
// It shares no memory with the engine.
type Snapshot struct {
	Mode          Mode
	Tick          int
	Score         int
	Best          int
	SurfaceWidth  float64
	SurfaceHeight float64
	Actor         core.Box
	Velocity      float64
	Obstacles     []Obstacle
	ObstacleWidth float64
	GapHeight     float64
}

// Snapshot returns a copy of the current game state.
func (e *Engine) Snapshot() Snapshot {
	obstacles := make([]Obstacle, e.obstacles.Len())
	copy(obstacles, e.obstacles.Obstacles())

	return Snapshot{
		Mode:          e.mode,
		Tick:          e.ticks,
		Score:         e.score,
		Best:          e.best,
		SurfaceWidth:  e.cfg.Surface.Width,
		SurfaceHeight: e.cfg.Surface.Height,
		Actor:         e.actor.Box(),
		Velocity:      e.actor.Velocity,
		Obstacles:     obstacles,
		ObstacleWidth: e.obstacles.Width(),
		GapHeight:     e.obstacles.GapHeight(),
	}
}

// NextObstacle returns the first obstacle the actor has not yet flown past,
// i.e. whose right edge is not left of the actor.
func (s Snapshot) NextObstacle() (Obstacle, bool) {
	for _, o := range s.Obstacles {
		if o.X+s.ObstacleWidth >= s.Actor.X {
			return o, true
		}
	}
	return Obstacle{}, false
}
