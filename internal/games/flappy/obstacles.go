package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Obstacle is a pair of pipes with a passable gap between them.
// The gap spans [Top, Top+GapHeight).
type Obstacle struct {
	X      float64 // Left edge
	Top    float64 // Y where the gap starts
	Passed bool    // Whether the actor has cleared this obstacle (for scoring)
}

// TopBox returns the upper pipe.
func (o Obstacle) TopBox(width float64) core.Box {
	return core.Box{X: o.X, Y: 0, W: width, H: o.Top}
}

// BottomBox returns the lower pipe, reaching down to surfaceHeight.
func (o Obstacle) BottomBox(width, gapHeight, surfaceHeight float64) core.Box {
	bottomY := o.Top + gapHeight
	return core.Box{X: o.X, Y: bottomY, W: width, H: surfaceHeight - bottomY}
}

// ObstacleManager handles spawning, movement and removal of obstacles.
// Obstacles are kept in spawn order, which is also x-descending from the
// back of the slice.
type ObstacleManager struct {
	obstacles []Obstacle
	rng       *rand.Rand
	cfg       config.ObstaclesConfig
}

// NewObstacleManager creates an obstacle manager drawing gap positions from rng.
func NewObstacleManager(cfg config.ObstaclesConfig, rng *rand.Rand) *ObstacleManager {
	return &ObstacleManager{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rng,
		cfg:       cfg,
	}
}

// Reset removes all obstacles. The RNG keeps its position so that
// consecutive sessions get different layouts from the same seed.
func (m *ObstacleManager) Reset() {
	m.obstacles = m.obstacles[:0]
}

// Tick spawns, moves and recycles obstacles for the given frame.
// A new obstacle appears at the right edge every SpawnPeriod frames.
func (m *ObstacleManager) Tick(frameIndex int, surfaceWidth, surfaceHeight float64) {
	if frameIndex%m.cfg.SpawnPeriod == 0 {
		m.obstacles = append(m.obstacles, Obstacle{
			X:   surfaceWidth,
			Top: m.spawnTop(surfaceHeight),
		})
	}

	for i := range m.obstacles {
		m.obstacles[i].X -= m.cfg.Speed
	}

	// Remove obstacles that have moved off the left side, keeping order
	visible := m.obstacles[:0]
	for _, o := range m.obstacles {
		if o.X+m.cfg.Width > 0 {
			visible = append(visible, o)
		}
	}
	m.obstacles = visible
}

// spawnTop draws a gap-top offset: uniform over
// [TopClearance, TopClearance + surfaceHeight - GapHeight - ReservedClearance).
// For very short surfaces the range turns negative and the gap can reach
// past the top clearance; that matches the classic formula and is kept.
func (m *ObstacleManager) spawnTop(surfaceHeight float64) float64 {
	span := surfaceHeight - m.cfg.GapHeight - m.cfg.ReservedClearance
	return m.rng.Float64()*span + m.cfg.TopClearance
}

// Obstacles returns the live obstacles. The slice is owned by the manager;
// callers may flip Passed but must not append or reorder.
func (m *ObstacleManager) Obstacles() []Obstacle {
	return m.obstacles
}

// Len returns the number of live obstacles.
func (m *ObstacleManager) Len() int {
	return len(m.obstacles)
}

// Width returns the obstacle width.
func (m *ObstacleManager) Width() float64 {
	return m.cfg.Width
}

// GapHeight returns the gap height.
func (m *ObstacleManager) GapHeight() float64 {
	return m.cfg.GapHeight
}
