package flappy

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func newTestManager(seed int64) *ObstacleManager {
	return NewObstacleManager(config.DefaultFlappyConfig().Obstacles, rand.New(rand.NewSource(seed)))
}

func TestObstacleSpawnCadence(t *testing.T) {
	m := newTestManager(1)

	for frame := 1; frame < 90; frame++ {
		m.Tick(frame, 400, 600)
	}
	if m.Len() != 0 {
		t.Fatalf("no obstacle should spawn before frame 90, got %d", m.Len())
	}

	m.Tick(90, 400, 600)
	if m.Len() != 1 {
		t.Fatalf("one obstacle should spawn at frame 90, got %d", m.Len())
	}

	o := m.Obstacles()[0]
	// Spawned at the right edge, then moved once in the same tick
	if o.X != 398 {
		t.Errorf("X = %f, expected 398", o.X)
	}
	if o.Passed {
		t.Error("new obstacle should not be passed")
	}

	m.Tick(180, 400, 600)
	if m.Len() != 2 {
		t.Errorf("second obstacle should spawn at frame 180, got %d", m.Len())
	}
}

func TestObstacleSpawnAtFrameZero(t *testing.T) {
	m := newTestManager(1)
	m.Tick(0, 400, 600)
	if m.Len() != 1 {
		t.Errorf("frame 0 is a multiple of the period and should spawn, got %d", m.Len())
	}
}

func TestObstacleMovesLeft(t *testing.T) {
	m := newTestManager(1)
	m.obstacles = append(m.obstacles, Obstacle{X: 200, Top: 100})

	for frame := 1; frame <= 10; frame++ {
		m.Tick(frame, 400, 600)
	}

	if got := m.Obstacles()[0].X; got != 180 {
		t.Errorf("X = %f after 10 ticks at speed 2, expected 180", got)
	}
}

func TestObstacleRemovedOnlyWhenRightEdgeOffscreen(t *testing.T) {
	m := newTestManager(1)
	m.obstacles = append(m.obstacles,
		Obstacle{X: -48, Top: 100},   // right edge 0 after move: removed
		Obstacle{X: -47.5, Top: 110}, // right edge 0.5 after move: kept
		Obstacle{X: 100, Top: 120},
	)

	m.Tick(1, 400, 600)

	got := m.Obstacles()
	if len(got) != 2 {
		t.Fatalf("expected 2 obstacles left, got %d", len(got))
	}
	if got[0].Top != 110 || got[1].Top != 120 {
		t.Errorf("remaining obstacles should keep insertion order, got %+v", got)
	}
	for _, o := range got {
		if o.X+m.Width() <= 0 {
			t.Errorf("obstacle with right edge %f should have been removed", o.X+m.Width())
		}
	}
}

func TestObstacleGapStaysInRange(t *testing.T) {
	m := newTestManager(99)

	for frame := 1; frame <= 90*200; frame++ {
		m.Tick(frame, 400, 600)
		for _, o := range m.Obstacles() {
			if o.Top < 50 || o.Top >= 400 {
				t.Fatalf("frame %d: Top = %f outside [50, 400)", frame, o.Top)
			}
			if o.Top+m.GapHeight() > 600 {
				t.Fatalf("frame %d: gap bottom %f below the surface", frame, o.Top+m.GapHeight())
			}
		}
	}
}

func TestObstacleSpawnFormulaOnShortSurface(t *testing.T) {
	// 200 - 150 - 100 is negative: the gap top lands in (0, 50]
	m := newTestManager(3)
	for i := 0; i < 500; i++ {
		top := m.spawnTop(200)
		if top > 50 || top <= 0 {
			t.Fatalf("spawnTop(200) = %f, expected within (0, 50]", top)
		}
	}
}

func TestObstacleLayoutDeterministic(t *testing.T) {
	m1 := newTestManager(12345)
	m2 := newTestManager(12345)

	for frame := 1; frame <= 900; frame++ {
		m1.Tick(frame, 400, 600)
		m2.Tick(frame, 400, 600)
	}

	a, b := m1.Obstacles(), m2.Obstacles()
	if len(a) != len(b) {
		t.Fatalf("obstacle counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("obstacle %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestObstacleReset(t *testing.T) {
	m := newTestManager(1)
	m.Tick(0, 400, 600)
	m.Reset()
	if m.Len() != 0 {
		t.Errorf("Reset() should remove all obstacles, got %d", m.Len())
	}
}

func TestObstacleBoxes(t *testing.T) {
	o := Obstacle{X: 100, Top: 50}

	top := o.TopBox(50)
	if top.X != 100 || top.Y != 0 || top.W != 50 || top.H != 50 {
		t.Errorf("TopBox() = %+v", top)
	}

	bottom := o.BottomBox(50, 150, 600)
	if bottom.Y != 200 || bottom.H != 400 {
		t.Errorf("BottomBox() = %+v, expected Y=200 H=400", bottom)
	}
}
