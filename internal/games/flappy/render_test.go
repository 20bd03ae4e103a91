package flappy

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

type fillCall struct {
	x, y, w, h float64
	color      core.Color
}

// recordingCanvas records draw calls for inspection.
type recordingCanvas struct {
	w, h   float64
	images map[string]bool
	fills  []fillCall
	texts  []string
	drawn  []string
}

func newRecordingCanvas(images ...string) *recordingCanvas {
	c := &recordingCanvas{w: 400, h: 600, images: make(map[string]bool)}
	for _, name := range images {
		c.images[name] = true
	}
	return c
}

func (c *recordingCanvas) Width() float64  { return c.w }
func (c *recordingCanvas) Height() float64 { return c.h }

func (c *recordingCanvas) FillRect(x, y, w, h float64, color core.Color) {
	c.fills = append(c.fills, fillCall{x, y, w, h, color})
}

func (c *recordingCanvas) Text(x, y float64, text string, align Align, color core.Color) {
	c.texts = append(c.texts, text)
}

func (c *recordingCanvas) Image(name string, x, y, w, h float64) bool {
	if !c.images[name] {
		return false
	}
	c.drawn = append(c.drawn, name)
	return true
}

func (c *recordingCanvas) hasText(s string) bool {
	for _, t := range c.texts {
		if strings.Contains(t, s) {
			return true
		}
	}
	return false
}

func (c *recordingCanvas) fillsWith(color core.Color) []fillCall {
	var out []fillCall
	for _, f := range c.fills {
		if f.color == color {
			out = append(out, f)
		}
	}
	return out
}

func runningSnapshot() Snapshot {
	return Snapshot{
		Mode:          ModeRunning,
		Score:         3,
		Best:          11,
		SurfaceWidth:  400,
		SurfaceHeight: 600,
		Actor:         core.Box{X: 80, Y: 200, W: 34, H: 24},
		Obstacles:     []Obstacle{{X: 150, Top: 100}, {X: 330, Top: 250}},
		ObstacleWidth: 50,
		GapHeight:     150,
	}
}

func TestDrawStartScreen(t *testing.T) {
	c := newRecordingCanvas(ActorSprite)

	Draw(c, Snapshot{Mode: ModeNotStarted})

	if !c.hasText("Flappy Bird") || !c.hasText("Press Space to Start") {
		t.Errorf("start screen texts missing: %v", c.texts)
	}
	if len(c.drawn) != 0 {
		t.Error("actor should not be drawn on the start screen")
	}
	if c.hasText("Score:") {
		t.Error("score HUD should not be drawn on the start screen")
	}
}

func TestDrawRunning(t *testing.T) {
	c := newRecordingCanvas(ActorSprite)

	Draw(c, runningSnapshot())

	if len(c.fills) == 0 || c.fills[0] != (fillCall{0, 0, 400, 600, core.ColorDefault}) {
		t.Errorf("first call should clear the canvas, got %+v", c.fills)
	}

	pipes := c.fillsWith(core.ColorGreen)
	if len(pipes) != 4 {
		t.Fatalf("expected 2 pipes per obstacle, got %d", len(pipes))
	}
	if pipes[0] != (fillCall{150, 0, 50, 100, core.ColorGreen}) {
		t.Errorf("top pipe = %+v", pipes[0])
	}
	if pipes[1] != (fillCall{150, 250, 50, 350, core.ColorGreen}) {
		t.Errorf("bottom pipe = %+v", pipes[1])
	}

	if len(c.drawn) != 1 || c.drawn[0] != ActorSprite {
		t.Errorf("actor image should be drawn once, got %v", c.drawn)
	}
	if len(c.fillsWith(core.ColorYellow)) != 0 {
		t.Error("fallback block should not be drawn when the image is available")
	}

	if !c.hasText("Score: 3") || !c.hasText("High Score: 11") {
		t.Errorf("HUD texts missing: %v", c.texts)
	}
	if c.hasText("Game Over") {
		t.Error("game over panel should not be drawn while running")
	}
}

func TestDrawActorFallback(t *testing.T) {
	c := newRecordingCanvas()

	Draw(c, runningSnapshot())

	blocks := c.fillsWith(core.ColorYellow)
	if len(blocks) != 1 || blocks[0] != (fillCall{80, 200, 34, 24, core.ColorYellow}) {
		t.Errorf("expected one yellow actor block, got %+v", blocks)
	}
}

func TestDrawGameOver(t *testing.T) {
	c := newRecordingCanvas(ActorSprite)
	s := runningSnapshot()
	s.Mode = ModeOver

	Draw(c, s)

	for _, want := range []string{"Game Over", "Score: 3", "High Score: 11", "Press Space to Restart"} {
		if !c.hasText(want) {
			t.Errorf("missing %q in %v", want, c.texts)
		}
	}
}
