package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Align controls horizontal text placement.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// ActorSprite is the image name requested for the actor.
const ActorSprite = "actor"

// Canvas is the drawing surface the renderer targets. Coordinates are world
// units; Width and Height are the surface size in the same units.
type Canvas interface {
	Width() float64
	Height() float64
	FillRect(x, y, w, h float64, c core.Color)
	Text(x, y float64, text string, align Align, c core.Color)
	// Image draws a named image into the box and reports whether it could.
	Image(name string, x, y, w, h float64) bool
}

// Draw renders a snapshot. It only reads the snapshot, so it can run at any
// rate independently of the simulation.
func Draw(c Canvas, s Snapshot) {
	c.FillRect(0, 0, c.Width(), c.Height(), core.ColorDefault)

	if s.Mode == ModeNotStarted {
		drawStartScreen(c)
		return
	}

	drawObstacles(c, s)
	drawActor(c, s)
	drawScore(c, s)

	if s.Mode == ModeOver {
		drawGameOver(c, s)
	}
}

func drawStartScreen(c Canvas) {
	midX, midY := c.Width()/2, c.Height()/2
	c.Text(midX, midY-50, "Flappy Bird", AlignCenter, core.ColorBrightYellow)
	c.Text(midX, midY, "Press Space to Start", AlignCenter, core.ColorBrightWhite)
	c.Text(midX, midY+30, "Avoid the pipes and score points!", AlignCenter, core.ColorWhite)
}

func drawObstacles(c Canvas, s Snapshot) {
	for _, o := range s.Obstacles {
		top := o.TopBox(s.ObstacleWidth)
		c.FillRect(top.X, top.Y, top.W, top.H, core.ColorGreen)

		bottom := o.BottomBox(s.ObstacleWidth, s.GapHeight, s.SurfaceHeight)
		c.FillRect(bottom.X, bottom.Y, bottom.W, bottom.H, core.ColorGreen)
	}
}

// drawActor uses the actor image when the canvas has one and a yellow block
// otherwise.
func drawActor(c Canvas, s Snapshot) {
	a := s.Actor
	if c.Image(ActorSprite, a.X, a.Y, a.W, a.H) {
		return
	}
	c.FillRect(a.X, a.Y, a.W, a.H, core.ColorYellow)
}

func drawScore(c Canvas, s Snapshot) {
	c.Text(10, 20, fmt.Sprintf("Score: %d", s.Score), AlignLeft, core.ColorBrightWhite)
	c.Text(10, 40, fmt.Sprintf("High Score: %d", s.Best), AlignLeft, core.ColorCyan)
}

func drawGameOver(c Canvas, s Snapshot) {
	midX, midY := c.Width()/2, c.Height()/2

	// Clear a panel behind the text so pipes do not show through
	c.FillRect(c.Width()/8, midY-60, c.Width()*3/4, 180, core.ColorDefault)

	c.Text(midX, midY-20, "Game Over", AlignCenter, core.ColorRed)
	c.Text(midX, midY+30, fmt.Sprintf("Score: %d", s.Score), AlignCenter, core.ColorBrightWhite)
	c.Text(midX, midY+60, fmt.Sprintf("High Score: %d", s.Best), AlignCenter, core.ColorCyan)
	c.Text(midX, midY+90, "Press Space to Restart", AlignCenter, core.ColorWhite)
}
