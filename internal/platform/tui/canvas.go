package tui

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// blockRune fills solid shapes.
const blockRune = '█'

// ScreenCanvas draws world-unit shapes onto a character Screen, scaling the
// world surface to whatever size the terminal currently has.
type ScreenCanvas struct {
	screen  *core.Screen
	worldW  float64
	worldH  float64
	sprites map[string]core.Cell
}

// NewScreenCanvas creates a canvas mapping a worldW x worldH surface onto screen.
func NewScreenCanvas(screen *core.Screen, worldW, worldH float64) *ScreenCanvas {
	return &ScreenCanvas{
		screen:  screen,
		worldW:  worldW,
		worldH:  worldH,
		sprites: make(map[string]core.Cell),
	}
}

// RegisterSprite makes Image draw name as a box of the given cell.
func (c *ScreenCanvas) RegisterSprite(name string, cell core.Cell) {
	c.sprites[name] = cell
}

// Width returns the world width.
func (c *ScreenCanvas) Width() float64 { return c.worldW }

// Height returns the world height.
func (c *ScreenCanvas) Height() float64 { return c.worldH }

func (c *ScreenCanvas) col(x float64) int {
	if c.worldW <= 0 {
		return 0
	}
	return int(math.Floor(x * float64(c.screen.Width()) / c.worldW))
}

func (c *ScreenCanvas) row(y float64) int {
	if c.worldH <= 0 {
		return 0
	}
	return int(math.Floor(y * float64(c.screen.Height()) / c.worldH))
}

// span converts a world interval to a half-open cell interval. Non-empty
// intervals cover at least one cell.
func span(start, end int, size float64) (int, int) {
	if size > 0 && end <= start {
		end = start + 1
	}
	return start, end
}

func (c *ScreenCanvas) fill(x, y, w, h float64, cell core.Cell) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, x1 := span(c.col(x), c.col(x+w), w)
	y0, y1 := span(c.row(y), c.row(y+h), h)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			c.screen.SetCell(cx, cy, cell.Rune, cell.Color)
		}
	}
}

// FillRect fills a world rectangle. ColorDefault clears it to blanks.
func (c *ScreenCanvas) FillRect(x, y, w, h float64, color core.Color) {
	r := blockRune
	if color == core.ColorDefault {
		r = ' '
	}
	c.fill(x, y, w, h, core.Cell{Rune: r, Color: color})
}

// Text writes a single line of text whose anchor is the world point (x, y).
// Text is never scaled; it is clipped at the screen edges.
func (c *ScreenCanvas) Text(x, y float64, text string, align flappy.Align, color core.Color) {
	cx, cy := c.col(x), c.row(y)
	if align == flappy.AlignCenter {
		cx -= len([]rune(text)) / 2
	}
	if cx < 0 {
		cx = 0
	}
	c.screen.DrawText(cx, cy, text, color)
}

// Image draws a registered sprite and reports whether name was known.
func (c *ScreenCanvas) Image(name string, x, y, w, h float64) bool {
	cell, ok := c.sprites[name]
	if !ok {
		return false
	}
	c.fill(x, y, w, h, cell)
	return true
}

var _ flappy.Canvas = (*ScreenCanvas)(nil)
