package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

func TestScreenCanvasScalesRects(t *testing.T) {
	screen := core.NewScreen(40, 30)
	c := NewScreenCanvas(screen, 400, 600)

	// 10 world units per column, 20 per row
	c.FillRect(100, 200, 50, 100, core.ColorGreen)

	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			inside := x >= 10 && x < 15 && y >= 10 && y < 15
			got := screen.GetCell(x, y)
			if inside && (got.Rune != blockRune || got.Color != core.ColorGreen) {
				t.Fatalf("cell (%d,%d) = %+v, expected green block", x, y, got)
			}
			if !inside && got.Rune != ' ' {
				t.Fatalf("cell (%d,%d) = %q, expected blank", x, y, got.Rune)
			}
		}
	}
}

func TestScreenCanvasSmallShapesCoverOneCell(t *testing.T) {
	screen := core.NewScreen(40, 30)
	c := NewScreenCanvas(screen, 400, 600)

	c.FillRect(103, 205, 2, 3, core.ColorYellow)

	if got := screen.GetCell(10, 10); got.Rune != blockRune {
		t.Errorf("tiny rect should cover its cell, got %q", got.Rune)
	}
	if got := screen.GetCell(11, 10); got.Rune != ' ' {
		t.Errorf("tiny rect should cover only one cell, got %q at (11,10)", got.Rune)
	}
}

func TestScreenCanvasClipsOffscreen(t *testing.T) {
	screen := core.NewScreen(40, 30)
	c := NewScreenCanvas(screen, 400, 600)

	c.FillRect(-30, 0, 50, 600, core.ColorGreen)

	if got := screen.GetCell(0, 0); got.Rune != blockRune {
		t.Errorf("visible part should be drawn, got %q", got.Rune)
	}
	if got := screen.GetCell(2, 0); got.Rune != ' ' {
		t.Errorf("rect should end at column 2, got %q", got.Rune)
	}
}

func TestScreenCanvasDefaultColorClears(t *testing.T) {
	screen := core.NewScreen(10, 10)
	c := NewScreenCanvas(screen, 100, 100)

	c.FillRect(0, 0, 100, 100, core.ColorRed)
	c.FillRect(0, 0, 100, 100, core.ColorDefault)

	if strings.TrimSpace(screen.String()) != "" {
		t.Errorf("screen should be blank, got %q", screen.String())
	}
}

func TestScreenCanvasText(t *testing.T) {
	screen := core.NewScreen(40, 30)
	c := NewScreenCanvas(screen, 400, 600)

	c.Text(200, 300, "Game Over", flappy.AlignCenter, core.ColorRed)
	c.Text(10, 20, "Score: 1", flappy.AlignLeft, core.ColorWhite)

	if row := screen.Row(15); !strings.Contains(row, "Game Over") {
		t.Errorf("centered text missing from row 15: %q", row)
	}
	if got := strings.Index(screen.Row(15), "Game Over"); got != 16 {
		t.Errorf("centered text starts at %d, expected 16", got)
	}
	if row := screen.Row(1); !strings.HasPrefix(row, " Score: 1") {
		t.Errorf("left text should start at column 1: %q", row)
	}
}

func TestScreenCanvasImage(t *testing.T) {
	screen := core.NewScreen(40, 30)
	c := NewScreenCanvas(screen, 400, 600)

	if c.Image(flappy.ActorSprite, 80, 300, 34, 24) {
		t.Fatal("unregistered sprite should report false")
	}

	c.RegisterSprite(flappy.ActorSprite, core.Cell{Rune: '@', Color: core.ColorYellow})
	if !c.Image(flappy.ActorSprite, 80, 300, 34, 24) {
		t.Fatal("registered sprite should report true")
	}
	if got := screen.GetCell(8, 15); got.Rune != '@' {
		t.Errorf("sprite cell = %q, expected '@'", got.Rune)
	}
}

func TestScreenCanvasFollowsResize(t *testing.T) {
	screen := core.NewScreen(40, 30)
	c := NewScreenCanvas(screen, 400, 600)

	screen.Resize(80, 60)
	c.FillRect(100, 200, 50, 100, core.ColorGreen)

	if got := screen.GetCell(20, 20); got.Rune != blockRune {
		t.Errorf("rect should scale to the new size, got %q at (20,20)", got.Rune)
	}
	if c.Width() != 400 || c.Height() != 600 {
		t.Error("world size must not change on resize")
	}
}
