// Package core provides fundamental types and utilities shared by the game
// engine and the terminal platform. It has no external dependencies (no
// Bubble Tea) so game logic stays pure and testable.
package core

// Box is an axis-aligned box in world units. The simulation works in
// floating point; only the screen works in cells.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// OverlapsX reports whether the half-open spans [X, Right) of both boxes
// share at least one point.
func (b Box) OverlapsX(other Box) bool {
	return b.X < other.Right() && b.Right() > other.X
}

// WithinY reports whether the vertical span of b lies fully inside
// [top, bottom].
func (b Box) WithinY(top, bottom float64) bool {
	return b.Y >= top && b.Bottom() <= bottom
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
