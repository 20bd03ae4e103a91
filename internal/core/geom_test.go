package core

import "testing"

func TestBoxOverlapsX(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{"overlap", Box{X: 80, W: 34}, Box{X: 100, W: 50}, true},
		{"touching right edge", Box{X: 80, W: 34}, Box{X: 114, W: 50}, false},
		{"touching left edge", Box{X: 80, W: 34}, Box{X: 30, W: 50}, false},
		{"fractional overlap", Box{X: 80, W: 34}, Box{X: 29.5, W: 50}, true},
		{"far away", Box{X: 80, W: 34}, Box{X: 300, W: 50}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.OverlapsX(tc.b); got != tc.expected {
				t.Errorf("OverlapsX() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.OverlapsX(tc.a); got != tc.expected {
				t.Errorf("OverlapsX() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxWithinY(t *testing.T) {
	b := Box{Y: 100, H: 24}

	if !b.WithinY(50, 200) {
		t.Error("box should be within [50, 200]")
	}
	if !b.WithinY(100, 124) {
		t.Error("box should be within its own span")
	}
	if b.WithinY(101, 200) {
		t.Error("box starting above top should not be within")
	}
	if b.WithinY(50, 123.9) {
		t.Error("box ending below bottom should not be within")
	}
}

func TestBoxEdges(t *testing.T) {
	b := Box{X: 5, Y: 10, W: 20, H: 15}
	if b.Right() != 25 {
		t.Errorf("Right() = %f, expected 25", b.Right())
	}
	if b.Bottom() != 25 {
		t.Errorf("Bottom() = %f, expected 25", b.Bottom())
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
