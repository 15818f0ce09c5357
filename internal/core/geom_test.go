package core

import (
	"image/color"
	"testing"
)

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{"overlapping", Box{0, 0, 10, 10}, Box{5, 5, 10, 10}, true},
		{"fractional overlap", Box{0, 0, 10.5, 10}, Box{10.25, 0, 5, 5}, true},
		{"touching right edge", Box{0, 0, 10, 10}, Box{10, 0, 10, 10}, false},
		{"touching bottom edge", Box{0, 0, 10, 10}, Box{0, 10, 10, 10}, false},
		{"far apart", Box{0, 0, 1, 1}, Box{100, 100, 1, 1}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		in       float64
		expected int
	}{
		{0, 0},
		{2.4, 2},
		{2.5, 3},
		{-2.5, -2},
		{-2.6, -3},
		{79.5, 80},
	}

	for _, tc := range tests {
		if got := Round(tc.in); got != tc.expected {
			t.Errorf("Round(%v) = %d, expected %d", tc.in, got, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Max(5, 10) != 10 {
		t.Error("Min/Max returned the wrong operand")
	}
}

func TestColorFor(t *testing.T) {
	if got := ColorFor(Background); got != ColorDefault {
		t.Errorf("ColorFor(Background) = %v, expected ColorDefault", got)
	}
	if got := ColorFor(Ink); got != ColorInk {
		t.Errorf("ColorFor(Ink) = %v, expected ColorInk", got)
	}
	if got := ColorFor(color.Black); got != ColorInk {
		t.Errorf("ColorFor(Black) = %v, expected ColorInk", got)
	}
}
