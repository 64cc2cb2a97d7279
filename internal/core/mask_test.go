package core

import "testing"

func TestMaskOverlap(t *testing.T) {
	// Two 4x4 masks, each with only the top-left 2x2 solid.
	a := NewMask(4, 4)
	b := NewMask(4, 4)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			a.Set(x, y)
			b.Set(x, y)
		}
	}

	tests := []struct {
		name     string
		dx, dy   int
		expected bool
	}{
		{"same position", 0, 0, true},
		{"solid corner touches", 1, 1, true},
		{"boxes overlap, solids do not", 2, 2, false},
		{"b above-left, solid area reaches a", -1, -1, true},
		{"b far left", -2, 0, false},
		{"disjoint boxes", 10, 10, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.Overlap(b, tc.dx, tc.dy); got != tc.expected {
				t.Errorf("Overlap(%d, %d) = %v, expected %v", tc.dx, tc.dy, got, tc.expected)
			}
		})
	}
}

func TestMasksCollideUsesRects(t *testing.T) {
	a := NewMask(2, 2)
	a.Set(1, 1)
	b := NewMask(2, 2)
	b.Set(0, 0)

	if !MasksCollide(a, NewRect(10, 10, 2, 2), b, NewRect(11, 11, 2, 2)) {
		t.Error("expected collision at shared pixel (11, 11)")
	}
	if MasksCollide(a, NewRect(10, 10, 2, 2), b, NewRect(10, 10, 2, 2)) {
		t.Error("no shared solid pixel, expected no collision")
	}
	if MasksCollide(nil, NewRect(0, 0, 1, 1), b, NewRect(0, 0, 1, 1)) {
		t.Error("nil mask never collides")
	}
}

func TestMaskBounds(t *testing.T) {
	m := NewMask(3, 2)
	m.Set(5, 5)
	m.Set(2, 1)

	if n := solidCount(m); n != 1 {
		t.Errorf("solid pixels = %d, expected 1", n)
	}
	if m.At(-1, 0) || !m.At(2, 1) {
		t.Error("At() returned wrong values")
	}
}

func solidCount(m *Mask) int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}
