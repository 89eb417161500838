package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestPointChebyshev(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Point
		expected int
	}{
		{"same point", Pt(2, 2), Pt(2, 2), 0},
		{"horizontal neighbour", Pt(2, 2), Pt(3, 2), 1},
		{"vertical neighbour", Pt(2, 2), Pt(2, 1), 1},
		{"diagonal neighbour", Pt(2, 2), Pt(1, 1), 1},
		{"two columns", Pt(0, 0), Pt(2, 0), 2},
		{"knight jump", Pt(0, 0), Pt(1, 2), 2},
		{"far away", Pt(0, 0), Pt(7, 3), 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if d := tc.a.Chebyshev(tc.b); d != tc.expected {
				t.Errorf("Chebyshev() = %d, expected %d", d, tc.expected)
			}
			if d := tc.b.Chebyshev(tc.a); d != tc.expected {
				t.Errorf("Chebyshev() (reversed) = %d, expected %d", d, tc.expected)
			}
		})
	}
}

func TestPointAdjacent(t *testing.T) {
	center := Pt(3, 3)

	adjacent := 0
	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			p := Pt(x, y)
			if center.Adjacent(p) != p.Adjacent(center) {
				t.Errorf("Adjacent() should be symmetric for %v", p)
			}
			if center.Adjacent(p) {
				adjacent++
			}
		}
	}

	if adjacent != 8 {
		t.Errorf("Expected 8 neighbours, got %d", adjacent)
	}
	if center.Adjacent(center) {
		t.Error("A point should not be adjacent to itself")
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}
