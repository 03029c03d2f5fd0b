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
		{"last cell", 29, 24, true},
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

func TestRectInset(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		n        int
		expected Rect
	}{
		{"shrink", NewRect(0, 0, 10, 8), 2, NewRect(2, 2, 6, 4)},
		{"zero", NewRect(3, 4, 5, 6), 0, NewRect(3, 4, 5, 6)},
		{"collapse", NewRect(0, 0, 3, 3), 2, NewRect(2, 2, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Inset(tc.n); got != tc.expected {
				t.Errorf("Inset(%d) = %+v, expected %+v", tc.n, got, tc.expected)
			}
		})
	}
}

func TestRectCenteredIn(t *testing.T) {
	outer := NewRect(10, 20, 100, 50)
	got := outer.CenteredIn(40, 10)
	expected := NewRect(40, 40, 40, 10)
	if got != expected {
		t.Errorf("CenteredIn = %+v, expected %+v", got, expected)
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5, 0, 1) = %f, expected 1", got)
	}
	if got := ClampF(-0.5, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.5, 0, 1) = %f, expected 0", got)
	}
	if got := ClampF(0.25, 0, 1); got != 0.25 {
		t.Errorf("ClampF(0.25, 0, 1) = %f, expected 0.25", got)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(2, 6, 0.5); got != 4 {
		t.Errorf("Lerp(2, 6, 0.5) = %f, expected 4", got)
	}
	if got := Lerp(2, 6, 0); got != 2 {
		t.Errorf("Lerp(2, 6, 0) = %f, expected 2", got)
	}
}
