package layout

import "testing"

func TestNewRectClampsNegative(t *testing.T) {
	r := NewRect(1, 2, -5, -3)
	if r.Width != 0 || r.Height != 0 {
		t.Errorf("Expected zero dimensions, got %dx%d", r.Width, r.Height)
	}
	if r.Area() != 0 {
		t.Errorf("Expected zero area, got %d", r.Area())
	}
}

func TestInner(t *testing.T) {
	tests := []struct {
		name   string
		rect   Rect
		margin Margin
		want   Rect
	}{
		{
			"Plain margin",
			Rect{X: 0, Y: 0, Width: 10, Height: 10},
			Margin{Horizontal: 1, Vertical: 1},
			Rect{X: 1, Y: 1, Width: 8, Height: 8},
		},
		{
			"Zero margin",
			Rect{X: 3, Y: 4, Width: 5, Height: 6},
			Margin{},
			Rect{X: 3, Y: 4, Width: 5, Height: 6},
		},
		{
			"Margin exceeds width",
			Rect{Width: 3, Height: 10},
			Margin{Horizontal: 2, Vertical: 0},
			Rect{},
		},
		{
			"Margin exceeds height",
			Rect{Width: 10, Height: 1},
			Margin{Horizontal: 0, Vertical: 1},
			Rect{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.Inner(tt.margin); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestUnionIntersection(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 5, Y: 5, Width: 10, Height: 10}

	u := a.Union(b)
	if u != (Rect{X: 0, Y: 0, Width: 15, Height: 15}) {
		t.Errorf("Unexpected union %v", u)
	}

	i := a.Intersection(b)
	if i != (Rect{X: 5, Y: 5, Width: 5, Height: 5}) {
		t.Errorf("Unexpected intersection %v", i)
	}

	if !a.Intersects(b) {
		t.Errorf("Expected rects to intersect")
	}
}

func TestIntersectionDisjoint(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 5, Height: 5}
	b := Rect{X: 5, Y: 0, Width: 5, Height: 5}

	if a.Intersects(b) {
		t.Errorf("Expected touching rects to not intersect")
	}
	if got := a.Intersection(b); got != (Rect{}) {
		t.Errorf("Expected zero intersection, got %v", got)
	}
}

func TestContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, Width: 4, Height: 2}

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"Top-left corner", 2, 3, true},
		{"Bottom-right inside", 5, 4, true},
		{"Right edge outside", 6, 3, false},
		{"Bottom edge outside", 2, 5, false},
		{"Left of rect", 1, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d,%d): expected %v, got %v", tt.x, tt.y, tt.want, got)
			}
		})
	}
}
