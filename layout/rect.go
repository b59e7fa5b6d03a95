package layout

import "fmt"

// Rect is an axis-aligned rectangle in terminal-cell units. Width and Height
// are never negative; a zero-area rect is valid and denotes nothing to draw.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRect returns a rect with negative dimensions clamped to zero
func NewRect(x, y, width, height int) Rect {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Area returns the number of cells the rect covers
func (r Rect) Area() int {
	return r.Width * r.Height
}

// Left returns the first column inside the rect
func (r Rect) Left() int {
	return r.X
}

// Right returns the first column past the rect
func (r Rect) Right() int {
	return r.X + r.Width
}

// Top returns the first row inside the rect
func (r Rect) Top() int {
	return r.Y
}

// Bottom returns the first row past the rect
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Contains returns true if the cell at (x, y) lies inside the rect
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inner returns the rect shrunk by the margin on all four sides, collapsing
// to a zero rect when the margin exceeds the available space
func (r Rect) Inner(m Margin) Rect {
	if r.Width < 2*m.Horizontal || r.Height < 2*m.Vertical {
		return Rect{}
	}
	return Rect{
		X:      r.X + m.Horizontal,
		Y:      r.Y + m.Vertical,
		Width:  r.Width - 2*m.Horizontal,
		Height: r.Height - 2*m.Vertical,
	}
}

// Union returns the smallest rect covering both
func (r Rect) Union(o Rect) Rect {
	x1 := min(r.X, o.X)
	y1 := min(r.Y, o.Y)
	x2 := max(r.Right(), o.Right())
	y2 := max(r.Bottom(), o.Bottom())
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Intersection returns the overlap of both rects, zero when disjoint
func (r Rect) Intersection(o Rect) Rect {
	x1 := max(r.X, o.X)
	y1 := max(r.Y, o.Y)
	x2 := min(r.Right(), o.Right())
	y2 := min(r.Bottom(), o.Bottom())
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Intersects returns true if the rects share at least one cell
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}

// Margin is symmetric spacing subtracted from a rect before splitting
type Margin struct {
	Horizontal int
	Vertical   int
}
