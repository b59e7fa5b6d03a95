package canvas

import "github.com/lixenwraith/termframe/style"

// Line is a straight segment between two world coordinates
type Line struct {
	X1    float64
	Y1    float64
	X2    float64
	Y2    float64
	Color style.Color
}

func (l Line) Draw(p *Painter) {
	x0, y0, ok := p.GetPoint(l.X1, l.Y1)
	if !ok {
		return
	}
	x1, y1, ok := p.GetPoint(l.X2, l.Y2)
	if !ok {
		return
	}
	for _, pt := range linePoints(x0, y0, x1, y1) {
		p.Paint(pt[0], pt[1], l.Color)
	}
}

// linePoints walks the 8-connected Bresenham raster between two pixels,
// including both endpoints, with no gaps and no repeats
func linePoints(x0, y0, x1, y1 int) [][2]int {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	points := make([][2]int, 0, max(dx, dy)+1)
	x, y := x0, y0
	err := dx - dy
	for {
		points = append(points, [2]int{x, y})
		if x == x1 && y == y1 {
			return points
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}
