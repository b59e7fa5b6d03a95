package canvas

import "github.com/lixenwraith/termframe/style"

// Rectangle is an axis-aligned outline in world coordinates
type Rectangle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Color  style.Color
}

func (r Rectangle) Draw(p *Painter) {
	edges := []Line{
		{X1: r.X, Y1: r.Y, X2: r.X, Y2: r.Y + r.Height, Color: r.Color},
		{X1: r.X, Y1: r.Y + r.Height, X2: r.X + r.Width, Y2: r.Y + r.Height, Color: r.Color},
		{X1: r.X + r.Width, Y1: r.Y, X2: r.X + r.Width, Y2: r.Y + r.Height, Color: r.Color},
		{X1: r.X, Y1: r.Y, X2: r.X + r.Width, Y2: r.Y, Color: r.Color},
	}
	for _, e := range edges {
		e.Draw(p)
	}
}
