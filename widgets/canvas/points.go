package canvas

import "github.com/lixenwraith/termframe/style"

// Points is a cloud of world coordinates painted individually; points
// outside the canvas bounds drop silently
type Points struct {
	Coords [][2]float64
	Color  style.Color
}

func (pts Points) Draw(p *Painter) {
	for _, c := range pts.Coords {
		if x, y, ok := p.GetPoint(c[0], c[1]); ok {
			p.Paint(x, y, pts.Color)
		}
	}
}
