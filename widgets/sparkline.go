package widgets

import (
	"github.com/lixenwraith/termframe/buffer"
	"github.com/lixenwraith/termframe/layout"
	"github.com/lixenwraith/termframe/style"
	"github.com/lixenwraith/termframe/symbols"
)

// Sparkline renders data as a row of eighth-block bars scaled against the
// largest value. With more than one row of height, bars stack bottom-up
// across rows for finer resolution.
type Sparkline struct {
	Block Block
	Data  []uint64
	// Max overrides the scale ceiling; zero means scale to the data maximum
	Max   uint64
	Style style.Style
}

func (s Sparkline) Render(area layout.Rect, buf *buffer.Buffer) {
	s.Block.Render(area, buf)
	inner := s.Block.Inner(area)
	if inner.Width < 1 || inner.Height < 1 || len(s.Data) == 0 {
		return
	}

	max := s.Max
	if max == 0 {
		for _, v := range s.Data {
			if v > max {
				max = v
			}
		}
	}
	if max == 0 {
		max = 1
	}

	shown := min(len(s.Data), inner.Width)
	levels := make([]uint64, shown)
	for i := range levels {
		levels[i] = s.Data[i] * uint64(inner.Height) * 8 / max
	}

	for row := inner.Height - 1; row >= 0; row-- {
		y := inner.Y + row
		for i := range levels {
			level := min(levels[i], 8)
			buf.Set(inner.X+i, y, buffer.Cell{
				Symbol: symbols.BarLevel(int(level)),
				Style:  s.Style,
			})
			if levels[i] > 8 {
				levels[i] -= 8
			} else {
				levels[i] = 0
			}
		}
	}
}
