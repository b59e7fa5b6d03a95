package widgets

import (
	"github.com/lixenwraith/termframe/buffer"
	"github.com/lixenwraith/termframe/layout"
)

// Clear resets every cell in its area to the blank unstyled cell. Rendered
// before another widget it punches a hole through whatever earlier render
// calls left there, which is how floating panels claim clean ground.
type Clear struct{}

func (Clear) Render(area layout.Rect, buf *buffer.Buffer) {
	for y := area.Top(); y < area.Bottom(); y++ {
		for x := area.Left(); x < area.Right(); x++ {
			buf.Set(x, y, buffer.EmptyCell)
		}
	}
}
