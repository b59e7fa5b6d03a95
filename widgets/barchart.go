package widgets

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/termframe/buffer"
	"github.com/lixenwraith/termframe/layout"
	"github.com/lixenwraith/termframe/style"
	"github.com/lixenwraith/termframe/symbols"
)

// Bar is one labeled value in a bar chart
type Bar struct {
	Label string
	Value uint64
}

// BarChart renders vertical eighth-block bars with a label row underneath.
// Values print centered inside their bar when the bar is wide enough.
type BarChart struct {
	Block Block
	Data  []Bar
	// BarWidth is the columns per bar, BarGap the columns between bars
	BarWidth int
	BarGap   int
	// Max overrides the scale ceiling; zero means scale to the data maximum
	Max        uint64
	Style      style.Style
	BarStyle   style.Style
	ValueStyle style.Style
	LabelStyle style.Style
}

func (b BarChart) Render(area layout.Rect, buf *buffer.Buffer) {
	buf.SetStyle(area, b.Style)
	b.Block.Render(area, buf)
	inner := b.Block.Inner(area)
	if inner.Width < 1 || inner.Height < 2 || len(b.Data) == 0 {
		return
	}

	barWidth := max(b.BarWidth, 1)
	stride := barWidth + b.BarGap

	max := b.Max
	if max == 0 {
		for _, d := range b.Data {
			if d.Value > max {
				max = d.Value
			}
		}
	}
	if max == 0 {
		max = 1
	}

	// bottom row is reserved for labels
	barHeight := inner.Height - 1
	shown := min((inner.Width+b.BarGap)/stride, len(b.Data))

	levels := make([]uint64, shown)
	for i := range levels {
		levels[i] = b.Data[i].Value * uint64(barHeight) * 8 / max
	}

	for row := barHeight - 1; row >= 0; row-- {
		y := inner.Y + row
		for i := range levels {
			symbol := symbols.BarLevel(int(min(levels[i], 8)))
			for x := 0; x < barWidth; x++ {
				buf.Set(inner.X+i*stride+x, y, buffer.Cell{Symbol: symbol, Style: b.BarStyle})
			}
			if levels[i] > 8 {
				levels[i] -= 8
			} else {
				levels[i] = 0
			}
		}
	}

	for i := 0; i < shown; i++ {
		d := b.Data[i]
		barX := inner.X + i*stride
		if d.Value != 0 && inner.Height >= 2 {
			value := fmt.Sprintf("%d", d.Value)
			if w := runewidth.StringWidth(value); w < barWidth {
				buf.SetString(barX+(barWidth-w)/2, inner.Bottom()-2, value, b.BarStyle.Patch(b.ValueStyle))
			}
		}
		buf.SetStringN(barX, inner.Bottom()-1, d.Label, barWidth, b.LabelStyle)
	}
}
