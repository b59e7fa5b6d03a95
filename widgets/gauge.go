package widgets

import (
	"fmt"
	"math"

	"github.com/lixenwraith/termframe/buffer"
	"github.com/lixenwraith/termframe/layout"
	"github.com/lixenwraith/termframe/style"
	"github.com/lixenwraith/termframe/symbols"
	"github.com/lixenwraith/termframe/text"
)

// Gauge renders a horizontal progress bar filled to Ratio, with a centered
// label that stays readable on both halves: cells under the filled part swap
// foreground and background so the label shows inverted instead of vanishing.
type Gauge struct {
	Block Block
	// Ratio is the filled fraction, clamped to [0, 1]
	Ratio      float64
	Label      text.Span
	Style      style.Style
	GaugeStyle style.Style
	// UseUnicode refines the fill edge with eighth-block glyphs
	UseUnicode bool
}

func (g Gauge) Render(area layout.Rect, buf *buffer.Buffer) {
	buf.SetStyle(area, g.Style)
	g.Block.Render(area, buf)
	inner := g.Block.Inner(area)
	if inner.Width < 1 || inner.Height < 1 {
		return
	}
	buf.SetStyle(inner, g.GaugeStyle)

	ratio := min(max(g.Ratio, 0), 1)
	label := g.Label
	if label.Content == "" {
		label = text.Raw(fmt.Sprintf("%.0f%%", ratio*100))
	}

	width := float64(inner.Width) * ratio
	var end int
	if g.UseUnicode {
		end = inner.X + int(math.Floor(width))
	} else {
		end = inner.X + int(math.Round(width))
	}

	center := inner.Y + inner.Height/2
	for y := inner.Y; y < inner.Bottom(); y++ {
		for x := inner.X; x < end; x++ {
			buf.Set(x, y, buffer.Cell{Symbol: " ", Style: g.GaugeStyle})
		}
		if g.UseUnicode && ratio < 1 {
			eighths := int(math.Round(math.Mod(width, 1) * 8))
			buf.Set(end, y, buffer.Cell{
				Symbol: symbols.BlockLevels[eighths],
				Style:  g.GaugeStyle,
			})
		}

		colorEnd := end
		if y == center {
			middle := inner.X + max(inner.Width-label.Width(), 0)/2
			buf.SetStringN(middle, y, label.Content, inner.Right()-middle, g.GaugeStyle.Patch(label.Style))
			if g.UseUnicode && end >= middle && end < middle+label.Width() {
				colorEnd = inner.X + int(math.Round(width))
			}
		}

		// Invert the filled half so the label stays visible over it
		inverted := style.Style{Fg: g.GaugeStyle.Bg, Bg: g.GaugeStyle.Fg}
		for x := inner.X; x < colorEnd; x++ {
			if c, err := buf.Get(x, y); err == nil {
				c.Style.Fg = inverted.Fg
				c.Style.Bg = inverted.Bg
				buf.Set(x, y, c)
			}
		}
	}
}
