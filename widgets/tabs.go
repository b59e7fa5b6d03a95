package widgets

import (
	"github.com/lixenwraith/termframe/buffer"
	"github.com/lixenwraith/termframe/layout"
	"github.com/lixenwraith/termframe/style"
	"github.com/lixenwraith/termframe/symbols"
	"github.com/lixenwraith/termframe/text"
)

// Tabs renders a one-row tab strip: titles separated by a divider, the
// selected title patched with the highlight style. Titles past the right
// edge clip.
type Tabs struct {
	Block          Block
	Titles         []text.Line
	Selected       int
	Style          style.Style
	HighlightStyle style.Style
	// Divider defaults to a vertical bar
	Divider text.Span
}

func (t Tabs) Render(area layout.Rect, buf *buffer.Buffer) {
	buf.SetStyle(area, t.Style)
	t.Block.Render(area, buf)
	inner := t.Block.Inner(area)
	if inner.Height < 1 {
		return
	}

	divider := t.Divider
	if divider.Content == "" {
		divider = text.Raw(symbols.LineNormal.Vertical)
	}

	x := inner.X
	for i, title := range t.Titles {
		if i == t.Selected {
			title = title.PatchStyle(t.HighlightStyle)
		} else {
			title = title.PatchStyle(t.Style)
		}

		x++
		remaining := inner.Right() - x
		if remaining <= 0 {
			break
		}
		x = buf.SetLine(x, inner.Y, title, remaining)

		x++
		remaining = inner.Right() - x
		if remaining <= 0 || i == len(t.Titles)-1 {
			break
		}
		x = buf.SetStringN(x, inner.Y, divider.Content, remaining, t.Style.Patch(divider.Style))
	}
}
