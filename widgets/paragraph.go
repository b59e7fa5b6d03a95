package widgets

import (
	"github.com/lixenwraith/termframe/buffer"
	"github.com/lixenwraith/termframe/layout"
	"github.com/lixenwraith/termframe/style"
	"github.com/lixenwraith/termframe/text"
)

// Wrap configures optional word wrapping for a paragraph
type Wrap struct {
	// Trim drops leading whitespace from each wrapped line
	Trim bool
}

// Paragraph renders a block of styled text with optional wrapping, alignment,
// and scrolling. Without wrapping, lines run off the right edge and ScrollX
// shifts them; with wrapping, ScrollX is ignored.
type Paragraph struct {
	Block     Block
	Text      text.Text
	Style     style.Style
	Alignment layout.Alignment
	Wrap      *Wrap
	ScrollY   int
	ScrollX   int
}

func (p Paragraph) Render(area layout.Rect, buf *buffer.Buffer) {
	buf.SetStyle(area, p.Style)
	p.Block.Render(area, buf)
	inner := p.Block.Inner(area)
	if inner.Area() == 0 {
		return
	}

	styled := p.Text.PatchStyle(p.Style)

	var lines []text.Line
	if p.Wrap != nil {
		lines = text.Wrap(styled, inner.Width, p.Wrap.Trim)
	} else {
		lines = styled.Lines
		if p.ScrollX > 0 {
			shifted := make([]text.Line, len(lines))
			for i, l := range lines {
				shifted[i] = text.SkipColumns(l, p.ScrollX)
			}
			lines = shifted
		}
	}

	if p.ScrollY >= len(lines) {
		return
	}
	lines = lines[p.ScrollY:]

	for row, line := range lines {
		if row >= inner.Height {
			break
		}
		dx := 0
		switch p.Alignment {
		case layout.AlignCenter:
			dx = max(inner.Width-line.Width(), 0) / 2
		case layout.AlignRight:
			dx = max(inner.Width-line.Width(), 0)
		}
		buf.SetLine(inner.X+dx, inner.Y+row, line, inner.Width-dx)
	}
}
