package widgets

import (
	"github.com/lixenwraith/termframe/buffer"
	"github.com/lixenwraith/termframe/layout"
	"github.com/lixenwraith/termframe/style"
	"github.com/lixenwraith/termframe/symbols"
	"github.com/lixenwraith/termframe/text"
)

// Borders selects which edges of a block are drawn
type Borders uint8

const (
	BorderTop Borders = 1 << iota
	BorderRight
	BorderBottom
	BorderLeft

	BorderNone Borders = 0
	BorderAll          = BorderTop | BorderRight | BorderBottom | BorderLeft
)

// Has returns true if all edges in b are selected
func (bs Borders) Has(b Borders) bool {
	return bs&b == b
}

// BorderType selects the box-drawing weight of a block's border
type BorderType uint8

const (
	BorderPlain BorderType = iota
	BorderRounded
	BorderDouble
	BorderThick
)

// lineSet returns the glyphs for a border type
func (bt BorderType) lineSet() symbols.LineSet {
	switch bt {
	case BorderRounded:
		return symbols.LineRounded
	case BorderDouble:
		return symbols.LineDouble
	case BorderThick:
		return symbols.LineThick
	}
	return symbols.LineNormal
}

// Block frames an area with optional borders and a title, and is the common
// base other widgets embed for their chrome. Its Inner method yields the
// content area remaining inside the chrome.
type Block struct {
	Title          text.Line
	TitleAlignment layout.Alignment
	Borders        Borders
	BorderType     BorderType
	BorderStyle    style.Style
	Style          style.Style
}

// Inner returns the area left for content inside the borders and title row
func (b Block) Inner(area layout.Rect) layout.Rect {
	inner := area
	if b.Borders.Has(BorderLeft) {
		inner.X++
		inner.Width = max(inner.Width-1, 0)
	}
	if b.Borders.Has(BorderTop) || len(b.Title.Spans) > 0 {
		inner.Y++
		inner.Height = max(inner.Height-1, 0)
	}
	if b.Borders.Has(BorderRight) {
		inner.Width = max(inner.Width-1, 0)
	}
	if b.Borders.Has(BorderBottom) {
		inner.Height = max(inner.Height-1, 0)
	}
	return inner
}

func (b Block) Render(area layout.Rect, buf *buffer.Buffer) {
	if area.Area() == 0 {
		return
	}
	buf.SetStyle(area, b.Style)
	ls := b.BorderType.lineSet()

	if b.Borders.Has(BorderLeft) {
		for y := area.Top(); y < area.Bottom(); y++ {
			buf.SetSymbol(area.Left(), y, ls.Vertical, b.BorderStyle)
		}
	}
	if b.Borders.Has(BorderTop) {
		for x := area.Left(); x < area.Right(); x++ {
			buf.SetSymbol(x, area.Top(), ls.Horizontal, b.BorderStyle)
		}
	}
	if b.Borders.Has(BorderRight) {
		for y := area.Top(); y < area.Bottom(); y++ {
			buf.SetSymbol(area.Right()-1, y, ls.Vertical, b.BorderStyle)
		}
	}
	if b.Borders.Has(BorderBottom) {
		for x := area.Left(); x < area.Right(); x++ {
			buf.SetSymbol(x, area.Bottom()-1, ls.Horizontal, b.BorderStyle)
		}
	}

	if b.Borders.Has(BorderLeft | BorderTop) {
		buf.SetSymbol(area.Left(), area.Top(), ls.TopLeft, b.BorderStyle)
	}
	if b.Borders.Has(BorderRight | BorderTop) {
		buf.SetSymbol(area.Right()-1, area.Top(), ls.TopRight, b.BorderStyle)
	}
	if b.Borders.Has(BorderLeft | BorderBottom) {
		buf.SetSymbol(area.Left(), area.Bottom()-1, ls.BottomLeft, b.BorderStyle)
	}
	if b.Borders.Has(BorderRight | BorderBottom) {
		buf.SetSymbol(area.Right()-1, area.Bottom()-1, ls.BottomRight, b.BorderStyle)
	}

	if len(b.Title.Spans) > 0 {
		leftDx := 0
		if b.Borders.Has(BorderLeft) {
			leftDx = 1
		}
		rightDx := 0
		if b.Borders.Has(BorderRight) {
			rightDx = 1
		}
		titleWidth := max(area.Width-leftDx-rightDx, 0)

		var dx int
		switch b.TitleAlignment {
		case layout.AlignCenter:
			dx = max(max(area.Width-b.Title.Width(), 0)/2, leftDx)
		case layout.AlignRight:
			dx = max(area.Width-b.Title.Width()-rightDx, leftDx)
		default:
			dx = leftDx
		}
		buf.SetLine(area.Left()+dx, area.Top(), b.Title, titleWidth)
	}
}
