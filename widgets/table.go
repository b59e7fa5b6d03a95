package widgets

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/termframe/buffer"
	"github.com/lixenwraith/termframe/layout"
	"github.com/lixenwraith/termframe/style"
	"github.com/lixenwraith/termframe/text"
)

// Row is one table row: one text block per column
type Row struct {
	Cells []text.Text
	Style style.Style
}

// NewRow builds a single-line row from plain strings
func NewRow(cells ...string) Row {
	row := Row{Cells: make([]text.Text, len(cells))}
	for i, c := range cells {
		row.Cells[i] = text.RawText(c)
	}
	return row
}

func (r Row) height() int {
	h := 1
	for _, c := range r.Cells {
		if ch := c.Height(); ch > h {
			h = ch
		}
	}
	return h
}

// TableState is the caller-owned scroll and selection state of a Table,
// clamped by render the same way ListState is
type TableState struct {
	Offset   int
	Selected *int
}

// Select sets the selected row
func (s *TableState) Select(i int) {
	s.Selected = &i
}

// ClearSelection drops the selection and rewinds the scroll
func (s *TableState) ClearSelection() {
	s.Selected = nil
	s.Offset = 0
}

// Table renders rows of columns sized by layout constraints. Column widths
// resolve through the layout solver against the content width, so the same
// sizing rules apply as for screen splits.
type Table struct {
	Block           Block
	Header          Row
	Rows            []Row
	Widths          []layout.Constraint
	ColumnSpacing   int
	Style           style.Style
	HeaderStyle     style.Style
	HighlightStyle  style.Style
	HighlightSymbol string
}

// Render draws the table without selection state
func (t Table) Render(area layout.Rect, buf *buffer.Buffer) {
	var state TableState
	t.RenderStateful(area, buf, &state)
}

func (t Table) RenderStateful(area layout.Rect, buf *buffer.Buffer, state *TableState) {
	buf.SetStyle(area, t.Style)
	t.Block.Render(area, buf)
	inner := t.Block.Inner(area)
	if inner.Width < 1 || inner.Height < 1 || len(t.Widths) == 0 {
		return
	}

	symbolWidth := runewidth.StringWidth(t.HighlightSymbol)
	columns := t.columnRects(layout.Rect{
		X:      inner.X + symbolWidth,
		Y:      inner.Y,
		Width:  max(inner.Width-symbolWidth, 0),
		Height: inner.Height,
	})

	y := inner.Y
	if len(t.Header.Cells) > 0 {
		headerStyle := t.Style.Patch(t.HeaderStyle)
		buf.SetStyle(layout.Rect{X: inner.X, Y: y, Width: inner.Width, Height: 1}, headerStyle)
		t.renderRow(buf, t.Header, columns, y, inner.Bottom(), headerStyle)
		y += t.Header.height()
	}
	if y >= inner.Bottom() || len(t.Rows) == 0 {
		if len(t.Rows) == 0 {
			state.Selected = nil
			state.Offset = 0
		}
		return
	}

	if state.Selected != nil {
		if *state.Selected >= len(t.Rows) {
			*state.Selected = len(t.Rows) - 1
		}
		if *state.Selected < 0 {
			*state.Selected = 0
		}
	} else {
		state.Offset = 0
	}
	if state.Offset >= len(t.Rows) {
		state.Offset = len(t.Rows) - 1
	}
	if state.Offset < 0 {
		state.Offset = 0
	}

	visible := inner.Bottom() - y
	if state.Selected != nil {
		sel := *state.Selected
		if sel < state.Offset {
			state.Offset = sel
		} else if sel >= state.Offset+visible {
			state.Offset = sel - visible + 1
		}
	}

	hasSelection := state.Selected != nil
	blankSymbol := strings.Repeat(" ", symbolWidth)

	for i := state.Offset; i < len(t.Rows); i++ {
		row := t.Rows[i]
		if y >= inner.Bottom() {
			break
		}

		rowStyle := t.Style.Patch(row.Style)
		selected := hasSelection && *state.Selected == i
		rowArea := layout.Rect{X: inner.X, Y: y, Width: inner.Width, Height: min(row.height(), inner.Bottom()-y)}
		buf.SetStyle(rowArea, rowStyle)

		if hasSelection {
			symbol := blankSymbol
			if selected {
				symbol = t.HighlightSymbol
			}
			buf.SetStringN(inner.X, y, symbol, inner.Width, rowStyle)
		}
		t.renderRow(buf, row, columns, y, inner.Bottom(), rowStyle)
		if selected {
			buf.SetStyle(rowArea, t.HighlightStyle)
		}
		y += row.height()
	}
}

// renderRow writes one row's cells into their column rects starting at row y
func (t Table) renderRow(buf *buffer.Buffer, row Row, columns []layout.Rect, y, bottom int, st style.Style) {
	for col, content := range row.Cells {
		if col >= len(columns) {
			break
		}
		rect := columns[col]
		for j, line := range content.Lines {
			if y+j >= bottom {
				break
			}
			buf.SetLine(rect.X, y+j, line.PatchStyle(st), rect.Width)
		}
	}
}

// columnRects resolves the width constraints, interleaving fixed spacing
// segments between columns so the solver keeps the tiling exact
func (t Table) columnRects(content layout.Rect) []layout.Rect {
	constraints := make([]layout.Constraint, 0, len(t.Widths)*2-1)
	for i, c := range t.Widths {
		if i > 0 {
			constraints = append(constraints, layout.Length(t.ColumnSpacing))
		}
		constraints = append(constraints, c)
	}
	split := layout.Layout{
		Direction:   layout.Horizontal,
		Constraints: constraints,
	}.Split(content)

	columns := make([]layout.Rect, 0, len(t.Widths))
	for i := 0; i < len(split); i += 2 {
		columns = append(columns, split[i])
	}
	return columns
}
