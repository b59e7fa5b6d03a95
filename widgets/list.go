package widgets

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/termframe/buffer"
	"github.com/lixenwraith/termframe/layout"
	"github.com/lixenwraith/termframe/style"
	"github.com/lixenwraith/termframe/text"
)

// ListItem is one list entry; multi-line content occupies several rows
type ListItem struct {
	Content text.Text
	Style   style.Style
}

// Item returns a single-line unstyled list item
func Item(content string) ListItem {
	return ListItem{Content: text.RawText(content)}
}

func (it ListItem) height() int {
	return max(it.Content.Height(), 1)
}

// ListState is the scroll and selection state of a List, owned by the caller
// and carried across frames. Render clamps it to the rendered items: a
// selection past the end snaps to the last item and the offset moves so the
// selection stays visible. Moving the selection between frames is the
// caller's job.
type ListState struct {
	Offset   int
	Selected *int
}

// Select sets the selection, replacing any previous one
func (s *ListState) Select(i int) {
	s.Selected = &i
}

// ClearSelection drops the selection and rewinds the scroll
func (s *ListState) ClearSelection() {
	s.Selected = nil
	s.Offset = 0
}

// List renders items as rows with an optional highlighted selection. The
// highlight symbol prefixes the selected item and shifts all items right by
// its width so rows stay aligned.
type List struct {
	Block           Block
	Items           []ListItem
	Style           style.Style
	HighlightStyle  style.Style
	HighlightSymbol string
}

// Render draws the list without selection state
func (l List) Render(area layout.Rect, buf *buffer.Buffer) {
	var state ListState
	l.RenderStateful(area, buf, &state)
}

func (l List) RenderStateful(area layout.Rect, buf *buffer.Buffer, state *ListState) {
	buf.SetStyle(area, l.Style)
	l.Block.Render(area, buf)
	inner := l.Block.Inner(area)
	if inner.Width < 1 || inner.Height < 1 {
		return
	}

	if len(l.Items) == 0 {
		state.Selected = nil
		state.Offset = 0
		return
	}

	if state.Selected != nil {
		if *state.Selected >= len(l.Items) {
			*state.Selected = len(l.Items) - 1
		}
		if *state.Selected < 0 {
			*state.Selected = 0
		}
	} else {
		state.Offset = 0
	}
	if state.Offset >= len(l.Items) {
		state.Offset = len(l.Items) - 1
	}
	if state.Offset < 0 {
		state.Offset = 0
	}

	start, end := l.visibleWindow(state, inner.Height)
	state.Offset = start

	hasSelection := state.Selected != nil
	blankSymbol := strings.Repeat(" ", runewidth.StringWidth(l.HighlightSymbol))

	row := 0
	for i := start; i < end; i++ {
		item := l.Items[i]
		itemArea := layout.Rect{
			X:      inner.X,
			Y:      inner.Y + row,
			Width:  inner.Width,
			Height: min(item.height(), inner.Height-row),
		}
		row += item.height()

		itemStyle := l.Style.Patch(item.Style)
		buf.SetStyle(itemArea, itemStyle)

		selected := hasSelection && *state.Selected == i
		x := itemArea.X
		if hasSelection {
			symbol := blankSymbol
			if selected {
				symbol = l.HighlightSymbol
			}
			x = buf.SetStringN(x, itemArea.Y, symbol, itemArea.Width, itemStyle)
		}
		maxWidth := itemArea.Right() - x
		for j, line := range item.Content.Lines {
			if j >= itemArea.Height {
				break
			}
			buf.SetLine(x, itemArea.Y+j, line, maxWidth)
		}
		if selected {
			buf.SetStyle(itemArea, l.HighlightStyle)
		}
	}
}

// visibleWindow slides the offset so the selection is on screen and returns
// the [start, end) item range that fits the viewport height
func (l List) visibleWindow(state *ListState, viewHeight int) (int, int) {
	start := state.Offset
	end := state.Offset
	height := 0
	for _, item := range l.Items[state.Offset:] {
		if height+item.height() > viewHeight {
			break
		}
		height += item.height()
		end++
	}

	selected := 0
	if state.Selected != nil {
		selected = *state.Selected
	}
	for selected >= end {
		height += l.Items[end].height()
		end++
		for height > viewHeight {
			height -= l.Items[start].height()
			start++
		}
	}
	for selected < start {
		start--
		height += l.Items[start].height()
		for height > viewHeight {
			end--
			height -= l.Items[end].height()
		}
	}
	return start, end
}
