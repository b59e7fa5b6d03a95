// Package buffer implements the double-buffered cell grid widgets render
// into and the diff the backend replays onto the terminal.
//
// A Buffer is addressed in absolute terminal coordinates: its area may start
// away from the origin and all operations take global positions. Writes
// outside the area clip silently so a widget bug cannot crash a render loop;
// reads outside the area report a typed error.
package buffer

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/lixenwraith/termframe/layout"
	"github.com/lixenwraith/termframe/style"
	"github.com/lixenwraith/termframe/text"
)

// ErrOutOfBounds reports a read at a position outside the buffer's area
var ErrOutOfBounds = errors.New("position outside buffer area")

// Buffer is a rectangular grid of cells covering its area exactly
type Buffer struct {
	area  layout.Rect
	cells []Cell
}

// Update is one changed cell at an absolute position, the unit the diff
// emits and a backend consumes
type Update struct {
	X    int
	Y    int
	Cell Cell
}

// New returns a buffer sized to area, filled with blank cells
func New(area layout.Rect) *Buffer {
	return Filled(area, EmptyCell)
}

// Filled returns a buffer sized to area with every cell set to c
func Filled(area layout.Rect, c Cell) *Buffer {
	cells := make([]Cell, area.Area())
	for i := range cells {
		cells[i] = c
	}
	return &Buffer{area: area, cells: cells}
}

// Area returns the rect the buffer covers
func (b *Buffer) Area() layout.Rect {
	return b.area
}

// index maps an absolute position to a cell slot, reporting containment
func (b *Buffer) index(x, y int) (int, bool) {
	if !b.area.Contains(x, y) {
		return 0, false
	}
	return (y-b.area.Y)*b.area.Width + (x - b.area.X), true
}

// Get returns the cell at an absolute position. Out-of-area reads fail with
// ErrOutOfBounds so caller mistakes surface in tests.
func (b *Buffer) Get(x, y int) (Cell, error) {
	idx, ok := b.index(x, y)
	if !ok {
		return Cell{}, fmt.Errorf("get (%d,%d) outside %s: %w", x, y, b.area, ErrOutOfBounds)
	}
	return b.cells[idx], nil
}

// Set writes a cell at an absolute position. Out-of-area writes clip. A wide
// grapheme reserves its following column with a placeholder, blanking
// whatever it straddles; a wide grapheme that would hang past the right edge
// degrades to a blank cell.
func (b *Buffer) Set(x, y int, c Cell) {
	idx, ok := b.index(x, y)
	if !ok {
		return
	}

	w := c.Width()
	if w <= 1 {
		b.dissolveWide(idx)
		b.cells[idx] = c
		return
	}

	if x+w > b.area.Right() {
		b.dissolveWide(idx)
		b.cells[idx] = Cell{Symbol: " ", Style: c.Style}
		return
	}

	b.dissolveWide(idx)
	b.cells[idx] = c
	for i := 1; i < w; i++ {
		b.dissolveWide(idx + i)
		b.cells[idx+i] = Cell{Style: c.Style}
	}
}

// dissolveWide breaks up any wide pair overlapping the slot about to be
// written, so no half grapheme or orphan placeholder survives the write
func (b *Buffer) dissolveWide(idx int) {
	// a valid idx implies a positive width
	rowStart := (idx / b.area.Width) * b.area.Width

	if b.cells[idx].IsPlaceholder() && idx > rowStart {
		if owner := &b.cells[idx-1]; owner.Width() > 1 {
			*owner = Cell{Symbol: " ", Style: owner.Style}
		}
	}
	if b.cells[idx].Width() > 1 {
		rowEnd := rowStart + b.area.Width
		for i := idx + 1; i < rowEnd && b.cells[i].IsPlaceholder(); i++ {
			b.cells[i] = Cell{Symbol: " ", Style: b.cells[i].Style}
		}
	}
}

// SetSymbol replaces the grapheme at (x, y), patching st over the cell's
// existing style. Border and bar drawing build on this primitive.
func (b *Buffer) SetSymbol(x, y int, symbol string, st style.Style) {
	idx, ok := b.index(x, y)
	if !ok {
		return
	}
	b.Set(x, y, Cell{Symbol: symbol, Style: b.cells[idx].Style.Patch(st)})
}

// SetStyle patches st into every cell of the sub-rectangle, leaving
// graphemes untouched
func (b *Buffer) SetStyle(area layout.Rect, st style.Style) {
	area = b.area.Intersection(area)
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			idx, _ := b.index(x, y)
			b.cells[idx].Style = b.cells[idx].Style.Patch(st)
		}
	}
}

// SetString writes s at (x, y) until the area's right edge, returning the
// column after the last cell written
func (b *Buffer) SetString(x, y int, s string, st style.Style) int {
	return b.SetStringN(x, y, s, math.MaxInt, st)
}

// SetStringN writes s grapheme by grapheme starting at (x, y), advancing by
// display width and stopping after maxWidth columns or at the area's right
// edge, whichever comes first. A wide grapheme that does not fully fit is
// dropped. Returns the column after the last cell written.
func (b *Buffer) SetStringN(x, y int, s string, maxWidth int, st style.Style) int {
	if y < b.area.Y || y >= b.area.Bottom() {
		return x
	}

	limit := b.area.Right()
	if maxWidth < limit-x {
		limit = x + maxWidth
	}

	rest := s
	state := -1
	for len(rest) > 0 && x < limit {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		w := runewidth.StringWidth(cluster)
		if w == 0 {
			continue
		}
		if x+w > limit {
			break
		}
		if x >= b.area.X {
			b.Set(x, y, Cell{Symbol: cluster, Style: st})
		}
		x += w
	}
	return x
}

// SetLine writes a styled line at (x, y) within maxWidth columns, returning
// the column after the last cell written
func (b *Buffer) SetLine(x, y int, line text.Line, maxWidth int) int {
	remaining := maxWidth
	for _, sp := range line.Spans {
		if remaining <= 0 {
			break
		}
		next := b.SetStringN(x, y, sp.Content, remaining, sp.Style)
		remaining -= next - x
		x = next
	}
	return x
}

// Fill sets every cell to c
func (b *Buffer) Fill(c Cell) {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = c
	for i := 1; i < len(b.cells); i *= 2 {
		copy(b.cells[i:], b.cells[:i])
	}
}

// Reset blanks every cell
func (b *Buffer) Reset() {
	b.Fill(EmptyCell)
}

// Resize retags the buffer to a new area, reusing the cell slab when it is
// large enough. Content does not survive a resize; the caller is expected to
// redraw fully, since cell addressing is not meaningful across sizes.
func (b *Buffer) Resize(area layout.Rect) {
	length := area.Area()
	if cap(b.cells) >= length {
		b.cells = b.cells[:length]
	} else {
		b.cells = make([]Cell, length)
	}
	b.area = area
	b.Reset()
}

// Diff compares b against prev and returns the changed cells in row-major
// order. Wide-grapheme placeholders are never emitted: the cursor advance of
// the wide cell itself accounts for their column. Buffers of differing areas
// cannot be compared cell-wise, so the whole of b is returned.
func (b *Buffer) Diff(prev *Buffer) []Update {
	if prev == nil || prev.area != b.area {
		return b.allUpdates()
	}

	var updates []Update
	for i, c := range b.cells {
		if c.IsPlaceholder() {
			continue
		}
		if prev.cells[i] != c {
			updates = append(updates, Update{
				X:    b.area.X + i%b.area.Width,
				Y:    b.area.Y + i/b.area.Width,
				Cell: c,
			})
		}
	}
	return updates
}

func (b *Buffer) allUpdates() []Update {
	if len(b.cells) == 0 {
		return nil
	}
	updates := make([]Update, 0, len(b.cells))
	for i, c := range b.cells {
		if c.IsPlaceholder() {
			continue
		}
		updates = append(updates, Update{
			X:    b.area.X + i%b.area.Width,
			Y:    b.area.Y + i/b.area.Width,
			Cell: c,
		})
	}
	return updates
}

// Merge grows the buffer to the union of both areas and overlays other's
// cells, which win wherever the two overlap
func (b *Buffer) Merge(other *Buffer) {
	area := b.area.Union(other.area)
	merged := make([]Cell, area.Area())
	for i := range merged {
		merged[i] = EmptyCell
	}

	place := func(src *Buffer) {
		if src.area.Width == 0 {
			return
		}
		for i, c := range src.cells {
			x := src.area.X + i%src.area.Width
			y := src.area.Y + i/src.area.Width
			merged[(y-area.Y)*area.Width+(x-area.X)] = c
		}
	}
	place(b)
	place(other)

	b.area = area
	b.cells = merged
}

// String renders the symbol grid one row per line, eliding placeholders, so
// tests can compare whole frames as literals
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.area.Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.area.Width; x++ {
			sb.WriteString(b.cells[y*b.area.Width+x].Symbol)
		}
	}
	return sb.String()
}
