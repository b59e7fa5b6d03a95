package buffer

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/termframe/style"
)

// Cell is one terminal character position: a display grapheme plus its
// resolved style. Cells compare with ==, which the diff relies on.
//
// The zero Cell (empty symbol) is the placeholder occupying the column
// straddled by a preceding wide grapheme; it is never drawn on its own.
type Cell struct {
	Symbol string
	Style  style.Style
}

// EmptyCell is the blank unstyled cell a reset buffer is filled with
var EmptyCell = Cell{Symbol: " "}

// Width returns the display columns the cell occupies: 2 for wide graphemes,
// 0 for the placeholder
func (c Cell) Width() int {
	return runewidth.StringWidth(c.Symbol)
}

// IsPlaceholder returns true for the reserved column of a wide grapheme
func (c Cell) IsPlaceholder() bool {
	return c.Symbol == ""
}
