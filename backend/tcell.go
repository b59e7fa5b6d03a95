package backend

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termframe/buffer"
	"github.com/lixenwraith/termframe/layout"
	"github.com/lixenwraith/termframe/style"
)

// TcellBackend drives a tcell Screen, trading the direct-ANSI path for
// terminfo-based portability. Screen ownership is scoped the same way as
// TermBackend: NewTcell initializes, Close finalizes.
type TcellBackend struct {
	screen  tcell.Screen
	cursorX int
	cursorY int
	hidden  bool
	closed  bool
}

// NewTcell allocates and initializes a tcell screen
func NewTcell() (*TcellBackend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("allocate screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return &TcellBackend{screen: screen, hidden: true}, nil
}

// Screen exposes the underlying tcell screen, mainly for event polling in
// the application's input loop
func (b *TcellBackend) Screen() tcell.Screen {
	return b.screen
}

// Close finalizes the screen and restores the terminal
func (b *TcellBackend) Close() error {
	if b.closed {
		return ErrClosed
	}
	b.closed = true
	b.screen.Fini()
	return nil
}

func (b *TcellBackend) Size() (layout.Rect, error) {
	if b.closed {
		return layout.Rect{}, ErrClosed
	}
	w, h := b.screen.Size()
	return layout.Rect{Width: w, Height: h}, nil
}

func (b *TcellBackend) Draw(updates []buffer.Update) error {
	if b.closed {
		return ErrClosed
	}
	for _, u := range updates {
		main, combining := splitRunes(u.Cell.Symbol)
		b.screen.SetContent(u.X, u.Y, main, combining, toTcellStyle(u.Cell.Style))
	}
	return nil
}

func (b *TcellBackend) HideCursor() error {
	if b.closed {
		return ErrClosed
	}
	b.hidden = true
	b.screen.HideCursor()
	return nil
}

func (b *TcellBackend) ShowCursor() error {
	if b.closed {
		return ErrClosed
	}
	b.hidden = false
	b.screen.ShowCursor(b.cursorX, b.cursorY)
	return nil
}

func (b *TcellBackend) SetCursor(x, y int) error {
	if b.closed {
		return ErrClosed
	}
	b.cursorX, b.cursorY = x, y
	if !b.hidden {
		b.screen.ShowCursor(x, y)
	}
	return nil
}

func (b *TcellBackend) GetCursor() (int, int, error) {
	if b.closed {
		return 0, 0, ErrClosed
	}
	return b.cursorX, b.cursorY, nil
}

func (b *TcellBackend) Clear() error {
	if b.closed {
		return ErrClosed
	}
	b.screen.Clear()
	return nil
}

func (b *TcellBackend) Flush() error {
	if b.closed {
		return ErrClosed
	}
	b.screen.Show()
	return nil
}

// splitRunes separates a grapheme cluster into tcell's primary rune plus
// combining runes
func splitRunes(symbol string) (rune, []rune) {
	if symbol == "" {
		return ' ', nil
	}
	runes := []rune(symbol)
	if len(runes) == 1 {
		return runes[0], nil
	}
	return runes[0], runes[1:]
}

func toTcellStyle(st style.Style) tcell.Style {
	result := tcell.StyleDefault.
		Foreground(toTcellColor(st.Fg)).
		Background(toTcellColor(st.Bg))

	mods := st.Mods
	result = result.
		Bold(mods.Has(style.ModBold)).
		Dim(mods.Has(style.ModDim)).
		Italic(mods.Has(style.ModItalic)).
		Underline(mods.Has(style.ModUnderlined)).
		Blink(mods.Has(style.ModSlowBlink) || mods.Has(style.ModRapidBlink)).
		Reverse(mods.Has(style.ModReversed)).
		StrikeThrough(mods.Has(style.ModCrossedOut))
	return result
}

func toTcellColor(c style.Color) tcell.Color {
	switch c.Mode {
	case style.ColorIndexed:
		return tcell.PaletteColor(int(c.Index))
	case style.ColorRGB:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return tcell.ColorDefault
}
