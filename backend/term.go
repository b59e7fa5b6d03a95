package backend

import (
	"bufio"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/lixenwraith/termframe/buffer"
	"github.com/lixenwraith/termframe/style"
)

// ColorMode selects how RGB colors reach the terminal
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // quantize RGB to the xterm palette
	ColorModeTrueColor                  // emit 24-bit SGR sequences
)

// TermOptions configure a TermBackend
type TermOptions struct {
	In        *os.File
	Out       *os.File
	ColorMode ColorMode
	// AltScreen switches to the alternate screen for the backend's lifetime
	AltScreen bool
}

// DetectColorMode determines terminal color capability from the environment
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	termEnv := os.Getenv("TERM")
	if strings.Contains(termEnv, "truecolor") ||
		strings.Contains(termEnv, "24bit") ||
		strings.Contains(termEnv, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

// DefaultTermOptions returns stdin/stdout with detected color capability
func DefaultTermOptions() TermOptions {
	return TermOptions{
		In:        os.Stdin,
		Out:       os.Stdout,
		ColorMode: DetectColorMode(),
		AltScreen: true,
	}
}

// TermBackend writes ANSI escape sequences directly to a unix terminal. It
// owns raw mode for its lifetime: NewTerm acquires it, Close restores it on
// every exit path. Output is buffered; nothing reaches the terminal until
// Flush.
//
// Draw coalesces runs: consecutive updates on one row stream without cursor
// moves, and the SGR state is re-emitted only when a cell's style differs
// from the previous cell's.
type TermBackend struct {
	opts     TermOptions
	w        *bufio.Writer
	oldState *term.State
	closed   bool

	cursorX      int
	cursorY      int
	cursorValid  bool
	cursorHidden bool

	lastStyle style.Style
	lastValid bool

	resizeStop chan struct{}
	resizeDone chan struct{}
}

func (b *TermBackend) Draw(updates []buffer.Update) error {
	if b.closed {
		return ErrClosed
	}
	for _, u := range updates {
		if !b.cursorValid || u.Y != b.cursorY || u.X != b.cursorX {
			if b.cursorValid && u.Y == b.cursorY && u.X > b.cursorX {
				writeCursorForward(b.w, u.X-b.cursorX)
			} else {
				writeCursorPos(b.w, u.X, u.Y)
			}
			b.cursorX, b.cursorY = u.X, u.Y
			b.cursorValid = true
		}

		b.writeStyle(u.Cell.Style)
		symbol := u.Cell.Symbol
		if symbol == "" {
			symbol = " "
		}
		b.w.WriteString(symbol)
		b.cursorX += max(u.Cell.Width(), 1)
	}
	b.w.Write(csiSGR0)
	b.lastValid = false
	return nil
}

// writeStyle emits one combined SGR sequence when the style changes
func (b *TermBackend) writeStyle(st style.Style) {
	if b.lastValid && st == b.lastStyle {
		return
	}
	b.w.Write(csi)
	b.w.WriteByte('0')
	mods := st.Mods
	for _, m := range sgrMods {
		if mods.Has(m.flag) {
			b.w.WriteByte(';')
			writeInt(b.w, m.code)
		}
	}
	b.writeColor(st.Fg, 38)
	b.writeColor(st.Bg, 48)
	b.w.WriteByte('m')

	b.lastStyle = st
	b.lastValid = true
}

var sgrMods = []struct {
	flag style.Modifier
	code int
}{
	{style.ModBold, 1},
	{style.ModDim, 2},
	{style.ModItalic, 3},
	{style.ModUnderlined, 4},
	{style.ModSlowBlink, 5},
	{style.ModRapidBlink, 6},
	{style.ModReversed, 7},
	{style.ModHidden, 8},
	{style.ModCrossedOut, 9},
}

// writeColor appends one color's parameters; base is 38 for foreground, 48
// for background. Default colors need nothing because the sequence opens
// with a reset.
func (b *TermBackend) writeColor(c style.Color, base int) {
	switch c.Mode {
	case style.ColorIndexed:
		b.w.WriteByte(';')
		writeInt(b.w, base)
		b.w.WriteString(";5;")
		writeInt(b.w, int(c.Index))
	case style.ColorRGB:
		b.w.WriteByte(';')
		writeInt(b.w, base)
		if b.opts.ColorMode == ColorModeTrueColor {
			b.w.WriteString(";2;")
			writeInt(b.w, int(c.R))
			b.w.WriteByte(';')
			writeInt(b.w, int(c.G))
			b.w.WriteByte(';')
			writeInt(b.w, int(c.B))
		} else {
			b.w.WriteString(";5;")
			writeInt(b.w, int(rgbTo256(c.R, c.G, c.B)))
		}
	}
}

func (b *TermBackend) HideCursor() error {
	if b.closed {
		return ErrClosed
	}
	b.w.Write(csiCursorHide)
	b.cursorHidden = true
	return nil
}

func (b *TermBackend) ShowCursor() error {
	if b.closed {
		return ErrClosed
	}
	b.w.Write(csiCursorShow)
	b.cursorHidden = false
	return nil
}

func (b *TermBackend) SetCursor(x, y int) error {
	if b.closed {
		return ErrClosed
	}
	writeCursorPos(b.w, x, y)
	b.cursorX, b.cursorY = x, y
	b.cursorValid = true
	return nil
}

// GetCursor returns the position the backend last moved the cursor to; the
// terminal is never queried
func (b *TermBackend) GetCursor() (int, int, error) {
	if b.closed {
		return 0, 0, ErrClosed
	}
	return b.cursorX, b.cursorY, nil
}

func (b *TermBackend) Clear() error {
	if b.closed {
		return ErrClosed
	}
	b.w.Write(csiSGR0)
	b.w.Write(csiClear)
	b.cursorValid = false
	b.lastValid = false
	return nil
}

func (b *TermBackend) Flush() error {
	if b.closed {
		return ErrClosed
	}
	return b.w.Flush()
}
