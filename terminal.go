package termframe

import (
	"fmt"

	"github.com/lixenwraith/termframe/backend"
	"github.com/lixenwraith/termframe/buffer"
	"github.com/lixenwraith/termframe/layout"
	"github.com/lixenwraith/termframe/widgets"
)

// Terminal is the frame orchestrator: it owns the backend and two buffers,
// runs the caller's render closure against the current one, diffs against
// the previous frame, and hands the minimal update set to the backend.
type Terminal struct {
	backend backend.Backend
	// current and previous frame; swapped after every draw
	buffers      [2]*buffer.Buffer
	current      int
	area         layout.Rect
	hiddenCursor bool
}

// New returns a terminal sized to the backend's reported dimensions
func New(b backend.Backend) (*Terminal, error) {
	size, err := b.Size()
	if err != nil {
		return nil, fmt.Errorf("query terminal size: %w", err)
	}
	return &Terminal{
		backend: b,
		buffers: [2]*buffer.Buffer{buffer.New(size), buffer.New(size)},
		area:    size,
	}, nil
}

// Frame is one draw pass's view of the terminal: the caller renders widgets
// through it and may request a cursor position for when the frame lands
type Frame struct {
	terminal *Terminal
	cursorX  int
	cursorY  int
	// showCursor records a SetCursor call; without one the cursor stays
	// hidden for the frame
	showCursor bool
}

// Size returns the area being rendered, stable for the whole frame
func (f *Frame) Size() layout.Rect {
	return f.terminal.area
}

// Render draws a widget into an area of the current frame. Call order is
// z-order: later renders overwrite earlier ones where they overlap.
func (f *Frame) Render(w widgets.Widget, area layout.Rect) {
	w.Render(area, f.terminal.CurrentBuffer())
}

// SetCursor shows the cursor at (x, y) once this frame lands
func (f *Frame) SetCursor(x, y int) {
	f.cursorX, f.cursorY = x, y
	f.showCursor = true
}

// RenderStateful draws a stateful widget into an area of the current frame.
// The state is borrowed for the call; clamping the widget performs on it is
// visible to the caller afterwards.
func RenderStateful[S any](f *Frame, w widgets.StatefulWidget[S], area layout.Rect, state *S) {
	w.RenderStateful(area, f.terminal.CurrentBuffer(), state)
}

// Draw runs one frame: synchronize size with the backend, run the caller's
// render closure, flush the diff against the previous frame, place the
// cursor, and swap buffers. Backend failures propagate unchanged.
func (t *Terminal) Draw(fn func(*Frame)) error {
	if err := t.AutoResize(); err != nil {
		return err
	}

	frame := Frame{terminal: t}
	fn(&frame)

	updates := t.CurrentBuffer().Diff(t.previousBuffer())
	if err := t.backend.Draw(updates); err != nil {
		return err
	}

	if frame.showCursor {
		if err := t.ShowCursor(); err != nil {
			return err
		}
		if err := t.backend.SetCursor(frame.cursorX, frame.cursorY); err != nil {
			return err
		}
	} else if err := t.HideCursor(); err != nil {
		return err
	}

	t.previousBuffer().Reset()
	t.current = 1 - t.current

	return t.backend.Flush()
}

// CurrentBuffer exposes the buffer the next flush will draw from, for
// composition outside the widget protocol
func (t *Terminal) CurrentBuffer() *buffer.Buffer {
	return t.buffers[t.current]
}

func (t *Terminal) previousBuffer() *buffer.Buffer {
	return t.buffers[1-t.current]
}

// Backend returns the backend the terminal draws through
func (t *Terminal) Backend() backend.Backend {
	return t.backend
}

// Size queries the backend's current dimensions
func (t *Terminal) Size() (layout.Rect, error) {
	return t.backend.Size()
}

// Resize sets both buffers to a new area and forces a full repaint, since
// cell addressing does not survive a size change
func (t *Terminal) Resize(area layout.Rect) error {
	t.buffers[0].Resize(area)
	t.buffers[1].Resize(area)
	t.area = area
	return t.Clear()
}

// AutoResize adopts the backend's size when it changed since the last frame
func (t *Terminal) AutoResize() error {
	size, err := t.backend.Size()
	if err != nil {
		return fmt.Errorf("query terminal size: %w", err)
	}
	if size != t.area {
		return t.Resize(size)
	}
	return nil
}

// Clear wipes the backend screen and invalidates the previous frame so the
// next draw repaints every cell
func (t *Terminal) Clear() error {
	if err := t.backend.Clear(); err != nil {
		return err
	}
	t.previousBuffer().Reset()
	return nil
}

// HideCursor hides the terminal cursor until shown again
func (t *Terminal) HideCursor() error {
	if err := t.backend.HideCursor(); err != nil {
		return err
	}
	t.hiddenCursor = true
	return nil
}

// ShowCursor makes the terminal cursor visible
func (t *Terminal) ShowCursor() error {
	if err := t.backend.ShowCursor(); err != nil {
		return err
	}
	t.hiddenCursor = false
	return nil
}

// SetCursor moves the cursor, independent of the per-frame request
func (t *Terminal) SetCursor(x, y int) error {
	return t.backend.SetCursor(x, y)
}

// GetCursor reports the backend's cursor position
func (t *Terminal) GetCursor() (int, int, error) {
	return t.backend.GetCursor()
}
