package backend

import (
	"github.com/lixenwraith/termframe/buffer"
	"github.com/lixenwraith/termframe/layout"
)

// TestBackend is an in-memory backend: updates land in a buffer that tests
// inspect, cursor calls update bookkeeping fields. It implements Backend and
// is exported so applications can test their own render loops against it;
// assertions stay with the test, typically against Buffer().String().
type TestBackend struct {
	buf           *buffer.Buffer
	cursorVisible bool
	cursorX       int
	cursorY       int
}

// NewTest returns a test backend with a blank width x height screen
func NewTest(width, height int) *TestBackend {
	return &TestBackend{
		buf: buffer.New(layout.Rect{Width: width, Height: height}),
	}
}

// Buffer exposes the screen contents accumulated by Draw calls
func (b *TestBackend) Buffer() *buffer.Buffer {
	return b.buf
}

// CursorVisible reports the cursor state after Hide/ShowCursor calls
func (b *TestBackend) CursorVisible() bool {
	return b.cursorVisible
}

// Resize replaces the screen with a blank one of the new size, simulating a
// terminal resize between frames
func (b *TestBackend) Resize(width, height int) {
	b.buf.Resize(layout.Rect{Width: width, Height: height})
}

func (b *TestBackend) Size() (layout.Rect, error) {
	return b.buf.Area(), nil
}

func (b *TestBackend) Draw(updates []buffer.Update) error {
	for _, u := range updates {
		b.buf.Set(u.X, u.Y, u.Cell)
	}
	return nil
}

func (b *TestBackend) HideCursor() error {
	b.cursorVisible = false
	return nil
}

func (b *TestBackend) ShowCursor() error {
	b.cursorVisible = true
	return nil
}

func (b *TestBackend) SetCursor(x, y int) error {
	b.cursorX, b.cursorY = x, y
	return nil
}

func (b *TestBackend) GetCursor() (int, int, error) {
	return b.cursorX, b.cursorY, nil
}

func (b *TestBackend) Clear() error {
	b.buf.Reset()
	return nil
}

func (b *TestBackend) Flush() error {
	return nil
}
