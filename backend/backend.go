// Package backend holds the terminal collaborators the rendering core draws
// through: a direct-ANSI backend for unix terminals, a tcell-based backend
// for portability, and an in-memory backend for tests.
//
// A backend applies cell updates, moves the cursor, and owns whatever raw
// terminal state it needs; acquisition is scoped, with restoration on Close
// for every exit path.
package backend

import (
	"errors"

	"github.com/lixenwraith/termframe/buffer"
	"github.com/lixenwraith/termframe/layout"
)

// ErrNotTerminal reports that the output is not attached to a terminal
var ErrNotTerminal = errors.New("not a terminal")

// ErrClosed reports an operation on a backend after Close
var ErrClosed = errors.New("backend closed")

// Backend is the capability set the frame orchestrator drives. Draw applies
// exactly the given updates in the given order; Flush pushes buffered output
// to the terminal.
type Backend interface {
	Size() (layout.Rect, error)
	Draw(updates []buffer.Update) error
	HideCursor() error
	ShowCursor() error
	SetCursor(x, y int) error
	GetCursor() (int, int, error)
	Clear() error
	Flush() error
}
