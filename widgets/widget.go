// Package widgets provides the render contract and the built-in widget set.
//
// A widget is a transient value: the caller constructs it, hands it to one
// render call, and discards it. Widgets write only inside the area they are
// given, clipping rather than failing when the area is too small, and later
// render calls overwrite earlier ones wherever they overlap. Widgets that
// track selection or scrolling take a state value owned by the caller; the
// render call may clamp it to the rendered content but never keeps it.
package widgets

import (
	"github.com/lixenwraith/termframe/buffer"
	"github.com/lixenwraith/termframe/layout"
)

// Widget draws itself into the given area of a buffer
type Widget interface {
	Render(area layout.Rect, buf *buffer.Buffer)
}

// StatefulWidget draws itself using a caller-owned state handle, borrowed
// only for the duration of the call. Render may normalize the state (clamp a
// selection, derive a scroll offset) and those writes are visible to the
// caller afterwards.
type StatefulWidget[S any] interface {
	RenderStateful(area layout.Rect, buf *buffer.Buffer, state *S)
}
