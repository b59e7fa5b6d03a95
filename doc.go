// Package termframe is a terminal-rendering engine: describe a screen of
// widgets each frame and the engine emits the minimal set of terminal writes
// to reach the new state.
//
// Features:
//   - Double-buffered cell grid with cell-level frame diffing
//   - Constraint-based layout splitting (length, percentage, ratio, min, max)
//   - Sub-cell shape rasterization with braille, block, and dot markers
//   - Widget render protocol with caller-owned selection/scroll state
//   - Direct-ANSI, tcell, and in-memory test backends
//
// Rendering is synchronous and single-threaded; the per-frame pipeline runs
// to completion inside Terminal.Draw. Input handling is out of scope: the
// application owns its event loop and drives Draw when it wants a frame.
//
// Usage pattern:
//
//	be, err := backend.NewTerm(backend.DefaultTermOptions())
//	if err != nil {
//		// not a terminal, or raw mode failed
//	}
//	defer be.Close()
//
//	term, err := termframe.New(be)
//	err = term.Draw(func(f *termframe.Frame) {
//		rows := layout.Layout{
//			Direction:   layout.Vertical,
//			Constraints: []layout.Constraint{layout.Length(3), layout.Min(0)},
//		}.Split(f.Size())
//		f.Render(widgets.Gauge{Ratio: 0.4}, rows[0])
//		termframe.RenderStateful(f, list, rows[1], &listState)
//	})
package termframe
