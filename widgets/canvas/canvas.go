// Package canvas rasterizes shapes described in world coordinates onto the
// cell grid at sub-cell resolution. Braille glyphs pack 2x4 pixels into one
// terminal cell; block and dot markers plot one pixel per cell. Shapes draw
// through a Painter bound to the affine transform from the caller-supplied
// bounds to the pixel grid; out-of-bounds points drop silently.
package canvas

import (
	"github.com/lixenwraith/termframe/buffer"
	"github.com/lixenwraith/termframe/layout"
	"github.com/lixenwraith/termframe/style"
	"github.com/lixenwraith/termframe/symbols"
	"github.com/lixenwraith/termframe/text"
	"github.com/lixenwraith/termframe/widgets"
)

// Shape is anything able to plot itself through a Painter
type Shape interface {
	Draw(p *Painter)
}

// Label is a text overlay anchored at a world coordinate, drawn above all
// painted layers
type Label struct {
	X    float64
	Y    float64
	Line text.Line
}

// layer is a finished grid snapshot; layers render in the order taken
type layer struct {
	cells  []rune
	colors []style.Color
}

// grid accumulates painted pixels for the current layer. With the braille
// marker each cell collects dot bits and resolves to one glyph; block and
// dot markers mark whole cells.
type grid struct {
	width  int
	height int
	marker symbols.Marker
	cells  []rune
	colors []style.Color
}

func newGrid(width, height int, marker symbols.Marker) *grid {
	g := &grid{
		width:  width,
		height: height,
		marker: marker,
		cells:  make([]rune, width*height),
		colors: make([]style.Color, width*height),
	}
	g.reset()
	return g
}

func (g *grid) blank() rune {
	if g.marker == symbols.MarkerBraille {
		return symbols.BrailleBlank
	}
	return ' '
}

// resolution returns the pixel dimensions the painter transforms into
func (g *grid) resolution() (float64, float64) {
	if g.marker == symbols.MarkerBraille {
		return float64(g.width)*2 - 1, float64(g.height)*4 - 1
	}
	return float64(g.width) - 1, float64(g.height) - 1
}

func (g *grid) paint(px, py int, color style.Color) {
	var idx int
	switch g.marker {
	case symbols.MarkerBraille:
		idx = py/4*g.width + px/2
		if idx < 0 || idx >= len(g.cells) {
			return
		}
		g.cells[idx] |= symbols.BrailleDots[py%4][px%2]
	default:
		idx = py*g.width + px
		if idx < 0 || idx >= len(g.cells) {
			return
		}
		if g.marker == symbols.MarkerBlock {
			g.cells[idx] = '█'
		} else {
			g.cells[idx] = '•'
		}
	}
	g.colors[idx] = color
}

func (g *grid) save() layer {
	l := layer{
		cells:  make([]rune, len(g.cells)),
		colors: make([]style.Color, len(g.colors)),
	}
	copy(l.cells, g.cells)
	copy(l.colors, g.colors)
	return l
}

func (g *grid) reset() {
	blank := g.blank()
	for i := range g.cells {
		g.cells[i] = blank
		g.colors[i] = style.Color{}
	}
}

// Painter is the capability shapes draw through: a world-to-pixel transform
// plus pixel marking on the current layer's grid
type Painter struct {
	ctx  *Context
	resX float64
	resY float64
}

func newPainter(ctx *Context) *Painter {
	resX, resY := ctx.grid.resolution()
	return &Painter{ctx: ctx, resX: resX, resY: resY}
}

// GetPoint transforms a world coordinate to a pixel position on the grid.
// The third return is false for points outside the canvas bounds, which
// callers are expected to drop.
func (p *Painter) GetPoint(x, y float64) (int, int, bool) {
	left, right := p.ctx.xBounds[0], p.ctx.xBounds[1]
	bottom, top := p.ctx.yBounds[0], p.ctx.yBounds[1]
	if x < left || x > right || y < bottom || y > top {
		return 0, 0, false
	}
	width := right - left
	height := top - bottom
	if width <= 0 || height <= 0 {
		return 0, 0, false
	}
	px := int((x - left) * p.resX / width)
	py := int((top - y) * p.resY / height)
	return px, py, true
}

// Paint marks the pixel at (px, py) with the shape's color
func (p *Painter) Paint(px, py int, color style.Color) {
	p.ctx.grid.paint(px, py, color)
}

// Context holds the canvas state while the caller's paint closure runs:
// the pixel grid of the current layer, finished layers, and labels
type Context struct {
	width   int
	height  int
	xBounds [2]float64
	yBounds [2]float64
	grid    *grid
	dirty   bool
	layers  []layer
	labels  []Label
}

// NewContext returns a blank context covering width x height cells with the
// given world bounds and marker resolution
func NewContext(width, height int, xBounds, yBounds [2]float64, marker symbols.Marker) *Context {
	return &Context{
		width:   width,
		height:  height,
		xBounds: xBounds,
		yBounds: yBounds,
		grid:    newGrid(width, height, marker),
	}
}

// Draw plots a shape onto the current layer
func (c *Context) Draw(s Shape) {
	c.dirty = true
	s.Draw(newPainter(c))
}

// Layer finishes the current grid and starts a fresh one above it. Later
// layers paint over earlier ones wherever both mark a cell.
func (c *Context) Layer() {
	c.layers = append(c.layers, c.grid.save())
	c.grid.reset()
	c.dirty = false
}

// Print places a text label at a world coordinate, rendered above all layers
func (c *Context) Print(x, y float64, line text.Line) {
	c.labels = append(c.labels, Label{X: x, Y: y, Line: line})
}

// finish pushes the last layer if anything painted since the previous one
func (c *Context) finish() {
	if c.dirty {
		c.Layer()
	}
}

// Canvas is the widget driving the rasterizer: it builds a Context sized to
// its content area, runs the Paint closure, and projects the painted layers
// and labels into the buffer.
type Canvas struct {
	Block   widgets.Block
	XBounds [2]float64
	YBounds [2]float64
	Marker  symbols.Marker
	// Background fills painted cells behind the marker glyphs
	Background style.Color
	Paint      func(*Context)
}

func (c Canvas) Render(area layout.Rect, buf *buffer.Buffer) {
	c.Block.Render(area, buf)
	inner := c.Block.Inner(area)
	if inner.Area() == 0 || c.Paint == nil {
		return
	}

	ctx := NewContext(inner.Width, inner.Height, c.XBounds, c.YBounds, c.Marker)
	c.Paint(ctx)
	ctx.finish()

	blank := ctx.grid.blank()
	for _, l := range ctx.layers {
		for i, r := range l.cells {
			if r == blank {
				continue
			}
			buf.Set(inner.X+i%inner.Width, inner.Y+i/inner.Width, buffer.Cell{
				Symbol: string(r),
				Style:  style.Style{Fg: l.colors[i], Bg: c.Background},
			})
		}
	}

	// labels transform at cell resolution, independent of the marker
	left, right := c.XBounds[0], c.XBounds[1]
	bottom, top := c.YBounds[0], c.YBounds[1]
	width := right - left
	height := top - bottom
	if width <= 0 || height <= 0 {
		return
	}
	resX := float64(inner.Width - 1)
	resY := float64(inner.Height - 1)
	labelStyle := style.Style{Bg: c.Background}
	for _, l := range ctx.labels {
		if l.X < left || l.X > right || l.Y < bottom || l.Y > top {
			continue
		}
		x := inner.X + int((l.X-left)*resX/width)
		y := inner.Y + int((top-l.Y)*resY/height)
		buf.SetLine(x, y, l.Line.PatchStyle(labelStyle), inner.Right()-x)
	}
}
