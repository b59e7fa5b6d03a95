// Package chart plots datasets in a cartesian plane: labeled X and Y axes
// around a graph area, scatter or line plotting per dataset, and an optional
// legend. Braille datasets rasterize through the canvas layer; dot and block
// markers plot one cell per point.
package chart

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/termframe/buffer"
	"github.com/lixenwraith/termframe/layout"
	"github.com/lixenwraith/termframe/style"
	"github.com/lixenwraith/termframe/symbols"
	"github.com/lixenwraith/termframe/text"
	"github.com/lixenwraith/termframe/widgets"
	"github.com/lixenwraith/termframe/widgets/canvas"
)

// GraphType selects how a dataset's points are drawn
type GraphType uint8

const (
	GraphScatter GraphType = iota // each point on its own
	GraphLine                     // points joined by line segments
)

// Axis describes one side of the plane: the world bounds data maps through,
// labels spread along the axis, and a title at the axis end. Data outside
// the bounds is not plotted.
type Axis struct {
	Title      text.Span
	Bounds     [2]float64
	Labels     []text.Span
	LabelStyle style.Style
	Style      style.Style
}

// Dataset is one plotted series. Line joining applies only with the braille
// marker; dot and block markers always scatter.
type Dataset struct {
	Name      string
	Data      [][2]float64
	Marker    symbols.Marker
	GraphType GraphType
	Style     style.Style
}

// Chart renders datasets against two axes. Axis labels and titles claim
// rows and columns from the edges first and the graph area takes what
// remains; in small areas labels, titles, and the legend hide before the
// graph does.
type Chart struct {
	Block    widgets.Block
	XAxis    Axis
	YAxis    Axis
	Datasets []Dataset
	Style    style.Style
	// HiddenLegend hides the legend when it would claim at least this
	// fraction of the graph, width then height. The zero value means a
	// quarter of each.
	HiddenLegend [2]layout.Constraint
}

// chartLayout holds the resolved positions of the chart's parts; a has flag
// cleared means the part did not fit
type chartLayout struct {
	titleX    [2]int
	hasTitleX bool
	titleY    [2]int
	hasTitleY bool
	labelX    int
	hasLabelX bool
	labelY    int
	hasLabelY bool
	axisX     int
	hasAxisX  bool
	axisY     int
	hasAxisY  bool
	legend    layout.Rect
	hasLegend bool
	graph     layout.Rect
}

func (c Chart) legendConstraints() [2]layout.Constraint {
	if c.HiddenLegend == ([2]layout.Constraint{}) {
		return [2]layout.Constraint{layout.Ratio(1, 4), layout.Ratio(1, 4)}
	}
	return c.HiddenLegend
}

// resolveLayout claims label rows and columns from the bottom and left
// edges, then gives the rest to the graph area
func (c Chart) resolveLayout(area layout.Rect) chartLayout {
	var l chartLayout
	if area.Width == 0 || area.Height == 0 {
		return l
	}
	x := area.Left()
	y := area.Bottom() - 1

	if len(c.XAxis.Labels) > 0 && y > area.Top() {
		l.labelX, l.hasLabelX = y, true
		y--
	}

	if len(c.YAxis.Labels) > 0 {
		maxWidth := 0
		for _, lb := range c.YAxis.Labels {
			if w := lb.Width(); w > maxWidth {
				maxWidth = w
			}
		}
		// the first x label hangs left of the graph, into this gutter
		if len(c.XAxis.Labels) > 0 {
			if w := c.XAxis.Labels[0].Width(); w > maxWidth {
				maxWidth = w
			}
		}
		if x+maxWidth < area.Right() {
			l.labelY, l.hasLabelY = x, true
			x += maxWidth
		}
	}

	if len(c.XAxis.Labels) > 0 && y > area.Top() {
		l.axisX, l.hasAxisX = y, true
		y--
	}
	if len(c.YAxis.Labels) > 0 && x+1 < area.Right() {
		l.axisY, l.hasAxisY = x, true
		x++
	}

	if x < area.Right() && y > 1 {
		l.graph = layout.Rect{X: x, Y: area.Top(), Width: area.Right() - x, Height: y - area.Top() + 1}
	}

	if c.XAxis.Title.Content != "" {
		if w := c.XAxis.Title.Width(); w < l.graph.Width && l.graph.Height > 2 {
			l.titleX, l.hasTitleX = [2]int{x + l.graph.Width - w, y}, true
		}
	}
	if c.YAxis.Title.Content != "" {
		if w := c.YAxis.Title.Width(); w+1 < l.graph.Width && l.graph.Height > 2 {
			l.titleY, l.hasTitleY = [2]int{x + 1, area.Top()}, true
		}
	}

	nameWidth := 0
	for _, d := range c.Datasets {
		if w := runewidth.StringWidth(d.Name); w > nameWidth {
			nameWidth = w
		}
	}
	if nameWidth > 0 {
		legendWidth := nameWidth + 2
		legendHeight := len(c.Datasets) + 2
		hide := c.legendConstraints()
		if legendWidth < hide[0].Apply(l.graph.Width) && legendHeight < hide[1].Apply(l.graph.Height) {
			l.legend = layout.Rect{
				X:      l.graph.Right() - legendWidth,
				Y:      l.graph.Top(),
				Width:  legendWidth,
				Height: legendHeight,
			}
			l.hasLegend = true
		}
	}
	return l
}

func (c Chart) Render(area layout.Rect, buf *buffer.Buffer) {
	buf.SetStyle(area, c.Style)
	c.Block.Render(area, buf)
	inner := c.Block.Inner(area)

	l := c.resolveLayout(inner)
	graph := l.graph
	if graph.Width < 1 || graph.Height < 1 {
		return
	}

	if l.hasTitleX {
		st := c.Style.Patch(c.XAxis.Title.Style)
		buf.SetStringN(l.titleX[0], l.titleX[1], c.XAxis.Title.Content, inner.Right()-l.titleX[0], st)
	}
	if l.hasTitleY {
		st := c.Style.Patch(c.YAxis.Title.Style)
		buf.SetStringN(l.titleY[0], l.titleY[1], c.YAxis.Title.Content, inner.Right()-l.titleY[0], st)
	}

	if l.hasLabelX {
		labels := c.XAxis.Labels
		total := 0
		for _, lb := range labels {
			total += lb.Width()
		}
		if total < graph.Width && len(labels) > 1 {
			for i, lb := range labels {
				x := graph.Left() + i*(graph.Width-1)/(len(labels)-1) - lb.Width()
				buf.SetString(x, l.labelX, lb.Content, c.XAxis.LabelStyle.Patch(lb.Style))
			}
		}
	}
	if l.hasLabelY {
		labels := c.YAxis.Labels
		for i, lb := range labels {
			dy := 0
			if len(labels) > 1 {
				dy = i * (graph.Height - 1) / (len(labels) - 1)
			}
			if dy < graph.Bottom() {
				buf.SetString(l.labelY, graph.Bottom()-1-dy, lb.Content, c.YAxis.LabelStyle.Patch(lb.Style))
			}
		}
	}

	if l.hasAxisX {
		for x := graph.Left(); x < graph.Right(); x++ {
			buf.SetSymbol(x, l.axisX, symbols.LineNormal.Horizontal, c.XAxis.Style)
		}
	}
	if l.hasAxisY {
		for y := graph.Top(); y < graph.Bottom(); y++ {
			buf.SetSymbol(l.axisY, y, symbols.LineNormal.Vertical, c.YAxis.Style)
		}
	}
	if l.hasAxisX && l.hasAxisY {
		buf.SetSymbol(l.axisY, l.axisX, symbols.LineNormal.BottomLeft, c.XAxis.Style)
	}

	for _, d := range c.Datasets {
		if d.Marker == symbols.MarkerBraille {
			c.renderBraille(d, graph, buf)
		} else {
			c.renderScatter(d, graph, buf)
		}
	}

	if l.hasLegend {
		widgets.Block{Borders: widgets.BorderAll}.Render(l.legend, buf)
		for i, d := range c.Datasets {
			buf.SetStringN(l.legend.X+1, l.legend.Y+1+i, d.Name, l.legend.Width-2, d.Style)
		}
	}
}

// renderScatter plots one cell per in-bounds point
func (c Chart) renderScatter(d Dataset, graph layout.Rect, buf *buffer.Buffer) {
	xb, yb := c.XAxis.Bounds, c.YAxis.Bounds
	spanX := xb[1] - xb[0]
	spanY := yb[1] - yb[0]
	if spanX <= 0 || spanY <= 0 {
		return
	}
	symbol := symbols.Dot
	if d.Marker == symbols.MarkerBlock {
		symbol = symbols.BlockFull
	}
	for _, pt := range d.Data {
		if pt[0] < xb[0] || pt[0] > xb[1] || pt[1] < yb[0] || pt[1] > yb[1] {
			continue
		}
		dx := int((pt[0] - xb[0]) * float64(graph.Width-1) / spanX)
		dy := int((yb[1] - pt[1]) * float64(graph.Height-1) / spanY)
		buf.Set(graph.Left()+dx, graph.Top()+dy, buffer.Cell{
			Symbol: symbol,
			Style:  style.Style{Fg: d.Style.Fg, Bg: d.Style.Bg},
		})
	}
}

// renderBraille rasterizes the dataset through the canvas layer, joining
// consecutive points for line graphs
func (c Chart) renderBraille(d Dataset, graph layout.Rect, buf *buffer.Buffer) {
	canvas.Canvas{
		XBounds:    c.XAxis.Bounds,
		YBounds:    c.YAxis.Bounds,
		Marker:     symbols.MarkerBraille,
		Background: c.Style.Bg,
		Paint: func(ctx *canvas.Context) {
			ctx.Draw(canvas.Points{Coords: d.Data, Color: d.Style.Fg})
			if d.GraphType == GraphLine {
				for i := 0; i+1 < len(d.Data); i++ {
					ctx.Draw(canvas.Line{
						X1:    d.Data[i][0],
						Y1:    d.Data[i][1],
						X2:    d.Data[i+1][0],
						Y2:    d.Data[i+1][1],
						Color: d.Style.Fg,
					})
				}
			}
		},
	}.Render(graph, buf)
}
