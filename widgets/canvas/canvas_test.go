package canvas

import (
	"testing"

	"github.com/lixenwraith/termframe/buffer"
	"github.com/lixenwraith/termframe/layout"
	"github.com/lixenwraith/termframe/style"
	"github.com/lixenwraith/termframe/symbols"
	"github.com/lixenwraith/termframe/text"
)

func render(c Canvas, area layout.Rect) *buffer.Buffer {
	buf := buffer.New(area)
	c.Render(area, buf)
	return buf
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestLinePointsConnectedWithExactEndpoints(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
	}{
		{"shallow", 0, 0, 5, 2},
		{"steep", 0, 0, 2, 5},
		{"reversed", 5, 2, 0, 0},
		{"diagonal", 0, 0, 4, 4},
		{"vertical", 3, 0, 3, 6},
		{"horizontal", 0, 3, 6, 3},
		{"negative slope", 0, 4, 4, 0},
		{"single point", 2, 2, 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := linePoints(tt.x0, tt.y0, tt.x1, tt.y1)
			if len(pts) == 0 {
				t.Fatal("Expected at least one point")
			}
			if pts[0] != [2]int{tt.x0, tt.y0} {
				t.Errorf("Expected first point (%d,%d), got %v", tt.x0, tt.y0, pts[0])
			}
			if last := pts[len(pts)-1]; last != [2]int{tt.x1, tt.y1} {
				t.Errorf("Expected last point (%d,%d), got %v", tt.x1, tt.y1, last)
			}
			for i := 1; i < len(pts); i++ {
				dx := abs(pts[i][0] - pts[i-1][0])
				dy := abs(pts[i][1] - pts[i-1][1])
				if dx > 1 || dy > 1 || (dx == 0 && dy == 0) {
					t.Errorf("Step %d: %v -> %v is not a single 8-connected move", i, pts[i-1], pts[i])
				}
			}
			want := max(abs(tt.x1-tt.x0), abs(tt.y1-tt.y0)) + 1
			if len(pts) != want {
				t.Errorf("Expected %d points, got %d", want, len(pts))
			}
		})
	}
}

func TestBrailleDotsAccumulate(t *testing.T) {
	ctx := NewContext(1, 1, [2]float64{0, 1}, [2]float64{0, 1}, symbols.MarkerBraille)
	ctx.Draw(Points{Coords: [][2]float64{{0, 0}}})
	ctx.Draw(Points{Coords: [][2]float64{{1, 1}}})
	ctx.finish()

	if len(ctx.layers) != 1 {
		t.Fatalf("Expected one layer, got %d", len(ctx.layers))
	}
	// (0,0) maps to pixel (0,3), (1,1) to pixel (1,0)
	want := symbols.BrailleBlank | symbols.BrailleDots[3][0] | symbols.BrailleDots[0][1]
	if got := ctx.layers[0].cells[0]; got != want {
		t.Errorf("Expected rune %U, got %U", want, got)
	}
}

func TestCanvasDotMarker(t *testing.T) {
	c := Canvas{
		XBounds: [2]float64{0, 1},
		YBounds: [2]float64{0, 1},
		Marker:  symbols.MarkerDot,
		Paint: func(ctx *Context) {
			ctx.Draw(Points{Coords: [][2]float64{{0, 1}, {1, 0}}})
		},
	}
	buf := render(c, layout.Rect{Width: 2, Height: 2})

	if got := buf.String(); got != "• \n •" {
		t.Errorf("Unexpected grid %q", got)
	}
}

func TestCanvasRectangleOutline(t *testing.T) {
	c := Canvas{
		XBounds: [2]float64{0, 2},
		YBounds: [2]float64{0, 2},
		Marker:  symbols.MarkerBlock,
		Paint: func(ctx *Context) {
			ctx.Draw(Rectangle{Width: 2, Height: 2})
		},
	}
	buf := render(c, layout.Rect{Width: 3, Height: 3})

	want := "███\n█ █\n███"
	if got := buf.String(); got != want {
		t.Errorf("Expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestLineDropsOutOfBoundsEndpoint(t *testing.T) {
	c := Canvas{
		XBounds: [2]float64{0, 1},
		YBounds: [2]float64{0, 1},
		Marker:  symbols.MarkerBlock,
		Paint: func(ctx *Context) {
			ctx.Draw(Line{X1: 0, Y1: 0, X2: 10, Y2: 10})
		},
	}
	buf := render(c, layout.Rect{Width: 2, Height: 2})

	if got := buf.String(); got != "  \n  " {
		t.Errorf("Expected blank canvas, got %q", got)
	}
}

func TestPointsOutsideBoundsDrop(t *testing.T) {
	c := Canvas{
		XBounds: [2]float64{0, 1},
		YBounds: [2]float64{0, 1},
		Marker:  symbols.MarkerDot,
		Paint: func(ctx *Context) {
			ctx.Draw(Points{Coords: [][2]float64{{-1, 0}, {0, 2}, {5, 5}}})
		},
	}
	buf := render(c, layout.Rect{Width: 2, Height: 2})

	if got := buf.String(); got != "  \n  " {
		t.Errorf("Expected blank canvas, got %q", got)
	}
}

func TestLayersPaintInOrder(t *testing.T) {
	c := Canvas{
		XBounds: [2]float64{0, 1},
		YBounds: [2]float64{0, 1},
		Marker:  symbols.MarkerBlock,
		Paint: func(ctx *Context) {
			ctx.Draw(Points{Coords: [][2]float64{{0, 1}}, Color: style.Red})
			ctx.Layer()
			ctx.Draw(Points{Coords: [][2]float64{{0, 1}}, Color: style.Blue})
		},
	}
	buf := render(c, layout.Rect{Width: 1, Height: 1})

	cell, err := buf.Get(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if cell.Style.Fg != style.Blue {
		t.Errorf("Expected later layer color, got %+v", cell.Style.Fg)
	}
}

func TestCanvasLabelPlacement(t *testing.T) {
	c := Canvas{
		XBounds: [2]float64{0, 4},
		YBounds: [2]float64{0, 2},
		Marker:  symbols.MarkerDot,
		Paint: func(ctx *Context) {
			ctx.Print(1, 2, text.RawLine("ab"))
		},
	}
	buf := render(c, layout.Rect{Width: 5, Height: 3})

	if got := buf.String(); got != " ab  \n     \n     " {
		t.Errorf("Unexpected label placement %q", got)
	}
}

func TestMapPaintsCoastline(t *testing.T) {
	c := Canvas{
		XBounds: [2]float64{-180, 180},
		YBounds: [2]float64{-90, 90},
		Marker:  symbols.MarkerBraille,
		Paint: func(ctx *Context) {
			ctx.Draw(Map{Resolution: MapHigh, Color: style.Green})
		},
	}
	buf := render(c, layout.Rect{Width: 20, Height: 10})

	painted := 0
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			cell, _ := buf.Get(x, y)
			if cell.Symbol != " " {
				painted++
			}
		}
	}
	if painted < 20 {
		t.Errorf("Expected a visible coastline, got %d painted cells", painted)
	}
}
