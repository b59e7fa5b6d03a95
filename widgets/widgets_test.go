package widgets

import (
	"strings"
	"testing"

	"github.com/lixenwraith/termframe/buffer"
	"github.com/lixenwraith/termframe/layout"
	"github.com/lixenwraith/termframe/style"
	"github.com/lixenwraith/termframe/text"
)

func render(w Widget, area layout.Rect) *buffer.Buffer {
	buf := buffer.New(area)
	w.Render(area, buf)
	return buf
}

func TestBlockBorderAll(t *testing.T) {
	tests := []struct {
		name       string
		borderType BorderType
		want       string
	}{
		{"plain", BorderPlain, "┌───┐\n│   │\n└───┘"},
		{"rounded", BorderRounded, "╭───╮\n│   │\n╰───╯"},
		{"double", BorderDouble, "╔═══╗\n║   ║\n╚═══╝"},
		{"thick", BorderThick, "┏━━━┓\n┃   ┃\n┗━━━┛"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Block{Borders: BorderAll, BorderType: tt.borderType}
			buf := render(b, layout.Rect{Width: 5, Height: 3})
			if got := buf.String(); got != tt.want {
				t.Errorf("Expected:\n%s\ngot:\n%s", tt.want, got)
			}
		})
	}
}

func TestBlockTitleAlignment(t *testing.T) {
	tests := []struct {
		name      string
		alignment layout.Alignment
		want      string
	}{
		{"left", layout.AlignLeft, "┌ti───┐"},
		{"center", layout.AlignCenter, "┌─ti──┐"},
		{"right", layout.AlignRight, "┌───ti┐"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Block{
				Title:          text.RawLine("ti"),
				TitleAlignment: tt.alignment,
				Borders:        BorderAll,
			}
			buf := render(b, layout.Rect{Width: 7, Height: 3})
			row, _, _ := strings.Cut(buf.String(), "\n")
			if row != tt.want {
				t.Errorf("Expected top row %q, got %q", tt.want, row)
			}
		})
	}
}

func TestBlockWideCenteredTitleKeepsCorner(t *testing.T) {
	b := Block{
		Title:          text.RawLine("abcdef"),
		TitleAlignment: layout.AlignCenter,
		Borders:        BorderAll,
	}
	buf := render(b, layout.Rect{Width: 7, Height: 3})
	row, _, _ := strings.Cut(buf.String(), "\n")
	if row != "┌abcde┐" {
		t.Errorf("Expected title truncated inside corners, got %q", row)
	}
}

func TestBlockInner(t *testing.T) {
	tests := []struct {
		name  string
		block Block
		want  layout.Rect
	}{
		{"no chrome", Block{}, layout.Rect{Width: 10, Height: 4}},
		{"all borders", Block{Borders: BorderAll}, layout.Rect{X: 1, Y: 1, Width: 8, Height: 2}},
		{"title only", Block{Title: text.RawLine("t")}, layout.Rect{Y: 1, Width: 10, Height: 3}},
		{"left border", Block{Borders: BorderLeft}, layout.Rect{X: 1, Width: 9, Height: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.block.Inner(layout.Rect{Width: 10, Height: 4}); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestClearResetsCells(t *testing.T) {
	area := layout.Rect{Width: 6, Height: 2}
	buf := buffer.New(area)
	buf.SetString(0, 0, "junkie", style.Style{Fg: style.Red})

	Clear{}.Render(layout.Rect{Width: 4, Height: 2}, buf)

	if got := buf.String(); got != "    ie\n      " {
		t.Errorf("Expected cleared region, got %q", got)
	}
	c, _ := buf.Get(0, 0)
	if c.Style != (style.Style{}) {
		t.Errorf("Expected default style after clear, got %+v", c.Style)
	}
}

func TestParagraphTruncatesWithoutWrap(t *testing.T) {
	p := Paragraph{Text: text.RawText("hello world\nsecond")}
	buf := render(p, layout.Rect{Width: 5, Height: 2})

	if got := buf.String(); got != "hello\nsecon" {
		t.Errorf("Unexpected content %q", got)
	}
}

func TestParagraphWraps(t *testing.T) {
	p := Paragraph{
		Text: text.RawText("aa bb cc"),
		Wrap: &Wrap{Trim: true},
	}
	buf := render(p, layout.Rect{Width: 5, Height: 2})

	if got := buf.String(); got != "aa bb\ncc   " {
		t.Errorf("Unexpected wrapped content %q", got)
	}
}

func TestParagraphAlignment(t *testing.T) {
	tests := []struct {
		name      string
		alignment layout.Alignment
		want      string
	}{
		{"left", layout.AlignLeft, "ab    "},
		{"center", layout.AlignCenter, "  ab  "},
		{"right", layout.AlignRight, "    ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paragraph{Text: text.RawText("ab"), Alignment: tt.alignment}
			buf := render(p, layout.Rect{Width: 6, Height: 1})
			if got := buf.String(); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestParagraphScroll(t *testing.T) {
	p := Paragraph{Text: text.RawText("one\ntwo\nthree"), ScrollY: 1}
	buf := render(p, layout.Rect{Width: 5, Height: 2})

	if got := buf.String(); got != "two  \nthree" {
		t.Errorf("Unexpected scrolled content %q", got)
	}
}

func TestListClampsSelectionVisibly(t *testing.T) {
	list := List{Items: []ListItem{Item("a"), Item("b"), Item("c")}}
	state := ListState{}
	state.Select(5)

	buf := buffer.New(layout.Rect{Width: 5, Height: 3})
	list.RenderStateful(layout.Rect{Width: 5, Height: 3}, buf, &state)

	if state.Selected == nil || *state.Selected != 2 {
		t.Fatalf("Expected selection clamped to 2, got %v", state.Selected)
	}
}

func TestListEmptyItemsClearsSelection(t *testing.T) {
	list := List{}
	state := ListState{Offset: 3}
	state.Select(1)

	buf := buffer.New(layout.Rect{Width: 5, Height: 3})
	list.RenderStateful(layout.Rect{Width: 5, Height: 3}, buf, &state)

	if state.Selected != nil || state.Offset != 0 {
		t.Errorf("Expected cleared state, got selected=%v offset=%d", state.Selected, state.Offset)
	}
}

func TestListHighlightSymbolShiftsItems(t *testing.T) {
	list := List{
		Items:           []ListItem{Item("aa"), Item("bb")},
		HighlightSymbol: "> ",
	}
	state := ListState{}
	state.Select(1)

	buf := buffer.New(layout.Rect{Width: 6, Height: 2})
	list.RenderStateful(layout.Rect{Width: 6, Height: 2}, buf, &state)

	if got := buf.String(); got != "  aa  \n> bb  " {
		t.Errorf("Unexpected content %q", got)
	}
}

func TestListScrollsSelectionIntoView(t *testing.T) {
	list := List{Items: []ListItem{Item("a"), Item("b"), Item("c"), Item("d")}}
	state := ListState{}
	state.Select(3)

	buf := buffer.New(layout.Rect{Width: 3, Height: 2})
	list.RenderStateful(layout.Rect{Width: 3, Height: 2}, buf, &state)

	if state.Offset != 2 {
		t.Errorf("Expected offset 2, got %d", state.Offset)
	}
	if got := buf.String(); got != "c  \nd  " {
		t.Errorf("Unexpected window %q", got)
	}
}

func TestTableRendersColumns(t *testing.T) {
	table := Table{
		Header:        NewRow("ab", "cd"),
		Rows:          []Row{NewRow("11", "22"), NewRow("33", "44")},
		Widths:        []layout.Constraint{layout.Length(2), layout.Length(2)},
		ColumnSpacing: 1,
	}
	buf := render(table, layout.Rect{Width: 5, Height: 3})

	want := "ab cd\n11 22\n33 44"
	if got := buf.String(); got != want {
		t.Errorf("Expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestTableClampsSelection(t *testing.T) {
	table := Table{
		Rows:   []Row{NewRow("a"), NewRow("b"), NewRow("c")},
		Widths: []layout.Constraint{layout.Length(1)},
	}
	state := TableState{}
	state.Select(10)

	buf := buffer.New(layout.Rect{Width: 3, Height: 3})
	table.RenderStateful(layout.Rect{Width: 3, Height: 3}, buf, &state)

	if state.Selected == nil || *state.Selected != 2 {
		t.Fatalf("Expected selection clamped to 2, got %v", state.Selected)
	}
}

func TestTableScrollsSelectionIntoView(t *testing.T) {
	table := Table{
		Rows:   []Row{NewRow("a"), NewRow("b"), NewRow("c"), NewRow("d")},
		Widths: []layout.Constraint{layout.Length(1)},
	}
	state := TableState{}
	state.Select(3)

	buf := buffer.New(layout.Rect{Width: 3, Height: 2})
	table.RenderStateful(layout.Rect{Width: 3, Height: 2}, buf, &state)

	if state.Offset != 2 {
		t.Errorf("Expected offset 2, got %d", state.Offset)
	}
}

func TestGaugeCentersLabel(t *testing.T) {
	g := Gauge{Ratio: 0.5}
	buf := render(g, layout.Rect{Width: 10, Height: 1})

	if got := buf.String(); got != "   50%    " {
		t.Errorf("Unexpected content %q", got)
	}
}

func TestGaugeInvertsFilledHalf(t *testing.T) {
	g := Gauge{
		Ratio:      0.5,
		GaugeStyle: style.Style{Fg: style.Green, Bg: style.Black},
	}
	buf := render(g, layout.Rect{Width: 10, Height: 1})

	filled, _ := buf.Get(0, 0)
	if filled.Style.Fg != style.Black || filled.Style.Bg != style.Green {
		t.Errorf("Expected swapped colors on filled half, got %+v", filled.Style)
	}
	empty, _ := buf.Get(9, 0)
	if empty.Style.Fg != style.Green || empty.Style.Bg != style.Black {
		t.Errorf("Expected gauge style on empty half, got %+v", empty.Style)
	}
}

func TestGaugeClampsRatio(t *testing.T) {
	g := Gauge{Ratio: 3.5, Label: text.Raw("x")}
	buf := render(g, layout.Rect{Width: 4, Height: 1})

	// full fill, no crash past the right edge
	for x := 0; x < 4; x++ {
		c, err := buf.Get(x, 0)
		if err != nil {
			t.Fatalf("Unexpected error at %d: %v", x, err)
		}
		if c.Symbol != " " && c.Symbol != "x" {
			t.Errorf("Unexpected symbol %q at %d", c.Symbol, x)
		}
	}
}

func TestSparklineScalesToMax(t *testing.T) {
	s := Sparkline{Data: []uint64{0, 4, 8}}
	buf := render(s, layout.Rect{Width: 3, Height: 1})

	if got := buf.String(); got != " ▄█" {
		t.Errorf("Unexpected bars %q", got)
	}
}

func TestSparklineMultiRowStacksBottomUp(t *testing.T) {
	s := Sparkline{Data: []uint64{16, 8}, Max: 16}
	buf := render(s, layout.Rect{Width: 2, Height: 2})

	if got := buf.String(); got != "█ \n██" {
		t.Errorf("Unexpected bars %q", got)
	}
}

func TestSparklineClipsToWidth(t *testing.T) {
	s := Sparkline{Data: []uint64{1, 2, 3, 4, 5}}
	buf := render(s, layout.Rect{Width: 2, Height: 1})

	updates := buf.Diff(buffer.New(layout.Rect{Width: 2, Height: 1}))
	for _, u := range updates {
		if u.X > 1 {
			t.Errorf("Bar painted outside area at %d", u.X)
		}
	}
}

func TestTabsHighlightAndDivider(t *testing.T) {
	tabs := Tabs{
		Titles:         []text.Line{text.RawLine("One"), text.RawLine("Two")},
		Selected:       0,
		HighlightStyle: style.Style{Mods: style.ModBold},
	}
	buf := render(tabs, layout.Rect{Width: 12, Height: 1})

	if got := buf.String(); got != " One │ Two  " {
		t.Errorf("Unexpected strip %q", got)
	}
	selected, _ := buf.Get(1, 0)
	if !selected.Style.Mods.Has(style.ModBold) {
		t.Errorf("Expected bold selected title, got %+v", selected.Style)
	}
	unselected, _ := buf.Get(7, 0)
	if unselected.Style.Mods.Has(style.ModBold) {
		t.Errorf("Expected plain unselected title, got %+v", unselected.Style)
	}
}

func TestBarChartBarsAndLabels(t *testing.T) {
	b := BarChart{
		Data:     []Bar{{Label: "a", Value: 8}, {Label: "b", Value: 4}},
		BarWidth: 1,
		BarGap:   1,
	}
	buf := render(b, layout.Rect{Width: 3, Height: 3})

	want := "█  \n█ █\na b"
	if got := buf.String(); got != want {
		t.Errorf("Expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestBarChartValueInsideWideBar(t *testing.T) {
	b := BarChart{
		Data:     []Bar{{Label: "cpu", Value: 9}},
		BarWidth: 3,
	}
	buf := render(b, layout.Rect{Width: 3, Height: 4})

	value, _ := buf.Get(1, 2)
	if value.Symbol != "9" {
		t.Errorf("Expected value digit inside bar, got %q", value.Symbol)
	}
	label, _ := buf.Get(0, 3)
	if label.Symbol != "c" {
		t.Errorf("Expected label row, got %q", label.Symbol)
	}
}
