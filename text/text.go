// Package text models styled text as spans grouped into lines. Widths are
// measured in terminal columns, not runes, so wide graphemes count as two.
package text

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/termframe/style"
)

// Span is a run of content rendered with a single style
type Span struct {
	Content string
	Style   style.Style
}

// Raw returns an unstyled span
func Raw(content string) Span {
	return Span{Content: content}
}

// Styled returns a span with the given style
func Styled(content string, st style.Style) Span {
	return Span{Content: content, Style: st}
}

// Width returns the display width of the span in columns
func (s Span) Width() int {
	return runewidth.StringWidth(s.Content)
}

// Line is a sequence of spans drawn on one row
type Line struct {
	Spans []Span
}

// RawLine returns a line holding a single unstyled span
func RawLine(content string) Line {
	return Line{Spans: []Span{Raw(content)}}
}

// StyledLine returns a line holding a single styled span
func StyledLine(content string, st style.Style) Line {
	return Line{Spans: []Span{Styled(content, st)}}
}

// Width returns the summed display width of all spans
func (l Line) Width() int {
	w := 0
	for _, s := range l.Spans {
		w += s.Width()
	}
	return w
}

// String returns the concatenated content without styling
func (l Line) String() string {
	var b strings.Builder
	for _, s := range l.Spans {
		b.WriteString(s.Content)
	}
	return b.String()
}

// PatchStyle layers st under every span's own style
func (l Line) PatchStyle(st style.Style) Line {
	spans := make([]Span, len(l.Spans))
	for i, s := range l.Spans {
		spans[i] = Span{Content: s.Content, Style: st.Patch(s.Style)}
	}
	return Line{Spans: spans}
}

// Text is a block of lines, the unit consumed by multi-line widgets
type Text struct {
	Lines []Line
}

// RawText splits content on newlines into unstyled lines
func RawText(content string) Text {
	return StyledText(content, style.Style{})
}

// StyledText splits content on newlines, applying one style to every span
func StyledText(content string, st style.Style) Text {
	parts := strings.Split(content, "\n")
	lines := make([]Line, len(parts))
	for i, p := range parts {
		lines[i] = StyledLine(p, st)
	}
	return Text{Lines: lines}
}

// Width returns the width of the widest line
func (t Text) Width() int {
	w := 0
	for _, l := range t.Lines {
		if lw := l.Width(); lw > w {
			w = lw
		}
	}
	return w
}

// Height returns the number of lines
func (t Text) Height() int {
	return len(t.Lines)
}

// PatchStyle layers st under every span's own style
func (t Text) PatchStyle(st style.Style) Text {
	lines := make([]Line, len(t.Lines))
	for i, l := range t.Lines {
		spans := make([]Span, len(l.Spans))
		for j, s := range l.Spans {
			spans[j] = Span{Content: s.Content, Style: st.Patch(s.Style)}
		}
		lines[i] = Line{Spans: spans}
	}
	return Text{Lines: lines}
}
