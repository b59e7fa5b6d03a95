package text

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/lixenwraith/termframe/style"
)

// styledGrapheme is one display cluster tagged with its span's style
type styledGrapheme struct {
	Symbol string
	Width  int
	Style  style.Style
}

// graphemes flattens a line into display clusters
func graphemes(l Line) []styledGrapheme {
	var out []styledGrapheme
	for _, sp := range l.Spans {
		rest := sp.Content
		state := -1
		for len(rest) > 0 {
			var cluster string
			cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
			out = append(out, styledGrapheme{
				Symbol: cluster,
				Width:  runewidth.StringWidth(cluster),
				Style:  sp.Style,
			})
		}
	}
	return out
}

// fromGraphemes rebuilds a line, merging adjacent clusters of equal style
func fromGraphemes(gs []styledGrapheme) Line {
	var spans []Span
	for _, g := range gs {
		if n := len(spans); n > 0 && spans[n-1].Style == g.Style {
			spans[n-1].Content += g.Symbol
			continue
		}
		spans = append(spans, Span{Content: g.Symbol, Style: g.Style})
	}
	return Line{Spans: spans}
}

// token is a run of either whitespace or word clusters
type token struct {
	gs      []styledGrapheme
	width   int
	isSpace bool
}

func tokenize(gs []styledGrapheme) []token {
	var toks []token
	for _, g := range gs {
		sp := strings.TrimSpace(g.Symbol) == ""
		if n := len(toks); n > 0 && toks[n-1].isSpace == sp {
			toks[n-1].gs = append(toks[n-1].gs, g)
			toks[n-1].width += g.Width
			continue
		}
		toks = append(toks, token{gs: []styledGrapheme{g}, width: g.Width, isSpace: sp})
	}
	return toks
}

// Wrap reflows t into lines no wider than width columns, breaking at word
// boundaries where possible and across graphemes for oversized words. With
// trim set, whitespace at the start of each output line is dropped.
func Wrap(t Text, width int, trim bool) []Line {
	if width <= 0 {
		return nil
	}
	var out []Line
	for _, src := range t.Lines {
		out = append(out, wrapLine(src, width, trim)...)
	}
	return out
}

func wrapLine(src Line, width int, trim bool) []Line {
	toks := tokenize(graphemes(src))

	var lines []Line
	var cur []styledGrapheme
	curW := 0
	var pend []styledGrapheme
	pendW := 0

	flush := func() {
		lines = append(lines, fromGraphemes(cur))
		cur = nil
		curW = 0
	}

	// hardBreak fills whole lines with an oversized run
	hardBreak := func(run []styledGrapheme) {
		for _, g := range run {
			if curW+g.Width > width && curW > 0 {
				flush()
			}
			cur = append(cur, g)
			curW += g.Width
		}
	}

	for _, tok := range toks {
		if tok.isSpace {
			if curW == 0 && trim {
				continue
			}
			pend = append(pend, tok.gs...)
			pendW += tok.width
			continue
		}

		switch {
		case curW+pendW+tok.width <= width:
			cur = append(cur, pend...)
			cur = append(cur, tok.gs...)
			curW += pendW + tok.width
		case tok.width > width:
			if curW > 0 {
				flush()
			}
			hardBreak(tok.gs)
		default:
			flush()
			cur = append(cur, tok.gs...)
			curW = tok.width
		}
		pend = nil
		pendW = 0
	}

	// trailing whitespace survives only when untrimmed and within width
	if !trim && pendW > 0 && curW+pendW <= width {
		cur = append(cur, pend...)
		curW += pendW
	}
	lines = append(lines, fromGraphemes(cur))
	return lines
}

// SkipColumns drops the leading n display columns from a line. A wide
// grapheme straddling the cut is dropped entirely.
func SkipColumns(l Line, n int) Line {
	if n <= 0 {
		return l
	}
	gs := graphemes(l)
	skipped := 0
	i := 0
	for ; i < len(gs) && skipped < n; i++ {
		skipped += gs[i].Width
	}
	return fromGraphemes(gs[i:])
}
