// Package style defines colors, text modifiers, and the composable Style
// value shared by buffers, widgets, and backends.
package style

// Modifier is a bitflag set of text attributes
type Modifier uint16

const (
	ModBold Modifier = 1 << iota
	ModDim
	ModItalic
	ModUnderlined
	ModSlowBlink
	ModRapidBlink
	ModReversed
	ModHidden
	ModCrossedOut

	ModNone Modifier = 0
)

// Has returns true if all flags in m are set
func (mo Modifier) Has(m Modifier) bool {
	return mo&m == m
}

// Style describes how a cell is drawn: foreground, background, and modifier
// flags. The zero value leaves everything at the terminal defaults.
type Style struct {
	Fg   Color
	Bg   Color
	Mods Modifier
}

// Foreground returns a copy of the style with the foreground replaced
func (s Style) Foreground(c Color) Style {
	s.Fg = c
	return s
}

// Background returns a copy of the style with the background replaced
func (s Style) Background(c Color) Style {
	s.Bg = c
	return s
}

// Add returns a copy of the style with the given modifier flags set
func (s Style) Add(m Modifier) Style {
	s.Mods |= m
	return s
}

// Remove returns a copy of the style with the given modifier flags cleared
func (s Style) Remove(m Modifier) Style {
	s.Mods &^= m
	return s
}

// Patch overlays other onto s field-wise: a set foreground or background in
// other replaces the base, unset ones inherit, and modifier flags combine.
// Patching is associative: a.Patch(b).Patch(c) == a.Patch(b.Patch(c)).
func (s Style) Patch(other Style) Style {
	if !other.Fg.IsDefault() {
		s.Fg = other.Fg
	}
	if !other.Bg.IsDefault() {
		s.Bg = other.Bg
	}
	s.Mods |= other.Mods
	return s
}
