package style

// ColorMode selects how a Color value is encoded
type ColorMode uint8

const (
	ColorDefault ColorMode = iota // terminal default, inherits when patched
	ColorIndexed                  // xterm 256-palette index
	ColorRGB                      // 24-bit direct color
)

// Color is a terminal color. The zero value is the terminal default; when a
// style carrying it is patched over another, the base color shows through.
type Color struct {
	Mode    ColorMode
	Index   uint8
	R, G, B uint8
}

// Indexed returns a palette color for an xterm 256-color index
func Indexed(i uint8) Color {
	return Color{Mode: ColorIndexed, Index: i}
}

// RGB returns a 24-bit direct color
func RGB(r, g, b uint8) Color {
	return Color{Mode: ColorRGB, R: r, G: g, B: b}
}

// IsDefault returns true if the color is unset
func (c Color) IsDefault() bool {
	return c.Mode == ColorDefault
}

// Named colors of the standard ANSI palette (indices 0-15)
var (
	Black        = Indexed(0)
	Red          = Indexed(1)
	Green        = Indexed(2)
	Yellow       = Indexed(3)
	Blue         = Indexed(4)
	Magenta      = Indexed(5)
	Cyan         = Indexed(6)
	Gray         = Indexed(7)
	DarkGray     = Indexed(8)
	LightRed     = Indexed(9)
	LightGreen   = Indexed(10)
	LightYellow  = Indexed(11)
	LightBlue    = Indexed(12)
	LightMagenta = Indexed(13)
	LightCyan    = Indexed(14)
	White        = Indexed(15)
)

// Cube returns the 256-palette index for a color cube coordinate.
// r, g, b must be in [0,5]; values outside that range are clamped.
func Cube(r, g, b uint8) Color {
	if r > 5 {
		r = 5
	}
	if g > 5 {
		g = 5
	}
	if b > 5 {
		b = 5
	}
	return Indexed(16 + 36*r + 6*g + b)
}

// Grayscale returns the 256-palette index for a grayscale step.
// step must be in [0,23] (maps to indices 232-255).
func Grayscale(step uint8) Color {
	if step > 23 {
		step = 23
	}
	return Indexed(232 + step)
}
