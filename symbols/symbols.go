// Package symbols provides the block, bar, box-drawing, and braille glyphs
// used by widgets and the canvas rasterizer.
package symbols

// BlockLevels holds left-anchored partial blocks indexed by filled eighths
// (0 = empty through 8 = full)
var BlockLevels = [9]string{" ", "▏", "▎", "▍", "▌", "▋", "▊", "▉", "█"}

// BarLevels holds bottom-anchored partial blocks indexed by filled eighths
var BarLevels = [9]string{" ", "▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}

const (
	BlockFull = "█"
	BlockHalf = "▌"

	BarFull = "█"
	BarHalf = "▄"

	// Dot marks a single plotted point
	Dot = "•"
)

// BarLevel returns the bar glyph for a filled-eighth level, clamping at full
func BarLevel(level int) string {
	if level < 0 {
		level = 0
	}
	if level > 8 {
		level = 8
	}
	return BarLevels[level]
}

// LineSet groups the box-drawing glyphs of one border weight
type LineSet struct {
	Vertical       string
	Horizontal     string
	TopLeft        string
	TopRight       string
	BottomLeft     string
	BottomRight    string
	VerticalLeft   string
	VerticalRight  string
	HorizontalDown string
	HorizontalUp   string
	Cross          string
}

var LineNormal = LineSet{
	Vertical:       "│",
	Horizontal:     "─",
	TopLeft:        "┌",
	TopRight:       "┐",
	BottomLeft:     "└",
	BottomRight:    "┘",
	VerticalLeft:   "┤",
	VerticalRight:  "├",
	HorizontalDown: "┬",
	HorizontalUp:   "┴",
	Cross:          "┼",
}

var LineRounded = LineSet{
	Vertical:       "│",
	Horizontal:     "─",
	TopLeft:        "╭",
	TopRight:       "╮",
	BottomLeft:     "╰",
	BottomRight:    "╯",
	VerticalLeft:   "┤",
	VerticalRight:  "├",
	HorizontalDown: "┬",
	HorizontalUp:   "┴",
	Cross:          "┼",
}

var LineDouble = LineSet{
	Vertical:       "║",
	Horizontal:     "═",
	TopLeft:        "╔",
	TopRight:       "╗",
	BottomLeft:     "╚",
	BottomRight:    "╝",
	VerticalLeft:   "╣",
	VerticalRight:  "╠",
	HorizontalDown: "╦",
	HorizontalUp:   "╩",
	Cross:          "╬",
}

var LineThick = LineSet{
	Vertical:       "┃",
	Horizontal:     "━",
	TopLeft:        "┏",
	TopRight:       "┓",
	BottomLeft:     "┗",
	BottomRight:    "┛",
	VerticalLeft:   "┫",
	VerticalRight:  "┣",
	HorizontalDown: "┳",
	HorizontalUp:   "┻",
	Cross:          "╋",
}

// BrailleBlank is the braille pattern with no dots set; painted sub-cell
// pixels OR their dot bit onto it and the result is the cell's rune
const BrailleBlank rune = 0x2800

// BrailleDots maps a sub-cell pixel at (row, col) of the 4x2 grid inside one
// terminal cell to its braille dot bit
var BrailleDots = [4][2]rune{
	{0x0001, 0x0008},
	{0x0002, 0x0010},
	{0x0004, 0x0020},
	{0x0040, 0x0080},
}

// Marker selects the glyph resolution used when plotting canvas points
type Marker uint8

const (
	MarkerDot     Marker = iota // one dot glyph per cell
	MarkerBlock                 // one full block per cell
	MarkerBraille               // up to 8 points per cell
)
