package backend

import "github.com/lucasb-eyer/go-colorful"

// xtermPalette holds the 256-color palette as colorful values for
// perceptual distance matching. The first 16 entries use the common VGA
// values, though terminals are free to theme them; quantization skips them
// so themed palettes cannot skew RGB matching.
var xtermPalette [256]colorful.Color

// cubeLevels are the channel values of the 6x6x6 color cube
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

func init() {
	vga := [16][3]uint8{
		{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0},
		{0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
		{127, 127, 127}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
		{92, 92, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
	}
	for i, c := range vga {
		xtermPalette[i] = rgbToColorful(c[0], c[1], c[2])
	}
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				xtermPalette[16+36*r+6*g+b] = rgbToColorful(cubeLevels[r], cubeLevels[g], cubeLevels[b])
			}
		}
	}
	for step := 0; step < 24; step++ {
		v := uint8(8 + step*10)
		xtermPalette[232+step] = rgbToColorful(v, v, v)
	}
}

func rgbToColorful(r, g, b uint8) colorful.Color {
	return colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}
}

// rgbCache memoizes quantization results. Rendering is single-threaded, so
// the map needs no lock.
var rgbCache = make(map[uint32]uint8)

// rgbTo256 quantizes a 24-bit color to the nearest palette entry among the
// cube and grayscale ramp, by CIE Lab distance
func rgbTo256(r, g, b uint8) uint8 {
	key := uint32(r)<<16 | uint32(g)<<8 | uint32(b)
	if idx, ok := rgbCache[key]; ok {
		return idx
	}

	target := rgbToColorful(r, g, b)
	best := uint8(16)
	bestDist := -1.0
	for i := 16; i < 256; i++ {
		d := target.DistanceLab(xtermPalette[i])
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = uint8(i)
		}
	}
	rgbCache[key] = best
	return best
}
