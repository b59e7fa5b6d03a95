package backend

import "testing"

func TestRGBTo256ExactPaletteEntries(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    uint8
	}{
		{"cube black", 0, 0, 0, 16},
		{"cube white", 255, 255, 255, 231},
		{"cube interior", 95, 135, 175, 67},
		{"cube red face", 255, 0, 0, 196},
		{"gray ramp low", 8, 8, 8, 232},
		{"gray ramp mid", 128, 128, 128, 244},
		{"gray ramp high", 238, 238, 238, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rgbTo256(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("rgbTo256(%d,%d,%d): expected %d, got %d", tt.r, tt.g, tt.b, tt.want, got)
			}
		})
	}
}

func TestRGBTo256SkipsThemeableColors(t *testing.T) {
	// near-VGA values must still land in the cube or gray ramp
	for _, c := range [][3]uint8{{205, 0, 0}, {0, 0, 238}, {229, 229, 229}} {
		if got := rgbTo256(c[0], c[1], c[2]); got < 16 {
			t.Errorf("rgbTo256(%v) = %d, expected an index >= 16", c, got)
		}
	}
}

func TestRGBTo256CacheStable(t *testing.T) {
	first := rgbTo256(12, 200, 77)
	second := rgbTo256(12, 200, 77)
	if first != second {
		t.Errorf("Expected stable result, got %d then %d", first, second)
	}
}
