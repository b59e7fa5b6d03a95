package style

import "testing"

func TestPatchFieldwise(t *testing.T) {
	tests := []struct {
		name  string
		base  Style
		over  Style
		want  Style
	}{
		{
			"Empty over empty",
			Style{},
			Style{},
			Style{},
		},
		{
			"Foreground replaces",
			Style{Fg: Red},
			Style{Fg: Blue},
			Style{Fg: Blue},
		},
		{
			"Unset foreground inherits",
			Style{Fg: Red, Bg: Black},
			Style{Bg: White},
			Style{Fg: Red, Bg: White},
		},
		{
			"Modifiers combine",
			Style{Mods: ModBold},
			Style{Mods: ModItalic},
			Style{Mods: ModBold | ModItalic},
		},
		{
			"RGB over indexed",
			Style{Fg: Indexed(3)},
			Style{Fg: RGB(10, 20, 30)},
			Style{Fg: RGB(10, 20, 30)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.base.Patch(tt.over)
			if got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestPatchAssociative(t *testing.T) {
	a := Style{Fg: Red, Mods: ModBold}
	b := Style{Bg: Blue, Mods: ModDim}
	c := Style{Fg: White, Mods: ModReversed}

	left := a.Patch(b).Patch(c)
	right := a.Patch(b.Patch(c))
	if left != right {
		t.Errorf("Expected associative patch, got %+v vs %+v", left, right)
	}
}

func TestModifierAddRemove(t *testing.T) {
	s := Style{}.Add(ModBold | ModUnderlined)
	if !s.Mods.Has(ModBold) || !s.Mods.Has(ModUnderlined) {
		t.Errorf("Expected bold and underlined set, got %v", s.Mods)
	}

	s = s.Remove(ModBold)
	if s.Mods.Has(ModBold) {
		t.Errorf("Expected bold cleared, got %v", s.Mods)
	}
	if !s.Mods.Has(ModUnderlined) {
		t.Errorf("Expected underlined preserved, got %v", s.Mods)
	}
}

func TestColorConstructors(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want Color
	}{
		{"Zero value is default", Color{}, Color{Mode: ColorDefault}},
		{"Named black", Black, Color{Mode: ColorIndexed, Index: 0}},
		{"Named white", White, Color{Mode: ColorIndexed, Index: 15}},
		{"Cube center", Cube(3, 3, 3), Color{Mode: ColorIndexed, Index: 16 + 36*3 + 6*3 + 3}},
		{"Cube clamps", Cube(9, 0, 0), Color{Mode: ColorIndexed, Index: 16 + 36*5}},
		{"Grayscale first", Grayscale(0), Color{Mode: ColorIndexed, Index: 232}},
		{"Grayscale clamps", Grayscale(99), Color{Mode: ColorIndexed, Index: 255}},
		{"RGB carries channels", RGB(1, 2, 3), Color{Mode: ColorRGB, R: 1, G: 2, B: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.c != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, tt.c)
			}
		})
	}
}

func TestIsDefault(t *testing.T) {
	if !(Color{}).IsDefault() {
		t.Errorf("Expected zero color to be default")
	}
	if Indexed(0).IsDefault() {
		t.Errorf("Expected indexed black to not be default")
	}
	if RGB(0, 0, 0).IsDefault() {
		t.Errorf("Expected RGB black to not be default")
	}
}
