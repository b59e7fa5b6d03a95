package layout

import "testing"

func TestSplitPercentageHalves(t *testing.T) {
	l := Layout{
		Direction:   Horizontal,
		Constraints: []Constraint{Percentage(50), Percentage(50)},
	}
	rects := l.Split(Rect{Width: 100, Height: 10})

	if len(rects) != 2 {
		t.Fatalf("Expected 2 rects, got %d", len(rects))
	}
	if rects[0].Width != 50 || rects[1].Width != 50 {
		t.Errorf("Expected widths 50/50, got %d/%d", rects[0].Width, rects[1].Width)
	}
	if rects[0].Width+rects[1].Width != 100 {
		t.Errorf("Expected widths to sum to 100, got %d", rects[0].Width+rects[1].Width)
	}
}

func TestSplitMinAbsorbsRemainder(t *testing.T) {
	l := Layout{
		Direction:   Horizontal,
		Constraints: []Constraint{Length(30), Min(10), Min(10)},
	}
	rects := l.Split(Rect{Width: 100, Height: 1})

	if rects[0].Width != 30 {
		t.Errorf("Expected Length segment unchanged at 30, got %d", rects[0].Width)
	}
	if rects[1].Width != 35 || rects[2].Width != 35 {
		t.Errorf("Expected Min segments 35/35, got %d/%d", rects[1].Width, rects[2].Width)
	}
	sum := rects[0].Width + rects[1].Width + rects[2].Width
	if sum != 100 {
		t.Errorf("Expected segments to sum to 100, got %d", sum)
	}
}

func TestSplitTilesExactly(t *testing.T) {
	tests := []struct {
		name        string
		direction   Direction
		constraints []Constraint
		area        Rect
	}{
		{"Percentages", Horizontal, []Constraint{Percentage(30), Percentage(30), Percentage(40)}, Rect{Width: 101, Height: 5}},
		{"Ratios", Horizontal, []Constraint{Ratio(1, 3), Ratio(2, 3)}, Rect{Width: 100, Height: 5}},
		{"Mixed", Vertical, []Constraint{Length(3), Min(0), Length(2)}, Rect{Width: 20, Height: 24}},
		{"Over-constrained", Horizontal, []Constraint{Length(60), Length(60)}, Rect{Width: 100, Height: 5}},
		{"All fixed", Horizontal, []Constraint{Length(10), Length(10)}, Rect{Width: 50, Height: 5}},
		{"Single min", Vertical, []Constraint{Min(1)}, Rect{Width: 10, Height: 33}},
		{"With margin", Horizontal, []Constraint{Percentage(50), Min(5)}, Rect{Width: 40, Height: 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Layout{Direction: tt.direction, Constraints: tt.constraints}
			if tt.name == "With margin" {
				l.Margin = Margin{Horizontal: 2, Vertical: 1}
			}
			rects := l.Split(tt.area)
			inner := tt.area.Inner(l.Margin)

			total := inner.Width
			if tt.direction == Vertical {
				total = inner.Height
			}

			sum := 0
			offset := inner.X
			if tt.direction == Vertical {
				offset = inner.Y
			}
			for i, r := range rects {
				length := r.Width
				pos := r.X
				if tt.direction == Vertical {
					length = r.Height
					pos = r.Y
				}
				if pos != offset {
					t.Errorf("Segment %d starts at %d, expected %d (gap or overlap)", i, pos, offset)
				}
				if length < 0 {
					t.Errorf("Segment %d has negative length %d", i, length)
				}
				offset += length
				sum += length
			}
			if sum != total {
				t.Errorf("Expected lengths to sum to %d, got %d", total, sum)
			}
		})
	}
}

func TestSplitOverConstrainedShrinksFromLast(t *testing.T) {
	l := Layout{
		Direction:   Horizontal,
		Constraints: []Constraint{Min(80), Min(80)},
	}
	rects := l.Split(Rect{Width: 100, Height: 1})

	if rects[0].Width != 80 {
		t.Errorf("Expected first segment to keep 80, got %d", rects[0].Width)
	}
	if rects[1].Width != 20 {
		t.Errorf("Expected last segment shrunk to 20, got %d", rects[1].Width)
	}
}

func TestSplitSequentialLengthClaims(t *testing.T) {
	l := Layout{
		Direction:   Horizontal,
		Constraints: []Constraint{Length(60), Length(60)},
	}
	rects := l.Split(Rect{Width: 100, Height: 1})

	if rects[0].Width != 60 || rects[1].Width != 40 {
		t.Errorf("Expected 60/40, got %d/%d", rects[0].Width, rects[1].Width)
	}
}

func TestSplitMaxCapRespected(t *testing.T) {
	l := Layout{
		Direction:   Horizontal,
		Constraints: []Constraint{Min(10), Max(20)},
	}
	rects := l.Split(Rect{Width: 100, Height: 1})

	if rects[1].Width != 20 {
		t.Errorf("Expected Max segment capped at 20, got %d", rects[1].Width)
	}
	if rects[0].Width != 80 {
		t.Errorf("Expected Min segment to absorb 80, got %d", rects[0].Width)
	}
}

func TestSplitDeterministic(t *testing.T) {
	l := Layout{
		Direction:   Horizontal,
		Constraints: []Constraint{Min(0), Min(0), Min(0)},
	}
	area := Rect{Width: 10, Height: 1}

	first := l.Split(area)
	for run := 0; run < 10; run++ {
		again := l.Split(area)
		for i := range first {
			if first[i] != again[i] {
				t.Fatalf("Split not deterministic: run %d segment %d %v != %v", run, i, again[i], first[i])
			}
		}
	}

	// 10 over 3 segments: spare goes left to right one unit at a time
	if first[0].Width != 4 || first[1].Width != 3 || first[2].Width != 3 {
		t.Errorf("Expected 4/3/3, got %d/%d/%d", first[0].Width, first[1].Width, first[2].Width)
	}
}

func TestSplitZeroArea(t *testing.T) {
	l := Layout{
		Direction:   Vertical,
		Constraints: []Constraint{Min(10), Length(5)},
	}
	rects := l.Split(Rect{})

	for i, r := range rects {
		if r.Height != 0 {
			t.Errorf("Expected segment %d to collapse to zero, got height %d", i, r.Height)
		}
	}
}

func TestSplitVerticalPositions(t *testing.T) {
	l := Layout{
		Direction:   Vertical,
		Constraints: []Constraint{Length(3), Min(0)},
	}
	rects := l.Split(Rect{X: 2, Y: 5, Width: 20, Height: 10})

	if rects[0] != (Rect{X: 2, Y: 5, Width: 20, Height: 3}) {
		t.Errorf("Unexpected first segment %v", rects[0])
	}
	if rects[1] != (Rect{X: 2, Y: 8, Width: 20, Height: 7}) {
		t.Errorf("Unexpected second segment %v", rects[1])
	}
}

func TestConstraintApply(t *testing.T) {
	tests := []struct {
		name       string
		constraint Constraint
		length     int
		want       int
	}{
		{"Length clamps", Length(30), 20, 20},
		{"Length fits", Length(30), 100, 30},
		{"Percentage rounds nearest", Percentage(33), 10, 3},
		{"Percentage rounds up", Percentage(35), 10, 4},
		{"Ratio thirds", Ratio(1, 3), 100, 33},
		{"Ratio zero denominator", Ratio(1, 0), 100, 0},
		{"Min floor", Min(25), 10, 25},
		{"Max cap", Max(25), 100, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.constraint.Apply(tt.length); got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}
