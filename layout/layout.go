// Package layout resolves sizing constraints into concrete sub-rectangles.
// Splitting is deterministic: for a given area and constraint list the same
// rects come back every time, with no gaps and no overlap along the axis.
package layout

// Direction selects the axis a layout splits along
type Direction uint8

const (
	Vertical   Direction = iota // stack segments top to bottom
	Horizontal                  // stack segments left to right
)

// Alignment positions content within a horizontal span
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// ConstraintKind discriminates the sizing rule a Constraint applies
type ConstraintKind uint8

const (
	ConstraintLength     ConstraintKind = iota // exactly n cells
	ConstraintPercentage                       // n percent of the total
	ConstraintRatio                            // num/den of the total
	ConstraintMin                              // at least n cells, grows
	ConstraintMax                              // at most n cells
)

// Constraint is a sizing rule for one layout segment
type Constraint struct {
	Kind  ConstraintKind
	Value int
	Num   int
	Den   int
}

// Length claims exactly n cells
func Length(n int) Constraint {
	return Constraint{Kind: ConstraintLength, Value: n}
}

// Percentage claims p percent of the total, rounded to nearest
func Percentage(p int) Constraint {
	return Constraint{Kind: ConstraintPercentage, Value: p}
}

// Ratio claims num/den of the total, rounded to nearest
func Ratio(num, den int) Constraint {
	return Constraint{Kind: ConstraintRatio, Num: num, Den: den}
}

// Min claims at least n cells and absorbs spare space
func Min(n int) Constraint {
	return Constraint{Kind: ConstraintMin, Value: n}
}

// Max claims up to n cells
func Max(n int) Constraint {
	return Constraint{Kind: ConstraintMax, Value: n}
}

// Apply returns the constraint's preferred size for an available length
func (c Constraint) Apply(length int) int {
	switch c.Kind {
	case ConstraintLength:
		return min(c.Value, length)
	case ConstraintPercentage:
		return (length*c.Value + 50) / 100
	case ConstraintRatio:
		if c.Den == 0 {
			return 0
		}
		return (c.Num*length + c.Den/2) / c.Den
	case ConstraintMin:
		return max(c.Value, 0)
	case ConstraintMax:
		return min(c.Value, length)
	}
	return 0
}

// Layout is a stateless split configuration: a direction, a margin, and an
// ordered list of constraints, one per resulting segment
type Layout struct {
	Direction   Direction
	Margin      Margin
	Constraints []Constraint
}

// Split resolves the constraints against area and returns one rect per
// constraint, in order. The segment lengths along the axis always sum to the
// margin-reduced total; over- and under-constrained inputs resolve
// deterministically instead of failing.
func (l Layout) Split(area Rect) []Rect {
	n := len(l.Constraints)
	if n == 0 {
		return nil
	}

	inner := area.Inner(l.Margin)
	total := inner.Width
	if l.Direction == Vertical {
		total = inner.Height
	}

	sizes := l.resolve(total)

	rects := make([]Rect, n)
	offset := 0
	for i, size := range sizes {
		if l.Direction == Horizontal {
			rects[i] = Rect{X: inner.X + offset, Y: inner.Y, Width: size, Height: inner.Height}
		} else {
			rects[i] = Rect{X: inner.X, Y: inner.Y + offset, Width: inner.Width, Height: size}
		}
		offset += size
	}
	return rects
}

// resolve turns the constraint list into segment lengths summing to total
func (l Layout) resolve(total int) []int {
	n := len(l.Constraints)
	sizes := make([]int, n)

	// First pass: fixed kinds claim against the running remainder, while
	// percentages and ratios resolve against the full total.
	remaining := total
	for i, c := range l.Constraints {
		switch c.Kind {
		case ConstraintLength:
			sizes[i] = min(c.Value, max(remaining, 0))
		case ConstraintMin:
			sizes[i] = max(c.Value, 0)
		case ConstraintMax:
			sizes[i] = min(c.Value, max(remaining, 0))
		case ConstraintPercentage, ConstraintRatio:
			sizes[i] = c.Apply(total)
		}
		if sizes[i] < 0 {
			sizes[i] = 0
		}
		remaining -= sizes[i]
	}

	sum := 0
	for _, s := range sizes {
		sum += s
	}

	switch {
	case sum < total:
		l.distribute(sizes, total-sum)
	case sum > total:
		shrink(sizes, sum-total)
	}
	return sizes
}

// distribute hands out spare cells one at a time, left to right, to the
// segments allowed to grow: Min always, Percentage and Ratio freely, Max up
// to its cap. When nothing is eligible the last segment takes the rest,
// keeping the exact-tiling invariant over the per-kind preference.
func (l Layout) distribute(sizes []int, spare int) {
	eligible := func(i int) bool {
		c := l.Constraints[i]
		switch c.Kind {
		case ConstraintMin, ConstraintPercentage, ConstraintRatio:
			return true
		case ConstraintMax:
			return sizes[i] < c.Value
		}
		return false
	}

	for spare > 0 {
		given := false
		for i := range sizes {
			if spare == 0 {
				break
			}
			if eligible(i) {
				sizes[i]++
				spare--
				given = true
			}
		}
		if !given {
			sizes[len(sizes)-1] += spare
			return
		}
	}
}

// shrink removes the excess from the last segment toward the first, never
// taking a segment below zero
func shrink(sizes []int, excess int) {
	for i := len(sizes) - 1; i >= 0 && excess > 0; i-- {
		take := min(sizes[i], excess)
		sizes[i] -= take
		excess -= take
	}
}
