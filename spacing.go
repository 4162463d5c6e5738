package geom

import "fmt"

// Spacing represents independent margins on the four edges of a region,
// in CSS order: top, right, bottom, left. All values are >= 0.
type Spacing struct {
	Top, Right, Bottom, Left int
}

// NewSpacing creates a Spacing from four values in CSS order:
// top, right, bottom, left. Negative inputs are clamped to 0.
func NewSpacing(top, right, bottom, left int) Spacing {
	return Spacing{
		Top:    max(top, 0),
		Right:  max(right, 0),
		Bottom: max(bottom, 0),
		Left:   max(left, 0),
	}
}

// SpacingAll creates a Spacing with the same value on all edges.
func SpacingAll(n int) Spacing {
	return NewSpacing(n, n, n, n)
}

// SpacingVH creates a Spacing with vertical (top/bottom) and horizontal
// (left/right) values.
func SpacingVH(v, h int) Spacing {
	return NewSpacing(v, h, v, h)
}

// SpacingVertical creates a Spacing with the given value on the top and
// bottom edges only.
func SpacingVertical(n int) Spacing {
	return NewSpacing(n, 0, n, 0)
}

// SpacingHorizontal creates a Spacing with the given value on the left and
// right edges only.
func SpacingHorizontal(n int) Spacing {
	return NewSpacing(0, n, 0, n)
}

// UnpackSpacing expands the CSS shorthand convention: one value applies to
// all edges, two values apply as (vertical, horizontal), and four values
// apply as (top, right, bottom, left). Any other count returns the zero
// Spacing; this layer has no error channel.
func UnpackSpacing(values ...int) Spacing {
	switch len(values) {
	case 1:
		return SpacingAll(values[0])
	case 2:
		return SpacingVH(values[0], values[1])
	case 4:
		return NewSpacing(values[0], values[1], values[2], values[3])
	}
	return Spacing{}
}

// TRBL returns the components in CSS order: top, right, bottom, left.
func (s Spacing) TRBL() (top, right, bottom, left int) {
	return s.Top, s.Right, s.Bottom, s.Left
}

// Add returns the component-wise sum of the two spacings.
func (s Spacing) Add(other Spacing) Spacing {
	return Spacing{
		Top:    s.Top + other.Top,
		Right:  s.Right + other.Right,
		Bottom: s.Bottom + other.Bottom,
		Left:   s.Left + other.Left,
	}
}

// Max returns the component-wise maximum of the two spacings. Collapsing
// adjacent margins takes the larger of each pair of edges.
func (s Spacing) Max(other Spacing) Spacing {
	return Spacing{
		Top:    max(s.Top, other.Top),
		Right:  max(s.Right, other.Right),
		Bottom: max(s.Bottom, other.Bottom),
		Left:   max(s.Left, other.Left),
	}
}

// Horizontal returns the sum of Left and Right.
func (s Spacing) Horizontal() int {
	return s.Left + s.Right
}

// Vertical returns the sum of Top and Bottom.
func (s Spacing) Vertical() int {
	return s.Top + s.Bottom
}

// MaxHorizontal returns the larger of Left and Right.
func (s Spacing) MaxHorizontal() int {
	return max(s.Left, s.Right)
}

// MaxVertical returns the larger of Top and Bottom.
func (s Spacing) MaxVertical() int {
	return max(s.Top, s.Bottom)
}

// IsZero returns true if all edge values are zero.
func (s Spacing) IsZero() bool {
	return s.Top == 0 && s.Right == 0 && s.Bottom == 0 && s.Left == 0
}

// CSS returns the spacing in its shortest CSS shorthand form.
func (s Spacing) CSS() string {
	if s.Top == s.Right && s.Right == s.Bottom && s.Bottom == s.Left {
		return fmt.Sprintf("%d", s.Top)
	}
	if s.Top == s.Bottom && s.Right == s.Left {
		return fmt.Sprintf("%d %d", s.Top, s.Right)
	}
	return fmt.Sprintf("%d %d %d %d", s.Top, s.Right, s.Bottom, s.Left)
}
