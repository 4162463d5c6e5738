package geom

// Size represents a rectangle's extent without a position.
// Both dimensions are always >= 0.
type Size struct {
	Width, Height int
}

// NewSize creates a Size with the given dimensions.
// Negative inputs are clamped to 0; layout arithmetic routinely produces
// transient negative extents from subtractions.
func NewSize(width, height int) Size {
	return Size{Width: max(width, 0), Height: max(height, 0)}
}

// WH returns the components in (width, height) order.
func (s Size) WH() (width, height int) {
	return s.Width, s.Height
}

// IsEmpty returns true if either dimension is zero.
func (s Size) IsEmpty() bool {
	return s.Width == 0 || s.Height == 0
}

// Area returns the number of cells covered by the size.
func (s Size) Area() int {
	return s.Width * s.Height
}

// Contains returns true if the point (x, y) lies within the size.
// The test is half-open: 0 <= x < Width and 0 <= y < Height.
func (s Size) Contains(x, y int) bool {
	return x >= 0 && x < s.Width && y >= 0 && y < s.Height
}

// ContainsOffset returns true if the offset lies within the size.
func (s Size) ContainsOffset(o Offset) bool {
	return s.Contains(o.X, o.Y)
}

// Min returns the component-wise minimum of the two sizes.
func (s Size) Min(other Size) Size {
	return Size{Width: min(s.Width, other.Width), Height: min(s.Height, other.Height)}
}

// Max returns the component-wise maximum of the two sizes.
func (s Size) Max(other Size) Size {
	return Size{Width: max(s.Width, other.Width), Height: max(s.Height, other.Height)}
}

// Add returns the component-wise sum of the two sizes.
func (s Size) Add(other Size) Size {
	return Size{Width: s.Width + other.Width, Height: s.Height + other.Height}
}

// Sub returns the component-wise difference, clamped at 0.
func (s Size) Sub(other Size) Size {
	return NewSize(s.Width-other.Width, s.Height-other.Height)
}

// Mul returns the size multiplied by an integer factor, clamped at 0.
func (s Size) Mul(factor int) Size {
	return NewSize(s.Width*factor, s.Height*factor)
}

// Scale returns the size multiplied by a fractional factor,
// rounded half-to-even and clamped at 0.
func (s Size) Scale(factor float64) Size {
	return s.ScaleXY(factor, factor)
}

// ScaleXY returns the size with each dimension multiplied by its own
// fractional factor, rounded half-to-even and clamped at 0.
func (s Size) ScaleXY(fx, fy float64) Size {
	return NewSize(scaleRound(s.Width, fx), scaleRound(s.Height, fy))
}

// WithWidth returns the size with the width replaced.
func (s Size) WithWidth(width int) Size {
	return NewSize(width, s.Height)
}

// WithHeight returns the size with the height replaced.
func (s Size) WithHeight(height int) Size {
	return NewSize(s.Width, height)
}

// Region returns a Region of this size placed at the origin.
func (s Size) Region() Region {
	return Region{Width: s.Width, Height: s.Height}
}
