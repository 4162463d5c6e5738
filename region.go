package geom

// Region represents an axis-aligned rectangle with integer coordinates.
// X and Y are the top-left corner; Width and Height are always >= 0.
// A Region with either dimension zero is empty; empty regions are the
// identity element for Union and absorb under Intersection.
type Region struct {
	X, Y          int
	Width, Height int
}

// NewRegion creates a Region with the given position and dimensions.
// Negative dimensions are clamped to 0.
func NewRegion(x, y, width, height int) Region {
	return Region{X: x, Y: y, Width: max(width, 0), Height: max(height, 0)}
}

// RegionAt creates a Region of the given size positioned at offset.
func RegionAt(offset Offset, size Size) Region {
	return Region{X: offset.X, Y: offset.Y, Width: size.Width, Height: size.Height}
}

// RegionFromCorners creates a Region spanning (x1, y1) to (x2, y2).
// Inverted corners produce an empty Region at (x1, y1).
func RegionFromCorners(x1, y1, x2, y2 int) Region {
	return NewRegion(x1, y1, x2-x1, y2-y1)
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Region) Right() int {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Region) Bottom() int {
	return r.Y + r.Height
}

// IsEmpty returns true if the region has zero area.
func (r Region) IsEmpty() bool {
	return r.Width == 0 || r.Height == 0
}

// Area returns the number of cells covered by the region.
func (r Region) Area() int {
	return r.Width * r.Height
}

// Offset returns the region's origin as an Offset.
func (r Region) Offset() Offset {
	return Offset{X: r.X, Y: r.Y}
}

// Size returns the region's dimensions as a Size.
func (r Region) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Bounds returns the position and dimensions in field order.
func (r Region) Bounds() (x, y, width, height int) {
	return r.X, r.Y, r.Width, r.Height
}

// Corners returns the top-left and exclusive bottom-right corners
// as (x1, y1, x2, y2).
func (r Region) Corners() (x1, y1, x2, y2 int) {
	return r.X, r.Y, r.X + r.Width, r.Y + r.Height
}

// TopRight returns the top-right corner (exclusive on x).
func (r Region) TopRight() Offset {
	return Offset{X: r.Right(), Y: r.Y}
}

// BottomLeft returns the bottom-left corner (exclusive on y).
func (r Region) BottomLeft() Offset {
	return Offset{X: r.X, Y: r.Bottom()}
}

// BottomRight returns the exclusive bottom-right corner.
func (r Region) BottomRight() Offset {
	return Offset{X: r.Right(), Y: r.Bottom()}
}

// Center returns the center cell of the region. Odd extents have no exact
// center; the tie goes to the lower coordinate on each axis.
func (r Region) Center() Offset {
	return Offset{X: r.X + halfFloor(r.Width), Y: r.Y + halfFloor(r.Height)}
}

// Contains returns true if the point (x, y) is inside the region.
// Points on the left and top edges are inside; points on the right and
// bottom edges are outside.
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsOffset returns true if the offset is inside the region.
func (r Region) ContainsOffset(o Offset) bool {
	return r.Contains(o.X, o.Y)
}

// ContainsRegion returns true if other is fully contained within this
// region. An empty region is contained by anything.
func (r Region) ContainsRegion(other Region) bool {
	if other.IsEmpty() {
		return true
	}
	if r.IsEmpty() {
		return false
	}
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Overlaps returns true if the two regions share interior cells.
// Regions that only touch at an edge do not overlap, and an empty region
// overlaps nothing.
func (r Region) Overlaps(other Region) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return false
	}
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
}

// Intersection returns the largest region contained in both.
// When the regions do not overlap the result is empty and sits at the
// component-wise maximum of the two origins; the placement is
// deterministic so chained clips stay stable, and the operation remains
// commutative and associative.
func (r Region) Intersection(other Region) Region {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	return Region{
		X:      x,
		Y:      y,
		Width:  max(min(r.Right(), other.Right())-x, 0),
		Height: max(min(r.Bottom(), other.Bottom())-y, 0),
	}
}

// Union returns the smallest region containing both (the bounding box).
// An empty region is the identity: union with it returns the other
// operand unchanged.
func (r Region) Union(other Region) Region {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	x := min(r.X, other.X)
	y := min(r.Y, other.Y)
	return Region{
		X:      x,
		Y:      y,
		Width:  max(r.Right(), other.Right()) - x,
		Height: max(r.Bottom(), other.Bottom()) - y,
	}
}

// Crop clips this region to the bounds of other. The result is identical
// to Intersection; the separate name reflects the asymmetric call sites
// where other is a clip window.
func (r Region) Crop(other Region) Region {
	return r.Intersection(other)
}

// CropSize limits the region's dimensions to at most size, keeping the
// origin fixed.
func (r Region) CropSize(size Size) Region {
	return Region{
		X:      r.X,
		Y:      r.Y,
		Width:  min(r.Width, size.Width),
		Height: min(r.Height, size.Height),
	}
}

// Clip clamps all four corners of the region into a width x height
// window anchored at the origin.
func (r Region) Clip(width, height int) Region {
	x1, y1, x2, y2 := r.Corners()
	return RegionFromCorners(
		clamp(x1, 0, width),
		clamp(y1, 0, height),
		clamp(x2, 0, width),
		clamp(y2, 0, height),
	)
}

// Grow expands the region outward by the given spacing: the origin moves
// by (-left, -top) and each dimension gains the matching edge sums.
func (r Region) Grow(s Spacing) Region {
	if s.IsZero() {
		return r
	}
	return Region{
		X:      r.X - s.Left,
		Y:      r.Y - s.Top,
		Width:  max(r.Width+s.Horizontal(), 0),
		Height: max(r.Height+s.Vertical(), 0),
	}
}

// Shrink contracts the region inward by the given spacing, the inverse of
// Grow. A dimension that would go negative clamps to 0 with the origin
// still moved by the full (+left, +top), leaving the empty region at the
// clamped edge.
func (r Region) Shrink(s Spacing) Region {
	if s.IsZero() {
		return r
	}
	return Region{
		X:      r.X + s.Left,
		Y:      r.Y + s.Top,
		Width:  max(r.Width-s.Horizontal(), 0),
		Height: max(r.Height-s.Vertical(), 0),
	}
}

// Translate returns the region moved by offset, size unchanged.
func (r Region) Translate(offset Offset) Region {
	return Region{X: r.X + offset.X, Y: r.Y + offset.Y, Width: r.Width, Height: r.Height}
}

// At returns the region repositioned to the given origin.
func (r Region) At(offset Offset) Region {
	return Region{X: offset.X, Y: offset.Y, Width: r.Width, Height: r.Height}
}

// AtOrigin returns the region repositioned to (0, 0).
func (r Region) AtOrigin() Region {
	return Region{Width: r.Width, Height: r.Height}
}

// Less reports whether r sorts before other: by origin in row-major
// (Y, X) order, then by Height, then Width. The ordering is total.
func (r Region) Less(other Region) bool {
	if r.Y != other.Y {
		return r.Y < other.Y
	}
	if r.X != other.X {
		return r.X < other.X
	}
	if r.Height != other.Height {
		return r.Height < other.Height
	}
	return r.Width < other.Width
}

// clamp constrains value to [minimum, maximum].
func clamp(value, minimum, maximum int) int {
	if value < minimum {
		return minimum
	}
	if value > maximum {
		return maximum
	}
	return value
}

// halfFloor halves n rounding toward negative infinity.
func halfFloor(n int) int {
	if n < 0 {
		return (n - 1) / 2
	}
	return n / 2
}
