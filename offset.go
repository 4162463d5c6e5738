package geom

import "math"

// Offset represents a displacement or point on the integer plane.
type Offset struct {
	X, Y int
}

// NewOffset creates an Offset at (x, y).
func NewOffset(x, y int) Offset {
	return Offset{X: x, Y: y}
}

// XY returns the components in (x, y) order.
func (o Offset) XY() (x, y int) {
	return o.X, o.Y
}

// IsOrigin returns true if the offset is (0, 0).
func (o Offset) IsOrigin() bool {
	return o.X == 0 && o.Y == 0
}

// Add returns a new Offset displaced by other.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Sub returns a new Offset with other subtracted.
func (o Offset) Sub(other Offset) Offset {
	return Offset{X: o.X - other.X, Y: o.Y - other.Y}
}

// Neg returns the offset with both components negated.
func (o Offset) Neg() Offset {
	return Offset{X: -o.X, Y: -o.Y}
}

// Mul returns the offset multiplied by an integer factor.
func (o Offset) Mul(factor int) Offset {
	return Offset{X: o.X * factor, Y: o.Y * factor}
}

// Scale returns the offset multiplied by a fractional factor,
// rounded half-to-even on each axis.
func (o Offset) Scale(factor float64) Offset {
	return o.ScaleXY(factor, factor)
}

// ScaleXY returns the offset with each axis multiplied by its own
// fractional factor, rounded half-to-even.
func (o Offset) ScaleXY(fx, fy float64) Offset {
	return Offset{X: scaleRound(o.X, fx), Y: scaleRound(o.Y, fy)}
}

// Transpose returns the offset with the axes swapped.
func (o Offset) Transpose() Offset {
	return Offset{X: o.Y, Y: o.X}
}

// Less reports whether o sorts before other, ordering by Y then X.
// Row-major order keeps region sorts stable in layout passes.
func (o Offset) Less(other Offset) bool {
	if o.Y != other.Y {
		return o.Y < other.Y
	}
	return o.X < other.X
}

// In returns true if the offset lies inside the given region.
func (o Offset) In(r Region) bool {
	return r.Contains(o.X, o.Y)
}

// Clamp returns the nearest offset inside r, clamping each axis
// independently. An axis with zero extent collapses to the region's
// origin on that axis.
func (o Offset) Clamp(r Region) Offset {
	x, y := o.X, o.Y
	if x < r.X {
		x = r.X
	} else if x >= r.Right() {
		x = r.Right() - 1
	}
	if r.Width == 0 {
		x = r.X
	}
	if y < r.Y {
		y = r.Y
	} else if y >= r.Bottom() {
		y = r.Bottom() - 1
	}
	if r.Height == 0 {
		y = r.Y
	}
	return Offset{X: x, Y: y}
}

// Blend returns the offset interpolated toward destination by factor in
// [0, 1], flooring each axis. Flooring keeps repeated animation steps
// monotone from origin to destination.
func (o Offset) Blend(destination Offset, factor float64) Offset {
	x := float64(o.X) + (float64(destination.X)-float64(o.X))*factor
	y := float64(o.Y) + (float64(destination.Y)-float64(o.Y))*factor
	return Offset{X: int(math.Floor(x)), Y: int(math.Floor(y))}
}

// Distance returns the Euclidean distance to other.
func (o Offset) Distance(other Offset) float64 {
	dx := float64(other.X - o.X)
	dy := float64(other.Y - o.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// scaleRound multiplies v by factor and rounds half-to-even.
func scaleRound(v int, factor float64) int {
	return int(math.RoundToEven(float64(v) * factor))
}
