package geom

// SplitVertical divides the region into left and right sub-regions at the
// given local x offset. A negative cut measures from the right edge;
// the cut is then clamped into [0, Width]. The column at the cut belongs
// to the right sub-region. The two parts union back to the original
// region exactly and never overlap.
func (r Region) SplitVertical(cut int) (left, right Region) {
	if cut < 0 {
		cut += r.Width
	}
	cut = clamp(cut, 0, r.Width)
	left = Region{X: r.X, Y: r.Y, Width: cut, Height: r.Height}
	right = Region{X: r.X + cut, Y: r.Y, Width: r.Width - cut, Height: r.Height}
	return left, right
}

// SplitHorizontal divides the region into top and bottom sub-regions at
// the given local y offset. A negative cut measures from the bottom edge;
// the cut is then clamped into [0, Height]. The row at the cut belongs to
// the bottom sub-region. The two parts union back to the original region
// exactly and never overlap.
func (r Region) SplitHorizontal(cut int) (top, bottom Region) {
	if cut < 0 {
		cut += r.Height
	}
	cut = clamp(cut, 0, r.Height)
	top = Region{X: r.X, Y: r.Y, Width: r.Width, Height: cut}
	bottom = Region{X: r.X, Y: r.Y + cut, Width: r.Width, Height: r.Height - cut}
	return top, bottom
}

// Split divides the region into four quadrants at the given local cut
// point, combining SplitVertical and SplitHorizontal. Quadrants are
// returned in reading order: top-left, top-right, bottom-left,
// bottom-right. Any quadrant may be empty when a cut sits on a boundary;
// the four parts partition the region losslessly and are pairwise
// disjoint.
func (r Region) Split(cutX, cutY int) (topLeft, topRight, bottomLeft, bottomRight Region) {
	if cutX < 0 {
		cutX += r.Width
	}
	if cutY < 0 {
		cutY += r.Height
	}
	cutX = clamp(cutX, 0, r.Width)
	cutY = clamp(cutY, 0, r.Height)

	topLeft = Region{X: r.X, Y: r.Y, Width: cutX, Height: cutY}
	topRight = Region{X: r.X + cutX, Y: r.Y, Width: r.Width - cutX, Height: cutY}
	bottomLeft = Region{X: r.X, Y: r.Y + cutY, Width: cutX, Height: r.Height - cutY}
	bottomRight = Region{X: r.X + cutX, Y: r.Y + cutY, Width: r.Width - cutX, Height: r.Height - cutY}
	return topLeft, topRight, bottomLeft, bottomRight
}
