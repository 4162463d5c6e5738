package geom

// Constrain selects how a region is kept within a container on one axis.
type Constrain int

const (
	// ConstrainNone leaves the axis unchanged.
	ConstrainNone Constrain = iota
	// ConstrainInside slides the region along the axis until it fits.
	ConstrainInside
	// ConstrainInflect mirrors the region to the other side of its
	// anchor edge when it does not fit, then slides it inside. Used for
	// popup and tooltip placement.
	ConstrainInflect
)

// BoundingRegion returns the smallest region containing every given
// region. No input yields the zero Region.
func BoundingRegion(regions ...Region) Region {
	if len(regions) == 0 {
		return Region{}
	}
	x1, y1, x2, y2 := regions[0].Corners()
	for _, r := range regions[1:] {
		x1 = min(x1, r.X)
		y1 = min(y1, r.Y)
		x2 = max(x2, r.Right())
		y2 = max(y2, r.Bottom())
	}
	return RegionFromCorners(x1, y1, x2, y2)
}

// CenterOf returns the origin at which a rectangle of the given size,
// centered within this region, would be placed. Odd leftover space is
// split with the smaller half toward the lower coordinate (floor
// division on both axes).
func (r Region) CenterOf(size Size) Offset {
	return Offset{
		X: r.X + halfFloor(r.Width-size.Width),
		Y: r.Y + halfFloor(r.Height-size.Height),
	}
}

// SpacingBetween returns the spacing that would shrink this region onto
// other. Edges of other outside this region clamp to 0.
func (r Region) SpacingBetween(other Region) Spacing {
	return NewSpacing(
		other.Y-r.Y,
		r.Right()-other.Right(),
		r.Bottom()-other.Bottom(),
		other.X-r.X,
	)
}

// TranslateInside slides the region along the enabled axes so that it
// lies within container. A region larger than the container pins to the
// container's origin on that axis.
func (r Region) TranslateInside(container Region, xAxis, yAxis bool) Region {
	x, y := r.X, r.Y
	if xAxis {
		x = max(min(x, container.Right()-r.Width), container.X)
	}
	if yAxis {
		y = max(min(y, container.Bottom()-r.Height), container.Y)
	}
	return Region{X: x, Y: y, Width: r.Width, Height: r.Height}
}

// Inflect mirrors the region to the opposite side of its own edge on each
// axis with a non-zero direction (-1 flips left/up, +1 flips right/down),
// keeping the larger of the margin's opposing edges between the two
// placements.
func (r Region) Inflect(xAxis, yAxis int, margin Spacing) Region {
	x, y := r.X, r.Y
	if xAxis != 0 {
		x += (r.Width + margin.MaxHorizontal()) * xAxis
	}
	if yAxis != 0 {
		y += (r.Height + margin.MaxVertical()) * yAxis
	}
	return Region{X: x, Y: y, Width: r.Width, Height: r.Height}
}

// Constrain keeps the region within container, honoring the given modes
// per axis and keeping at least margin between the region and the
// container edges. Inflection happens before sliding so a popup flips to
// the other side of its anchor before being clamped.
func (r Region) Constrain(x, y Constrain, margin Spacing, container Region) Region {
	region := r
	if x == ConstrainInflect || y == ConstrainInflect {
		marginRegion := r.Grow(margin)
		xAxis, yAxis := 0, 0
		if x == ConstrainInflect {
			xAxis = -compareSpan(marginRegion.X, marginRegion.Right(), container.X, container.Right())
		}
		if y == ConstrainInflect {
			yAxis = -compareSpan(marginRegion.Y, marginRegion.Bottom(), container.Y, container.Bottom())
		}
		region = region.Inflect(xAxis, yAxis, margin)
	}
	return region.TranslateInside(container.Shrink(margin), x != ConstrainNone, y != ConstrainNone)
}

// ScrollToVisible returns the scroll delta that brings target into view
// within window, preferring the smaller movement on each axis. When top
// is true the target's top edge aligns with the window's top edge
// regardless of visibility.
func ScrollToVisible(window, target Region, top bool) Offset {
	if !top && window.ContainsRegion(target) {
		// Already visible, nothing to scroll.
		return Offset{}
	}

	windowLeft, windowTop, windowRight, windowBottom := window.Corners()
	target = target.CropSize(window.Size())
	left, targetTop, right, bottom := target.Corners()
	var deltaX, deltaY int

	if !((windowRight > left && left >= windowLeft) &&
		(windowRight > right && right >= windowLeft)) {
		// Scroll on the x axis; move whichever edge is closer.
		option1 := left - windowLeft
		option2 := left - (windowRight - target.Width)
		if abs(option1) < abs(option2) {
			deltaX = option1
		} else {
			deltaX = option2
		}
	}

	if top {
		deltaY = targetTop - windowTop
	} else if !((windowBottom > targetTop && targetTop >= windowTop) &&
		(windowBottom > bottom && bottom >= windowTop)) {
		// Scroll on the y axis; move whichever edge is closer.
		option1 := targetTop - windowTop
		option2 := targetTop - (windowBottom - target.Height)
		if abs(option1) < abs(option2) {
			deltaY = option1
		} else {
			deltaY = option2
		}
	}

	return Offset{X: deltaX, Y: deltaY}
}

// compareSpan reports where a span sits relative to a container span:
// 0 when inside, -1 when it overflows the start, 1 when it overflows
// the end.
func compareSpan(spanStart, spanEnd, containerStart, containerEnd int) int {
	if spanStart > containerStart && spanEnd <= containerEnd {
		return 0
	}
	if spanStart < containerStart {
		return -1
	}
	return 1
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
