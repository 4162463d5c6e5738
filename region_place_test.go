package geom

import "testing"

func TestBoundingRegion(t *testing.T) {
	type tc struct {
		regions []Region
		want    Region
	}

	tests := map[string]tc{
		"no regions": {
			regions: nil,
			want:    Region{},
		},
		"single region": {
			regions: []Region{NewRegion(3, 4, 5, 6)},
			want:    NewRegion(3, 4, 5, 6),
		},
		"disjoint regions": {
			regions: []Region{NewRegion(0, 0, 2, 2), NewRegion(8, 4, 2, 2), NewRegion(4, 8, 1, 1)},
			want:    NewRegion(0, 0, 10, 9),
		},
		"empty region still anchors the box": {
			regions: []Region{NewRegion(0, 0, 5, 5), NewRegion(10, 10, 0, 0)},
			want:    NewRegion(0, 0, 10, 10),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := BoundingRegion(tt.regions...); got != tt.want {
				t.Errorf("BoundingRegion() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRegion_CenterOf(t *testing.T) {
	type tc struct {
		region Region
		size   Size
		want   Offset
	}

	tests := map[string]tc{
		"even leftover splits evenly": {
			region: NewRegion(0, 0, 10, 10),
			size:   NewSize(4, 4),
			want:   NewOffset(3, 3),
		},
		"odd leftover floors": {
			// Leftover 5 splits 2/3 with the smaller half on the
			// left and top.
			region: NewRegion(0, 0, 10, 10),
			size:   NewSize(5, 5),
			want:   NewOffset(2, 2),
		},
		"offset origin": {
			region: NewRegion(10, 20, 7, 7),
			size:   NewSize(3, 3),
			want:   NewOffset(12, 22),
		},
		"size larger than region floors negative": {
			region: NewRegion(0, 0, 5, 5),
			size:   NewSize(10, 10),
			want:   NewOffset(-3, -3),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.region.CenterOf(tt.size); got != tt.want {
				t.Errorf("CenterOf(%v) = %v, want %v", tt.size, got, tt.want)
			}
		})
	}
}

func TestRegion_SpacingBetween(t *testing.T) {
	r := NewRegion(0, 0, 10, 10)
	inner := NewRegion(2, 3, 5, 4)

	got := r.SpacingBetween(inner)
	want := NewSpacing(3, 3, 3, 2)
	if got != want {
		t.Errorf("SpacingBetween() = %v, want %v", got, want)
	}

	// Shrinking by the spacing between reconstructs the inner region.
	if reconstructed := r.Shrink(got); reconstructed != inner {
		t.Errorf("Shrink(SpacingBetween()) = %v, want %v", reconstructed, inner)
	}

	// Edges of a region outside the bounds clamp to 0.
	outside := NewRegion(-2, 1, 5, 5)
	if got := r.SpacingBetween(outside); got.Left != 0 {
		t.Errorf("SpacingBetween() left = %d, want clamped 0", got.Left)
	}
}

func TestRegion_TranslateInside(t *testing.T) {
	container := NewRegion(0, 0, 10, 10)

	type tc struct {
		region       Region
		xAxis, yAxis bool
		want         Region
	}

	tests := map[string]tc{
		"already inside": {
			region: NewRegion(3, 3, 4, 4),
			xAxis:  true, yAxis: true,
			want: NewRegion(3, 3, 4, 4),
		},
		"overhangs right": {
			region: NewRegion(12, 3, 4, 4),
			xAxis:  true, yAxis: true,
			want: NewRegion(6, 3, 4, 4),
		},
		"overhangs top left": {
			region: NewRegion(-5, -5, 4, 4),
			xAxis:  true, yAxis: true,
			want: NewRegion(0, 0, 4, 4),
		},
		"wider than container pins to origin": {
			region: NewRegion(4, 2, 20, 5),
			xAxis:  true, yAxis: true,
			want: NewRegion(0, 2, 20, 5),
		},
		"disabled axis unchanged": {
			region: NewRegion(12, 50, 4, 4),
			xAxis:  true, yAxis: false,
			want: NewRegion(6, 50, 4, 4),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.region.TranslateInside(container, tt.xAxis, tt.yAxis)
			if got != tt.want {
				t.Errorf("TranslateInside() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRegion_Inflect(t *testing.T) {
	r := NewRegion(10, 10, 4, 4)

	type tc struct {
		xAxis, yAxis int
		margin       Spacing
		want         Region
	}

	tests := map[string]tc{
		"flip right": {
			xAxis: 1, yAxis: 0,
			want: NewRegion(14, 10, 4, 4),
		},
		"flip left": {
			xAxis: -1, yAxis: 0,
			want: NewRegion(6, 10, 4, 4),
		},
		"flip down with margin": {
			xAxis: 0, yAxis: 1,
			margin: SpacingVertical(2),
			want:   NewRegion(10, 16, 4, 4),
		},
		"flip both": {
			xAxis: 1, yAxis: -1,
			want: NewRegion(14, 6, 4, 4),
		},
		"no axes is identity": {
			xAxis: 0, yAxis: 0,
			want: r,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.Inflect(tt.xAxis, tt.yAxis, tt.margin); got != tt.want {
				t.Errorf("Inflect(%d, %d, %v) = %v, want %v",
					tt.xAxis, tt.yAxis, tt.margin, got, tt.want)
			}
		})
	}
}

func TestRegion_Constrain(t *testing.T) {
	container := NewRegion(0, 0, 20, 10)

	type tc struct {
		region Region
		x, y   Constrain
		margin Spacing
		want   Region
	}

	tests := map[string]tc{
		"fits and stays put": {
			region: NewRegion(5, 2, 6, 3),
			x:      ConstrainInside, y: ConstrainInside,
			want: NewRegion(5, 2, 6, 3),
		},
		"slides inside from the right": {
			region: NewRegion(25, 2, 6, 3),
			x:      ConstrainInside, y: ConstrainInside,
			want: NewRegion(14, 2, 6, 3),
		},
		"none leaves the axis alone": {
			region: NewRegion(25, 2, 6, 3),
			x:      ConstrainNone, y: ConstrainInside,
			want: NewRegion(25, 2, 6, 3),
		},
		"inflect flips a popup back in": {
			region: NewRegion(18, 2, 6, 3),
			x:      ConstrainInflect, y: ConstrainInside,
			want: NewRegion(12, 2, 6, 3),
		},
		"inflect honors margin": {
			region: NewRegion(18, 2, 6, 3),
			x:      ConstrainInflect, y: ConstrainInside,
			margin: SpacingHorizontal(1),
			want:   NewRegion(11, 2, 6, 3),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.region.Constrain(tt.x, tt.y, tt.margin, container)
			if got != tt.want {
				t.Errorf("Constrain() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScrollToVisible(t *testing.T) {
	window := NewRegion(0, 0, 10, 10)

	type tc struct {
		window Region
		target Region
		top    bool
		want   Offset
	}

	tests := map[string]tc{
		"already visible": {
			window: window,
			target: NewRegion(2, 2, 3, 3),
			want:   Offset{},
		},
		"right of window scrolls minimally": {
			window: window,
			target: NewRegion(15, 0, 4, 4),
			want:   NewOffset(9, 0),
		},
		"below window scrolls minimally": {
			window: window,
			target: NewRegion(0, 15, 4, 4),
			want:   NewOffset(0, 9),
		},
		"top forces alignment even when visible": {
			window: window,
			target: NewRegion(2, 4, 3, 3),
			top:    true,
			want:   NewOffset(0, 4),
		},
		"wider target crops to window": {
			window: NewRegion(5, 0, 10, 10),
			target: NewRegion(0, 0, 20, 5),
			want:   NewOffset(-5, 0),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := ScrollToVisible(tt.window, tt.target, tt.top); got != tt.want {
				t.Errorf("ScrollToVisible() = %v, want %v", got, tt.want)
			}
		})
	}
}
