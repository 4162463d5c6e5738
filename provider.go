package geom

import (
	"os"
	"strings"
)

// ProviderEnvVar selects the geometry provider at process startup.
// Recognized values are "native" and "reference"; anything else falls
// back to the native provider.
const ProviderEnvVar = "TUI_GEOM_PROVIDER"

// Provider dispatches the binary region operations a layout engine
// drives per frame. The engine picks one provider at startup and calls
// through it unconditionally, keeping the hot path branch-free. Both
// implementations are behaviorally identical; the reference provider is
// an independent derivation of the same contracts kept as the oracle
// for differential testing.
type Provider interface {
	// Name identifies the provider for diagnostics.
	Name() string

	Intersection(a, b Region) Region
	Union(a, b Region) Region
	Overlaps(a, b Region) bool
	Contains(r Region, o Offset) bool
	Grow(r Region, s Spacing) Region
	Shrink(r Region, s Spacing) Region
	Split(r Region, x, y int) (topLeft, topRight, bottomLeft, bottomRight Region)
}

// NativeProvider returns the production provider, which delegates to the
// Region methods in this package.
func NativeProvider() Provider {
	return nativeProvider{}
}

// ReferenceProvider returns the oracle provider. It re-derives every
// operation from per-axis interval arithmetic and is intentionally
// naive; use it to cross-check the native provider, not in render loops.
func ReferenceProvider() Provider {
	return referenceProvider{}
}

// SelectProvider returns the provider for the given name. Unrecognized
// names select the native provider.
func SelectProvider(name string) Provider {
	if strings.ToLower(strings.TrimSpace(name)) == "reference" {
		return referenceProvider{}
	}
	return nativeProvider{}
}

// ProviderFromEnv selects a provider from the TUI_GEOM_PROVIDER
// environment variable, defaulting to the native provider.
func ProviderFromEnv() Provider {
	return SelectProvider(os.Getenv(ProviderEnvVar))
}

type nativeProvider struct{}

func (nativeProvider) Name() string { return "native" }

func (nativeProvider) Intersection(a, b Region) Region { return a.Intersection(b) }
func (nativeProvider) Union(a, b Region) Region        { return a.Union(b) }
func (nativeProvider) Overlaps(a, b Region) bool       { return a.Overlaps(b) }
func (nativeProvider) Contains(r Region, o Offset) bool {
	return r.ContainsOffset(o)
}
func (nativeProvider) Grow(r Region, s Spacing) Region   { return r.Grow(s) }
func (nativeProvider) Shrink(r Region, s Spacing) Region { return r.Shrink(s) }
func (nativeProvider) Split(r Region, x, y int) (Region, Region, Region, Region) {
	return r.Split(x, y)
}

type referenceProvider struct{}

func (referenceProvider) Name() string { return "reference" }

// span is a half-open integer interval [start, start+length).
type span struct {
	start, length int
}

func (s span) end() int { return s.start + s.length }

func (s span) intersect(other span) span {
	start := max(s.start, other.start)
	end := min(s.end(), other.end())
	return span{start: start, length: max(end-start, 0)}
}

func (s span) contains(v int) bool {
	return v >= s.start && v < s.end()
}

func spansOf(r Region) (x, y span) {
	return span{r.X, r.Width}, span{r.Y, r.Height}
}

func regionOf(x, y span) Region {
	return Region{X: x.start, Y: y.start, Width: x.length, Height: y.length}
}

func (referenceProvider) Intersection(a, b Region) Region {
	ax, ay := spansOf(a)
	bx, by := spansOf(b)
	return regionOf(ax.intersect(bx), ay.intersect(by))
}

func (referenceProvider) Union(a, b Region) Region {
	if a.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return a
	}
	ax, ay := spansOf(a)
	bx, by := spansOf(b)
	x := span{start: min(ax.start, bx.start)}
	x.length = max(ax.end(), bx.end()) - x.start
	y := span{start: min(ay.start, by.start)}
	y.length = max(ay.end(), by.end()) - y.start
	return regionOf(x, y)
}

func (referenceProvider) Overlaps(a, b Region) bool {
	ax, ay := spansOf(a)
	bx, by := spansOf(b)
	return ax.intersect(bx).length > 0 && ay.intersect(by).length > 0
}

func (referenceProvider) Contains(r Region, o Offset) bool {
	x, y := spansOf(r)
	return x.contains(o.X) && y.contains(o.Y)
}

func (referenceProvider) Grow(r Region, s Spacing) Region {
	x, y := spansOf(r)
	x = span{start: x.start - s.Left, length: max(x.length+s.Left+s.Right, 0)}
	y = span{start: y.start - s.Top, length: max(y.length+s.Top+s.Bottom, 0)}
	return regionOf(x, y)
}

func (referenceProvider) Shrink(r Region, s Spacing) Region {
	x, y := spansOf(r)
	x = span{start: x.start + s.Left, length: max(x.length-s.Left-s.Right, 0)}
	y = span{start: y.start + s.Top, length: max(y.length-s.Top-s.Bottom, 0)}
	return regionOf(x, y)
}

func (referenceProvider) Split(r Region, x, y int) (Region, Region, Region, Region) {
	if x < 0 {
		x += r.Width
	}
	if y < 0 {
		y += r.Height
	}
	x = clamp(x, 0, r.Width)
	y = clamp(y, 0, r.Height)
	first := span{r.X, x}
	second := span{r.X + x, r.Width - x}
	upper := span{r.Y, y}
	lower := span{r.Y + y, r.Height - y}
	return regionOf(first, upper), regionOf(second, upper),
		regionOf(first, lower), regionOf(second, lower)
}
