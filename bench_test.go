package geom

import "testing"

// Layout engines call these operations thousands of times per frame;
// they must stay allocation-free constant-time arithmetic.

var (
	benchRegion  Region
	benchBool    bool
	benchSpacing = NewSpacing(1, 2, 3, 4)
)

func BenchmarkRegion_Intersection(b *testing.B) {
	r1 := NewRegion(0, 0, 120, 40)
	r2 := NewRegion(30, 10, 120, 40)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchRegion = r1.Intersection(r2)
	}
}

func BenchmarkRegion_Union(b *testing.B) {
	r1 := NewRegion(0, 0, 120, 40)
	r2 := NewRegion(30, 10, 120, 40)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchRegion = r1.Union(r2)
	}
}

func BenchmarkRegion_Overlaps(b *testing.B) {
	r1 := NewRegion(0, 0, 120, 40)
	r2 := NewRegion(30, 10, 120, 40)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchBool = r1.Overlaps(r2)
	}
}

func BenchmarkRegion_GrowShrink(b *testing.B) {
	r := NewRegion(0, 0, 120, 40)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchRegion = r.Grow(benchSpacing).Shrink(benchSpacing)
	}
}

func BenchmarkRegion_Split(b *testing.B) {
	r := NewRegion(0, 0, 120, 40)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchRegion, _, _, _ = r.Split(60, 20)
	}
}

func BenchmarkProvider_Intersection(b *testing.B) {
	r1 := NewRegion(0, 0, 120, 40)
	r2 := NewRegion(30, 10, 120, 40)

	for _, p := range []Provider{NativeProvider(), ReferenceProvider()} {
		b.Run(p.Name(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				benchRegion = p.Intersection(r1, r2)
			}
		})
	}
}
