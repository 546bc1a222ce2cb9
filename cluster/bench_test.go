package cluster_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvleye/cluster"
	"github.com/katalvlaran/lvleye/ndarray"
)

func randomImage(b *testing.B, n int, p float64) *ndarray.Array[int] {
	b.Helper()
	rng := rand.New(rand.NewSource(7))
	f, err := ndarray.New[int](n, n)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	for i := range f.Data() {
		if rng.Float64() < p {
			f.SetFlat(i, 1)
		}
	}
	return f
}

// benchmarkAddImage labels an n×n image near the percolation threshold.
func benchmarkAddImage(b *testing.B, n int, periodic bool) {
	f := randomImage(b, n, 0.55)
	l, err := cluster.NewLabeller(f.Shape(), cluster.WithPeriodic(periodic))
	if err != nil {
		b.Fatalf("NewLabeller failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Reset()
		if err := l.AddImage(f); err != nil {
			b.Fatalf("AddImage failed: %v", err)
		}
		l.Prune()
	}
}

func BenchmarkLabeller_AddImagePeriodic256(b *testing.B) { benchmarkAddImage(b, 256, true) }
func BenchmarkLabeller_AddImageClamped256(b *testing.B)  { benchmarkAddImage(b, 256, false) }
func BenchmarkLabeller_AddImagePeriodic1024(b *testing.B) {
	benchmarkAddImage(b, 1024, true)
}

// BenchmarkLabeller_AddPoints feeds the foreground of a 256×256 image one
// site at a time through the unchecked entry point.
func BenchmarkLabeller_AddPoints(b *testing.B) {
	f := randomImage(b, 256, 0.55)
	var idx []int
	for i, v := range f.Data() {
		if v != 0 {
			idx = append(idx, i)
		}
	}
	l, err := cluster.NewLabeller(f.Shape())
	if err != nil {
		b.Fatalf("NewLabeller failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Reset()
		for _, p := range idx {
			l.AddPointsUnchecked([]int{p})
		}
	}
}

func BenchmarkDilate_256(b *testing.B) {
	f := randomImage(b, 256, 0.01)
	labels, err := cluster.Label(f, true)
	if err != nil {
		b.Fatalf("Label failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cluster.DilateUniform(labels, 3); err != nil {
			b.Fatalf("DilateUniform failed: %v", err)
		}
	}
}
