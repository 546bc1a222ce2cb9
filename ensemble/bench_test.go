package ensemble_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/lvleye/ensemble"
	"github.com/katalvlaran/lvleye/ndarray"
	"github.com/katalvlaran/lvleye/path"
)

// benchmarkS2 runs S2 on an n×n random binary image over a r×r ROI.
func benchmarkS2(b *testing.B, n, r int, periodic bool) {
	f := ndarray.AsFloat64(randomBinary(b, 1, 0.3, n, n))
	e, err := ensemble.New([]int{r, r}, ensemble.WithPeriodic(periodic))
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := e.S2(f, f, nil, nil); err != nil {
			b.Fatalf("S2 failed: %v", err)
		}
	}
}

func BenchmarkS2_Periodic128(b *testing.B) { benchmarkS2(b, 128, 11, true) }
func BenchmarkS2_Bounded128(b *testing.B)  { benchmarkS2(b, 128, 11, false) }
func BenchmarkS2_Periodic256(b *testing.B) { benchmarkS2(b, 256, 21, true) }

// BenchmarkL_128 measures the path walk over all stamps of a 21×21 ROI.
func BenchmarkL_128(b *testing.B) {
	f := randomBinary(b, 2, 0.6, 128, 128)
	e, err := ensemble.New([]int{21, 21})
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := e.L(f, path.Bresenham); err != nil {
			b.Fatalf("L failed: %v", err)
		}
	}
}

// BenchmarkAccumulate_S2 shards 16 realisations over GOMAXPROCS workers.
func BenchmarkAccumulate_S2(b *testing.B) {
	images := make([]*ndarray.Array[float64], 16)
	for i := range images {
		images[i] = ndarray.AsFloat64(randomBinary(b, int64(i), 0.3, 96, 96))
	}
	add := func(_ context.Context, e *ensemble.Ensemble, i int) error {
		return e.S2(images[i], images[i], nil, nil)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ensemble.Accumulate(context.Background(), []int{11, 11}, len(images), 0, add); err != nil {
			b.Fatalf("Accumulate failed: %v", err)
		}
	}
}
