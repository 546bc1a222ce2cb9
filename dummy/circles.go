// Package dummy generates synthetic two-phase images (discs in a matrix)
// for trying out and benchmarking the statistics.
package dummy

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/lvleye/ndarray"
)

// Circles returns a 2-D binary image of the given shape with a disc of radius
// radii[k] around (rows[k], cols[k]) for every k. A site at offset (di,dj)
// from a centre is set when ceil(√(di²+dj²)) < r. Periodic images wrap discs
// across the edges; otherwise they are clipped.
// Complexity: O(Σ r²).
func Circles(shape []int, rows, cols, radii []int, periodic bool) (*ndarray.Array[int], error) {
	if len(shape) != 2 || shape[0] <= 0 || shape[1] <= 0 {
		return nil, fmt.Errorf("dummy.Circles(%v): %w", shape, ErrShape)
	}
	if len(rows) != len(cols) || len(rows) != len(radii) {
		return nil, fmt.Errorf("dummy.Circles: %d rows, %d cols, %d radii: %w",
			len(rows), len(cols), len(radii), ErrLengthMismatch)
	}
	out, _ := ndarray.New[int](shape...)
	d := out.Data()
	n, m := shape[0], shape[1]
	for k, r := range radii {
		for di := -r; di <= r; di++ {
			for dj := -r; dj <= r; dj++ {
				if int(math.Ceil(math.Sqrt(float64(di*di+dj*dj)))) >= r {
					continue
				}
				i, j := rows[k]+di, cols[k]+dj
				if periodic {
					i, j = wrap(i, n), wrap(j, m)
				} else if i < 0 || i >= n || j < 0 || j >= m {
					continue
				}
				d[i*m+j] = 1
			}
		}
	}

	return out, nil
}

// RandomCircles lays a regular grid of about (shape/20)² equal discs covering
// roughly 30% of the image, then moves every disc by up to half the grid
// spacing and rescales its radius by a factor in [0.1, 2.1), all drawn from
// rng.
func RandomCircles(shape []int, rng *rand.Rand, periodic bool) (*ndarray.Array[int], error) {
	if len(shape) != 2 || shape[0] <= 0 || shape[1] <= 0 {
		return nil, fmt.Errorf("dummy.RandomCircles(%v): %w", shape, ErrShape)
	}
	if rng == nil {
		return nil, fmt.Errorf("dummy.RandomCircles: %w", ErrNilRand)
	}
	n := max(int(0.05*float64(shape[0])), 1)
	m := max(int(0.05*float64(shape[1])), 1)
	radius := int(math.Sqrt(0.3 * float64(shape[0]*shape[1]) / (math.Pi * float64(n*m))))
	dn := int(0.5 * float64(shape[0]) / float64(n))
	dm := int(0.5 * float64(shape[1]) / float64(m))

	rows := make([]int, n*m)
	cols := make([]int, n*m)
	radii := make([]int, n*m)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			k := i*m + j
			rows[k] = int(float64(i) * float64(shape[0]) / float64(n))
			cols[k] = int(float64(j) * float64(shape[1]) / float64(m))
			rows[k] += jitter(rng, dn)
			cols[k] += jitter(rng, dm)
			radii[k] = int((float64(rng.Intn(100))/100*2 + 0.1) * float64(radius))
		}
	}

	return Circles(shape, rows, cols, radii, periodic)
}

// jitter returns a uniform offset in (-span, span), 0 for span <= 0.
func jitter(rng *rand.Rand, span int) int {
	if span <= 0 {
		return 0
	}
	return (2*rng.Intn(2) - 1) * rng.Intn(span)
}

func wrap(x, n int) int {
	return ((x % n) + n) % n
}
