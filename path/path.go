package path

import (
	"fmt"
	"math"
)

// Path returns the voxels visited by the straight line from x0 to x1, both
// inclusive, one coordinate tuple per row. x0 == x1 yields a single voxel.
//
// Stage 1 (Validate): equal rank 1..3, known mode.
// Stage 2 (Execute): dispatch to the discretisation of mode.
// Complexity: O(Σ|Δi|) time and memory.
func Path(x0, x1 []int, mode Mode) ([][]int, error) {
	if len(x0) != len(x1) {
		return nil, fmt.Errorf("path.Path(%v,%v): %w", x0, x1, ErrRankMismatch)
	}
	if len(x0) == 0 || len(x0) > 3 {
		return nil, fmt.Errorf("path.Path(%v,%v): %w", x0, x1, ErrRank)
	}
	switch mode {
	case Bresenham:
		return bresenham(x0, x1), nil
	case Actual:
		return traverse(x0, x1, false), nil
	case Full:
		return traverse(x0, x1, true), nil
	default:
		return nil, fmt.Errorf("path.Path: %v: %w", mode, ErrUnsupportedMode)
	}
}

// bresenham is the doubled-delta integer line walk generalised to any rank.
// The driving axis j is the first one with the largest |Δ|; every other axis
// keeps an error term d[k] and steps whenever it turns non-negative.
func bresenham(x0, x1 []int) [][]int {
	n := len(x0)
	a := make([]int, n)
	s := make([]int, n)
	d := make([]int, n)
	x := make([]int, n)
	j := 0
	for i := 0; i < n; i++ {
		delta := x1[i] - x0[i]
		a[i] = 2 * abs(delta)
		s[i] = sign(delta)
		x[i] = x0[i]
		if a[i] > a[j] {
			j = i
		}
	}
	for k := 0; k < n; k++ {
		if k != j {
			d[k] = a[k] - a[j]/2
		}
	}

	out := make([][]int, 0, a[j]/2+1)
	for {
		out = append(out, clonePoint(x))
		if x[j] == x1[j] {
			return out
		}
		for k := 0; k < n; k++ {
			if k != j && d[k] >= 0 {
				x[k] += s[k]
				d[k] -= a[j]
			}
		}
		x[j] += s[j]
		for k := 0; k < n; k++ {
			if k != j {
				d[k] += a[k]
			}
		}
	}
}

// traverse walks the voxels pierced by the segment x0→x1, parametrised as
// x0 + t·(x1-x0) with t in [0,1]. Each iteration finds the nearest voxel
// face crossing and advances every axis crossing at (nearly) the same t.
// With split set every advanced axis emits its own voxel.
func traverse(x0, x1 []int, split bool) [][]int {
	n := len(x0)
	cur := clonePoint(x0)
	v := make([]float64, n)
	face := make([]float64, n) // absolute coordinate of the next face per axis
	step := make([]int, n)
	active := make([]int, 0, n)
	for i := 0; i < n; i++ {
		delta := x1[i] - x0[i]
		if delta == 0 {
			continue
		}
		v[i] = float64(delta)
		step[i] = sign(delta)
		face[i] = float64(x0[i]) + 0.5*float64(step[i])
		active = append(active, i)
	}

	out := [][]int{clonePoint(cur)}
	t := make([]float64, n)
	for !equalPoint(cur, x1) {
		tmin := math.Inf(1)
		for _, i := range active {
			if cur[i] == x1[i] {
				continue
			}
			t[i] = (face[i] - float64(x0[i])) / v[i]
			if t[i] < tmin {
				tmin = t[i]
			}
		}
		for _, i := range active {
			if cur[i] == x1[i] || t[i]-tmin >= tieEps {
				continue
			}
			cur[i] += step[i]
			face[i] += float64(step[i])
			if split {
				out = append(out, clonePoint(cur))
			}
		}
		if !split {
			out = append(out, clonePoint(cur))
		}
	}

	return out
}

func clonePoint(p []int) []int {
	out := make([]int, len(p))
	copy(out, p)

	return out
}

func equalPoint(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
