package cluster

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvleye/ndarray"
)

// Label returns the pruned component labels of the non-zero sites of f,
// using face-neighbour adjacency.
func Label(f *ndarray.Array[int], periodic bool) (*ndarray.Array[int], error) {
	if f == nil {
		return nil, fmt.Errorf("cluster.Label: %w", ErrNilImage)
	}
	l, err := NewLabeller(f.Shape(), WithPeriodic(periodic))
	if err != nil {
		return nil, fmt.Errorf("cluster.Label: %w", err)
	}
	if err = l.AddImage(f); err != nil {
		return nil, fmt.Errorf("cluster.Label: %w", err)
	}
	l.Prune()

	return l.Labels(), nil
}

// RelabelMap returns, for two label grids of equal shape describing the same
// sites, the table out with out[src[i]] = dest[i]. The table has
// max(src)+1 entries; ids absent from src map to 0.
// Complexity: O(grid size).
func RelabelMap(src, dest *ndarray.Array[int]) ([]int, error) {
	if src == nil || dest == nil {
		return nil, fmt.Errorf("cluster.RelabelMap: %w", ErrNilImage)
	}
	if !ndarray.SameShape(src, dest) {
		return nil, fmt.Errorf("cluster.RelabelMap: %v vs %v: %w", src.Shape(), dest.Shape(), ErrShapeMismatch)
	}
	if err := checkNonNegative(src); err != nil {
		return nil, fmt.Errorf("cluster.RelabelMap: %w", err)
	}
	out := make([]int, ndarray.Max(src)+1)
	d := dest.Data()
	for i, s := range src.Data() {
		out[s] = d[i]
	}

	return out, nil
}

// LabelsMap returns the distinct (a, b) label pairs found at the same sites
// of a and b, sorted by a then b.
func LabelsMap(a, b *ndarray.Array[int]) ([][2]int, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("cluster.LabelsMap: %w", ErrNilImage)
	}
	if !ndarray.SameShape(a, b) {
		return nil, fmt.Errorf("cluster.LabelsMap: %v vs %v: %w", a.Shape(), b.Shape(), ErrShapeMismatch)
	}
	bd := b.Data()
	seen := make(map[[2]int]struct{})
	var out [][2]int
	for i, v := range a.Data() {
		p := [2]int{v, bd[i]}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	slices.SortFunc(out, func(x, y [2]int) int {
		if x[0] != y[0] {
			return x[0] - y[0]
		}
		return x[1] - y[1]
	})

	return out, nil
}

// Rename returns a copy of labels with every id p[0] replaced by p[1] for each
// pair p. Ids not named in pairs are kept.
func Rename(labels *ndarray.Array[int], pairs [][2]int) *ndarray.Array[int] {
	m := make(map[int]int, len(pairs))
	for _, p := range pairs {
		m[p[0]] = p[1]
	}
	out := labels.Clone()
	d := out.Data()
	for i, v := range d {
		if w, ok := m[v]; ok {
			d[i] = w
		}
	}

	return out
}

// Reorder returns a copy of labels in which id order[i] becomes i.
// order must be a permutation of 0..max(labels) (extra trailing ids allowed)
// with order[0] == 0.
func Reorder(labels *ndarray.Array[int], order []int) (*ndarray.Array[int], error) {
	if labels == nil {
		return nil, fmt.Errorf("cluster.Reorder: %w", ErrNilImage)
	}
	if err := checkNonNegative(labels); err != nil {
		return nil, fmt.Errorf("cluster.Reorder: %w", err)
	}
	if len(order) == 0 || order[0] != 0 || len(order) <= ndarray.Max(labels) {
		return nil, fmt.Errorf("cluster.Reorder(%v): %w", order, ErrOrder)
	}
	inv := make([]int, len(order))
	hit := make([]bool, len(order))
	for i, o := range order {
		if o < 0 || o >= len(order) || hit[o] {
			return nil, fmt.Errorf("cluster.Reorder(%v): %w", order, ErrOrder)
		}
		hit[o] = true
		inv[o] = i
	}
	out := labels.Clone()
	d := out.Data()
	for i, v := range d {
		d[i] = inv[v]
	}

	return out, nil
}

// Sizes returns the number of sites carrying each id 0..max(labels).
func Sizes(labels *ndarray.Array[int]) ([]int, error) {
	if labels == nil {
		return nil, fmt.Errorf("cluster.Sizes: %w", ErrNilImage)
	}
	if err := checkNonNegative(labels); err != nil {
		return nil, fmt.Errorf("cluster.Sizes: %w", err)
	}
	out := make([]int, ndarray.Max(labels)+1)
	for _, v := range labels.Data() {
		out[v]++
	}

	return out, nil
}

func checkNonNegative(a *ndarray.Array[int]) error {
	for _, v := range a.Data() {
		if v < 0 {
			return ErrNegativeLabel
		}
	}

	return nil
}
