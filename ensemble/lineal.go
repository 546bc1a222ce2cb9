package ensemble

import (
	"fmt"

	"github.com/katalvlaran/lvleye/ndarray"
	"github.com/katalvlaran/lvleye/path"
)

// stampPoints lists the end points of the ROI stamp: every ROI cell on the
// boundary, as a rank-3 offset from the centre, in row-major order. Axes of
// extent 1 have no interior and do not bound the stamp.
func (e *Ensemble) stampPoints() [][]int {
	lo, hi := [3]int{}, e.shape
	for a, n := range e.shape {
		if n > 1 {
			lo[a], hi[a] = 1, n-1
		}
	}
	inside := func(a, x int) bool { return x >= lo[a] && x < hi[a] }

	var out [][]int
	for h := 0; h < e.shape[0]; h++ {
		for i := 0; i < e.shape[1]; i++ {
			for j := 0; j < e.shape[2]; j++ {
				if inside(0, h) && inside(1, i) && inside(2, j) {
					continue
				}
				out = append(out, []int{h - e.pad3[0][0], i - e.pad3[1][0], j - e.pad3[2][0]})
			}
		}
	}

	return out
}

// stampPaths discretises the line from the centre to every stamp point.
func (e *Ensemble) stampPaths(op string, mode path.Mode) ([][][]int, error) {
	if err := mode.Validate(); err != nil {
		return nil, fmt.Errorf("Ensemble.%s: %w", op, err)
	}
	stamps := e.stampPoints()
	out := make([][][]int, len(stamps))
	for k, s := range stamps {
		p, err := path.Path([]int{0, 0, 0}, s, mode)
		if err != nil {
			return nil, fmt.Errorf("Ensemble.%s: stamp %v: %w", op, s, err)
		}
		out[k] = p
	}

	return out, nil
}

// L adds the lineal path function of the integer field f: from every site,
// each stamp path is walked from the centre and every step adds 1 to its bin
// until the first background (zero) site. Every path position adds the size
// of f to the normalisation of its bin.
//
// Stage 1 (Validate): lock, rank, path mode. Paths are built here so a bad
// mode leaves the Ensemble untouched.
// Stage 2 (Execute): stamp-major walk over all sites.
// Complexity: O(#stamps · size of f · path length).
func (e *Ensemble) L(f *ndarray.Array[int], mode path.Mode) error {
	if f == nil {
		return fmt.Errorf("Ensemble.L: %w", ErrNilField)
	}
	if err := e.checkOperands("L", StatL, [][]int{f.Shape()}); err != nil {
		return err
	}
	paths, err := e.stampPaths("L", mode)
	if err != nil {
		return err
	}
	e.stat = StatL

	F := padField(e, f)
	sites := e.sites(F.dims)
	size := float64(f.Size())
	for _, pix := range paths {
		bins := make([]int, len(pix))
		steps := make([]int, len(pix))
		for p, x := range pix {
			bins[p] = e.bin(x[0], x[1], x[2])
			steps[p] = e.step(F.dims, x[0], x[1], x[2])
		}
		for _, s := range sites {
			for p, o := range steps {
				if F.data[s+o] == 0 {
					break
				}
				e.first[bins[p]]++
			}
		}
		for _, b := range bins {
			e.norm[b] += size
		}
	}

	return nil
}

// W2c adds the collapsed weighted correlation of f around the clusters in
// clusters, measured from the sites marked in centers (a label image holding
// each cluster's label at its centre, 0 elsewhere).
//
// From every centre site inside its own cluster, each stamp path is walked
// outward. Once the path first leaves the cluster, the q-th site past the
// edge adds f to the bin of the q-th path position (and 1 to its
// normalisation), unless masked. Distances are thereby measured from the
// cluster edge rather than from the centre.
//
// Complexity: O(#stamps · #centres · path length).
func (e *Ensemble) W2c(clusters, centers *ndarray.Array[int], f *ndarray.Array[float64], fmask *ndarray.Array[int], mode path.Mode) error {
	if clusters == nil || centers == nil || f == nil {
		return fmt.Errorf("Ensemble.W2c: %w", ErrNilField)
	}
	shapes := [][]int{f.Shape(), clusters.Shape(), centers.Shape()}
	if err := e.checkOperands("W2c", StatW2c, shapes, fmask); err != nil {
		return err
	}
	paths, err := e.stampPaths("W2c", mode)
	if err != nil {
		return err
	}
	e.stat = StatW2c

	F := padField(e, f)
	C := padField(e, clusters)
	X := padField(e, centers)
	FM := padMask(e, fmask, f.Shape())

	var seeds []int
	for _, s := range e.sites(F.dims) {
		if l := X.data[s]; l != 0 && C.data[s] == l {
			seeds = append(seeds, s)
		}
	}

	for _, pix := range paths {
		bins := make([]int, len(pix))
		steps := make([]int, len(pix))
		for p, x := range pix {
			bins[p] = e.bin(x[0], x[1], x[2])
			steps[p] = e.step(F.dims, x[0], x[1], x[2])
		}
		for _, s := range seeds {
			label := X.data[s]
			q := -1
			for _, o := range steps {
				n := s + o
				if q < 0 && C.data[n] != label {
					q = 0
				}
				if q < 0 {
					continue
				}
				if FM.data[n] == 0 {
					e.first[bins[q]] += F.data[n]
					e.norm[bins[q]]++
				}
				q++
			}
		}
	}

	return nil
}
