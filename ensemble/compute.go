package ensemble

import (
	"github.com/katalvlaran/lvleye/ndarray"
	"github.com/katalvlaran/lvleye/path"
)

// One-shot wrappers: each builds an Ensemble, feeds a single realisation and
// returns the normalised result.

// ComputeMean returns the mean and the unbiased variance of the unmasked
// values of f.
func ComputeMean(f *ndarray.Array[float64], fmask *ndarray.Array[int]) (mean, variance float64, err error) {
	e, err := New([]int{1})
	if err != nil {
		return 0, 0, err
	}
	if err = e.Mean(f, fmask); err != nil {
		return 0, 0, err
	}
	v, err := e.Variance()
	if err != nil {
		return 0, 0, err
	}

	return e.Result().Flat(0), v.Flat(0), nil
}

// ComputeS2 returns the two-point probability of f and g over roi.
func ComputeS2(roi []int, f, g *ndarray.Array[float64], fmask, gmask *ndarray.Array[int], opts ...Option) (*ndarray.Array[float64], error) {
	e, err := New(roi, opts...)
	if err != nil {
		return nil, err
	}
	if err = e.S2(f, g, fmask, gmask); err != nil {
		return nil, err
	}

	return e.Result(), nil
}

// ComputeC2 returns the two-point cluster function of label fields f and g over roi.
func ComputeC2(roi []int, f, g *ndarray.Array[int], fmask, gmask *ndarray.Array[int], opts ...Option) (*ndarray.Array[float64], error) {
	e, err := New(roi, opts...)
	if err != nil {
		return nil, err
	}
	if err = e.C2(f, g, fmask, gmask); err != nil {
		return nil, err
	}

	return e.Result(), nil
}

// ComputeW2 returns the weighted two-point correlation of w and f over roi.
func ComputeW2(roi []int, w, f *ndarray.Array[float64], fmask *ndarray.Array[int], opts ...Option) (*ndarray.Array[float64], error) {
	e, err := New(roi, opts...)
	if err != nil {
		return nil, err
	}
	if err = e.W2(w, f, fmask); err != nil {
		return nil, err
	}

	return e.Result(), nil
}

// ComputeW2c returns the collapsed weighted correlation of f around clusters.
func ComputeW2c(roi []int, clusters, centers *ndarray.Array[int], f *ndarray.Array[float64], fmask *ndarray.Array[int], mode path.Mode, opts ...Option) (*ndarray.Array[float64], error) {
	e, err := New(roi, opts...)
	if err != nil {
		return nil, err
	}
	if err = e.W2c(clusters, centers, f, fmask, mode); err != nil {
		return nil, err
	}

	return e.Result(), nil
}

// ComputeHeightHeight returns the root-mean-square height difference of f over roi.
func ComputeHeightHeight(roi []int, f *ndarray.Array[float64], fmask *ndarray.Array[int], opts ...Option) (*ndarray.Array[float64], error) {
	e, err := New(roi, opts...)
	if err != nil {
		return nil, err
	}
	if err = e.HeightHeight(f, fmask); err != nil {
		return nil, err
	}

	return e.Result(), nil
}

// ComputeL returns the lineal path function of f over roi.
func ComputeL(roi []int, f *ndarray.Array[int], mode path.Mode, opts ...Option) (*ndarray.Array[float64], error) {
	e, err := New(roi, opts...)
	if err != nil {
		return nil, err
	}
	if err = e.L(f, mode); err != nil {
		return nil, err
	}

	return e.Result(), nil
}

// Distance returns the Euclidean distance of every cell of roi from its
// centre, with axis i scaled by h[i] when pixel sizes are given.
func Distance(roi []int, h ...float64) (*ndarray.Array[float64], error) {
	e, err := New(roi)
	if err != nil {
		return nil, err
	}
	if len(h) == 0 {
		return e.Distance(), nil
	}

	return e.DistanceScaled(h)
}

// DistanceAxis returns the signed offset of every cell of roi from its centre
// along axis, scaled by h[axis] when pixel sizes are given.
func DistanceAxis(roi []int, axis int, h ...float64) (*ndarray.Array[float64], error) {
	e, err := New(roi)
	if err != nil {
		return nil, err
	}
	if len(h) == 0 {
		return e.DistanceAxis(axis)
	}

	return e.DistanceAxisScaled(h, axis)
}
