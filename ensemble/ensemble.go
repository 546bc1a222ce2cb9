package ensemble

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvleye/ndarray"
	"github.com/katalvlaran/lvleye/topology"
)

// Statistic identifies what an Ensemble accumulates.
type Statistic int

const (
	// Unset is the state of a fresh Ensemble.
	Unset Statistic = iota
	StatMean
	StatS2
	StatC2
	StatW2
	StatW2c
	StatHeightHeight
	StatL
)

var statNames = [...]string{"unset", "mean", "S2", "C2", "W2", "W2c", "heightheight", "L"}

// String returns the conventional name of the statistic.
func (s Statistic) String() string {
	if s < 0 || int(s) >= len(statNames) {
		return fmt.Sprintf("Statistic(%d)", int(s))
	}

	return statNames[s]
}

// ParseStatistic maps a case-insensitive statistic name to its Statistic.
// "unset" is not accepted.
func ParseStatistic(name string) (Statistic, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for s := StatMean; int(s) < len(statNames); s++ {
		if strings.ToLower(statNames[s]) == n {
			return s, nil
		}
	}

	return Unset, fmt.Errorf("ensemble.ParseStatistic(%q): %w", name, ErrUnknownStatistic)
}

// Ensemble accumulates one statistic over a fixed ROI.
type Ensemble struct {
	stat     Statistic
	periodic bool
	variance bool
	roi      []int     // ROI shape as given
	pad      [][2]int  // pad width per ROI axis
	shape    [3]int    // ROI promoted to rank 3
	pad3     [3][2]int // pad promoted to rank 3
	first    []float64
	second   []float64
	norm     []float64
}

// New creates an Ensemble for the given ROI shape.
// Defaults: periodic, variance tracking on.
// Stage 1 (Validate): ROI rank 1..3, extents > 0.
// Stage 2 (Prepare): pad widths and zeroed buffers.
// Complexity: O(ROI volume).
func New(roi []int, opts ...Option) (*Ensemble, error) {
	if err := topology.Validate(roi); err != nil {
		return nil, fmt.Errorf("ensemble.New: %w: %w", ErrROI, err)
	}
	o := gatherOptions(opts)
	e := &Ensemble{
		periodic: o.periodic,
		variance: o.variance,
		roi:      append([]int(nil), roi...),
		pad:      topology.PadWidth(roi),
	}
	copy(e.shape[:], topology.As3D(roi, 1))
	copy(e.pad3[:], topology.As3DPad(e.pad))
	n := topology.Volume(roi)
	e.first = make([]float64, n)
	e.second = make([]float64, n)
	e.norm = make([]float64, n)

	return e, nil
}

// Statistic returns the locked statistic, Unset before the first accumulation.
func (e *Ensemble) Statistic() Statistic { return e.stat }

// Shape returns a copy of the ROI shape.
func (e *Ensemble) Shape() []int { return append([]int(nil), e.roi...) }

// Periodic reports whether fields are treated as periodic.
func (e *Ensemble) Periodic() bool { return e.periodic }

// VarianceTracking reports whether the second moment is tracked.
func (e *Ensemble) VarianceTracking() bool { return e.variance }

// DataFirst returns a copy of the raw first-moment sums, shaped like the ROI.
func (e *Ensemble) DataFirst() *ndarray.Array[float64] { return e.roiArray(e.first) }

// DataSecond returns a copy of the raw second-moment sums, shaped like the ROI.
func (e *Ensemble) DataSecond() *ndarray.Array[float64] { return e.roiArray(e.second) }

// Norm returns a copy of the raw normalisation, shaped like the ROI.
func (e *Ensemble) Norm() *ndarray.Array[float64] { return e.roiArray(e.norm) }

func (e *Ensemble) roiArray(buf []float64) *ndarray.Array[float64] {
	out, _ := ndarray.FromSlice(buf, e.roi...)

	return out
}

// Result returns first/norm per ROI bin. Bins with a zero normalisation are 0.
// For HeightHeight the square root is taken.
// Complexity: O(ROI volume).
func (e *Ensemble) Result() *ndarray.Array[float64] {
	out, _ := ndarray.New[float64](e.roi...)
	d := out.Data()
	for r, n := range e.norm {
		if n != 0 {
			d[r] = e.first[r] / n
		}
	}
	if e.stat == StatHeightHeight {
		for r, v := range d {
			d[r] = math.Sqrt(v)
		}
	}

	return out
}

// Variance returns the unbiased sample variance per bin,
// (E[x²] - E[x]²)·n/(n-1), square rooted for HeightHeight. Bins with n <= 1
// are 0 and negative round-off is clamped to 0.
//
// Only Mean and HeightHeight define a variance (ErrNotImplemented otherwise);
// HeightHeight additionally needs variance tracking (ErrVarianceDisabled).
func (e *Ensemble) Variance() (*ndarray.Array[float64], error) {
	switch e.stat {
	case StatMean:
	case StatHeightHeight:
		if !e.variance {
			return nil, fmt.Errorf("Ensemble.Variance: %w", ErrVarianceDisabled)
		}
	default:
		return nil, fmt.Errorf("Ensemble.Variance(%v): %w", e.stat, ErrNotImplemented)
	}
	out, _ := ndarray.New[float64](e.roi...)
	d := out.Data()
	for r, n := range e.norm {
		if n <= 1 {
			continue
		}
		m := e.first[r] / n
		v := (e.second[r]/n - m*m) * n / (n - 1)
		d[r] = max(v, 0)
	}
	if e.stat == StatHeightHeight {
		for r, v := range d {
			d[r] = math.Sqrt(v)
		}
	}

	return out, nil
}

// DistanceAxis returns, for every ROI cell, its signed offset from the ROI
// centre along axis.
func (e *Ensemble) DistanceAxis(axis int) (*ndarray.Array[float64], error) {
	if axis < 0 || axis >= len(e.roi) {
		return nil, fmt.Errorf("Ensemble.DistanceAxis(%d): %w", axis, ErrAxis)
	}
	out, _ := ndarray.New[float64](e.roi...)
	d := out.Data()
	for r := range d {
		idx := out.Unravel(r)
		d[r] = float64(idx[axis] - e.pad[axis][0])
	}

	return out, nil
}

// Distance returns the Euclidean distance of every ROI cell from the centre.
func (e *Ensemble) Distance() *ndarray.Array[float64] {
	h := make([]float64, len(e.roi))
	for i := range h {
		h[i] = 1
	}
	out, _ := e.DistanceScaled(h)

	return out
}

// DistanceScaled is Distance with axis i scaled by the pixel size h[i].
func (e *Ensemble) DistanceScaled(h []float64) (*ndarray.Array[float64], error) {
	if len(h) != len(e.roi) {
		return nil, fmt.Errorf("Ensemble.DistanceScaled: %d sizes for rank %d: %w", len(h), len(e.roi), ErrAxis)
	}
	out, _ := ndarray.New[float64](e.roi...)
	d := out.Data()
	for axis := range e.roi {
		da, _ := e.DistanceAxis(axis)
		for r, v := range da.Data() {
			d[r] += (v * h[axis]) * (v * h[axis])
		}
	}
	for r, v := range d {
		d[r] = math.Sqrt(v)
	}

	return out, nil
}

// DistanceAxisScaled is DistanceAxis scaled by the pixel size h[axis].
func (e *Ensemble) DistanceAxisScaled(h []float64, axis int) (*ndarray.Array[float64], error) {
	if len(h) != len(e.roi) {
		return nil, fmt.Errorf("Ensemble.DistanceAxisScaled: %d sizes for rank %d: %w", len(h), len(e.roi), ErrAxis)
	}
	out, err := e.DistanceAxis(axis)
	if err != nil {
		return nil, err
	}
	floats.Scale(h[axis], out.Data())

	return out, nil
}

// Merge adds the raw buffers of other into e. Both must share ROI,
// periodicity and variance tracking, and be locked to the same statistic
// (or be Unset). other is not modified.
// Complexity: O(ROI volume).
func (e *Ensemble) Merge(other *Ensemble) error {
	if other == nil {
		return fmt.Errorf("Ensemble.Merge: nil: %w", ErrIncompatible)
	}
	if !topology.Equal(e.roi, other.roi) || e.periodic != other.periodic || e.variance != other.variance {
		return fmt.Errorf("Ensemble.Merge: roi %v/%v periodic %t/%t variance %t/%t: %w",
			e.roi, other.roi, e.periodic, other.periodic, e.variance, other.variance, ErrIncompatible)
	}
	if e.stat != Unset && other.stat != Unset && e.stat != other.stat {
		return fmt.Errorf("Ensemble.Merge: %v with %v: %w", e.stat, other.stat, ErrIncompatible)
	}
	if e.stat == Unset {
		e.stat = other.stat
	}
	floats.Add(e.first, other.first)
	floats.Add(e.second, other.second)
	floats.Add(e.norm, other.norm)

	return nil
}
