package ensemble

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvleye/ndarray"
	"github.com/katalvlaran/lvleye/topology"
)

// Mean adds the unmasked values of f (any rank) to the single bin of a
// one-cell ROI: their sum, sum of squares and count.
// Returns ErrROINotScalar, ErrStatisticLocked, ErrShapeMismatch or ErrMaskValues
// without touching the buffers.
// Complexity: O(size of f).
func (e *Ensemble) Mean(f *ndarray.Array[float64], fmask *ndarray.Array[int]) error {
	if f == nil {
		return fmt.Errorf("Ensemble.Mean: %w", ErrNilField)
	}
	if err := e.checkLock("Mean", StatMean); err != nil {
		return err
	}
	if topology.Volume(e.roi) != 1 {
		return fmt.Errorf("Ensemble.Mean: roi %v: %w", e.roi, ErrROINotScalar)
	}
	if err := checkShapes("Mean", [][]int{f.Shape()}, fmask); err != nil {
		return err
	}
	e.stat = StatMean

	vals := f.Data()
	if fmask != nil {
		vals = make([]float64, 0, len(vals))
		m := fmask.Data()
		for i, v := range f.Data() {
			if m[i] == 0 {
				vals = append(vals, v)
			}
		}
	}
	e.first[0] += floats.Sum(vals)
	e.second[0] += floats.Dot(vals, vals)
	e.norm[0] += float64(len(vals))

	return nil
}

// S2 adds the two-point probability of f and g: for every site x with
// fmask(x) == 0 and every ROI offset d,
//
//	first[d] += f(x)·g(x+d)·(1-gmask(x+d))
//	norm[d]  += 1-gmask(x+d)
//
// Complexity: O(size of f · ROI volume).
func (e *Ensemble) S2(f, g *ndarray.Array[float64], fmask, gmask *ndarray.Array[int]) error {
	if f == nil || g == nil {
		return fmt.Errorf("Ensemble.S2: %w", ErrNilField)
	}
	if err := e.checkOperands("S2", StatS2, [][]int{f.Shape(), g.Shape()}, fmask, gmask); err != nil {
		return err
	}
	e.stat = StatS2

	F, G := padField(e, f), padField(e, g)
	FM, GM := padMask(e, fmask, f.Shape()), padMask(e, gmask, f.Shape())
	off := e.offsets(F.dims)
	for _, s := range e.sites(F.dims) {
		if FM.data[s] != 0 {
			continue
		}
		fv := F.data[s]
		for r, o := range off {
			gm := float64(1 - GM.data[s+o])
			if fv != 0 {
				e.first[r] += fv * G.data[s+o] * gm
			}
			e.norm[r] += gm
		}
	}

	return nil
}

// C2 adds the two-point cluster function of label fields f and g: for every
// site x with fmask(x) == 0 and every ROI offset d,
//
//	first[d] += 1{f(x) != 0 and f(x) == g(x+d)}·(1-gmask(x+d))
//	norm[d]  += 1-gmask(x+d)
//
// Complexity: O(size of f · ROI volume).
func (e *Ensemble) C2(f, g *ndarray.Array[int], fmask, gmask *ndarray.Array[int]) error {
	if f == nil || g == nil {
		return fmt.Errorf("Ensemble.C2: %w", ErrNilField)
	}
	if err := e.checkOperands("C2", StatC2, [][]int{f.Shape(), g.Shape()}, fmask, gmask); err != nil {
		return err
	}
	e.stat = StatC2

	F, G := padField(e, f), padField(e, g)
	FM, GM := padMask(e, fmask, f.Shape()), padMask(e, gmask, f.Shape())
	off := e.offsets(F.dims)
	for _, s := range e.sites(F.dims) {
		if FM.data[s] != 0 {
			continue
		}
		fv := F.data[s]
		for r, o := range off {
			gm := float64(1 - GM.data[s+o])
			if fv != 0 && fv == G.data[s+o] {
				e.first[r] += gm
			}
			e.norm[r] += gm
		}
	}

	return nil
}

// W2 adds the weighted correlation of weights w and field f: for every site x
// and every ROI offset d,
//
//	first[d] += w(x)·f(x+d)·(1-fmask(x+d))
//	norm[d]  += w(x)·(1-fmask(x+d))
//
// The site itself is never skipped; a zero weight contributes nothing.
// Complexity: O(size of w · ROI volume).
func (e *Ensemble) W2(w, f *ndarray.Array[float64], fmask *ndarray.Array[int]) error {
	if w == nil || f == nil {
		return fmt.Errorf("Ensemble.W2: %w", ErrNilField)
	}
	if err := e.checkOperands("W2", StatW2, [][]int{w.Shape(), f.Shape()}, fmask); err != nil {
		return err
	}
	e.stat = StatW2

	W, F := padField(e, w), padField(e, f)
	FM := padMask(e, fmask, f.Shape())
	off := e.offsets(F.dims)
	for _, s := range e.sites(F.dims) {
		wv := W.data[s]
		if wv == 0 {
			continue
		}
		for r, o := range off {
			fm := float64(1 - FM.data[s+o])
			e.first[r] += wv * F.data[s+o] * fm
			e.norm[r] += wv * fm
		}
	}

	return nil
}

// HeightHeight adds the height-height correlation of f: for every site x with
// fmask(x) == 0 and every ROI offset d, with δ = f(x+d) - f(x),
//
//	first[d]  += δ²·(1-fmask(x+d))
//	second[d] += δ⁴·(1-fmask(x+d))   (variance tracking only)
//	norm[d]   += 1-fmask(x+d)
//
// Complexity: O(size of f · ROI volume).
func (e *Ensemble) HeightHeight(f *ndarray.Array[float64], fmask *ndarray.Array[int]) error {
	if f == nil {
		return fmt.Errorf("Ensemble.HeightHeight: %w", ErrNilField)
	}
	if err := e.checkOperands("HeightHeight", StatHeightHeight, [][]int{f.Shape()}, fmask); err != nil {
		return err
	}
	e.stat = StatHeightHeight

	F := padField(e, f)
	FM := padMask(e, fmask, f.Shape())
	off := e.offsets(F.dims)
	for _, s := range e.sites(F.dims) {
		if FM.data[s] != 0 {
			continue
		}
		fv := F.data[s]
		for r, o := range off {
			fm := float64(1 - FM.data[s+o])
			d2 := (F.data[s+o] - fv) * (F.data[s+o] - fv)
			e.first[r] += d2 * fm
			if e.variance {
				e.second[r] += d2 * d2 * fm
			}
			e.norm[r] += fm
		}
	}

	return nil
}
