package ensemble

import (
	"fmt"

	"github.com/katalvlaran/lvleye/ndarray"
	"github.com/katalvlaran/lvleye/topology"
)

// field3 is a field padded to the ROI half extent and viewed as rank 3.
type field3[T ndarray.Number] struct {
	data []T
	dims [3]int
}

// padField pads a with the Ensemble's pad widths: wrapped when periodic,
// zero filled otherwise.
func padField[T ndarray.Number](e *Ensemble, a *ndarray.Array[T]) field3[T] {
	mode := ndarray.PadConstant
	if e.periodic {
		mode = ndarray.PadPeriodic
	}
	p, _ := ndarray.Pad(a, e.pad, mode, 0)

	return view3(p)
}

// padMask pads mask m (nil: all zeros of the given shape). Padding cells are
// excluded (1) on bounded grids and included (0) on periodic ones.
func padMask(e *Ensemble, m *ndarray.Array[int], shape []int) field3[int] {
	if m == nil {
		m, _ = ndarray.New[int](shape...)
	}
	cval := 1
	if e.periodic {
		cval = 0
	}
	p, _ := ndarray.Pad(m, e.pad, ndarray.PadConstant, cval)

	return view3(p)
}

func view3[T ndarray.Number](a *ndarray.Array[T]) field3[T] {
	v := a.View3D()
	f := field3[T]{data: v.Data()}
	copy(f.dims[:], v.Shape())

	return f
}

// sites lists the flat indices (in padded coordinates) of every original,
// non-padding site in row-major order.
func (e *Ensemble) sites(dims [3]int) []int {
	p := e.pad3
	out := make([]int, 0, (dims[0]-p[0][0]-p[0][1])*(dims[1]-p[1][0]-p[1][1])*(dims[2]-p[2][0]-p[2][1]))
	for h := p[0][0]; h < dims[0]-p[0][1]; h++ {
		for i := p[1][0]; i < dims[1]-p[1][1]; i++ {
			for j := p[2][0]; j < dims[2]-p[2][1]; j++ {
				out = append(out, (h*dims[1]+i)*dims[2]+j)
			}
		}
	}

	return out
}

// offsets lists, per ROI bin in row-major order, the flat step from a site to
// the cell at that bin's offset in a padded field of the given dims.
func (e *Ensemble) offsets(dims [3]int) []int {
	out := make([]int, 0, len(e.first))
	for a := 0; a < e.shape[0]; a++ {
		for b := 0; b < e.shape[1]; b++ {
			for c := 0; c < e.shape[2]; c++ {
				out = append(out, e.step(dims, a-e.pad3[0][0], b-e.pad3[1][0], c-e.pad3[2][0]))
			}
		}
	}

	return out
}

// step is the flat distance of offset (dh,di,dj) in a field of the given dims.
func (e *Ensemble) step(dims [3]int, dh, di, dj int) int {
	return (dh*dims[1]+di)*dims[2] + dj
}

// bin is the flat ROI bin of offset (dh,di,dj) from the centre.
func (e *Ensemble) bin(dh, di, dj int) int {
	return ((dh+e.pad3[0][0])*e.shape[1]+(di+e.pad3[1][0]))*e.shape[2] + dj + e.pad3[2][0]
}

// checkLock fails when e is locked to a statistic other than stat.
func (e *Ensemble) checkLock(op string, stat Statistic) error {
	if e.stat != Unset && e.stat != stat {
		return fmt.Errorf("Ensemble.%s: locked to %v: %w", op, e.stat, ErrStatisticLocked)
	}

	return nil
}

// checkOperands validates an accumulation: lock, rank of the first field
// against the ROI, equal shapes of all fields and masks, binary masks.
// Nothing is mutated.
func (e *Ensemble) checkOperands(op string, stat Statistic, shapes [][]int, masks ...*ndarray.Array[int]) error {
	if err := e.checkLock(op, stat); err != nil {
		return err
	}
	ref := shapes[0]
	if len(ref) != len(e.roi) {
		return fmt.Errorf("Ensemble.%s: field rank %d, ROI rank %d: %w", op, len(ref), len(e.roi), ErrRankMismatch)
	}

	return checkShapes(op, shapes, masks...)
}

func checkShapes(op string, shapes [][]int, masks ...*ndarray.Array[int]) error {
	ref := shapes[0]
	for _, s := range shapes[1:] {
		if !topology.Equal(ref, s) {
			return fmt.Errorf("Ensemble.%s: %v vs %v: %w", op, ref, s, ErrShapeMismatch)
		}
	}
	for _, m := range masks {
		if m == nil {
			continue
		}
		if !topology.Equal(ref, m.Shape()) {
			return fmt.Errorf("Ensemble.%s: mask %v vs %v: %w", op, m.Shape(), ref, ErrShapeMismatch)
		}
		if !ndarray.IsBinary(m) {
			return fmt.Errorf("Ensemble.%s: %w", op, ErrMaskValues)
		}
	}

	return nil
}
