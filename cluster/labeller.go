package cluster

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvleye/ndarray"
	"github.com/katalvlaran/lvleye/topology"
)

// Labeller incrementally labels connected non-zero sites of a fixed grid.
//
// Labels are append-only: once a site carries a label it keeps belonging to
// the same component, and only its id may change through a merge or Prune.
// Background is 0; allocated ids start at 1.
//
// Merge bookkeeping:
//   - renum[l] is the surviving id of label l (renum[0] == 0, identity for roots).
//   - next[l] links the members of a merged set, starting at its root; -1 ends a chain.
//
// Both tables are sized for the worst case (every site its own label), so no
// reallocation happens after construction.
type Labeller struct {
	lattice
	periodic  bool
	label     []int // flat label grid
	newLabel  int   // next id to allocate
	renum     []int
	next      []int
	nmerge    int   // merges since the last applyMerge
	connected []int // scratch: roots of labelled neighbours
}

// NewLabeller creates a Labeller for a grid of the given shape.
// Defaults: periodic edges, kernel.Nearest adjacency.
// Returns ErrShape or ErrKernel on invalid configuration.
// Complexity: O(grid size) memory.
func NewLabeller(shape []int, opts ...Option) (*Labeller, error) {
	o := gatherOptions(opts)
	g, err := newLattice(shape, o.kernel)
	if err != nil {
		return nil, fmt.Errorf("cluster.NewLabeller: %w", err)
	}
	n := g.size()
	l := &Labeller{
		lattice:   g,
		periodic:  o.periodic,
		label:     make([]int, n),
		renum:     make([]int, n+1),
		next:      make([]int, n+1),
		connected: make([]int, 0, len(g.offsets)),
	}
	l.resetMerge()
	l.newLabel = 1

	return l, nil
}

// Reset clears all labels and merge bookkeeping. A reset Labeller is
// indistinguishable from a freshly constructed one.
// Complexity: O(grid size).
func (l *Labeller) Reset() {
	clear(l.label)
	l.resetMerge()
	l.newLabel = 1
}

func (l *Labeller) resetMerge() {
	for i := range l.renum {
		l.renum[i] = i
		l.next[i] = -1
	}
	l.nmerge = 0
}

// Shape returns a copy of the grid shape.
func (l *Labeller) Shape() []int { return append([]int(nil), l.shape...) }

// Periodic reports whether the grid wraps at its edges.
func (l *Labeller) Periodic() bool { return l.periodic }

// NumLabels returns one more than the largest id allocated since the last
// Reset or Prune (ids in use lie in [1, NumLabels())). Ids vacated by merges
// are counted until Prune compacts them.
func (l *Labeller) NumLabels() int { return l.newLabel }

// Labels returns a copy of the label grid in the original shape.
func (l *Labeller) Labels() *ndarray.Array[int] {
	out, _ := ndarray.FromSlice(l.label, l.shape...)

	return out
}

// AddImage labels every non-zero, still unlabelled site of img in row-major
// order, then applies pending merges to the grid in one pass.
// Returns ErrNilImage or ErrShapeMismatch without mutating state.
// Complexity: O(grid size · kernel neighbours) plus the merge sets.
func (l *Labeller) AddImage(img *ndarray.Array[int]) error {
	if img == nil {
		return fmt.Errorf("Labeller.AddImage: %w", ErrNilImage)
	}
	if !topology.Equal(img.Shape(), l.shape) {
		return fmt.Errorf("Labeller.AddImage: image %v, grid %v: %w", img.Shape(), l.shape, ErrShapeMismatch)
	}
	data := img.Data()
	if l.periodic {
		for i, v := range data {
			if v != 0 && l.label[i] == 0 {
				l.labelPeriodic(i)
			}
		}
	} else {
		for i, v := range data {
			if v != 0 && l.label[i] == 0 {
				l.labelClamped(i)
			}
		}
	}
	l.applyMerge()

	return nil
}

// AddPoints labels the given flat sites in the given order, skipping sites
// that already carry a label. Every index is checked before any site is
// touched; ErrOutOfRange leaves the Labeller unchanged.
// Complexity: O(len(idx) · kernel neighbours) plus the merge sets.
func (l *Labeller) AddPoints(idx []int) error {
	n := len(l.label)
	for _, i := range idx {
		if i < 0 || i >= n {
			return fmt.Errorf("Labeller.AddPoints(%d): %w", i, ErrOutOfRange)
		}
	}
	l.AddPointsUnchecked(idx)

	return nil
}

// AddPointsUnchecked is AddPoints without the bounds pass. An index outside
// the grid panics, possibly after earlier points were labelled.
func (l *Labeller) AddPointsUnchecked(idx []int) {
	if l.periodic {
		for _, i := range idx {
			if l.label[i] == 0 {
				l.labelPeriodic(i)
			}
		}
	} else {
		for _, i := range idx {
			if l.label[i] == 0 {
				l.labelClamped(i)
			}
		}
	}
	l.applyMerge()
}

// labelPeriodic labels site flat from its neighbours on the torus.
func (l *Labeller) labelPeriodic(flat int) {
	h, i, j := l.coords(flat)
	c := l.connected[:0]
	for _, d := range l.offsets {
		if lab := l.label[l.wrapped(h, i, j, d)]; lab != 0 {
			c = append(c, l.renum[lab])
		}
	}
	l.connected = c
	l.assign(flat)
}

// labelClamped labels site flat from its in-grid neighbours.
func (l *Labeller) labelClamped(flat int) {
	h, i, j := l.coords(flat)
	c := l.connected[:0]
	for _, d := range l.offsets {
		nb := l.clamped(h, i, j, d)
		if nb < 0 {
			continue
		}
		if lab := l.label[nb]; lab != 0 {
			c = append(c, l.renum[lab])
		}
	}
	l.connected = c
	l.assign(flat)
}

// assign gives site flat a label from the roots collected in l.connected:
// a new id, the single root, or the smallest root after merging.
func (l *Labeller) assign(flat int) {
	c := l.connected
	switch len(c) {
	case 0:
		l.label[flat] = l.newLabel
		l.newLabel++
		return
	case 1:
		l.label[flat] = c[0]
		return
	}
	slices.Sort(c)
	c = slices.Compact(c)
	l.connected = c
	if len(c) > 1 {
		l.merge(c)
		l.nmerge++
	}
	l.label[flat] = c[0]
}

// merge folds the sorted, distinct roots c[1:] into c[0]. Every member of
// each folded chain is renumbered to the survivor and the chain is spliced
// directly behind it.
// Complexity: O(total chain length).
func (l *Labeller) merge(c []int) {
	target := c[0]
	for _, src := range c[1:] {
		last := src
		for m := src; m != -1; m = l.next[m] {
			l.renum[m] = target
			last = m
		}
		l.next[last] = l.next[target]
		l.next[target] = src
	}
}

// applyMerge rewrites the grid through renum. renum and the chains are kept
// so that later calls and Prune still resolve vacated ids.
func (l *Labeller) applyMerge() {
	if l.nmerge == 0 {
		return
	}
	for i, lab := range l.label {
		l.label[i] = l.renum[lab]
	}
	l.nmerge = 0
}

// Prune compacts the ids in use to 1..k, preserving their relative order and
// the partition of sites. Background stays 0. Merge bookkeeping is reset.
// Complexity: O(grid size + NumLabels).
func (l *Labeller) Prune() {
	l.applyMerge()
	relabel := make([]int, l.newLabel)
	k := 0
	for lab := 1; lab < l.newLabel; lab++ {
		if l.renum[lab] == lab {
			k++
			relabel[lab] = k
		}
	}
	for i, lab := range l.label {
		l.label[i] = relabel[l.renum[lab]]
	}
	l.resetMerge()
	l.newLabel = k + 1
}
