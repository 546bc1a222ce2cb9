package cluster

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvleye/ndarray"
	"github.com/katalvlaran/lvleye/topology"
)

// Clusters is the historic one-shot labelling result: labels, centres of
// gravity and sizes of the components of one image.
//
// Deprecated: use Labeller (AddImage then Prune) and Sizes. Clusters is kept
// for existing callers that need cluster centres.
type Clusters struct {
	g         lattice
	periodic  bool
	labels    *ndarray.Array[int]
	positions [][]float64 // rank-3 centre of gravity per label, row 0 is background
}

// NewClusters labels f with a Labeller (AddImage, Prune) and computes the
// centre of gravity of every component.
//
// Deprecated: see Clusters.
func NewClusters(f *ndarray.Array[int], opts ...Option) (*Clusters, error) {
	if f == nil {
		return nil, fmt.Errorf("cluster.NewClusters: %w", ErrNilImage)
	}
	o := gatherOptions(opts)
	l, err := NewLabeller(f.Shape(), opts...)
	if err != nil {
		return nil, fmt.Errorf("cluster.NewClusters: %w", err)
	}
	if err = l.AddImage(f); err != nil {
		return nil, fmt.Errorf("cluster.NewClusters: %w", err)
	}
	l.Prune()

	c := &Clusters{g: l.lattice, periodic: o.periodic, labels: l.Labels()}
	if !c.periodic {
		c.positions = c.average(c.labels.Data())
		return c, nil
	}
	// label again with clamped edges to find the pieces of every wrapped cluster
	np, err := NewLabeller(f.Shape(), WithKernel(o.kernel), WithPeriodic(false))
	if err != nil {
		return nil, fmt.Errorf("cluster.NewClusters: %w", err)
	}
	_ = np.AddImage(f)
	np.Prune()
	c.positions, err = c.averagePeriodic(np.Labels())
	if err != nil {
		return nil, fmt.Errorf("cluster.NewClusters: %w", err)
	}

	return c, nil
}

// Labels returns a copy of the pruned label grid.
func (c *Clusters) Labels() *ndarray.Array[int] { return c.labels.Clone() }

// Sizes returns the number of sites per label, background included.
func (c *Clusters) Sizes() []int {
	s, _ := Sizes(c.labels)

	return s
}

// CenterPositions returns the centre of gravity of every label (row 0 is the
// background and is all zeros) with one column per grid axis. For periodic
// grids a cluster wrapping across an edge gets its centre inside the grid.
func (c *Clusters) CenterPositions() [][]float64 {
	lead := topology.MaxRank - len(c.g.shape)
	out := make([][]float64, len(c.positions))
	for l, p := range c.positions {
		out[l] = append([]float64(nil), p[lead:]...)
	}

	return out
}

// Centers returns a grid holding label l at the floored centre of gravity of
// cluster l and 0 elsewhere.
func (c *Clusters) Centers() *ndarray.Array[int] {
	out, _ := ndarray.New[int](c.g.shape...)
	d := out.Data()
	for l := 1; l < len(c.positions); l++ {
		p := c.positions[l]
		h, i, j := int(math.Floor(p[0])), int(math.Floor(p[1])), int(math.Floor(p[2]))
		d[(h*c.g.dims[1]+i)*c.g.dims[2]+j] = l
	}

	return out
}

// average returns the mean (h,i,j) of the sites of every label in lab.
func (c *Clusters) average(lab []int) [][]float64 {
	n := 1
	for _, v := range lab {
		n = max(n, v+1)
	}
	x := make([][]float64, n)
	for l := range x {
		x[l] = make([]float64, 3)
	}
	count := make([]float64, n)
	for flat, l := range lab {
		if l == 0 {
			continue
		}
		h, i, j := c.g.coords(flat)
		floats.Add(x[l], []float64{float64(h), float64(i), float64(j)})
		count[l]++
	}
	for l := range x {
		if count[l] > 0 {
			floats.Scale(1/count[l], x[l])
		}
	}

	return x
}

// averagePeriodic computes centres on the torus. Every clamped piece whose
// own centre lies past the grid midpoint is shifted back by one period
// before the pieces of a periodic cluster are averaged; centres ending up
// negative are wrapped into the grid.
func (c *Clusters) averagePeriodic(np *ndarray.Array[int]) ([][]float64, error) {
	relabel, err := RelabelMap(np, c.labels)
	if err != nil {
		return nil, err
	}
	xnp := c.average(np.Data())
	mid := topology.HalfShape(c.g.dims[:])
	shift := make([][3]float64, len(xnp))
	for l := range xnp {
		for ax := 0; ax < 3; ax++ {
			if xnp[l][ax] > float64(mid[ax]) {
				shift[l][ax] = -float64(c.g.dims[ax])
			}
		}
	}

	n := ndarray.Max(c.labels) + 1
	x := make([][]float64, n)
	for l := range x {
		x[l] = make([]float64, 3)
	}
	count := make([]float64, n)
	for flat, l := range np.Data() {
		if l == 0 {
			continue
		}
		h, i, j := c.g.coords(flat)
		p := relabel[l]
		x[p][0] += float64(h) + shift[l][0]
		x[p][1] += float64(i) + shift[l][1]
		x[p][2] += float64(j) + shift[l][2]
		count[p]++
	}
	for l := range x {
		if count[l] > 0 {
			floats.Scale(1/count[l], x[l])
		}
		for ax := 0; ax < 3; ax++ {
			if x[l][ax] < 0 {
				x[l][ax] += float64(c.g.dims[ax])
			}
		}
	}

	return x, nil
}
