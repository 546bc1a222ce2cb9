package cluster_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvleye/cluster"
	"github.com/katalvlaran/lvleye/kernel"
	"github.com/katalvlaran/lvleye/ndarray"
	"github.com/katalvlaran/lvleye/topology"
)

// grid builds a 2-D int array from rows.
func grid(t testing.TB, rows [][]int) *ndarray.Array[int] {
	t.Helper()
	a, err := ndarray.FromRows(rows)
	require.NoError(t, err)
	return a
}

// binary maps every non-zero entry to 1.
func binary(a *ndarray.Array[int]) *ndarray.Array[int] {
	out := a.Clone()
	d := out.Data()
	for i, v := range d {
		if v != 0 {
			d[i] = 1
		}
	}
	return out
}

func rows(t testing.TB, a *ndarray.Array[int]) [][]int {
	t.Helper()
	r, err := a.Rows()
	require.NoError(t, err)
	return r
}

// TestLabeller_IncrementalSequences feeds growing images into one periodic
// 4×4 labeller. Each expected grid is the labelling after that image: ids of
// merged components are kept until Prune, so gaps may appear.
func TestLabeller_IncrementalSequences(t *testing.T) {
	t.Parallel()

	sequences := map[string][][][]int{
		"grow and merge": {
			{{1, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
			{{1, 1, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
			{{1, 1, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
			{{1, 1, 0, 0}, {1, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
			{{1, 1, 0, 0}, {1, 0, 0, 0}, {0, 0, 2, 0}, {0, 0, 0, 0}},
			{{1, 1, 0, 0}, {1, 0, 0, 0}, {0, 0, 2, 2}, {0, 0, 0, 0}},
			{{1, 1, 0, 0}, {1, 0, 2, 0}, {0, 0, 2, 2}, {0, 0, 0, 0}},
			{{1, 1, 0, 0}, {1, 1, 1, 0}, {0, 0, 1, 1}, {0, 0, 0, 0}},
			{{1, 1, 0, 0}, {1, 1, 1, 0}, {0, 0, 1, 1}, {0, 0, 0, 0}},
			{{1, 1, 0, 0}, {1, 1, 1, 0}, {0, 0, 1, 1}, {0, 0, 0, 1}},
			{{1, 1, 0, 0}, {1, 1, 1, 0}, {0, 0, 1, 1}, {0, 0, 1, 1}},
		},
		"merge across periodic edges": {
			{{1, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
			{{1, 1, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
			{{1, 1, 0, 0}, {0, 0, 0, 0}, {2, 0, 0, 0}, {0, 0, 0, 0}},
			{{1, 1, 0, 0}, {0, 0, 0, 0}, {2, 2, 0, 0}, {0, 0, 0, 0}},
			{{1, 1, 0, 0}, {0, 0, 3, 0}, {2, 2, 0, 0}, {0, 0, 0, 0}},
			{{1, 1, 0, 0}, {0, 0, 3, 3}, {2, 2, 0, 0}, {0, 0, 0, 0}},
			{{1, 1, 0, 0}, {0, 0, 3, 3}, {2, 2, 0, 0}, {0, 0, 4, 0}},
			{{1, 1, 0, 0}, {0, 0, 3, 3}, {2, 2, 0, 0}, {0, 0, 4, 4}},
			{{1, 1, 0, 1}, {0, 0, 1, 1}, {2, 2, 0, 0}, {0, 0, 1, 1}},
			{{1, 1, 0, 1}, {1, 0, 1, 1}, {1, 1, 0, 0}, {0, 0, 1, 1}},
		},
		"many to one": {
			{{1, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
			{{1, 0, 2, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
			{{1, 0, 2, 0}, {0, 3, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
			{{1, 0, 2, 0}, {0, 3, 0, 4}, {0, 0, 0, 0}, {0, 0, 0, 0}},
			{{1, 0, 2, 0}, {0, 3, 0, 4}, {5, 0, 0, 0}, {0, 0, 0, 0}},
			{{1, 0, 2, 0}, {0, 3, 0, 4}, {5, 0, 6, 0}, {0, 0, 0, 0}},
			{{1, 0, 2, 0}, {1, 1, 0, 1}, {1, 0, 6, 0}, {0, 0, 0, 0}},
			{{1, 0, 1, 0}, {1, 1, 1, 1}, {1, 0, 1, 0}, {0, 0, 0, 0}},
		},
	}

	lab, err := cluster.NewLabeller([]int{4, 4})
	require.NoError(t, err)
	for name, seq := range sequences {
		lab.Reset()
		for step, want := range seq {
			require.NoError(t, lab.AddImage(binary(grid(t, want))))
			if diff := cmp.Diff(want, rows(t, lab.Labels())); diff != "" {
				t.Fatalf("%s step %d: labels mismatch (-want +got):\n%s", name, step, diff)
			}
		}
	}
}

func TestLabeller_AddPointsAndPrune(t *testing.T) {
	t.Parallel()

	lab, err := cluster.NewLabeller([]int{4, 4})
	require.NoError(t, err)
	require.NoError(t, lab.AddPoints([]int{0, 2, 8, 10, 1}))
	assert.Equal(t, [][]int{
		{1, 1, 1, 0},
		{0, 0, 0, 0},
		{3, 0, 4, 0},
		{0, 0, 0, 0},
	}, rows(t, lab.Labels()))
	assert.Equal(t, 5, lab.NumLabels())

	lab.Prune()
	assert.Equal(t, [][]int{
		{1, 1, 1, 0},
		{0, 0, 0, 0},
		{2, 0, 3, 0},
		{0, 0, 0, 0},
	}, rows(t, lab.Labels()))
	assert.Equal(t, 4, lab.NumLabels())

	// pruning twice is a no-op
	lab.Prune()
	assert.Equal(t, 4, lab.NumLabels())

	// labelling continues after prune with fresh ids
	require.NoError(t, lab.AddPoints([]int{15, 9}))
	assert.Equal(t, [][]int{
		{1, 1, 1, 0},
		{0, 0, 0, 0},
		{2, 2, 2, 0},
		{0, 0, 0, 4},
	}, rows(t, lab.Labels()))
}

// Prune only compacts ids; the partition of sites is preserved.
func TestLabeller_PrunePreservesPartition(t *testing.T) {
	t.Parallel()

	img := grid(t, [][]int{
		{1, 0, 1, 0, 1, 0},
		{1, 0, 1, 0, 0, 0},
		{1, 1, 1, 0, 1, 1},
		{0, 0, 0, 0, 0, 0},
		{1, 0, 1, 1, 0, 1},
	})
	lab, err := cluster.NewLabeller(img.Shape(), cluster.WithPeriodic(false))
	require.NoError(t, err)
	require.NoError(t, lab.AddImage(img))
	before := lab.Labels()
	lab.Prune()
	after := lab.Labels()

	pairs, err := cluster.LabelsMap(before, after)
	require.NoError(t, err)
	seenBefore := map[int]bool{}
	seenAfter := map[int]bool{}
	for _, p := range pairs {
		assert.False(t, seenBefore[p[0]], "label %d split", p[0])
		assert.False(t, seenAfter[p[1]], "label %d merged", p[1])
		seenBefore[p[0]], seenAfter[p[1]] = true, true
		assert.Equal(t, p[0] == 0, p[1] == 0, "background must stay background")
	}
	assert.Equal(t, len(seenAfter)-1, ndarray.Max(after), "ids must be contiguous")
}

func TestLabeller_PeriodicVersusClamped(t *testing.T) {
	t.Parallel()

	img := grid(t, [][]int{
		{1, 0, 1},
		{0, 0, 0},
		{1, 0, 0},
	})

	per, err := cluster.Label(img, true)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 0, 1}, {0, 0, 0}, {1, 0, 0}}, rows(t, per))

	cl, err := cluster.Label(img, false)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 0, 2}, {0, 0, 0}, {3, 0, 0}}, rows(t, cl))
}

// A merge discovered late in the scan rewrites ids assigned much earlier.
func TestLabeller_LateMerge(t *testing.T) {
	t.Parallel()

	img := grid(t, [][]int{
		{1, 0, 1, 0, 1},
		{1, 0, 1, 0, 1},
		{1, 1, 1, 1, 1},
	})
	lab, err := cluster.NewLabeller(img.Shape(), cluster.WithPeriodic(false))
	require.NoError(t, err)
	require.NoError(t, lab.AddImage(img))
	assert.Equal(t, [][]int{{1, 0, 1, 0, 1}, {1, 0, 1, 0, 1}, {1, 1, 1, 1, 1}}, rows(t, lab.Labels()))
	assert.Equal(t, 4, lab.NumLabels())
}

func TestLabeller_RingIsOneClusterFromAnyStart(t *testing.T) {
	t.Parallel()

	// ring of 8 sites around (2,2) on a periodic 5×5 grid
	ring := []int{6, 7, 8, 13, 18, 17, 16, 11}
	for start := range ring {
		order := append(append([]int(nil), ring[start:]...), ring[:start]...)
		lab, err := cluster.NewLabeller([]int{5, 5})
		require.NoError(t, err)
		for _, p := range order {
			require.NoError(t, lab.AddPoints([]int{p}))
		}
		lab.Prune()
		sizes, err := cluster.Sizes(lab.Labels())
		require.NoError(t, err)
		assert.Equal(t, []int{17, 8}, sizes, "start %d", start)
	}
}

func TestLabeller_ResetMatchesFresh(t *testing.T) {
	t.Parallel()

	img := grid(t, [][]int{{1, 1, 0}, {0, 0, 1}, {1, 0, 1}})
	used, err := cluster.NewLabeller([]int{3, 3})
	require.NoError(t, err)
	require.NoError(t, used.AddImage(img))
	require.NoError(t, used.AddPoints([]int{4}))
	used.Reset()

	fresh, err := cluster.NewLabeller([]int{3, 3})
	require.NoError(t, err)
	assert.Equal(t, fresh.Labels().Data(), used.Labels().Data())
	assert.Equal(t, fresh.NumLabels(), used.NumLabels())

	require.NoError(t, used.AddImage(img))
	require.NoError(t, fresh.AddImage(img))
	assert.Equal(t, fresh.Labels().Data(), used.Labels().Data())
}

func TestLabeller_FullKernel(t *testing.T) {
	t.Parallel()

	k, err := kernel.Full(2)
	require.NoError(t, err)
	img := grid(t, [][]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 0}})
	lab, err := cluster.NewLabeller(img.Shape(), cluster.WithKernel(k), cluster.WithPeriodic(false))
	require.NoError(t, err)
	require.NoError(t, lab.AddImage(img))
	assert.Equal(t, [][]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 0}}, rows(t, lab.Labels()))
}

func TestLabeller_3D(t *testing.T) {
	t.Parallel()

	img, err := ndarray.FromSlice([]int{
		1, 0,
		0, 0,

		0, 0,
		0, 1,
	}, 2, 2, 2)
	require.NoError(t, err)

	per, err := cluster.NewLabeller(img.Shape())
	require.NoError(t, err)
	require.NoError(t, per.AddImage(img))
	assert.Equal(t, []int{1, 0, 0, 0, 0, 0, 0, 2}, per.Labels().Data())

	require.NoError(t, per.AddPoints([]int{1, 3}))
	assert.Equal(t, []int{1, 1, 0, 1, 0, 0, 0, 1}, per.Labels().Data())
	assert.Equal(t, []int{2, 2, 2}, per.Shape())
	assert.True(t, per.Periodic())
}

func TestLabeller_1D(t *testing.T) {
	t.Parallel()

	img, _ := ndarray.FromSlice([]int{1, 0, 1, 1, 0, 1}, 6)
	got, err := cluster.Label(img, true)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 2, 2, 0, 1}, got.Data())

	got, err = cluster.Label(img, false)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 2, 2, 0, 3}, got.Data())
}

func TestLabeller_Errors(t *testing.T) {
	t.Parallel()

	_, err := cluster.NewLabeller([]int{1, 1, 1, 1})
	assert.ErrorIs(t, err, cluster.ErrShape)
	assert.ErrorIs(t, err, topology.ErrRank)

	k1, _ := kernel.Nearest(1)
	_, err = cluster.NewLabeller([]int{3, 3}, cluster.WithKernel(k1))
	assert.ErrorIs(t, err, cluster.ErrKernel)

	even, _ := ndarray.Full(1, 2, 2)
	_, err = cluster.NewLabeller([]int{3, 3}, cluster.WithKernel(even))
	assert.ErrorIs(t, err, cluster.ErrKernel)
	assert.ErrorIs(t, err, kernel.ErrEvenExtent)

	lab, err := cluster.NewLabeller([]int{3, 3})
	require.NoError(t, err)
	assert.ErrorIs(t, lab.AddImage(nil), cluster.ErrNilImage)
	wrong, _ := ndarray.New[int](3, 4)
	assert.ErrorIs(t, lab.AddImage(wrong), cluster.ErrShapeMismatch)

	// a bad index anywhere in the batch rejects the whole batch
	assert.ErrorIs(t, lab.AddPoints([]int{0, 9}), cluster.ErrOutOfRange)
	assert.ErrorIs(t, lab.AddPoints([]int{-1}), cluster.ErrOutOfRange)
	assert.Equal(t, 0, ndarray.CountNonZero(lab.Labels()))
	assert.Equal(t, 1, lab.NumLabels())
}
