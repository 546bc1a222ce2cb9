package ensemble_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvleye/ndarray"
)

const tol = 1e-12

func ints(t testing.TB, rows [][]int) *ndarray.Array[int] {
	t.Helper()
	a, err := ndarray.FromRows(rows)
	require.NoError(t, err)
	return a
}

func vec[T ndarray.Number](t testing.TB, v ...T) *ndarray.Array[T] {
	t.Helper()
	a, err := ndarray.FromSlice(v, len(v))
	require.NoError(t, err)
	return a
}

// segment is the 7×7 image with one horizontal run at row 3 given by cols.
func segment(t testing.TB, cols []int) *ndarray.Array[int] {
	t.Helper()
	a, err := ndarray.New[int](7, 7)
	require.NoError(t, err)
	for c, v := range cols {
		require.NoError(t, a.Set(v, 3, c+2))
	}
	return a
}

// randomBinary draws a reproducible binary image with volume fraction ~p.
func randomBinary(t testing.TB, seed int64, p float64, shape ...int) *ndarray.Array[int] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	a, err := ndarray.New[int](shape...)
	require.NoError(t, err)
	for i := range a.Data() {
		if rng.Float64() < p {
			a.SetFlat(i, 1)
		}
	}
	return a
}

func randomField(t testing.TB, seed int64, shape ...int) *ndarray.Array[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	a, err := ndarray.New[float64](shape...)
	require.NoError(t, err)
	for i := range a.Data() {
		a.SetFlat(i, rng.NormFloat64())
	}
	return a
}

func row(t testing.TB, a *ndarray.Array[float64], i int) []float64 {
	t.Helper()
	r, err := a.Rows()
	require.NoError(t, err)
	return r[i]
}
