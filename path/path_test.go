package path_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvleye/path"
)

func TestPath_Bresenham(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		x0, x1 []int
		want   [][]int
	}{
		{"single point", []int{2, 3}, []int{2, 3}, [][]int{{2, 3}}},
		{"1d backwards", []int{2}, []int{-1}, [][]int{{2}, {1}, {0}, {-1}}},
		{"axis aligned", []int{0, 0}, []int{0, 3}, [][]int{{0, 0}, {0, 1}, {0, 2}, {0, 3}}},
		{"diagonal", []int{0, 0}, []int{2, 2}, [][]int{{0, 0}, {1, 1}, {2, 2}}},
		{"shallow", []int{0, 0}, []int{1, 2}, [][]int{{0, 0}, {1, 1}, {1, 2}}},
		{"3d", []int{0, 0, 0}, []int{1, -1, 3}, [][]int{{0, 0, 0}, {0, 0, 1}, {1, -1, 2}, {1, -1, 3}}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := path.Path(tc.x0, tc.x1, path.Bresenham)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// Bresenham paths always hold max|Δ|+1 voxels and end exactly at x1.
func TestPath_BresenhamLength(t *testing.T) {
	t.Parallel()

	for dx := -4; dx <= 4; dx++ {
		for dy := -4; dy <= 4; dy++ {
			x1 := []int{dx, dy}
			got, err := path.Path([]int{0, 0}, x1, path.Bresenham)
			require.NoError(t, err)
			want := max(abs(dx), abs(dy)) + 1
			require.Len(t, got, want, "x1=%v", x1)
			assert.Equal(t, x1, got[len(got)-1])
			assert.Equal(t, []int{0, 0}, got[0])
		}
	}
}

func TestPath_ActualAndFull(t *testing.T) {
	t.Parallel()

	got, err := path.Path([]int{0, 0}, []int{2, 2}, path.Actual)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 0}, {1, 1}, {2, 2}}, got)

	got, err = path.Path([]int{0, 0}, []int{2, 2}, path.Full)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 0}, {1, 0}, {1, 1}, {2, 1}, {2, 2}}, got)

	got, err = path.Path([]int{0, 0}, []int{1, 2}, path.Actual)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 0}, {0, 1}, {1, 1}, {1, 2}}, got)

	got, err = path.Path([]int{3}, []int{3}, path.Full)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{3}}, got)
}

// Full paths are face connected: consecutive voxels differ along one axis by one.
func TestPath_FullIsFaceConnected(t *testing.T) {
	t.Parallel()

	got, err := path.Path([]int{0, 0, 0}, []int{-3, 5, 2}, path.Full)
	require.NoError(t, err)
	assert.Equal(t, []int{-3, 5, 2}, got[len(got)-1])
	assert.Len(t, got, 3+5+2+1)
	for i := 1; i < len(got); i++ {
		diff := 0
		for k := range got[i] {
			diff += abs(got[i][k] - got[i-1][k])
		}
		assert.Equal(t, 1, diff, "step %d: %v -> %v", i, got[i-1], got[i])
	}
}

func TestPath_Errors(t *testing.T) {
	t.Parallel()

	_, err := path.Path([]int{0}, []int{0, 1}, path.Bresenham)
	assert.ErrorIs(t, err, path.ErrRankMismatch)
	_, err = path.Path([]int{0, 0, 0, 0}, []int{0, 0, 0, 1}, path.Bresenham)
	assert.ErrorIs(t, err, path.ErrRank)
	_, err = path.Path([]int{0}, []int{1}, path.Mode(9))
	assert.ErrorIs(t, err, path.ErrUnsupportedMode)
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	for _, m := range []path.Mode{path.Bresenham, path.Actual, path.Full} {
		got, err := path.ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
		assert.NoError(t, m.Validate())
	}
	got, err := path.ParseMode(" Bresenham ")
	require.NoError(t, err)
	assert.Equal(t, path.Bresenham, got)

	_, err = path.ParseMode("zigzag")
	assert.ErrorIs(t, err, path.ErrUnsupportedMode)
	assert.ErrorIs(t, path.Mode(-1).Validate(), path.ErrUnsupportedMode)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
