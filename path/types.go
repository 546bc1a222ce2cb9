// Package path defines the discrete voxel paths used by the lineal-path and
// collapsed weighted correlations.
package path

import (
	"fmt"
	"strings"
)

// Mode selects how the straight line between two voxels is discretised.
//
//   - Bresenham: one voxel per step along the dominant axis; the path has
//     exactly max|Δ|+1 voxels. This is the default.
//
//   - Actual: one voxel per step of the ray through voxel faces; axes whose
//     face crossings coincide (within tieEps) advance together.
//
//   - Full: like Actual but every face crossing yields its own voxel, so a
//     diagonal step is split into face-connected steps.
type Mode int

const (
	// Bresenham is the default integer line algorithm.
	Bresenham Mode = iota
	// Actual traverses voxels hit by the continuous line.
	Actual
	// Full emits one voxel per face crossing.
	Full
)

// tieEps is the tolerance under which two face crossings count as simultaneous.
const tieEps = 1e-6

// String returns the lower-case mode name.
func (m Mode) String() string {
	switch m {
	case Bresenham:
		return "bresenham"
	case Actual:
		return "actual"
	case Full:
		return "full"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps a case-insensitive mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bresenham":
		return Bresenham, nil
	case "actual":
		return Actual, nil
	case "full":
		return Full, nil
	default:
		return 0, fmt.Errorf("path.ParseMode(%q): %w", s, ErrUnsupportedMode)
	}
}

// Validate returns ErrUnsupportedMode for values outside the declared modes.
func (m Mode) Validate() error {
	if m < Bresenham || m > Full {
		return fmt.Errorf("path: %v: %w", m, ErrUnsupportedMode)
	}

	return nil
}
