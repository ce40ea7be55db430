package dist

import "errors"

// Sentinel errors for distance computations.
var (
	// ErrNilPointSet indicates a nil *pointset.PointSet argument.
	ErrNilPointSet = errors.New("dist: nil point set")

	// ErrBadAxis indicates Options.Axis is neither AxisAll nor a valid
	// dimension index for the supplied point sets.
	ErrBadAxis = errors.New("dist: axis out of range")

	// ErrInvalidLattice indicates the periodic lattice is not exactly
	// two 2-dimensional vectors.
	ErrInvalidLattice = errors.New("dist: lattice must be exactly two 2D vectors")
)

// Axis selects which dimensions participate in a distance computation.
//
// AxisAll requests the full Euclidean norm. AxisX and AxisY name the
// first two dimension indices; any non-negative value below the point
// sets' dimensionality is accepted, so higher-dimensional callers may
// pass Axis(3), Axis(4), and so on.
type Axis int

const (
	// AxisAll measures the Euclidean distance across all d dimensions.
	AxisAll Axis = -1
	// AxisX restricts to the signed displacement along dimension 0.
	AxisX Axis = 0
	// AxisY restricts to the signed displacement along dimension 1.
	AxisY Axis = 1
)

// Options configures a distance computation.
//
// Fields:
//   - Axis    — AxisAll for the full norm, or a single dimension index
//     for a signed per-axis displacement (no square root, sign kept).
//   - Squared — skip the final square root when Axis==AxisAll, or
//     square the displacement otherwise. Ordering of entries is
//     unaffected, which is why neighbor matching uses Squared=true.
type Options struct {
	Axis    Axis
	Squared bool
}

// DefaultOptions returns the standard configuration: full Euclidean
// norm, square root applied.
func DefaultOptions() Options {
	return Options{Axis: AxisAll, Squared: false}
}

// validateAxis checks ax against dimensionality d.
func validateAxis(ax Axis, d int) error {
	if ax == AxisAll {
		return nil
	}
	if ax < 0 || int(ax) >= d {
		return ErrBadAxis
	}

	return nil
}
