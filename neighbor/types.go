package neighbor

import "errors"

// SelfEps is the distance below which a candidate is considered the
// query point itself and excluded from k-nearest and separation
// queries. Exclusion is by distance, not index; see the package doc.
const SelfEps = 1e-9

// Sentinel errors for neighbor queries.
var (
	// ErrNilPointSet indicates a nil *pointset.PointSet argument.
	ErrNilPointSet = errors.New("neighbor: nil point set")

	// ErrEmptyPointSet indicates a query that needs at least one point
	// (ClosestPoint) received an empty set.
	ErrEmptyPointSet = errors.New("neighbor: empty point set")

	// ErrBadK indicates a k-nearest query with k < 1.
	ErrBadK = errors.New("neighbor: k must be >= 1")

	// ErrBadCutoff indicates a radius query with a non-positive cutoff.
	ErrBadCutoff = errors.New("neighbor: cutoff must be > 0")
)

// SeparationOptions configures Separation.
//
// Exactly one selection rule applies: when Cutoff > 0 the mean runs
// over all neighbors strictly inside the cutoff; otherwise it runs over
// the K nearest neighbors (K defaulting to 1 when non-positive).
type SeparationOptions struct {
	Cutoff float64
	K      int
}

// DefaultSeparationOptions returns the standard configuration:
// mean distance to the single nearest neighbor.
func DefaultSeparationOptions() SeparationOptions {
	return SeparationOptions{Cutoff: 0, K: 1}
}
