package curve

import (
	"errors"

	"github.com/softmatter/ptset/pointset"
)

// Sentinel errors for curve ordering.
var (
	// ErrNilPointSet indicates a nil *pointset.PointSet argument.
	ErrNilPointSet = errors.New("curve: nil point set")

	// ErrEmptyPointSet indicates there are no points to order.
	ErrEmptyPointSet = errors.New("curve: empty point set")

	// ErrSeedOutOfRange indicates the seed index is not a valid point index.
	ErrSeedOutOfRange = errors.New("curve: seed index out of range")

	// ErrUnsupportedMethod indicates a reserved or unknown ordering strategy.
	ErrUnsupportedMethod = errors.New("curve: unsupported ordering method")
)

// Method selects the ordering strategy.
type Method int

const (
	// Nearest appends the Remaining point closest to the path tail
	// (greedy nearest-neighbor). The only implemented strategy.
	Nearest Method = iota

	// Projected is reserved for a directional variant in which the next
	// point must have positive projection onto the previous step vector.
	// Not implemented; Order returns ErrUnsupportedMethod.
	Projected
)

// Options configures Order.
type Options struct {
	Method Method
}

// DefaultOptions returns the standard configuration: greedy
// nearest-neighbor ordering.
func DefaultOptions() Options {
	return Options{Method: Nearest}
}

// Result is an ordered path over the input points.
type Result struct {
	// Path holds the input points permuted into walk order; Path.Row(0)
	// is the seed point.
	Path *pointset.PointSet

	// Indices maps walk position to original input index:
	// Path row i equals input row Indices[i].
	Indices []int
}
