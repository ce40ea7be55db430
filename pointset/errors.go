package pointset

import "errors"

// Sentinel errors for container construction and access. Algorithms in
// sibling packages return these directly; callers match with errors.Is.
var (
	// ErrInvalidDimensions indicates a requested shape is non-positive
	// (d < 1 for a PointSet, rows/cols < 1 for a Dense matrix).
	ErrInvalidDimensions = errors.New("pointset: dimensions must be > 0")

	// ErrRaggedRows indicates the input rows do not share one dimensionality.
	ErrRaggedRows = errors.New("pointset: rows have differing dimensionality")

	// ErrIndexOutOfBounds indicates a row or column index outside valid range.
	ErrIndexOutOfBounds = errors.New("pointset: index out of bounds")

	// ErrDimensionMismatch indicates two point sets (or a point and a set)
	// disagree in dimensionality. Shared by dist, neighbor and curve.
	ErrDimensionMismatch = errors.New("pointset: point sets have different dimensionality")
)
