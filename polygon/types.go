package polygon

import (
	"errors"
	"fmt"

	"github.com/softmatter/ptset/pointset"
)

// Sentinel errors for polygon operations.
var (
	// ErrNilPolygon indicates a nil polygon or point-set argument.
	ErrNilPolygon = errors.New("polygon: nil polygon or point set")

	// ErrDegeneratePolygon indicates fewer than three vertices.
	ErrDegeneratePolygon = errors.New("polygon: need at least three vertices")
)

// validatePolygon enforces the package's polygon contract.
func validatePolygon(poly *pointset.PointSet) error {
	if poly == nil {
		return ErrNilPolygon
	}
	if poly.Dim() != 2 {
		return fmt.Errorf("polygon: vertices must be 2-dimensional: %w", pointset.ErrDimensionMismatch)
	}
	if poly.Len() < 3 {
		return ErrDegeneratePolygon
	}

	return nil
}
