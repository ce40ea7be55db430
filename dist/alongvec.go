package dist

import (
	"fmt"

	"github.com/softmatter/ptset/pointset"
)

// AlongVec computes the N×M matrix of per-pair displacements projected
// onto vec: entry (i,j) is the dot product of (nbrs[j] − pts[i]) with
// vec. The projection is signed; vec is used as given (not normalized),
// so callers wanting a true projected length must pass a unit vector.
//
// Errors:
//   - ErrNilPointSet                 — pts or nbrs is nil.
//   - pointset.ErrDimensionMismatch  — pts/nbrs disagree in d, or
//     len(vec) != d.
//
// Edge case: empty pts or nbrs yields a correctly-shaped empty matrix.
//
// Complexity: O(N·M·d) time, O(N·M) memory.
func AlongVec(pts, nbrs *pointset.PointSet, vec []float64) (*pointset.Dense, error) {
	if pts == nil || nbrs == nil {
		return nil, ErrNilPointSet
	}
	if err := pointset.SameDim(pts, nbrs); err != nil {
		return nil, err
	}
	if len(vec) != pts.Dim() {
		return nil, fmt.Errorf("dist.AlongVec: vec has %d components, point sets have %d: %w",
			len(vec), pts.Dim(), pointset.ErrDimensionMismatch)
	}

	n, m := pts.Len(), nbrs.Len()
	out, err := pointset.NewDense(n, m)
	if err != nil {
		return nil, err
	}

	d := pts.Dim()
	for i := 0; i < n; i++ {
		p := pts.RowView(i)
		row := out.RowView(i)
		for j := 0; j < m; j++ {
			q := nbrs.RowView(j)
			var along float64
			for k := 0; k < d; k++ {
				along += (q[k] - p[k]) * vec[k]
			}
			row[j] = along
		}
	}

	return out, nil
}
