package dist

import (
	"math"

	"github.com/softmatter/ptset/pointset"
)

// Pairwise computes the N×M distance matrix between two point sets.
//
// With opts.Axis==AxisAll, entry (i,j) is the Euclidean distance from
// pts[i] to nbrs[j] (squared when opts.Squared). With a single axis,
// entry (i,j) is the signed displacement nbrs[j][axis] − pts[i][axis] —
// a directed quantity, not a metric — squared when opts.Squared.
//
// Errors:
//   - ErrNilPointSet                 — pts or nbrs is nil.
//   - pointset.ErrDimensionMismatch  — pts and nbrs disagree in d.
//   - ErrBadAxis                     — axis index outside [0, d).
//
// Edge case: an empty pts or nbrs yields a correctly-shaped empty
// matrix and a nil error.
//
// Complexity: O(N·M·d) time, O(N·M) memory.
func Pairwise(pts, nbrs *pointset.PointSet, opts Options) (*pointset.Dense, error) {
	if pts == nil || nbrs == nil {
		return nil, ErrNilPointSet
	}
	if err := pointset.SameDim(pts, nbrs); err != nil {
		return nil, err
	}
	if err := validateAxis(opts.Axis, pts.Dim()); err != nil {
		return nil, err
	}

	n, m := pts.Len(), nbrs.Len()
	out, err := pointset.NewDense(n, m)
	if err != nil {
		return nil, err
	}
	if n == 0 || m == 0 {
		return out, nil
	}

	if opts.Axis == AxisAll {
		fillEuclidean(out, pts, nbrs, opts.Squared)
	} else {
		fillAxis(out, pts, nbrs, int(opts.Axis), opts.Squared)
	}

	return out, nil
}

// fillEuclidean writes the full-norm distances into out.
// Loop order is fixed (rows outer) for determinism and cache locality.
func fillEuclidean(out *pointset.Dense, pts, nbrs *pointset.PointSet, squared bool) {
	d := pts.Dim()
	for i := 0; i < pts.Len(); i++ {
		p := pts.RowView(i)
		row := out.RowView(i)
		for j := 0; j < nbrs.Len(); j++ {
			q := nbrs.RowView(j)
			var sum float64
			for k := 0; k < d; k++ {
				delta := q[k] - p[k]
				sum += delta * delta
			}
			if squared {
				row[j] = sum
			} else {
				row[j] = math.Sqrt(sum)
			}
		}
	}
}

// fillAxis writes signed single-axis displacements into out.
func fillAxis(out *pointset.Dense, pts, nbrs *pointset.PointSet, axis int, squared bool) {
	for i := 0; i < pts.Len(); i++ {
		p := pts.RowView(i)[axis]
		row := out.RowView(i)
		for j := 0; j < nbrs.Len(); j++ {
			delta := nbrs.RowView(j)[axis] - p
			if squared {
				delta *= delta
			}
			row[j] = delta
		}
	}
}
