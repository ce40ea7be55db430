package dist

import (
	"fmt"
	"math"

	"github.com/softmatter/ptset/pointset"
)

// Periodic computes the N×M minimum-image distance matrix between two
// 2D point sets in a domain that repeats along two lattice vectors.
//
// For each axis independently, five displacement candidates are tried:
// the raw displacement and the raw displacement shifted by ± each
// lattice vector's component along that axis. The candidate with the
// smallest absolute value wins; on an exact tie the earliest candidate
// in the order (raw, −lattice[0], +lattice[0], −lattice[1], +lattice[1])
// is kept, so the unshifted image is always preferred. With
// opts.Axis==AxisAll the per-axis winners are combined by a Euclidean
// norm (squared when opts.Squared); with a single axis the signed
// winning displacement for that axis is returned directly.
//
// This is a single-shell search: it is exact only when the true
// minimum image lies within one lattice repeat in each direction.
// Callers must ensure the lattice vectors are not smaller than the
// point cloud's feature scale.
//
// Errors:
//   - ErrNilPointSet                 — pts or nbrs is nil.
//   - ErrInvalidLattice              — lattice is not exactly two 2D vectors.
//   - pointset.ErrDimensionMismatch  — pts or nbrs is not 2-dimensional,
//     or they disagree with each other.
//   - ErrBadAxis                     — axis index outside {AxisAll, 0, 1}.
//
// Edge case: empty pts or nbrs yields a correctly-shaped empty matrix.
//
// Complexity: O(N·M) time (constant candidate count), O(N·M) memory.
func Periodic(pts, nbrs *pointset.PointSet, lattice [][]float64, opts Options) (*pointset.Dense, error) {
	if pts == nil || nbrs == nil {
		return nil, ErrNilPointSet
	}
	if len(lattice) != 2 || len(lattice[0]) != 2 || len(lattice[1]) != 2 {
		return nil, ErrInvalidLattice
	}
	if pts.Dim() != 2 || nbrs.Dim() != 2 {
		return nil, fmt.Errorf("dist.Periodic: point sets must be 2-dimensional: %w",
			pointset.ErrDimensionMismatch)
	}
	if err := validateAxis(opts.Axis, 2); err != nil {
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

	for i := 0; i < n; i++ {
		p := pts.RowView(i)
		row := out.RowView(i)
		for j := 0; j < m; j++ {
			q := nbrs.RowView(j)
			switch opts.Axis {
			case AxisAll:
				dx := minimumImage(q[0]-p[0], lattice[0][0], lattice[1][0])
				dy := minimumImage(q[1]-p[1], lattice[0][1], lattice[1][1])
				sum := dx*dx + dy*dy
				if opts.Squared {
					row[j] = sum
				} else {
					row[j] = math.Sqrt(sum)
				}
			default:
				a := int(opts.Axis)
				delta := minimumImage(q[a]-p[a], lattice[0][a], lattice[1][a])
				if opts.Squared {
					delta *= delta
				}
				row[j] = delta
			}
		}
	}

	return out, nil
}

// minimumImage picks the displacement of least magnitude among raw and
// its four lattice-shifted variants. Strict less-than keeps the earliest
// candidate on exact ties (raw preferred); this order is part of the
// package contract.
func minimumImage(raw, shiftA, shiftB float64) float64 {
	best := raw
	bestAbs := math.Abs(raw)
	for _, cand := range [4]float64{raw - shiftA, raw + shiftA, raw - shiftB, raw + shiftB} {
		if abs := math.Abs(cand); abs < bestAbs {
			best, bestAbs = cand, abs
		}
	}

	return best
}
