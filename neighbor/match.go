package neighbor

import (
	"math"

	"github.com/softmatter/ptset/dist"
	"github.com/softmatter/ptset/pointset"
)

// MatchPoints maps every point in pts to the index of its nearest point
// in nbrs: out[i] is the argmin over j of |pts[i] − nbrs[j]|. Distances
// are compared squared (ordering is unaffected and the sqrt is saved);
// ties break toward the lowest reference index.
//
// Edge case: an empty pts or nbrs yields an empty (non-nil) slice and a
// nil error. Dimensionality mismatch fails with
// pointset.ErrDimensionMismatch.
//
// Complexity: O(N·M·d).
func MatchPoints(pts, nbrs *pointset.PointSet) ([]int, error) {
	if pts == nil || nbrs == nil {
		return nil, ErrNilPointSet
	}
	if err := pointset.SameDim(pts, nbrs); err != nil {
		return nil, err
	}
	if pts.Len() == 0 || nbrs.Len() == 0 {
		return []int{}, nil
	}

	m, err := dist.Pairwise(pts, nbrs, dist.Options{Axis: dist.AxisAll, Squared: true})
	if err != nil {
		return nil, err
	}

	out := make([]int, pts.Len())
	for i := range out {
		out[i] = argmin(m.RowView(i))
	}

	return out, nil
}

// MatchValues maps every value in vals to the index of its nearest
// value in arr, comparing absolute differences; ties break toward the
// lowest index. Empty vals or arr yields an empty slice.
//
// Complexity: O(N·M).
func MatchValues(vals, arr []float64) []int {
	if len(vals) == 0 || len(arr) == 0 {
		return []int{}
	}

	out := make([]int, len(vals))
	for i, v := range vals {
		best, bestAbs := 0, math.Abs(arr[0]-v)
		for j := 1; j < len(arr); j++ {
			if abs := math.Abs(arr[j] - v); abs < bestAbs {
				best, bestAbs = j, abs
			}
		}
		out[i] = best
	}

	return out
}

// ClosestPoint returns the index of the point in pts nearest to the
// single query pt; ties break toward the lowest index.
//
// Errors: ErrNilPointSet, ErrEmptyPointSet, and
// pointset.ErrDimensionMismatch when len(pt) != pts.Dim().
//
// Complexity: O(N·d).
func ClosestPoint(pt []float64, pts *pointset.PointSet) (int, error) {
	if pts == nil {
		return 0, ErrNilPointSet
	}
	if pts.Len() == 0 {
		return 0, ErrEmptyPointSet
	}
	if len(pt) != pts.Dim() {
		return 0, pointset.ErrDimensionMismatch
	}

	best, bestSq := 0, sqDist(pt, pts.RowView(0))
	for i := 1; i < pts.Len(); i++ {
		if sq := sqDist(pt, pts.RowView(i)); sq < bestSq {
			best, bestSq = i, sq
		}
	}

	return best, nil
}

// argmin returns the index of the smallest value; strict less-than
// keeps the first occurrence on ties.
func argmin(row []float64) int {
	best := 0
	for j := 1; j < len(row); j++ {
		if row[j] < row[best] {
			best = j
		}
	}

	return best
}

// sqDist is the squared Euclidean distance between two coordinate rows
// of equal length.
func sqDist(a, b []float64) float64 {
	var sum float64
	for k := range a {
		delta := b[k] - a[k]
		sum += delta * delta
	}

	return sum
}
