package curve

import (
	"github.com/softmatter/ptset/pointset"
)

// Order walks the input points into a connected path starting at the
// seed index. See the package doc for the state machine and the
// accepted greediness of the result.
//
// The returned Result owns fresh storage; pts is never mutated.
//
// Errors:
//   - ErrNilPointSet       — pts is nil.
//   - ErrEmptyPointSet     — pts has no points.
//   - ErrSeedOutOfRange    — seed outside [0, pts.Len()).
//   - ErrUnsupportedMethod — opts.Method is not Nearest.
//
// Complexity: O(N²·d).
func Order(pts *pointset.PointSet, seed int, opts Options) (*Result, error) {
	if pts == nil {
		return nil, ErrNilPointSet
	}
	n := pts.Len()
	if n == 0 {
		return nil, ErrEmptyPointSet
	}
	if seed < 0 || seed >= n {
		return nil, ErrSeedOutOfRange
	}
	if opts.Method != Nearest {
		return nil, ErrUnsupportedMethod
	}

	// Two-set state machine over a fixed arena: remaining[i] marks the
	// Remaining set, ordered accumulates the Ordered path.
	remaining := make([]bool, n)
	for i := range remaining {
		remaining[i] = true
	}
	remaining[seed] = false

	ordered := make([]int, 1, n)
	ordered[0] = seed

	for len(ordered) < n {
		tail := pts.RowView(ordered[len(ordered)-1])

		// Nearest Remaining point to the path tail; strict less-than
		// keeps the lowest original index on exact ties.
		next, bestSq := -1, 0.0
		for i := 0; i < n; i++ {
			if !remaining[i] {
				continue
			}
			sq := sqDist(tail, pts.RowView(i))
			if next == -1 || sq < bestSq {
				next, bestSq = i, sq
			}
		}

		remaining[next] = false
		ordered = append(ordered, next)
	}

	return &Result{Path: gather(pts, ordered), Indices: ordered}, nil
}

// gather materializes the rows of pts selected by inds, in order.
func gather(pts *pointset.PointSet, inds []int) *pointset.PointSet {
	d := pts.Dim()
	flat := make([]float64, 0, len(inds)*d)
	for _, i := range inds {
		flat = append(flat, pts.RowView(i)...)
	}

	// Shape is correct by construction, so the error path is unreachable.
	out, err := pointset.FromFlat(flat, d)
	if err != nil {
		panic(err)
	}

	return out
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
