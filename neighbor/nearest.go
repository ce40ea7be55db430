package neighbor

import (
	"sort"

	"github.com/softmatter/ptset/dist"
	"github.com/softmatter/ptset/pointset"
)

// NearestWithin returns, for each point, the indices of all other
// points strictly closer than cutoff, in ascending index order. The
// point itself is excluded by the d > 0 rule, which also drops any
// distinct point coinciding exactly with it (see the package doc).
//
// Errors: ErrNilPointSet, ErrBadCutoff (cutoff <= 0).
// Edge case: an empty set yields an empty (non-nil) outer slice.
//
// Complexity: O(N²·d).
func NearestWithin(pts *pointset.PointSet, cutoff float64) ([][]int, error) {
	if pts == nil {
		return nil, ErrNilPointSet
	}
	if cutoff <= 0 {
		return nil, ErrBadCutoff
	}
	if pts.Len() == 0 {
		return [][]int{}, nil
	}

	m, err := dist.Pairwise(pts, pts, dist.DefaultOptions())
	if err != nil {
		return nil, err
	}

	out := make([][]int, pts.Len())
	for i := range out {
		row := m.RowView(i)
		hood := make([]int, 0)
		for j, d := range row {
			if d > 0 && d < cutoff {
				hood = append(hood, j)
			}
		}
		out[i] = hood
	}

	return out, nil
}

// NearestK returns, for each point, the indices of its k nearest other
// points in ascending distance order, ties toward the lower index. The
// point itself is excluded by the d > SelfEps rule. When fewer than k
// candidates remain the list is simply shorter.
//
// Errors: ErrNilPointSet, ErrBadK (k < 1).
// Edge case: an empty set yields an empty (non-nil) outer slice.
//
// Complexity: O(N²·(d + log N)).
func NearestK(pts *pointset.PointSet, k int) ([][]int, error) {
	if pts == nil {
		return nil, ErrNilPointSet
	}
	if k < 1 {
		return nil, ErrBadK
	}
	if pts.Len() == 0 {
		return [][]int{}, nil
	}

	m, err := dist.Pairwise(pts, pts, dist.DefaultOptions())
	if err != nil {
		return nil, err
	}

	out := make([][]int, pts.Len())
	cand := make([]int, 0, pts.Len())
	for i := range out {
		row := m.RowView(i)

		cand = cand[:0]
		for j, d := range row {
			if d > SelfEps {
				cand = append(cand, j)
			}
		}
		// Ascending distance, then ascending index for exact ties.
		sort.Slice(cand, func(a, b int) bool {
			if row[cand[a]] != row[cand[b]] {
				return row[cand[a]] < row[cand[b]]
			}
			return cand[a] < cand[b]
		})

		take := k
		if take > len(cand) {
			take = len(cand)
		}
		hood := make([]int, take)
		copy(hood, cand[:take])
		out[i] = hood
	}

	return out, nil
}
