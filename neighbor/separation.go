package neighbor

import (
	"math"
	"sort"

	"github.com/softmatter/ptset/dist"
	"github.com/softmatter/ptset/pointset"
)

// Separation computes, for each point, the mean distance to its nearby
// points: all neighbors strictly inside opts.Cutoff when Cutoff > 0,
// otherwise the opts.K nearest neighbors (K <= 0 means 1). The point
// itself is excluded by the d > SelfEps rule.
//
// A point with no qualifying neighbor gets NaN, so callers can tell
// "isolated" apart from "zero separation".
//
// Errors: ErrNilPointSet.
// Edge case: an empty set yields an empty (non-nil) slice.
//
// Complexity: O(N²·d) (plus O(N² log N) in k-nearest mode).
func Separation(pts *pointset.PointSet, opts SeparationOptions) ([]float64, error) {
	if pts == nil {
		return nil, ErrNilPointSet
	}
	if pts.Len() == 0 {
		return []float64{}, nil
	}

	m, err := dist.Pairwise(pts, pts, dist.DefaultOptions())
	if err != nil {
		return nil, err
	}

	k := opts.K
	if k < 1 {
		k = 1
	}

	out := make([]float64, pts.Len())
	dists := make([]float64, 0, pts.Len())
	for i := range out {
		row := m.RowView(i)

		dists = dists[:0]
		for _, d := range row {
			if opts.Cutoff > 0 {
				if d > 0 && d < opts.Cutoff {
					dists = append(dists, d)
				}
			} else if d > SelfEps {
				dists = append(dists, d)
			}
		}

		if opts.Cutoff <= 0 {
			sort.Float64s(dists)
			if len(dists) > k {
				dists = dists[:k]
			}
		}

		out[i] = mean(dists)
	}

	return out, nil
}

// mean returns the arithmetic mean, or NaN for an empty slice.
func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}

	return sum / float64(len(xs))
}
