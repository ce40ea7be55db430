package series

import (
	"math"
	"sort"
)

// FindPeaks returns the indices of strict local maxima of y: positions
// i with y[i−1] < y[i] and y[i] > y[i+1]. Endpoints can never qualify.
// Selection then follows opts: a height threshold relative to the
// global maximum, and an optional keep-the-n-highest cut that switches
// the output to descending height order (see PeakOptions).
//
// Inputs shorter than three elements have no interior and yield an
// empty slice.
//
// Complexity: O(N) plus O(P log P) when MaxPeaks applies.
func FindPeaks(y []float64, opts PeakOptions) []int {
	inds := make([]int, 0)
	for i := 1; i+1 < len(y); i++ {
		if y[i-1] < y[i] && y[i] > y[i+1] {
			inds = append(inds, i)
		}
	}

	if opts.Threshold > 0 && len(inds) > 0 {
		floor := opts.Threshold * maxOf(y)
		kept := inds[:0]
		for _, i := range inds {
			if y[i] > floor {
				kept = append(kept, i)
			}
		}
		inds = kept
	}

	if opts.MaxPeaks > 0 && len(inds) > opts.MaxPeaks {
		// Descending height, ties toward the lower index.
		sort.Slice(inds, func(a, b int) bool {
			if y[inds[a]] != y[inds[b]] {
				return y[inds[a]] > y[inds[b]]
			}
			return inds[a] < inds[b]
		})
		inds = inds[:opts.MaxPeaks]
	}

	return inds
}

// NearestPeak returns the peak of y (selected per opts) whose x value
// lies closest to target; ties break toward the peak encountered first
// in FindPeaks order.
//
// Errors: ErrLengthMismatch when len(x) != len(y), ErrNoPeaks when
// selection leaves nothing.
//
// Complexity: O(N) plus the FindPeaks selection cost.
func NearestPeak(x, y []float64, target float64, opts PeakOptions) (int, error) {
	if len(x) != len(y) {
		return 0, ErrLengthMismatch
	}

	inds := FindPeaks(y, opts)
	if len(inds) == 0 {
		return 0, ErrNoPeaks
	}

	best, bestAbs := inds[0], math.Abs(x[inds[0]]-target)
	for _, i := range inds[1:] {
		if abs := math.Abs(x[i] - target); abs < bestAbs {
			best, bestAbs = i, abs
		}
	}

	return best, nil
}

// maxOf returns the largest element; callers guarantee non-empty input.
func maxOf(xs []float64) float64 {
	m := xs[0]
	for _, v := range xs[1:] {
		if v > m {
			m = v
		}
	}

	return m
}
