package series

import "sort"

// ArgmaxN returns the indices of the n largest values of x, in
// descending value order with ties toward the lower index. n greater
// than len(x) is clamped; n < 1 yields an empty slice.
//
// Complexity: O(N log N).
func ArgmaxN(x []float64, n int) []int {
	if n < 1 || len(x) == 0 {
		return []int{}
	}
	if n > len(x) {
		n = len(x)
	}

	inds := make([]int, len(x))
	for i := range inds {
		inds[i] = i
	}
	sort.Slice(inds, func(a, b int) bool {
		if x[inds[a]] != x[inds[b]] {
			return x[inds[a]] > x[inds[b]]
		}
		return inds[a] < inds[b]
	})

	return inds[:n]
}

// FirstTrue returns, for each row, the index of its first nonzero
// element, or −1 when the whole row is zero.
//
// Complexity: O(R·N).
func FirstTrue(rows [][]float64) []int {
	out := make([]int, len(rows))
	for i, row := range rows {
		out[i] = -1
		for j, v := range row {
			if v != 0 {
				out[i] = j
				break
			}
		}
	}

	return out
}

// Consecutive splits x into maximal runs in which each element exceeds
// its predecessor by exactly step. The comparison is exact, matching
// integer-valued series like frame indices; callers with noisy floats
// should quantize first.
//
// Complexity: O(N).
func Consecutive(x []float64, step float64) [][]float64 {
	if len(x) == 0 {
		return [][]float64{}
	}

	runs := make([][]float64, 0)
	start := 0
	for i := 1; i < len(x); i++ {
		if x[i]-x[i-1] != step {
			runs = append(runs, clone(x[start:i]))
			start = i
		}
	}
	runs = append(runs, clone(x[start:]))

	return runs
}

// SortByFirst sorts key ascending and applies the identical permutation
// to every slice in others; the sort is stable so equal keys keep their
// input order. Inputs are untouched; sorted copies are returned.
//
// Errors: ErrLengthMismatch when any other slice differs in length
// from key.
//
// Complexity: O(N log N + K·N).
func SortByFirst(key []float64, others [][]float64) ([]float64, [][]float64, error) {
	for _, o := range others {
		if len(o) != len(key) {
			return nil, nil, ErrLengthMismatch
		}
	}

	perm := make([]int, len(key))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		return key[perm[a]] < key[perm[b]]
	})

	sortedKey := make([]float64, len(key))
	for i, p := range perm {
		sortedKey[i] = key[p]
	}

	sortedOthers := make([][]float64, len(others))
	for k, o := range others {
		s := make([]float64, len(o))
		for i, p := range perm {
			s[i] = o[p]
		}
		sortedOthers[k] = s
	}

	return sortedKey, sortedOthers, nil
}

// clone copies a float64 slice.
func clone(xs []float64) []float64 {
	cp := make([]float64, len(xs))
	copy(cp, xs)

	return cp
}
