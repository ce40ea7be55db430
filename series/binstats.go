package series

import (
	"math"
	"sort"
)

// BinStats groups the rows of a rectangular table by the value in
// column bincol, merging values that agree within tol, and returns
// per-bin column statistics. Grouping is single-linkage along the
// sorted bin values: a row joins the current bin while its value stays
// within tol of the bin's first value, so tol should be small against
// the spacing of genuinely distinct levels. Bins come back ascending
// by value.
//
// Errors:
//   - ErrEmptyInput  — no rows.
//   - ErrRaggedRows  — rows of differing width.
//   - ErrBadColumn   — bincol outside [0, width).
//
// Complexity: O(N log N + N·C).
func BinStats(rows [][]float64, bincol int, tol float64) ([]Bin, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}
	width := len(rows[0])
	for _, row := range rows {
		if len(row) != width {
			return nil, ErrRaggedRows
		}
	}
	if bincol < 0 || bincol >= width {
		return nil, ErrBadColumn
	}

	// Sort row indices by bin value; stable keeps input order inside a bin.
	order := make([]int, len(rows))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return rows[order[a]][bincol] < rows[order[b]][bincol]
	})

	bins := make([]Bin, 0)
	for start := 0; start < len(order); {
		anchor := rows[order[start]][bincol]
		end := start + 1
		for end < len(order) && rows[order[end]][bincol]-anchor <= tol {
			end++
		}
		bins = append(bins, summarize(rows, order[start:end], bincol, width))
		start = end
	}

	return bins, nil
}

// summarize computes one Bin over the member row indices.
func summarize(rows [][]float64, members []int, bincol, width int) Bin {
	count := len(members)
	bin := Bin{
		Count: count,
		Mean:  make([]float64, width),
		Min:   make([]float64, width),
		Max:   make([]float64, width),
		Std:   make([]float64, width),
	}

	for c := 0; c < width; c++ {
		bin.Min[c] = math.Inf(1)
		bin.Max[c] = math.Inf(-1)
	}

	for _, i := range members {
		for c, v := range rows[i] {
			bin.Mean[c] += v
			if v < bin.Min[c] {
				bin.Min[c] = v
			}
			if v > bin.Max[c] {
				bin.Max[c] = v
			}
		}
	}
	for c := 0; c < width; c++ {
		bin.Mean[c] /= float64(count)
	}

	for _, i := range members {
		for c, v := range rows[i] {
			delta := v - bin.Mean[c]
			bin.Std[c] += delta * delta
		}
	}
	for c := 0; c < width; c++ {
		bin.Std[c] = math.Sqrt(bin.Std[c] / float64(count))
	}

	bin.Value = bin.Mean[bincol]

	return bin
}
