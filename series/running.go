package series

// RunningMean returns the mean of x over a sliding window: output
// element i is the mean of x[i : i+window], so the result has
// len(x)−window+1 elements. Implemented with a cumulative sum, one pass.
//
// Errors: ErrBadWindow when window < 1 or window > len(x).
//
// Complexity: O(N).
func RunningMean(x []float64, window int) ([]float64, error) {
	if window < 1 || window > len(x) {
		return nil, ErrBadWindow
	}

	// cumsum[i] holds the sum of x[:i].
	cumsum := make([]float64, len(x)+1)
	for i, v := range x {
		cumsum[i+1] = cumsum[i] + v
	}

	out := make([]float64, len(x)-window+1)
	for i := range out {
		out[i] = (cumsum[i+window] - cumsum[i]) / float64(window)
	}

	return out, nil
}

// RunningMeanRows applies RunningMean independently to each row.
//
// Errors: ErrBadWindow when the window does not fit any row.
//
// Complexity: O(R·N).
func RunningMeanRows(rows [][]float64, window int) ([][]float64, error) {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		avg, err := RunningMean(row, window)
		if err != nil {
			return nil, err
		}
		out[i] = avg
	}

	return out, nil
}
