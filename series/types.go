package series

import "errors"

// Sentinel errors for series helpers.
var (
	// ErrBadWindow indicates a running-mean window outside [1, len(x)].
	ErrBadWindow = errors.New("series: window must be >= 1 and <= input length")

	// ErrNoPeaks indicates no local maximum survived peak selection.
	ErrNoPeaks = errors.New("series: no peaks found")

	// ErrLengthMismatch indicates parallel slices of differing length.
	ErrLengthMismatch = errors.New("series: slices have different lengths")

	// ErrRaggedRows indicates a 2D input whose rows differ in length.
	ErrRaggedRows = errors.New("series: rows have differing lengths")

	// ErrBadColumn indicates a column index outside the row width.
	ErrBadColumn = errors.New("series: column index out of range")

	// ErrEmptyInput indicates an operation that needs at least one element.
	ErrEmptyInput = errors.New("series: empty input")
)

// PeakOptions configures FindPeaks and NearestPeak.
//
// Fields:
//   - Threshold — when > 0, keep only peaks higher than
//     Threshold·max(y) (a fraction of the global maximum).
//   - MaxPeaks  — when > 0, keep only the MaxPeaks highest peaks and
//     return them in descending height order (ties toward the lower
//     index); otherwise peaks come back in ascending index order.
type PeakOptions struct {
	Threshold float64
	MaxPeaks  int
}

// DefaultPeakOptions returns the standard configuration: every strict
// local maximum, ascending index order.
func DefaultPeakOptions() PeakOptions {
	return PeakOptions{Threshold: 0, MaxPeaks: 0}
}

// Bin is one group produced by BinStats: all rows whose binning-column
// values agree within the tolerance.
type Bin struct {
	// Value is the mean of the member rows' binning-column values.
	Value float64
	// Count is the number of member rows.
	Count int
	// Mean, Min, Max and Std hold per-column statistics over the member
	// rows (Std is the population standard deviation).
	Mean, Min, Max, Std []float64
}
