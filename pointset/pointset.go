package pointset

import "fmt"

// PointSet is an ordered collection of N points sharing a fixed
// dimensionality d, stored row-major in a flat slice (offset = i*d + k).
// The zero value is unusable; build one with New, NewEmpty or FromFlat.
type PointSet struct {
	data []float64 // flat backing storage, length == n*d
	n    int       // number of points
	d    int       // dimensionality, d >= 1
}

// New builds a PointSet from per-point coordinate rows.
//
// Validation:
//   - rows must be non-empty (use NewEmpty for an empty set of known d),
//   - rows[0] must have d >= 1 coordinates,
//   - every row must have exactly d coordinates, else ErrRaggedRows.
//
// The input rows are copied; the caller keeps ownership of its slices.
// Complexity: O(N·d).
func New(rows [][]float64) (*PointSet, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("pointset.New: empty input needs explicit dimensionality: %w", ErrInvalidDimensions)
	}
	d := len(rows[0])
	if d < 1 {
		return nil, ErrInvalidDimensions
	}

	data := make([]float64, 0, len(rows)*d)
	for i, row := range rows {
		if len(row) != d {
			return nil, fmt.Errorf("pointset.New: row %d has %d coordinates, want %d: %w",
				i, len(row), d, ErrRaggedRows)
		}
		data = append(data, row...)
	}

	return &PointSet{data: data, n: len(rows), d: d}, nil
}

// NewEmpty returns a PointSet with zero points and the given
// dimensionality, so that empty inputs keep a well-defined shape.
func NewEmpty(dim int) (*PointSet, error) {
	if dim < 1 {
		return nil, ErrInvalidDimensions
	}

	return &PointSet{data: nil, n: 0, d: dim}, nil
}

// FromFlat builds a PointSet from an already-flat row-major slice.
// len(data) must be a multiple of dim; the slice is copied.
// Complexity: O(N·d).
func FromFlat(data []float64, dim int) (*PointSet, error) {
	if dim < 1 {
		return nil, ErrInvalidDimensions
	}
	if len(data)%dim != 0 {
		return nil, fmt.Errorf("pointset.FromFlat: len(data)=%d not divisible by dim=%d: %w",
			len(data), dim, ErrRaggedRows)
	}

	cp := make([]float64, len(data))
	copy(cp, data)

	return &PointSet{data: cp, n: len(data) / dim, d: dim}, nil
}

// Len returns the number of points N. Complexity: O(1).
func (p *PointSet) Len() int { return p.n }

// Dim returns the shared dimensionality d. Complexity: O(1).
func (p *PointSet) Dim() int { return p.d }

// At returns coordinate k of point i, bounds-checked.
// Complexity: O(1).
func (p *PointSet) At(i, k int) (float64, error) {
	if i < 0 || i >= p.n || k < 0 || k >= p.d {
		return 0, fmt.Errorf("PointSet.At(%d,%d): %w", i, k, ErrIndexOutOfBounds)
	}

	return p.data[i*p.d+k], nil
}

// Row returns a copy of point i's coordinates.
// Complexity: O(d).
func (p *PointSet) Row(i int) ([]float64, error) {
	if i < 0 || i >= p.n {
		return nil, fmt.Errorf("PointSet.Row(%d): %w", i, ErrIndexOutOfBounds)
	}

	row := make([]float64, p.d)
	copy(row, p.data[i*p.d:(i+1)*p.d])

	return row, nil
}

// RowView returns point i's coordinates as a view into backing storage.
// The returned slice must be treated as read-only; it is the hot-path
// accessor used by the algorithm packages. Panics on an out-of-range
// index like any slice access would (programmer error, not user input).
// Complexity: O(1).
func (p *PointSet) RowView(i int) []float64 {
	return p.data[i*p.d : (i+1)*p.d]
}

// Clone returns a deep copy, independent of the original.
// Complexity: O(N·d).
func (p *PointSet) Clone() *PointSet {
	cp := make([]float64, len(p.data))
	copy(cp, p.data)

	return &PointSet{data: cp, n: p.n, d: p.d}
}

// Rows materializes the point set back into per-point slices.
// Complexity: O(N·d).
func (p *PointSet) Rows() [][]float64 {
	rows := make([][]float64, p.n)
	for i := 0; i < p.n; i++ {
		rows[i] = make([]float64, p.d)
		copy(rows[i], p.data[i*p.d:(i+1)*p.d])
	}

	return rows
}

// SameDim reports whether two point sets share dimensionality; the
// toolkit's standard precondition before any pairwise computation.
func SameDim(a, b *PointSet) error {
	if a.Dim() != b.Dim() {
		return fmt.Errorf("pointset: %d-dimensional vs %d-dimensional: %w",
			a.Dim(), b.Dim(), ErrDimensionMismatch)
	}

	return nil
}
