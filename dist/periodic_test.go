package dist_test

import (
	"testing"

	"github.com/softmatter/ptset/dist"
	"github.com/softmatter/ptset/pointset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// square10 is a 10×10 axis-aligned periodic box.
var square10 = [][]float64{{10, 0}, {0, 10}}

// TestPeriodic_Wraparound verifies the canonical minimum-image case:
// two points near opposite walls are one unit apart, not nine.
func TestPeriodic_Wraparound(t *testing.T) {
	a := mustPoints(t, [][]float64{{0.5, 0.5}})
	b := mustPoints(t, [][]float64{{9.5, 0.5}})

	m, err := dist.Periodic(a, b, square10, dist.DefaultOptions())
	require.NoError(t, err)

	d, err := m.At(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, d, 1e-12, "wrap across the x wall")
}

// TestPeriodic_InteriorMatchesPairwise verifies that, far from any wall,
// periodic distances agree with plain pairwise distances.
func TestPeriodic_InteriorMatchesPairwise(t *testing.T) {
	a := mustPoints(t, [][]float64{{4, 4}, {5, 6}})
	b := mustPoints(t, [][]float64{{5, 5}, {6, 4}})

	per, err := dist.Periodic(a, b, square10, dist.DefaultOptions())
	require.NoError(t, err)
	plain, err := dist.Pairwise(a, b, dist.DefaultOptions())
	require.NoError(t, err)

	for i := 0; i < per.Rows(); i++ {
		for j := 0; j < per.Cols(); j++ {
			p, _ := per.At(i, j)
			q, _ := plain.At(i, j)
			assert.Equal(t, q, p, "interior entry (%d,%d)", i, j)
		}
	}
}

// TestPeriodic_AxisSigned verifies single-axis minimum-image results
// keep their sign and wrap correctly.
func TestPeriodic_AxisSigned(t *testing.T) {
	a := mustPoints(t, [][]float64{{0.5, 0.5}})
	b := mustPoints(t, [][]float64{{9.5, 0.5}})

	mx, err := dist.Periodic(a, b, square10, dist.Options{Axis: dist.AxisX})
	require.NoError(t, err)
	dx, _ := mx.At(0, 0)
	assert.InDelta(t, -1.0, dx, 1e-12, "wrapped displacement points backwards across the wall")

	my, err := dist.Periodic(a, b, square10, dist.Options{Axis: dist.AxisY})
	require.NoError(t, err)
	dy, _ := my.At(0, 0)
	assert.Equal(t, 0.0, dy)
}

// TestPeriodic_TiePrefersRaw verifies the documented tie rule: when a
// raw displacement and a wrapped image have equal magnitude, the raw
// (unshifted) displacement wins.
func TestPeriodic_TiePrefersRaw(t *testing.T) {
	// Box of width 2: displacement +1 ties with wrapped image −1.
	box := [][]float64{{2, 0}, {0, 2}}
	a := mustPoints(t, [][]float64{{0, 0}})
	b := mustPoints(t, [][]float64{{1, 0}})

	m, err := dist.Periodic(a, b, box, dist.Options{Axis: dist.AxisX})
	require.NoError(t, err)

	d, _ := m.At(0, 0)
	assert.Equal(t, 1.0, d, "raw candidate must win the exact tie")
}

// TestPeriodic_SquaredMatchesSquare verifies the squared option.
func TestPeriodic_SquaredMatchesSquare(t *testing.T) {
	a := mustPoints(t, [][]float64{{0.5, 0.5}})
	b := mustPoints(t, [][]float64{{9.5, 9.5}})

	plain, err := dist.Periodic(a, b, square10, dist.DefaultOptions())
	require.NoError(t, err)
	sq, err := dist.Periodic(a, b, square10, dist.Options{Axis: dist.AxisAll, Squared: true})
	require.NoError(t, err)

	p, _ := plain.At(0, 0)
	s, _ := sq.At(0, 0)
	assert.InDelta(t, p*p, s, 1e-12)
	assert.InDelta(t, 2.0, s, 1e-12, "one unit of wrap along each axis")
}

// TestPeriodic_ObliqueLattice exercises lattice vectors that are not
// axis-aligned: the shift candidates use each vector's per-axis component.
func TestPeriodic_ObliqueLattice(t *testing.T) {
	oblique := [][]float64{{10, 0}, {5, 10}}
	a := mustPoints(t, [][]float64{{0.5, 0.5}})
	b := mustPoints(t, [][]float64{{5.0, 9.5}})

	m, err := dist.Periodic(a, b, oblique, dist.DefaultOptions())
	require.NoError(t, err)

	// dy raw = 9; the second vector's y component 10 wraps it to -1.
	// dx raw = 4.5; candidates are {4.5, -5.5, 14.5, -0.5, 9.5}, so the
	// second vector's x component 5 wraps it to -0.5.
	my, err := dist.Periodic(a, b, oblique, dist.Options{Axis: dist.AxisY})
	require.NoError(t, err)
	dy, _ := my.At(0, 0)
	assert.InDelta(t, -1.0, dy, 1e-12)

	mx, err := dist.Periodic(a, b, oblique, dist.Options{Axis: dist.AxisX})
	require.NoError(t, err)
	dx, _ := mx.At(0, 0)
	assert.InDelta(t, -0.5, dx, 1e-12)

	d, _ := m.At(0, 0)
	assert.InDelta(t, 1.118033988749895, d, 1e-12, "sqrt(0.25+1)")
}

// TestPeriodic_EmptyInputs verifies shaped empty results for empty sets.
func TestPeriodic_EmptyInputs(t *testing.T) {
	empty, err := pointset.NewEmpty(2)
	require.NoError(t, err)
	b := mustPoints(t, [][]float64{{1, 1}})

	m, err := dist.Periodic(empty, b, square10, dist.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 0, m.Rows())
	assert.Equal(t, 1, m.Cols())
}

// TestPeriodic_Errors covers malformed lattices and dimensionality.
func TestPeriodic_Errors(t *testing.T) {
	a := mustPoints(t, [][]float64{{1, 1}})
	threeD := mustPoints(t, [][]float64{{1, 1, 1}})

	_, err := dist.Periodic(nil, a, square10, dist.DefaultOptions())
	assert.ErrorIs(t, err, dist.ErrNilPointSet)

	_, err = dist.Periodic(a, a, [][]float64{{10, 0}}, dist.DefaultOptions())
	assert.ErrorIs(t, err, dist.ErrInvalidLattice)

	_, err = dist.Periodic(a, a, [][]float64{{10, 0}, {0}}, dist.DefaultOptions())
	assert.ErrorIs(t, err, dist.ErrInvalidLattice)

	_, err = dist.Periodic(threeD, threeD, square10, dist.DefaultOptions())
	assert.ErrorIs(t, err, pointset.ErrDimensionMismatch)

	_, err = dist.Periodic(a, a, square10, dist.Options{Axis: dist.Axis(2)})
	assert.ErrorIs(t, err, dist.ErrBadAxis)
}
