package neighbor_test

import (
	"testing"

	"github.com/softmatter/ptset/neighbor"
	"github.com/softmatter/ptset/pointset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustPoints builds a PointSet or fails the test.
func mustPoints(t *testing.T, rows [][]float64) *pointset.PointSet {
	t.Helper()
	p, err := pointset.New(rows)
	require.NoError(t, err)

	return p
}

// TestMatchPoints_SelfIdentity verifies that matching a distinct point
// set against itself returns the identity permutation.
func TestMatchPoints_SelfIdentity(t *testing.T) {
	a := mustPoints(t, [][]float64{{0, 0}, {5, 5}, {-3, 1}, {2, 8}})

	inds, err := neighbor.MatchPoints(a, a)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, inds)
}

// TestMatchPoints_Nearest verifies assignment against a separate
// reference set.
func TestMatchPoints_Nearest(t *testing.T) {
	pts := mustPoints(t, [][]float64{{0.1, 0}, {9.8, 0}})
	nbrs := mustPoints(t, [][]float64{{0, 0}, {5, 0}, {10, 0}})

	inds, err := neighbor.MatchPoints(pts, nbrs)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, inds)
}

// TestMatchPoints_TieLowestIndex verifies equidistant references break
// toward the lowest index.
func TestMatchPoints_TieLowestIndex(t *testing.T) {
	pts := mustPoints(t, [][]float64{{0, 0}})
	nbrs := mustPoints(t, [][]float64{{1, 0}, {-1, 0}, {0, 1}})

	inds, err := neighbor.MatchPoints(pts, nbrs)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, inds, "all three references are at distance 1")
}

// TestMatchPoints_EmptyAndErrors covers the empty-result policy and the
// sentinel error paths.
func TestMatchPoints_EmptyAndErrors(t *testing.T) {
	a := mustPoints(t, [][]float64{{1, 2}})
	threeD := mustPoints(t, [][]float64{{1, 2, 3}})
	empty, err := pointset.NewEmpty(2)
	require.NoError(t, err)

	inds, err := neighbor.MatchPoints(empty, a)
	require.NoError(t, err)
	assert.Empty(t, inds)

	inds, err = neighbor.MatchPoints(a, empty)
	require.NoError(t, err)
	assert.Empty(t, inds)

	_, err = neighbor.MatchPoints(a, threeD)
	assert.ErrorIs(t, err, pointset.ErrDimensionMismatch)

	_, err = neighbor.MatchPoints(nil, a)
	assert.ErrorIs(t, err, neighbor.ErrNilPointSet)
}

// TestMatchValues verifies the 1D nearest-value analogue and its tie rule.
func TestMatchValues(t *testing.T) {
	vals := []float64{0.4, 2.6, 10}
	arr := []float64{0, 1, 2, 3}

	assert.Equal(t, []int{0, 3, 3}, neighbor.MatchValues(vals, arr))

	// 0.5 is equidistant from 0 and 1: lowest index wins.
	assert.Equal(t, []int{0}, neighbor.MatchValues([]float64{0.5}, arr))

	assert.Empty(t, neighbor.MatchValues(nil, arr))
	assert.Empty(t, neighbor.MatchValues(vals, nil))
}

// TestClosestPoint verifies single-query matching and its errors.
func TestClosestPoint(t *testing.T) {
	pts := mustPoints(t, [][]float64{{0, 0}, {1, 0}, {2, 0}})

	ind, err := neighbor.ClosestPoint([]float64{1.2, 0.1}, pts)
	require.NoError(t, err)
	assert.Equal(t, 1, ind)

	empty, err := pointset.NewEmpty(2)
	require.NoError(t, err)
	_, err = neighbor.ClosestPoint([]float64{0, 0}, empty)
	assert.ErrorIs(t, err, neighbor.ErrEmptyPointSet)

	_, err = neighbor.ClosestPoint([]float64{0, 0, 0}, pts)
	assert.ErrorIs(t, err, pointset.ErrDimensionMismatch)
}
