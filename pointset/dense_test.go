package pointset_test

import (
	"testing"

	"github.com/softmatter/ptset/pointset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDense_Shapes verifies valid, empty and invalid shapes.
func TestNewDense_Shapes(t *testing.T) {
	m, err := pointset.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	// Zero-sized matrices are valid results for empty point sets.
	empty, err := pointset.NewDense(0, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Rows())
	assert.Equal(t, 3, empty.Cols())

	_, err = pointset.NewDense(-1, 2)
	assert.ErrorIs(t, err, pointset.ErrInvalidDimensions)
}

// TestDense_SetAt round-trips values through bounds-checked accessors.
func TestDense_SetAt(t *testing.T) {
	m, err := pointset.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 0, 3.5))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.5, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, pointset.ErrIndexOutOfBounds)
	err = m.Set(0, -1, 1)
	assert.ErrorIs(t, err, pointset.ErrIndexOutOfBounds)
}

// TestDense_Clone ensures deep-copy semantics.
func TestDense_Clone(t *testing.T) {
	m, err := pointset.NewDense(1, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 7))

	cp := m.Clone()
	require.NoError(t, cp.Set(0, 1, 8))

	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v, "clone mutation must not leak into the original")
}

// TestDense_String spot-checks the debug formatting.
func TestDense_String(t *testing.T) {
	m, err := pointset.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1))
	require.NoError(t, m.Set(1, 1, 2))

	assert.Equal(t, "[1, 0]\n[0, 2]\n", m.String())
}
