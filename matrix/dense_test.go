// Package matrix_test contains unit tests for Dense.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tabopt/matrix"
)

// TestNewDenseInvalidDimensions ensures NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(3, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestAtSet covers in-range access, bounds and the finite-only policy.
func TestAtSet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	require.NoError(t, m.Set(1, 2, 7.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.5, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)

	err = m.Set(0, 0, math.NaN())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Contains(t, err.Error(), "Dense.Set(0,0)")
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
}

// TestFromRows checks copying, ragged rows and non-finite cells.
func TestFromRows(t *testing.T) {
	src := [][]float64{{1, 2}, {3, 4}}
	m, err := matrix.FromRows(src)
	require.NoError(t, err)
	src[0][0] = 99
	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v, "FromRows must copy its input")
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.ToRows())

	_, err = matrix.FromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.FromRows([][]float64{{1, math.Inf(1)}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestCloneApply verifies Clone independence and Apply's numeric guard.
func TestCloneApply(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, -2}, {3, 0}})
	require.NoError(t, err)

	neg := m.Clone()
	require.NoError(t, neg.Apply(func(_, _ int, v float64) float64 { return -v }))
	require.Equal(t, [][]float64{{-1, 2}, {-3, 0}}, neg.ToRows())
	require.Equal(t, [][]float64{{1, -2}, {3, 0}}, m.ToRows())

	err = neg.Apply(func(i, j int, v float64) float64 {
		if i == 1 && j == 1 {
			return math.NaN()
		}

		return v
	})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Contains(t, err.Error(), "Dense.Apply(1,1)")
}

func TestString(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2.5}, {0, -3}})
	require.NoError(t, err)
	require.Equal(t, "[1, 2.5]\n[0, -3]\n", m.String())
}
