// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcalc/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(-1, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows(), Cols() and Shape() report the allocated dimensions.
func TestRowsCols(t *testing.T) {
	m := MustDense(t, 3, 4)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
	CompareExact(t, [][]float64{{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}, m)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrIndexOutOfBounds)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := MustDense(t, 2, 3)
	MustSet(t, m, 1, 2, 7.89)
	require.Equal(t, 7.89, MustAt(t, m, 1, 2))
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 0}, {0, 2}})
	clone := m.Clone()
	MustSet(t, clone, 0, 0, 3)

	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 3.0, MustAt(t, clone, 0, 0))
}

func TestNewDenseFromRows(t *testing.T) {
	t.Parallel()

	t.Run("copies_rows", func(t *testing.T) {
		t.Parallel()
		src := [][]float64{{1, 2, 3}, {4, 5, 6}}
		m := MustRows(t, src)
		src[0][0] = 99
		CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m)
	})
	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		_, err := matrix.NewDenseFromRows(nil)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
		_, err = matrix.NewDenseFromRows([][]float64{{}})
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	})
	t.Run("jagged", func(t *testing.T) {
		t.Parallel()
		_, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
		require.ErrorIs(t, err, matrix.ErrBadShape)
	})
}

func TestNewDenseFromSlice(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, m)

	_, err := matrix.NewDenseFromSlice(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewDenseFromSlice(0, 2, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestRowSlice(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	row, err := m.RowSlice(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, row)

	row[0] = 42
	assert.Equal(t, 3.0, MustAt(t, m, 1, 0), "RowSlice must return a copy")

	_, err = m.RowSlice(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestTransposeInPlace(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	m.TransposeInPlace()
	CompareExact(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, m)

	m.TransposeInPlace()
	CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m)
}

func TestInduced(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	sub, err := m.Induced([]int{0, 2}, []int{1, 2})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{2, 3}, {8, 9}}, sub)

	MustSet(t, sub, 0, 0, -1)
	require.Equal(t, 2.0, MustAt(t, m, 0, 1), "Induced must not share storage")

	_, err = m.Induced(nil, []int{0})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = m.Induced([]int{3}, []int{0})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Induced([]int{0}, []int{-1})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDenseString(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]float64{{1, -2.5}, {0, 3.14159}})
	assert.Equal(t, "1.000 -2.500\n0.000 3.142", m.String())
}
