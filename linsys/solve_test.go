// SPDX-License-Identifier: MIT

package linsys_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/matcalc/linsys"
	"github.com/katalvlaran/matcalc/matrix"
)

// hide masks *Dense so the generic At/Set paths are exercised.
type hide struct{ matrix.Matrix }

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

func column(t *testing.T, vals ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromSlice(len(vals), 1, vals)
	require.NoError(t, err)

	return m
}

func TestSolve_Known(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    [][]float64
		b    []float64
		want []float64
	}{
		{"diagonal", [][]float64{{2, 0}, {0, 2}}, []float64{4, 6}, []float64{2, 3}},
		{"single", [][]float64{{4}}, []float64{2}, []float64{0.5}},
		{"two_by_two", [][]float64{{1, 1}, {1, -1}}, []float64{3, 1}, []float64{2, 1}},
		{"three_by_three",
			[][]float64{{2, 1, -1}, {-3, -1, 2}, {-2, 1, 2}},
			[]float64{8, -11, -3},
			[]float64{2, 3, -1}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			roots, ok, err := linsys.Solve(mustRows(t, tc.a), column(t, tc.b...))
			require.NoError(t, err)
			require.True(t, ok)
			assert.InDeltaSlice(t, tc.want, roots, 1e-9)
		})
	}
}

func TestSolve_Singular(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    [][]float64
	}{
		{"proportional_rows", [][]float64{{1, 2}, {2, 4}}},
		{"zero_matrix", [][]float64{{0, 0}, {0, 0}}},
		{"zero_scalar", [][]float64{{0}}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			n := len(tc.a)
			roots, ok, err := linsys.Solve(mustRows(t, tc.a), column(t, make([]float64, n)...))
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Nil(t, roots)
		})
	}
}

func TestSolve_Errors(t *testing.T) {
	t.Parallel()

	sq := mustRows(t, [][]float64{{1, 0}, {0, 1}})

	_, _, err := linsys.Solve(nil, column(t, 1, 2))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, _, err = linsys.Solve(sq, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, _, err = linsys.Solve(mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}), column(t, 1, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, _, err = linsys.Solve(sq, column(t, 1, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, _, err = linsys.Solve(sq, mustRows(t, [][]float64{{1, 2}, {3, 4}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSolve_DoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{3, 2, -1}, {2, -2, 4}, {-1, 0.5, -1}})
	b := column(t, 1, -2, 0)
	aBefore, bBefore := a.Clone(), b.Clone()

	_, ok, err := linsys.Solve(a, b, linsys.WithWorkers(3))
	require.NoError(t, err)
	require.True(t, ok)

	eq, err := matrix.Equal(a, aBefore)
	require.NoError(t, err)
	assert.True(t, eq)
	eq, err = matrix.Equal(b, bBefore)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestSolve_WorkersAgree(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(7, 11))
	for n := 1; n <= 6; n++ {
		rows := make([][]float64, n)
		for i := range rows {
			rows[i] = make([]float64, n)
			for j := range rows[i] {
				rows[i][j] = rng.Float64()*20 - 10
			}
		}
		bv := make([]float64, n)
		for i := range bv {
			bv[i] = rng.Float64()*20 - 10
		}
		a, b := mustRows(t, rows), column(t, bv...)

		seq, okSeq, err := linsys.Solve(a, b)
		require.NoError(t, err)
		par, okPar, err := linsys.Solve(hide{a}, hide{b}, linsys.WithWorkers(4))
		require.NoError(t, err)
		require.Equal(t, okSeq, okPar)
		assert.Equal(t, seq, par, "n=%d", n)
	}
}

// Roots must satisfy the system and agree with an LU-based solver.
func TestSolve_AgreesWithGonum(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(2024, 1))
	for n := 1; n <= 5; n++ {
		data := make([]float64, n*n)
		for i := range data {
			data[i] = float64(rng.IntN(41) - 20)
		}
		for i := 0; i < n; i++ {
			data[i*n+i] += 50 // diagonally dominant, never singular
		}
		bv := make([]float64, n)
		for i := range bv {
			bv[i] = float64(rng.IntN(41) - 20)
		}

		a, err := matrix.NewDenseFromSlice(n, n, data)
		require.NoError(t, err)
		b := column(t, bv...)

		roots, ok, err := linsys.Solve(a, b)
		require.NoError(t, err)
		require.True(t, ok)

		var want mat.VecDense
		require.NoError(t, want.SolveVec(mat.NewDense(n, n, data), mat.NewVecDense(n, bv)))
		for i := 0; i < n; i++ {
			assert.InDelta(t, want.AtVec(i), roots[i], 1e-9, "n=%d i=%d", n, i)
		}

		res, err := linsys.Residual(a, roots, b)
		require.NoError(t, err)
		zero, err := matrix.NewZeros(n, 1)
		require.NoError(t, err)
		near, err := matrix.AllClose(res, zero, 0, 1e-9)
		require.NoError(t, err)
		assert.True(t, near, "residual n=%d", n)
	}
}

func TestResidual_Errors(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})

	_, err := linsys.Residual(nil, []float64{1, 2}, column(t, 1, 2))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = linsys.Residual(a, []float64{1}, column(t, 1, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = linsys.Residual(a, []float64{1, 2}, column(t, 1, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestWithWorkers_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { linsys.WithWorkers(0) })
	assert.NotPanics(t, func() { linsys.WithWorkers(1) })
}
