// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcalc/matrix"
)

func TestValidators(t *testing.T) {
	t.Parallel()

	sq := MustDense(t, 2, 2)
	rect := MustDense(t, 2, 3)
	col := MustDense(t, 2, 1)
	var typedNil *matrix.Dense

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"notnil_ok", matrix.ValidateNotNil(sq), nil},
		{"notnil_nil", matrix.ValidateNotNil(nil), matrix.ErrNilMatrix},
		{"notnil_typed_nil", matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix},
		{"same_shape_ok", matrix.ValidateSameShape(sq, hide{sq}), nil},
		{"same_shape_rows", matrix.ValidateSameShape(sq, MustDense(t, 3, 2)), matrix.ErrDimensionMismatch},
		{"same_shape_cols", matrix.ValidateSameShape(sq, rect), matrix.ErrDimensionMismatch},
		{"square_ok", matrix.ValidateSquare(sq), nil},
		{"square_bad", matrix.ValidateSquare(rect), matrix.ErrDimensionMismatch},
		{"binary_nil_left", matrix.ValidateBinarySameShape(nil, sq), matrix.ErrNilMatrix},
		{"binary_nil_right", matrix.ValidateBinarySameShape(sq, nil), matrix.ErrNilMatrix},
		{"binary_mismatch", matrix.ValidateBinarySameShape(sq, rect), matrix.ErrDimensionMismatch},
		{"square_nonnil_nil", matrix.ValidateSquareNonNil(nil), matrix.ErrNilMatrix},
		{"square_nonnil_rect", matrix.ValidateSquareNonNil(rect), matrix.ErrDimensionMismatch},
		{"mul_ok", matrix.ValidateMulCompatible(sq, rect), nil},
		{"mul_bad", matrix.ValidateMulCompatible(rect, sq), matrix.ErrDimensionMismatch},
		{"mul_nil", matrix.ValidateMulCompatible(sq, nil), matrix.ErrNilMatrix},
		{"column_ok", matrix.ValidateColumnVector(col, 2), nil},
		{"column_len", matrix.ValidateColumnVector(col, 3), matrix.ErrDimensionMismatch},
		{"column_wide", matrix.ValidateColumnVector(sq, 2), matrix.ErrDimensionMismatch},
		{"column_nil", matrix.ValidateColumnVector(nil, 2), matrix.ErrNilMatrix},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.want == nil {
				require.NoError(t, tc.err)
				return
			}
			require.ErrorIs(t, tc.err, tc.want)
		})
	}
}

// Nil is reported before shape: nil -> shape -> index.
func TestValidators_ErrorPriority(t *testing.T) {
	t.Parallel()

	_, err := matrix.Add(nil, MustDense(t, 1, 7))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.NotErrorIs(t, err, matrix.ErrDimensionMismatch)
}
