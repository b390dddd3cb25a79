// SPDX-License-Identifier: MIT

// Package matrix: determinant by recursive cofactor expansion.
//
// Purpose:
//   - Compute det(A) exactly the way it is taught: expand along the first row,
//     alternate signs starting at +1, recurse on (n-1)×(n-1) minors.
//   - Provide the Minor and ReplaceColumn builders that the Cramer solver needs.
//
// Known limitation:
//   - Cost is O(n!) time. There is no memoization and no elimination; a 10×10
//     input already performs ~3.6M leaf evaluations. Keep inputs small.
//
// Determinism:
//   - Minors are fresh copies (Induced), never views, so recursion shares no
//     mutable state and the input is never touched.

package matrix

import "fmt"

// Determinant returns det(m) for a square matrix.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m).
//   - Stage 2: materialize a *Dense view of the data (no copy for *Dense input).
//   - Stage 3: first-row cofactor expansion:
//     det = Σ_i sign_i · m[0,i] · det(Minor(m, 0, i)), sign_0 = +1, alternating.
//
// Behavior highlights:
//   - 1×1 returns the single element.
//   - The input is never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), wrapped with "Determinant".
//
// Complexity:
//   - Time O(n!), Space O(n²) per recursion level (O(n³) live at the deepest point).
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	d, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	det, err := cofactorDet(d)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return det, nil
}

// cofactorDet is the recursive kernel. d is square and non-empty.
func cofactorDet(d *Dense) (float64, error) {
	n := d.r
	if n == 1 {
		return d.data[0], nil
	}

	// Rows of every minor are 1..n-1; the column set changes per i.
	rowsIdx := make([]int, n-1)
	for k := range rowsIdx {
		rowsIdx[k] = k + 1
	}
	colsIdx := make([]int, n-1)

	det := ZeroSum
	sign := 1.0
	for i := 0; i < n; i++ {
		fillSkipping(colsIdx, n, i)
		minor, err := d.Induced(rowsIdx, colsIdx)
		if err != nil {
			return 0, err
		}
		sub, err := cofactorDet(minor)
		if err != nil {
			return 0, err
		}
		det += sign * sub * d.data[i]
		sign = -sign
	}

	return det, nil
}

// fillSkipping writes 0..n-1 without skip into dst (len(dst) == n-1).
func fillSkipping(dst []int, n, skip int) {
	k := 0
	for idx := 0; idx < n; idx++ {
		if idx == skip {
			continue
		}
		dst[k] = idx
		k++
	}
}

// Minor returns the (r-1)×(c-1) copy of m without the given row and column.
//
// Errors:
//   - ErrNilMatrix; ErrOutOfRange for row/col outside m;
//     ErrInvalidDimensions when m has a single row or column (nothing would remain).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Minor(m Matrix, row, col int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	r, c := m.Rows(), m.Cols()
	if row < 0 || row >= r || col < 0 || col >= c {
		return nil, matrixErrorf(opMinor, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange))
	}
	if r == 1 || c == 1 {
		return nil, matrixErrorf(opMinor, ErrInvalidDimensions)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	rowsIdx := make([]int, r-1)
	colsIdx := make([]int, c-1)
	fillSkipping(rowsIdx, r, row)
	fillSkipping(colsIdx, c, col)

	res, err := d.Induced(rowsIdx, colsIdx)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	return res, nil
}

// ReplaceColumn returns a fresh copy of m whose column col holds the values of
// the column vector v. m itself is never mutated, so callers can build one
// independent copy per column (Cramer's rule) and evaluate them in any order.
//
// Errors:
//   - ErrNilMatrix (m or v), ErrOutOfRange (col outside m),
//     ErrDimensionMismatch (v is not m.Rows()×1).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ReplaceColumn(m Matrix, col int, v Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opReplaceColumn, err)
	}
	if err := ValidateColumnVector(v, m.Rows()); err != nil {
		return nil, matrixErrorf(opReplaceColumn, err)
	}
	if col < 0 || col >= m.Cols() {
		return nil, matrixErrorf(opReplaceColumn, fmt.Errorf("column %d: %w", col, ErrOutOfRange))
	}

	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opReplaceColumn, err)
	}
	res := src.clone()

	var x float64
	for i := 0; i < res.r; i++ {
		if x, err = v.At(i, 0); err != nil {
			return nil, matrixErrorf(opReplaceColumn, err)
		}
		res.data[i*res.c+col] = x
	}

	return res, nil
}

// toDense returns m itself when it already is a *Dense, otherwise a Dense copy.
// Callers must treat the result as read-only unless they clone it.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			d.data[i*cols+j] = v
		}
	}

	return d, nil
}
