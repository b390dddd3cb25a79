// SPDX-License-Identifier: MIT

package linsys

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/matcalc/matrix"
)

// Solve applies Cramer's rule to A·x = B.
//
// Implementation:
//   - Stage 1: validate A square (n×n) and B a column vector (n×1).
//   - Stage 2: D = det(A); if D == 0 exactly, return (nil, false, nil).
//   - Stage 3: for each i, D_i = det(ReplaceColumn(A, i, B)) on a fresh copy;
//     roots[i] = D_i / D. With WithWorkers(k>1) up to k copies are evaluated
//     concurrently; each goroutine writes only its own roots[i].
//
// Behavior highlights:
//   - A and B are never mutated.
//   - Either the full root vector is returned or none at all.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, wrapped with "Solve".
//
// Complexity:
//   - Time O((n+1)·n!) determinant work, Space O(n²) per in-flight copy.
func Solve(a, b matrix.Matrix, opts ...Option) ([]float64, bool, error) {
	o := gatherOptions(opts...)

	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, false, fmt.Errorf("%s: coefficients: %w", opSolve, err)
	}
	n := a.Rows()
	if err := matrix.ValidateColumnVector(b, n); err != nil {
		return nil, false, fmt.Errorf("%s: constants: %w", opSolve, err)
	}

	d, err := matrix.Determinant(a)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", opSolve, err)
	}
	if d == ZeroDeterminant {
		return nil, false, nil
	}

	roots := make([]float64, n)
	if o.workers == 1 || n == 1 {
		for i := 0; i < n; i++ {
			if roots[i], err = unknown(a, b, i, d); err != nil {
				return nil, false, fmt.Errorf("%s: %w", opSolve, err)
			}
		}

		return roots, true, nil
	}

	if err = solveConcurrent(a, b, d, roots, o.workers); err != nil {
		return nil, false, fmt.Errorf("%s: %w", opSolve, err)
	}

	return roots, true, nil
}

// unknown computes x_i = det(A with column i := B) / d.
func unknown(a, b matrix.Matrix, i int, d float64) (float64, error) {
	ai, err := matrix.ReplaceColumn(a, i, b)
	if err != nil {
		return 0, err
	}
	di, err := matrix.Determinant(ai)
	if err != nil {
		return 0, err
	}

	return di / d, nil
}

// solveConcurrent fans the unknowns out to at most workers goroutines.
// The first error wins; later ones are dropped.
func solveConcurrent(a, b matrix.Matrix, d float64, roots []float64, workers int) error {
	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	sem := make(chan struct{}, workers)
	for i := range roots {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			x, err := unknown(a, b, i, d)
			if err != nil {
				once.Do(func() { firstErr = err })
				return
			}
			roots[i] = x
		}(i)
	}
	wg.Wait()

	return firstErr
}

// Residual returns A·x − B for the given roots, an n×1 matrix that is ~0 for
// a correct solution.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (len(roots) != A.Cols or
//     B not A.Rows×1), wrapped with "Residual".
func Residual(a matrix.Matrix, roots []float64, b matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opResidual, err)
	}
	if len(roots) != a.Cols() {
		return nil, fmt.Errorf("%s: %d roots for %d unknowns: %w", opResidual, len(roots), a.Cols(), matrix.ErrDimensionMismatch)
	}
	x, err := matrix.NewDenseFromSlice(len(roots), 1, roots)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opResidual, err)
	}
	ax, err := matrix.Mul(a, x)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opResidual, err)
	}
	res, err := matrix.Sub(ax, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opResidual, err)
	}

	return res, nil
}
