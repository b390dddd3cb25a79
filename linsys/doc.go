// Package linsys solves square linear systems A·x = B with Cramer's rule.
//
// For an n×n coefficient matrix A and an n×1 constants vector B:
//
//	D   = det(A)
//	D_i = det(A with column i replaced by B)
//	x_i = D_i / D
//
// Every D_i is computed on its own copy of A (matrix.ReplaceColumn), so the
// caller's matrix is never touched and the determinants can be evaluated
// concurrently (WithWorkers). Determinants come from matrix.Determinant, which
// is a cofactor expansion: the solver is meant for small, hand-entered systems.
//
// A singular system (D == 0, compared exactly) is reported through the ok
// result of Solve, not as an error:
//
//	roots, ok, err := linsys.Solve(A, B)
//	switch {
//	case err != nil: // shapes do not describe a square system
//	case !ok:        // no unique solution
//	default:         // roots[i] is x_i
//	}
package linsys
