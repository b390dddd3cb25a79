// Package matrix is the arithmetic engine of matcalc: a row-major Dense
// matrix of float64 values plus the classic textbook operations on it.
//
// The matrix package provides:
//
//   - Dense storage with bounds-checked At/Set (errors, never panics).
//   - Trace, Transpose (functional and in-place), Add, Sub, Mul, Scale.
//   - Determinant by recursive first-row cofactor expansion, and Minor /
//     ReplaceColumn helpers used by the Cramer solver in package linsys.
//   - Format, a lazy row-by-row rendering with fixed decimal precision.
//
// All binary kernels validate shapes first and fail with ErrDimensionMismatch
// wrapped in an operation tag; use errors.Is to match.
//
// Determinant cost grows factorially with the dimension. It is meant for the
// small matrices a person types into a console, not for numerical work.
//
// See example_test.go for usage patterns.
package matrix
