// SPDX-License-Identifier: MIT

package linsys

import "errors"

// ErrNoUniqueSolution is available to layers that must turn a singular system
// into an error value (e.g. a CLI exit status). Solve itself reports the
// condition through its ok result.
var ErrNoUniqueSolution = errors.New("linsys: system has no unique solution")

// ZeroDeterminant is the exact value that marks a coefficient matrix as singular.
// No tolerance is applied: 1e-300 is a valid, if ill-conditioned, determinant.
const ZeroDeterminant = 0.0

// Operation tags for error wrapping.
const (
	opSolve    = "Solve"
	opResidual = "Residual"
)
