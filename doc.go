// SPDX-License-Identifier: MIT

// Package matcalc is an interactive matrix calculator for small dense matrices.
//
// What it does:
//
//	Trace, transpose, sum, difference, product, scalar multiple and determinant
//	of real matrices, and Cramer's-rule solutions of square linear systems.
//	Operands come from the console, from a seeded random source or from text files.
//
// Layout:
//
//	matrix/          row-major Dense type, validators, kernels, cofactor determinant, formatting
//	linsys/          Cramer's rule solver and residual check
//	internal/input/  console, random and file sources; line prompter
//	internal/session menu loop tying the sources to the kernels
//	internal/config  TOML/YAML configuration
//	internal/logging slog factory with session ids
//	internal/tui     optional bubbletea menu picker
//	cmd/matcalc      cobra entry point: interactive session plus one-shot subcommands
//
// The determinant uses first-row cofactor expansion, O(n!) in time, so it is
// meant for the small matrices people type by hand.
package matcalc
