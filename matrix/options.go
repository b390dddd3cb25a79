// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for rendering.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective configuration.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPrecision is the number of decimals printed per element.
	DefaultPrecision = 3

	// MaxPrecision caps WithPrecision; float64 carries ~15-17 significant digits.
	MaxPrecision = 12

	// DefaultSeparator joins the elements of one rendered row.
	DefaultSeparator = " "
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPrecisionInvalid = "matrix: WithPrecision: precision must be in [0, MaxPrecision]"
	panicSeparatorEmpty   = "matrix: WithSeparator: separator must be non-empty"
)

// Option mutates internal options. Safe to apply repeatedly (last-writer-wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	precision int    // decimals per element; DefaultPrecision
	separator string // element separator; DefaultSeparator
}

// WithPrecision sets the number of decimals used by Format.
//
// Implementation:
//   - Stage 1: validate 0 ≤ p ≤ MaxPrecision (panic otherwise).
//   - Stage 2: return a setter that writes p into Options.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithPrecision(p int) Option {
	if p < 0 || p > MaxPrecision {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = p }
}

// WithSeparator sets the string placed between elements of a row.
// Panics on an empty separator: rows would no longer be parseable by humans or tools.
func WithSeparator(sep string) Option {
	if sep == "" {
		panic(panicSeparatorEmpty)
	}

	return func(o *Options) { o.separator = sep }
}

// Precision reports the resolved decimal count.
func (o Options) Precision() int { return o.precision }

// Separator reports the resolved element separator.
func (o Options) Separator() string { return o.separator }

// NewOptions resolves opts on top of the documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
//
// Determinism:
//   - Stable for a given sequence of setters.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		precision: DefaultPrecision,
		separator: DefaultSeparator,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
