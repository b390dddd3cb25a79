// SPDX-License-Identifier: MIT

package session

import (
	"github.com/katalvlaran/matcalc/internal/input"
	"github.com/katalvlaran/matcalc/linsys"
	"github.com/katalvlaran/matcalc/matrix"
)

// Option configures a Session.
type Option func(*Options)

// Options is the resolved session configuration.
type Options struct {
	precision int
	workers   int
	chooser   input.Chooser // nil → plain-text prompter
}

// WithPrecision sets the decimals used for every printed value.
// Panics outside [0, matrix.MaxPrecision].
func WithPrecision(p int) Option {
	if p < 0 || p > matrix.MaxPrecision {
		panic("session: WithPrecision: precision out of range")
	}

	return func(o *Options) { o.precision = p }
}

// WithWorkers sets the Cramer solver concurrency. Panics on n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("session: WithWorkers: workers must be >= 1")
	}

	return func(o *Options) { o.workers = n }
}

// WithChooser replaces the plain-text menus (operation and source) with c.
func WithChooser(c input.Chooser) Option {
	return func(o *Options) { o.chooser = c }
}

func gatherOptions(user ...Option) Options {
	o := Options{precision: matrix.DefaultPrecision, workers: linsys.DefaultWorkers}
	for _, set := range user {
		set(&o)
	}

	return o
}
