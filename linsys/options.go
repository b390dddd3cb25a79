// SPDX-License-Identifier: MIT

package linsys

// DefaultWorkers evaluates the per-unknown determinants one after another.
const DefaultWorkers = 1

const panicWorkersInvalid = "linsys: WithWorkers: workers must be >= 1"

// Option configures Solve.
type Option func(*Options)

// Options is the resolved solver configuration.
type Options struct {
	workers int // goroutines evaluating D_i; DefaultWorkers
}

// WithWorkers bounds the number of goroutines evaluating the D_i determinants.
// 1 keeps evaluation sequential. Panics on n < 1 (programmer error).
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

func gatherOptions(user ...Option) Options {
	o := Options{workers: DefaultWorkers}
	for _, set := range user {
		set(&o)
	}

	return o
}
