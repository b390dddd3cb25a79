// SPDX-License-Identifier: MIT

package input

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/katalvlaran/matcalc/matrix"
)

// Random fills matrices from its own generator; there is no package-level state.
// Every element is a uniform integer in [min, max] plus a uniform fraction in [0, 1),
// so values lie in [min, max+1).
type Random struct {
	rng      *rand.Rand
	seed     uint64
	min, max int
}

// NewRandom builds a generator seeded with seed; seed 0 picks one from the clock.
// The same non-zero seed always yields the same sequence of matrices.
// The span max-min must stay below math.MaxInt so the integer draw fits an int.
func NewRandom(seed uint64, min, max int) (*Random, error) {
	if min > max {
		return nil, fmt.Errorf("[%d, %d]: %w", min, max, ErrRange)
	}
	if Span(min, max) >= math.MaxInt {
		return nil, fmt.Errorf("[%d, %d]: %w", min, max, ErrSpan)
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &Random{
		rng:  rand.New(rand.NewPCG(seed, seed^0x5851f42d4c957f2d)),
		seed: seed,
		min:  min,
		max:  max,
	}, nil
}

// Span returns max-min computed without overflow; min must not exceed max.
func Span(min, max int) uint64 { return uint64(max) - uint64(min) }

// Seed reports the effective seed (useful to reproduce a run from the logs).
func (r *Random) Seed() uint64 { return r.seed }

// Value draws one element.
func (r *Random) Value() float64 {
	return float64(r.rng.IntN(int(Span(r.min, r.max))+1)+r.min) + r.rng.Float64()
}

// Matrix fills a fresh rows×cols matrix in row-major order.
func (r *Random) Matrix(rows, cols int) (*matrix.Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("input: random %dx%d: %w", rows, cols, matrix.ErrInvalidDimensions)
	}
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = r.Value()
	}

	return matrix.NewDenseFromSlice(rows, cols, data)
}
