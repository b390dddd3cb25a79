// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/constraints"
)

// MaxPrecision mirrors the renderer's upper bound on printed decimals.
const MaxPrecision = 12

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

var (
	knownLevels  = []string{"debug", "info", "warn", "error"}
	knownFormats = []string{"text", "json"}
)

// Validate checks value ranges and enumerations. Level and format are
// normalized to lower case.
func (c *Config) Validate() error {
	if !between(c.Display.Precision, 0, MaxPrecision) {
		return fmt.Errorf("display.precision %d outside [0, %d]: %w", c.Display.Precision, MaxPrecision, ErrInvalid)
	}
	if c.Random.Min > c.Random.Max {
		return fmt.Errorf("random.min %d > random.max %d: %w", c.Random.Min, c.Random.Max, ErrInvalid)
	}
	if uint64(c.Random.Max)-uint64(c.Random.Min) >= math.MaxInt {
		return fmt.Errorf("random range [%d, %d] wider than %d: %w", c.Random.Min, c.Random.Max, math.MaxInt-1, ErrInvalid)
	}
	if c.Solver.Workers < 1 {
		return fmt.Errorf("solver.workers %d < 1: %w", c.Solver.Workers, ErrInvalid)
	}

	c.Log.Level = strings.ToLower(c.Log.Level)
	if !oneOf(c.Log.Level, knownLevels) {
		return fmt.Errorf("log.level %q not in %v: %w", c.Log.Level, knownLevels, ErrInvalid)
	}
	c.Log.Format = strings.ToLower(c.Log.Format)
	if !oneOf(c.Log.Format, knownFormats) {
		return fmt.Errorf("log.format %q not in %v: %w", c.Log.Format, knownFormats, ErrInvalid)
	}

	return nil
}

func between[T constraints.Ordered](v, lo, hi T) bool {
	return v >= lo && v <= hi
}

func oneOf[T comparable](v T, set []T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}

	return false
}
