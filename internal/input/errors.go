// SPDX-License-Identifier: MIT

package input

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrRowCount is returned when a file holds a different number of rows than required.
	ErrRowCount = errors.New("input: wrong number of rows")

	// ErrColumnCount is returned when a row holds a different number of values than required.
	ErrColumnCount = errors.New("input: wrong number of values in row")

	// ErrNotANumber is returned for a token that does not parse as a real number.
	ErrNotANumber = errors.New("input: not a number")

	// ErrNotPositive is returned for a dimension or count that is not a positive integer.
	ErrNotPositive = errors.New("input: expected a positive integer")

	// ErrChoice is returned for a menu answer outside the offered range.
	ErrChoice = errors.New("input: choice out of range")

	// ErrRange is returned by NewRandom when min > max.
	ErrRange = errors.New("input: random range min > max")

	// ErrSpan is returned by NewRandom when max-min does not fit an int draw.
	ErrSpan = errors.New("input: random range too wide")

	// ErrInputClosed is returned when the reader is exhausted mid-dialogue.
	// It wraps io.ErrUnexpectedEOF.
	ErrInputClosed = fmt.Errorf("input: reader closed: %w", io.ErrUnexpectedEOF)
)
