// SPDX-License-Identifier: MIT

package input

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseRow splits line on whitespace and parses exactly width real numbers.
//
// Errors:
//   - ErrColumnCount when the token count differs from width.
//   - ErrNotANumber naming the first token that fails to parse.
func ParseRow(line string, width int) ([]float64, error) {
	fields := strings.Fields(line)
	if len(fields) != width {
		return nil, fmt.Errorf("got %d values, want %d: %w", len(fields), width, ErrColumnCount)
	}

	return parseFields(fields)
}

func parseFields(fields []string) ([]float64, error) {
	row := make([]float64, len(fields))
	for j, tok := range fields {
		v, err := ParseReal(tok)
		if err != nil {
			return nil, err
		}
		row[j] = v
	}

	return row, nil
}

// ParseReal parses a single finite real number. A comma is accepted as the
// decimal separator ("2,5" == "2.5"); NaN and infinities are rejected.
func ParseReal(tok string) (float64, error) {
	tok = strings.TrimSpace(tok)
	v, err := strconv.ParseFloat(strings.Replace(tok, ",", ".", 1), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q: %w", tok, ErrNotANumber)
	}

	return v, nil
}

// ParsePositive parses a strictly positive integer.
func ParsePositive(tok string) (int, error) {
	tok = strings.TrimSpace(tok)
	n, err := strconv.Atoi(tok)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%q: %w", tok, ErrNotPositive)
	}

	return n, nil
}

// ParseChoice parses an integer in [1, n].
func ParseChoice(tok string, n int) (int, error) {
	tok = strings.TrimSpace(tok)
	c, err := strconv.Atoi(tok)
	if err != nil || c < 1 || c > n {
		return 0, fmt.Errorf("%q not in [1, %d]: %w", tok, n, ErrChoice)
	}

	return c, nil
}
