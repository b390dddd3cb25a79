// SPDX-License-Identifier: MIT

// Package matrix: display rendering.
//
// Purpose:
//   - Render a matrix as plain text rows for console display.
//   - Keep rendering lazy so large outputs stream row by row.
//
// Notes:
//   - Output is for humans: fixed decimals, not round-trippable at full precision.

package matrix

import (
	"iter"
	"strconv"
	"strings"
)

// Format returns a lazy sequence of rendered rows.
// Each row holds the elements formatted with a fixed number of decimals
// (DefaultPrecision unless WithPrecision is given) joined by the separator.
//
// Behavior highlights:
//   - Rows are produced on demand; stopping the range loop stops rendering.
//   - A nil matrix yields an empty sequence.
//
// Complexity:
//   - Time O(r*c) when fully consumed, Space O(c) per yielded row.
func Format(m Matrix, opts ...Option) iter.Seq[string] {
	o := gatherOptions(opts...)

	return func(yield func(string) bool) {
		if m == nil {
			return
		}
		rows, cols := m.Rows(), m.Cols()
		for i := 0; i < rows; i++ {
			if !yield(formatRow(m, i, cols, o)) {
				return
			}
		}
	}
}

// FormatValue renders a single scalar with the resolved precision.
func FormatValue(v float64, opts ...Option) string {
	o := gatherOptions(opts...)

	return formatElem(v, o.precision)
}

// formatElem prints v with prec decimals. Values that round to zero print
// without a sign, so -0 and -0.0001 both render as "0.000".
func formatElem(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if s[0] == '-' && strings.Trim(s[1:], "0.") == "" {
		return s[1:]
	}

	return s
}

// formatRow renders row i of m. At cannot fail for in-range i/j, so errors are ignored.
func formatRow(m Matrix, i, cols int, o Options) string {
	var b strings.Builder
	// Dense fast-path: read the flat slice directly.
	if d, ok := m.(*Dense); ok {
		base := i * d.c
		for j := 0; j < cols; j++ {
			if j > 0 {
				b.WriteString(o.separator)
			}
			b.WriteString(formatElem(d.data[base+j], o.precision))
		}

		return b.String()
	}

	var v float64
	for j := 0; j < cols; j++ {
		if j > 0 {
			b.WriteString(o.separator)
		}
		v, _ = m.At(i, j)
		b.WriteString(formatElem(v, o.precision))
	}

	return b.String()
}
