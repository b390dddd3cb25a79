// SPDX-License-Identifier: MIT

package input_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcalc/internal/input"
	"github.com/katalvlaran/matcalc/matrix"
)

func writeMatrixFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "m.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func rowsOf(t *testing.T, m matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}

func TestConsole_RereadsBadRows(t *testing.T) {
	t.Parallel()

	p, out := scripted("1 2", "1 2 3", "4 five 6", "4 5 6")
	m, err := input.NewConsole(p).Matrix(2, 3)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, rowsOf(t, m))

	s := out.String()
	assert.Contains(t, s, "The row must contain 3 numbers.")
	assert.Contains(t, s, `"five"`)
}

func TestConsole_Closed(t *testing.T) {
	t.Parallel()

	p, _ := scripted("1 2")
	_, err := input.NewConsole(p).Matrix(2, 2)
	require.ErrorIs(t, err, input.ErrInputClosed)
}

func TestRandom_DeterministicAndInRange(t *testing.T) {
	t.Parallel()

	a, err := input.NewRandom(42, -20, 20)
	require.NoError(t, err)
	b, err := input.NewRandom(42, -20, 20)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), a.Seed())

	ma, err := a.Matrix(5, 4)
	require.NoError(t, err)
	mb, err := b.Matrix(5, 4)
	require.NoError(t, err)
	eq, err := matrix.Equal(ma, mb)
	require.NoError(t, err)
	assert.True(t, eq, "same seed, same matrix")

	for i := 0; i < 10_000; i++ {
		v := a.Value()
		require.GreaterOrEqual(t, v, -20.0)
		require.Less(t, v, 21.0)
	}
}

func TestRandom_SinglePoint(t *testing.T) {
	t.Parallel()

	r, err := input.NewRandom(7, 3, 3)
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		v := r.Value()
		require.GreaterOrEqual(t, v, 3.0)
		require.Less(t, v, 4.0)
	}
}

func TestRandom_Errors(t *testing.T) {
	t.Parallel()

	_, err := input.NewRandom(1, 5, 4)
	require.ErrorIs(t, err, input.ErrRange)

	r, err := input.NewRandom(0, 0, 1)
	require.NoError(t, err)
	assert.NotZero(t, r.Seed(), "zero seed is replaced")

	_, err = r.Matrix(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestRandom_WideRanges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		min, max int
		wantErr  error
	}{
		{"full_positive_half", 0, math.MaxInt, input.ErrSpan},
		{"whole_int_range", math.MinInt, math.MaxInt, input.ErrSpan},
		{"one_below_limit", -1, math.MaxInt - 1, input.ErrSpan},
		{"widest_allowed", 1, math.MaxInt, nil},
		{"negative_widest_allowed", math.MinInt, -2, nil},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r, err := input.NewRandom(3, tc.min, tc.max)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			var m *matrix.Dense
			require.NotPanics(t, func() { m, err = r.Matrix(2, 2) })
			require.NoError(t, err)
			v, err := m.At(0, 0)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, v, float64(tc.min))
		})
	}
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		rows    int
		cols    int
		want    [][]float64
		err     error
	}{
		{"ok", "1 2\n3 4\n", 2, 2, [][]float64{{1, 2}, {3, 4}}, nil},
		{"blank_lines_and_tabs", "\n1\t2\n\n3   4", 2, 2, [][]float64{{1, 2}, {3, 4}}, nil},
		{"short_file", "1 2\n", 2, 2, nil, input.ErrRowCount},
		{"long_file", "1\n2\n3\n", 2, 1, nil, input.ErrRowCount},
		{"wide_row", "1 2\n3 4 5\n", 2, 2, nil, input.ErrColumnCount},
		{"bad_token", "1 2\n3 q\n", 2, 2, nil, input.ErrNotANumber},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := input.ReadFile(writeMatrixFile(t, tc.content), tc.rows, tc.cols)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, rowsOf(t, m))
		})
	}
}

func TestReadFile_ReportsLine(t *testing.T) {
	t.Parallel()

	_, err := input.ReadFile(writeMatrixFile(t, "1 2\n\n3\n"), 2, 2)
	require.ErrorIs(t, err, input.ErrColumnCount)
	assert.Contains(t, err.Error(), ":3:")

	_, err = input.ReadFile(filepath.Join(t.TempDir(), "none"), 1, 1)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	m, err := input.LoadFile(writeMatrixFile(t, "1 2 3\n4 5 6\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, rowsOf(t, m))

	_, err = input.LoadFile(writeMatrixFile(t, "\n\n"))
	require.ErrorIs(t, err, input.ErrRowCount)

	_, err = input.LoadFile(writeMatrixFile(t, "1 2\n3\n"))
	require.ErrorIs(t, err, input.ErrColumnCount)
}

func TestSaveFile_LoadsBackExactly(t *testing.T) {
	t.Parallel()

	r, err := input.NewRandom(99, -20, 20)
	require.NoError(t, err)
	m, err := r.Matrix(3, 2)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, input.SaveFile(path, m))

	back, err := input.LoadFile(path)
	require.NoError(t, err)
	eq, err := matrix.Equal(m, back)
	require.NoError(t, err)
	assert.True(t, eq)

	var buf bytes.Buffer
	require.Error(t, input.WriteMatrix(&buf, nil))
}

func TestFileSource_AsksAgainOnBadFile(t *testing.T) {
	t.Parallel()

	bad := writeMatrixFile(t, "1 2 3\n")
	good := writeMatrixFile(t, "1 2\n3 4\n")

	p, out := scripted(bad, good)
	m, err := input.NewFileSource(p).Matrix(2, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, rowsOf(t, m))
	assert.Contains(t, out.String(), "Try another file:")
}

type fixedChooser int

func (c fixedChooser) Choose(string, []string) (int, error) { return int(c), nil }

func TestProvider(t *testing.T) {
	t.Parallel()

	r, err := input.NewRandom(5, 0, 0)
	require.NoError(t, err)

	t.Run("console_via_prompter", func(t *testing.T) {
		t.Parallel()
		p, out := scripted("1", "7 8")
		m, err := input.NewProvider(p, r, nil).Matrix(1, 2)
		require.NoError(t, err)
		assert.Equal(t, [][]float64{{7, 8}}, rowsOf(t, m))
		assert.True(t, strings.HasPrefix(out.String(), input.SourceTitle))
	})
	t.Run("random_via_chooser", func(t *testing.T) {
		t.Parallel()
		rr, err := input.NewRandom(5, 0, 0)
		require.NoError(t, err)
		p, _ := scripted()
		m, err := input.NewProvider(p, rr, fixedChooser(input.SourceRandom)).Matrix(2, 2)
		require.NoError(t, err)
		for _, row := range rowsOf(t, m) {
			for _, v := range row {
				assert.GreaterOrEqual(t, v, 0.0)
				assert.Less(t, v, 1.0)
			}
		}
	})
	t.Run("unknown_choice", func(t *testing.T) {
		t.Parallel()
		p, _ := scripted()
		_, err := input.NewProvider(p, r, fixedChooser(9)).Matrix(1, 1)
		require.ErrorIs(t, err, input.ErrChoice)
	})
}
