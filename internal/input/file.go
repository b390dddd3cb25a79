// SPDX-License-Identifier: MIT

package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/matcalc/matrix"
)

// ReadFile reads a rows×cols matrix from path.
// Blank lines are ignored; every other line is one row.
//
// Errors:
//   - ErrRowCount when the file holds a different number of rows.
//   - ErrColumnCount, ErrNotANumber for a malformed row (with its line number).
//   - os errors from opening the file.
func ReadFile(path string, rows, cols int) (*matrix.Dense, error) {
	data, err := readRows(path)
	if err != nil {
		return nil, err
	}
	if len(data) != rows {
		return nil, fmt.Errorf("%s: %d rows, want %d: %w", path, len(data), rows, ErrRowCount)
	}

	out := make([][]float64, rows)
	for i, r := range data {
		if len(r.fields) != cols {
			return nil, fmt.Errorf("%s:%d: %d values, want %d: %w", path, r.line, len(r.fields), cols, ErrColumnCount)
		}
		if out[i], err = parseFields(r.fields); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, r.line, err)
		}
	}

	return matrix.NewDenseFromRows(out)
}

// LoadFile reads a matrix whose shape is taken from the file itself: the row
// count is the number of non-blank lines, the width comes from the first one.
func LoadFile(path string) (*matrix.Dense, error) {
	data, err := readRows(path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%s: no rows: %w", path, ErrRowCount)
	}

	return ReadFile(path, len(data), len(data[0].fields))
}

// WriteMatrix writes m one row per line with the shortest representation that
// reads back to the same float64, so files written here load back exactly.
func WriteMatrix(w io.Writer, m matrix.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	var sb strings.Builder
	for i := 0; i < m.Rows(); i++ {
		sb.Reset()
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		sb.WriteByte('\n')
		if _, err := bw.WriteString(sb.String()); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// SaveFile writes m to path with WriteMatrix, replacing any existing file.
func SaveFile(path string, m matrix.Matrix) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = WriteMatrix(f, m); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	return f.Close()
}

type rawRow struct {
	line   int
	fields []string
}

func readRows(path string) ([]rawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows []rawRow
	sc := bufio.NewScanner(f)
	for n := 1; sc.Scan(); n++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		rows = append(rows, rawRow{line: n, fields: fields})
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return rows, nil
}

// FileSource asks for a file name and reads the matrix from it; a file of the
// wrong shape or with bad tokens is reported and another name is requested.
type FileSource struct {
	p *Prompter
}

// NewFileSource returns a file source bound to p.
func NewFileSource(p *Prompter) *FileSource { return &FileSource{p: p} }

// Matrix implements Source.
func (s *FileSource) Matrix(rows, cols int) (*matrix.Dense, error) {
	prompt := "Enter the file name:"
	for {
		name, err := s.p.FileName(prompt)
		if err != nil {
			return nil, err
		}
		m, err := ReadFile(name, rows, cols)
		if err == nil {
			return m, nil
		}
		s.p.log.Warn("file rejected", "file", name, "err", err)
		s.p.Say("Could not read the matrix from the file: %v", err)
		prompt = "Try another file:"
	}
}
