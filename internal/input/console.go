// SPDX-License-Identifier: MIT

package input

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matcalc/matrix"
)

// Source produces a rows×cols matrix.
type Source interface {
	Matrix(rows, cols int) (*matrix.Dense, error)
}

// Console reads a matrix row by row from the prompter.
type Console struct {
	p *Prompter
}

// NewConsole returns a console source bound to p.
func NewConsole(p *Prompter) *Console { return &Console{p: p} }

// Matrix reads rows lines of exactly cols real numbers each. A rejected row is
// reported and read again; only a closed reader ends the loop early.
func (c *Console) Matrix(rows, cols int) (*matrix.Dense, error) {
	c.p.Say("Enter %d row(s) of %d number(s) separated by spaces:", rows, cols)
	data := make([][]float64, rows)
	for i := 0; i < rows; {
		line, err := c.p.Line()
		if err != nil {
			return nil, err
		}
		row, err := ParseRow(line, cols)
		switch {
		case errors.Is(err, ErrColumnCount):
			c.p.log.Warn("console row rejected", "row", i+1, "err", err)
			c.p.Say("The row must contain %d numbers.", cols)
			continue
		case errors.Is(err, ErrNotANumber):
			c.p.log.Warn("console row rejected", "row", i+1, "err", err)
			c.p.Say("Elements must be real numbers: %v", err)
			continue
		case err != nil:
			return nil, err
		}
		data[i] = row
		i++
	}

	m, err := matrix.NewDenseFromRows(data)
	if err != nil {
		return nil, fmt.Errorf("input: console: %w", err)
	}

	return m, nil
}
