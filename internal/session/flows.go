// SPDX-License-Identifier: MIT

package session

import (
	"fmt"

	"github.com/katalvlaran/matcalc/internal/logging"
	"github.com/katalvlaran/matcalc/internal/tui"
	"github.com/katalvlaran/matcalc/linsys"
	"github.com/katalvlaran/matcalc/matrix"
)

// Messages printed when a shape does not suit the operation.
const (
	MsgNeedSquareTrace = "The trace is defined only for square matrices, the two numbers must be equal"
	MsgNeedSquareDet   = "The determinant is defined only for square matrices, the two numbers must be equal"
	MsgSizeMismatch    = "The sizes do not match, enter them again"
	MsgInnerMismatch   = "The column count of the first matrix must equal the row count of the second, try again"
	MsgNoSolution      = "No unique solution!"
)

// sizeWhere asks for a size until ok accepts it, printing retry after each refusal.
func (s *Session) sizeWhere(ok func(r, c int) bool, retry string) (int, int, error) {
	for {
		r, c, err := s.p.Size()
		if err != nil {
			return 0, 0, err
		}
		if ok(r, c) {
			return r, c, nil
		}
		s.log.Warn("size rejected", logging.KeyShape, shape(r, c))
		s.p.Say("%s", retry)
	}
}

func anySize(int, int) bool { return true }

func square(r, c int) bool { return r == c }

// operand collects a rows×cols matrix and echoes it.
func (s *Session) operand(rows, cols int) (*matrix.Dense, error) {
	m, err := s.provider.Matrix(rows, cols)
	if err != nil {
		return nil, err
	}
	s.log.Debug("operand collected", logging.KeyShape, shape(rows, cols))
	s.printMatrix("Your matrix:", m)

	return m, nil
}

func (s *Session) printMatrix(title string, m matrix.Matrix) {
	s.p.Say("%s", title)
	for row := range matrix.Format(m, s.fmtOpts...) {
		s.p.Say("%s", row)
	}
}

func (s *Session) printResult(format string, args ...any) {
	s.p.Say("%s", tui.ResultStyle.Render(fmt.Sprintf(format, args...)))
}

func (s *Session) value(v float64) string {
	return matrix.FormatValue(v, s.fmtOpts...)
}

func (s *Session) trace() error {
	r, c, err := s.sizeWhere(square, MsgNeedSquareTrace)
	if err != nil {
		return err
	}
	m, err := s.operand(r, c)
	if err != nil {
		return err
	}
	tr, err := matrix.Trace(m)
	if err != nil {
		return err
	}
	s.printResult("Matrix trace: %s", s.value(tr))

	return nil
}

func (s *Session) transpose() error {
	r, c, err := s.sizeWhere(anySize, "")
	if err != nil {
		return err
	}
	m, err := s.operand(r, c)
	if err != nil {
		return err
	}
	m.TransposeInPlace()
	s.printMatrix("Transposed matrix:", m)

	return nil
}

func (s *Session) addSub(op Operation) error {
	s.p.Say("Enter 2 matrices of the same size")
	r1, c1, err := s.sizeWhere(anySize, "")
	if err != nil {
		return err
	}
	a, err := s.operand(r1, c1)
	if err != nil {
		return err
	}
	r2, c2, err := s.sizeWhere(func(r, c int) bool { return r == r1 && c == c1 }, MsgSizeMismatch)
	if err != nil {
		return err
	}
	b, err := s.operand(r2, c2)
	if err != nil {
		return err
	}

	title, kernel := "Sum:", matrix.Add
	if op == OpSub {
		title, kernel = "Difference:", matrix.Sub
	}
	res, err := kernel(a, b)
	if err != nil {
		return err
	}
	s.printMatrix(title, res)

	return nil
}

func (s *Session) mul() error {
	s.p.Say("Enter 2 matrices; the column count of the first must equal the row count of the second:")
	r1, c1, err := s.sizeWhere(anySize, "")
	if err != nil {
		return err
	}
	a, err := s.operand(r1, c1)
	if err != nil {
		return err
	}
	r2, c2, err := s.sizeWhere(func(r, _ int) bool { return r == c1 }, MsgInnerMismatch)
	if err != nil {
		return err
	}
	b, err := s.operand(r2, c2)
	if err != nil {
		return err
	}
	res, err := matrix.Mul(a, b)
	if err != nil {
		return err
	}
	s.printMatrix("Product:", res)

	return nil
}

func (s *Session) scale() error {
	r, c, err := s.sizeWhere(anySize, "")
	if err != nil {
		return err
	}
	m, err := s.operand(r, c)
	if err != nil {
		return err
	}
	alpha, err := s.p.Scalar("Enter the multiplier:")
	if err != nil {
		return err
	}
	res, err := matrix.Scale(m, alpha)
	if err != nil {
		return err
	}
	s.printMatrix("Product:", res)

	return nil
}

func (s *Session) determinant() error {
	r, c, err := s.sizeWhere(square, MsgNeedSquareDet)
	if err != nil {
		return err
	}
	m, err := s.operand(r, c)
	if err != nil {
		return err
	}
	det, err := matrix.Determinant(m)
	if err != nil {
		return err
	}
	s.printResult("Matrix determinant: %s", s.value(det))

	return nil
}

func (s *Session) solve() error {
	n, err := s.p.PositiveInt("Enter the number of equations:")
	if err != nil {
		return err
	}
	s.p.Say("Enter the coefficients of the equations (left of the equals sign):")
	a, err := s.operand(n, n)
	if err != nil {
		return err
	}
	s.p.Say("Enter the constants (right of the equals sign):")
	b, err := s.operand(n, 1)
	if err != nil {
		return err
	}

	roots, ok, err := linsys.Solve(a, b, s.solveOpts...)
	if err != nil {
		return err
	}
	if !ok {
		s.log.Info("singular system", logging.KeyShape, shape(n, n))
		s.printResult("%s", MsgNoSolution)

		return nil
	}
	for i, x := range roots {
		s.printResult("%d root - %s", i+1, s.value(x))
	}

	return nil
}

func shape(r, c int) string { return fmt.Sprintf("%dx%d", r, c) }
