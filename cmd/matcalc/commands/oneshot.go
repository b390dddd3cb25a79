// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matcalc/internal/input"
	"github.com/katalvlaran/matcalc/internal/logging"
	"github.com/katalvlaran/matcalc/linsys"
	"github.com/katalvlaran/matcalc/matrix"
)

// MsgNoSolution is printed by solve for a singular system.
const MsgNoSolution = "No unique solution!"

func (a *app) fmtOpts() []matrix.Option {
	return []matrix.Option{matrix.WithPrecision(a.cfg.Display.Precision)}
}

func (a *app) printMatrix(w io.Writer, m matrix.Matrix) {
	for row := range matrix.Format(m, a.fmtOpts()...) {
		fmt.Fprintln(w, row)
	}
}

func (a *app) printValue(w io.Writer, v float64) {
	fmt.Fprintln(w, matrix.FormatValue(v, a.fmtOpts()...))
}

// load reads a shape-inferred matrix from path and logs it.
func (a *app) load(path string) (*matrix.Dense, error) {
	m, err := input.LoadFile(path)
	if err != nil {
		return nil, err
	}
	a.log.Debug("matrix loaded", logging.KeySource, path, logging.KeyShape, fmt.Sprintf("%dx%d", m.Rows(), m.Cols()))

	return m, nil
}

func (a *app) newTraceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trace FILE",
		Short: "Trace of a square matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			tr, err := matrix.Trace(m)
			if err != nil {
				return err
			}
			a.printValue(cmd.OutOrStdout(), tr)

			return nil
		},
	}
}

func (a *app) newTransposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transpose FILE",
		Short: "Transpose of a matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			m.TransposeInPlace()
			a.printMatrix(cmd.OutOrStdout(), m)

			return nil
		},
	}
}

func (a *app) newBinaryCmd(name, short string, kernel func(x, y matrix.Matrix) (*matrix.Dense, error)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " FILE_A FILE_B",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.load(args[0])
			if err != nil {
				return err
			}
			y, err := a.load(args[1])
			if err != nil {
				return err
			}
			res, err := kernel(x, y)
			if err != nil {
				return err
			}
			a.printMatrix(cmd.OutOrStdout(), res)

			return nil
		},
	}
}

func (a *app) newScaleCmd() *cobra.Command {
	var by float64
	cmd := &cobra.Command{
		Use:   "scale FILE --by C",
		Short: "Matrix times a number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			res, err := matrix.Scale(m, by)
			if err != nil {
				return err
			}
			a.printMatrix(cmd.OutOrStdout(), res)

			return nil
		},
	}
	cmd.Flags().Float64Var(&by, "by", 0, "scalar multiplier")
	_ = cmd.MarkFlagRequired("by")

	return cmd
}

func (a *app) newDetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "det FILE",
		Short: "Determinant of a square matrix (cofactor expansion, keep it small)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			d, err := matrix.Determinant(m)
			if err != nil {
				return err
			}
			a.printValue(cmd.OutOrStdout(), d)

			return nil
		},
	}
}

func (a *app) newSolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve COEFFICIENTS CONSTANTS",
		Short: "Solve A·x = B with Cramer's rule (A is n×n, B is n×1)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			coef, err := a.load(args[0])
			if err != nil {
				return err
			}
			consts, err := a.load(args[1])
			if err != nil {
				return err
			}
			roots, ok, err := linsys.Solve(coef, consts, linsys.WithWorkers(a.cfg.Solver.Workers))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !ok {
				cmd.SilenceErrors = true
				fmt.Fprintln(out, MsgNoSolution)

				return linsys.ErrNoUniqueSolution
			}
			for i, x := range roots {
				fmt.Fprintf(out, "%d root - %s\n", i+1, matrix.FormatValue(x, a.fmtOpts()...))
			}

			return nil
		},
	}
}

func (a *app) newRandomCmd() *cobra.Command {
	var (
		rows, cols int
		outFile    string
	)
	cmd := &cobra.Command{
		Use:   "random --rows R --cols C [--out FILE]",
		Short: "Generate a random matrix (printed, or saved at full precision)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if rows <= 0 || cols <= 0 {
				return fmt.Errorf("--rows %d --cols %d: %w", rows, cols, input.ErrNotPositive)
			}
			r, err := a.random()
			if err != nil {
				return err
			}
			m, err := r.Matrix(rows, cols)
			if err != nil {
				return err
			}
			if outFile == "" {
				a.printMatrix(cmd.OutOrStdout(), m)
				return nil
			}
			if err = input.SaveFile(outFile, m); err != nil {
				return err
			}
			a.log.Info("matrix saved", logging.KeySource, outFile, "seed", r.Seed())

			return nil
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 0, "row count")
	cmd.Flags().IntVar(&cols, "cols", 0, "column count")
	cmd.Flags().StringVar(&outFile, "out", "", "write the matrix to this file instead of stdout")
	_ = cmd.MarkFlagRequired("rows")
	_ = cmd.MarkFlagRequired("cols")

	return cmd
}
