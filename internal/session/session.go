// SPDX-License-Identifier: MIT

package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/matcalc/internal/input"
	"github.com/katalvlaran/matcalc/internal/logging"
	"github.com/katalvlaran/matcalc/internal/tui"
	"github.com/katalvlaran/matcalc/linsys"
	"github.com/katalvlaran/matcalc/matrix"
)

// Texts printed around the menu loop.
const (
	MenuTitle   = "Choose an operation (type its number):"
	RepeatHint  = "Type end to finish or press Enter to continue."
	EndSentinel = "end"
	Farewell    = "Thank you for using matcalc!"
)

var greeting = []string{
	"Hello!",
	"This is matcalc, a matrix calculator.",
	"Keep in mind the constraints of the operations:",
	"  - trace and determinant need a square matrix;",
	"  - sum and difference need two matrices of the same size;",
	"  - a product needs the column count of the first matrix to equal the row count of the second;",
	"  - a system of n equations needs n×n coefficients and n constants.",
}

// Session is one interactive run. It is not safe for concurrent use.
type Session struct {
	p         *input.Prompter
	provider  *input.Provider
	chooser   input.Chooser
	log       *slog.Logger
	fmtOpts   []matrix.Option
	solveOpts []linsys.Option
}

// New wires a session around p. random backs the "random values" source.
// A nil logger discards records.
func New(p *input.Prompter, random *input.Random, log *slog.Logger, opts ...Option) *Session {
	o := gatherOptions(opts...)
	if log == nil {
		log = logging.Discard()
	}
	chooser := o.chooser
	if chooser == nil {
		chooser = p
	}

	return &Session{
		p:         p,
		provider:  input.NewProvider(p, random, chooser),
		chooser:   chooser,
		log:       log,
		fmtOpts:   []matrix.Option{matrix.WithPrecision(o.precision)},
		solveOpts: []linsys.Option{linsys.WithWorkers(o.workers)},
	}
}

// Run prints the greeting and loops over the menu until "end", a closed input
// or a cancelled ctx. Only unexpected failures are returned; a closed input is
// a normal end of the session.
func (s *Session) Run(ctx context.Context) error {
	for _, line := range greeting {
		s.p.Say("%s", line)
	}
	s.log.Info("session started")

	err := s.loop(ctx)
	if isClosed(err) {
		err = nil
	}
	s.p.Say("%s", tui.TitleStyle.Render(Farewell))
	s.log.Info("session finished", "err", err)

	return err
}

func (s *Session) loop(ctx context.Context) error {
	items := menuItems()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		choice, err := s.chooser.Choose(MenuTitle, items)
		if err != nil {
			return err
		}
		op := Operation(choice)
		log := s.log.With(logging.KeyOperation, op.Slug())
		log.Debug("operation selected")

		if err = s.Do(op); err != nil {
			if isClosed(err) {
				return err
			}
			log.Error("operation failed", "err", err)
			s.p.Say("%s", tui.ErrorStyle.Render("Error: "+err.Error()))
		}

		s.p.Say("\n%s", RepeatHint)
		line, err := s.p.Line()
		if err != nil {
			return err
		}
		if strings.EqualFold(strings.TrimSpace(line), EndSentinel) {
			return nil
		}
	}
}

// Do runs a single operation flow.
func (s *Session) Do(op Operation) error {
	switch op {
	case OpTrace:
		return s.trace()
	case OpTranspose:
		return s.transpose()
	case OpAdd:
		return s.addSub(op)
	case OpSub:
		return s.addSub(op)
	case OpMul:
		return s.mul()
	case OpScale:
		return s.scale()
	case OpDeterminant:
		return s.determinant()
	case OpSolve:
		return s.solve()
	default:
		return fmt.Errorf("session: operation %d: %w", op, input.ErrChoice)
	}
}

func isClosed(err error) bool {
	return errors.Is(err, input.ErrInputClosed) || errors.Is(err, tui.ErrCancelled)
}
