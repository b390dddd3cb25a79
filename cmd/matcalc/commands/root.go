// SPDX-License-Identifier: MIT

// Package commands holds the matcalc cobra command tree.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matcalc/internal/config"
	"github.com/katalvlaran/matcalc/internal/input"
	"github.com/katalvlaran/matcalc/internal/logging"
	"github.com/katalvlaran/matcalc/internal/session"
	"github.com/katalvlaran/matcalc/internal/tui"
	"github.com/katalvlaran/matcalc/matrix"
)

// app carries flag values and the state built from them in PersistentPreRunE.
type app struct {
	cfgFile   string
	seed      uint64
	precision int
	useTUI    bool
	logLevel  string
	logFormat string

	cfg *config.Config
	log *slog.Logger
}

// Execute runs the command tree on the process streams.
func Execute() error {
	return NewRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute()
}

// NewRootCmd builds a fresh command tree bound to the given streams.
func NewRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "matcalc",
		Short: "matcalc - interactive matrix calculator",
		Long: `matcalc computes traces, transposes, sums, differences, products,
scalar multiples and determinants of matrices, and solves square systems of
linear equations with Cramer's rule.

Without a subcommand it starts the interactive session: pick an operation from
the numbered menu, enter the operands from the console, random values or a
file, and type "end" to quit.

The subcommands run a single operation on matrices stored in text files
(one row per line, numbers separated by whitespace).`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runSession,
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	pf.Uint64Var(&a.seed, "seed", 0, "random source seed (0: seed from the clock)")
	pf.IntVar(&a.precision, "precision", config.DefaultPrecision, "decimals printed per value")
	pf.StringVar(&a.logLevel, "log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", config.DefaultLogFormat, "log format: text or json")
	root.Flags().BoolVar(&a.useTUI, "tui", false, "use the full-screen menu picker")

	root.AddCommand(
		a.newTraceCmd(),
		a.newTransposeCmd(),
		a.newBinaryCmd("add", "Sum of two matrices", matrix.Add),
		a.newBinaryCmd("sub", "Difference of two matrices", matrix.Sub),
		a.newBinaryCmd("mul", "Product of two matrices", matrix.Mul),
		a.newScaleCmd(),
		a.newDetCmd(),
		a.newSolveCmd(),
		a.newRandomCmd(),
	)

	return root
}

// setup loads the config file, lets explicitly set flags override it, and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Random.Seed = a.seed
	}
	if flags.Changed("precision") {
		cfg.Display.Precision = a.precision
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if flags.Lookup("tui") != nil && flags.Changed("tui") {
		cfg.Session.TUI = a.useTUI
	}
	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("flags: %w", err)
	}

	a.cfg = cfg
	a.log = logging.New(cfg.Log, cmd.ErrOrStderr()).With("cmd", cmd.Name())

	return nil
}

func (a *app) random() (*input.Random, error) {
	r, err := input.NewRandom(a.cfg.Random.Seed, a.cfg.Random.Min, a.cfg.Random.Max)
	if err != nil {
		return nil, err
	}
	a.log.Debug("random source ready", "seed", r.Seed())

	return r, nil
}

func (a *app) runSession(cmd *cobra.Command, _ []string) error {
	r, err := a.random()
	if err != nil {
		return err
	}
	log, id := logging.WithSession(a.log)
	log.Debug("starting session", "id", id, "tui", a.cfg.Session.TUI)

	opts := []session.Option{
		session.WithPrecision(a.cfg.Display.Precision),
		session.WithWorkers(a.cfg.Solver.Workers),
	}
	switch in := cmd.InOrStdin(); {
	case !a.cfg.Session.TUI:
	case tui.IsTerminal(in):
		opts = append(opts, session.WithChooser(tui.NewChooser(in, cmd.OutOrStdout())))
	default:
		log.Warn("stdin is not a terminal, using the line prompter instead of the picker")
	}

	p := input.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout(), log)

	return session.New(p, r, log, opts...).Run(cmd.Context())
}
