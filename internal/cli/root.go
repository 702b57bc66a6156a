package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/DjordjeVuckovic/logicka/internal/engine"
	"github.com/DjordjeVuckovic/logicka/internal/truthtable"
	"github.com/DjordjeVuckovic/logicka/pkg/config/env"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// app carries state shared by every subcommand. The engine is built in the
// root PersistentPreRunE once flags are parsed.
type app struct {
	out       io.Writer
	engine    *engine.Engine
	highlight bool

	maxFree  int
	logLevel string
}

// NewRootCmd builds the command tree writing results to out.
func NewRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:           "logicka",
		Short:         "Propositional logic toolbox.",
		Long:          "Inspect propositional expressions: list variables, print truth tables, simplify and classify them.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}
	root.SetOut(out)

	root.PersistentFlags().IntVar(&a.maxFree, "max-free", truthtable.DefaultMaxFreeVariables,
		fmt.Sprintf("maximum number of enumerated variables (1..%d)", truthtable.MaxFreeVariablesCeiling))
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	root.AddCommand(
		newVarsCmd(a),
		newTableCmd(a),
		newSimplifyCmd(a),
		newClassifyCmd(a),
		newSuiteCmd(a),
	)
	return root
}

// Execute runs the CLI against os.Args and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func (a *app) init(cmd *cobra.Command) error {
	level, err := env.ParseLogLevel(a.logLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if a.maxFree < 1 || a.maxFree > truthtable.MaxFreeVariablesCeiling {
		return fmt.Errorf("--max-free must be between 1 and %d", truthtable.MaxFreeVariablesCeiling)
	}

	a.engine = engine.New(
		engine.WithMaxFreeVariables(a.maxFree),
		engine.WithLogger(logger),
	)
	a.highlight = isTerminal(a.out)
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func validateFormat(format string) error {
	switch format {
	case FormatText, FormatJSON:
		return nil
	default:
		return fmt.Errorf("unknown format %q, expected %s or %s", format, FormatText, FormatJSON)
	}
}
