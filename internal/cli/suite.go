package cli

import (
	"errors"
	"fmt"

	"github.com/DjordjeVuckovic/logicka/internal/report"
	"github.com/DjordjeVuckovic/logicka/internal/suite"
	"github.com/spf13/cobra"
)

// ErrSuiteFailed is returned when at least one suite case fails.
var ErrSuiteFailed = errors.New("suite failed")

func newSuiteCmd(a *app) *cobra.Command {
	var (
		runs   int
		warmup int
		format string
	)

	cmd := &cobra.Command{
		Use:   "suite FILE",
		Short: "Run a YAML expression suite and report results and latency.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			s, err := suite.LoadFromFile(args[0])
			if err != nil {
				return err
			}

			runner := suite.NewRunner(a.engine, suite.Config{Runs: runs, WarmupRuns: warmup})
			res, err := runner.Run(cmd.Context(), s)
			if err != nil {
				return err
			}

			r := report.FromResult(res)
			if format == FormatJSON {
				err = report.WriteJSON(r, a.out)
			} else {
				err = report.WriteTable(r, a.out)
			}
			if err != nil {
				return err
			}

			if r.Summary.Failed > 0 {
				return fmt.Errorf("%w: %d of %d cases", ErrSuiteFailed, r.Summary.Failed, r.Summary.Total)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&runs, "runs", suite.DefaultRuns, "measured runs per case")
	cmd.Flags().IntVar(&warmup, "warmup", suite.DefaultWarmupRuns, "unmeasured runs per case")
	cmd.Flags().StringVar(&format, "format", FormatText, "output format: text or json")
	return cmd
}
