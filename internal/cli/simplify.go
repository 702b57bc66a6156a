package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/DjordjeVuckovic/logicka/internal/report"
	"github.com/DjordjeVuckovic/logicka/internal/truthtable"
	"github.com/spf13/cobra"
)

func newSimplifyCmd(a *app) *cobra.Command {
	var (
		steps  bool
		format string
	)

	cmd := &cobra.Command{
		Use:   "simplify EXPR",
		Short: "Rewrite an expression with boolean algebra laws.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			res, err := a.engine.Simplify(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if format == FormatJSON {
				return report.WriteJSON(res, a.out)
			}

			if steps {
				tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
				for i, s := range res.Steps {
					fmt.Fprintf(tw, "%d.\t%s\t%s\t=>\t%s\n", i+1, s.Rule, s.Before, s.After)
				}
				if err := tw.Flush(); err != nil {
					return err
				}
			}
			_, err = fmt.Fprintln(a.out, res.Simplified)
			return err
		},
	}
	cmd.Flags().BoolVar(&steps, "steps", false, "print every rule application")
	cmd.Flags().StringVar(&format, "format", FormatText, "output format: text or json")
	return cmd
}

func newClassifyCmd(a *app) *cobra.Command {
	var (
		fix    []string
		format string
	)

	cmd := &cobra.Command{
		Use:   "classify EXPR",
		Short: "Decide whether an expression is a tautology, a contradiction or contingent.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			fixed, err := parseFixed(fix)
			if err != nil {
				return err
			}

			res, err := a.engine.Classify(cmd.Context(), args[0], fixed)
			if err != nil {
				return err
			}

			if format == FormatJSON {
				return report.WriteJSON(res, a.out)
			}

			fmt.Fprintln(a.out, res.Kind)
			if len(res.Witness) > 0 {
				fmt.Fprintf(a.out, "witness:        %s\n", fmtAssignment(res.Witness))
			}
			if len(res.Counterexample) > 0 {
				fmt.Fprintf(a.out, "counterexample: %s\n", fmtAssignment(res.Counterexample))
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&fix, "fix", nil, "pin a variable, NAME=BOOL (repeatable)")
	cmd.Flags().StringVar(&format, "format", FormatText, "output format: text or json")
	return cmd
}

func fmtAssignment(vars []truthtable.Variable) string {
	parts := make([]string, len(vars))
	for i, v := range vars {
		b := 0
		if v.Value {
			b = 1
		}
		parts[i] = fmt.Sprintf("%s=%d", v.Name, b)
	}
	return strings.Join(parts, " ")
}
