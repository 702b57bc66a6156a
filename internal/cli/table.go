package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/logicka/internal/report"
	"github.com/spf13/cobra"
)

func newVarsCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "vars EXPR",
		Short: "List the variables of an expression in order of first occurrence.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			vars, err := a.engine.ExtractVariables(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if format == FormatJSON {
				return report.WriteJSON(map[string][]string{"variables": vars}, a.out)
			}
			_, err = fmt.Fprintln(a.out, strings.Join(vars, " "))
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", FormatText, "output format: text or json")
	return cmd
}

func newTableCmd(a *app) *cobra.Command {
	var (
		fix    []string
		only   string
		format string
	)

	cmd := &cobra.Command{
		Use:   "table EXPR",
		Short: "Print the truth table of an expression.",
		Long: "Print the truth table of an expression. Rows enumerate the free variables in ascending " +
			"binary order with the first variable most significant. Variables pinned with --fix keep " +
			"their value in every row.",
		Example: "  logicka table 'A && B'\n  logicka table 'A || B' --fix A=true --only true",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			fixed, err := parseFixed(fix)
			if err != nil {
				return err
			}

			table, err := a.engine.Table(cmd.Context(), args[0], fixed)
			if err != nil {
				return err
			}

			rows := table.Rows
			if only != "" {
				want, err := strconv.ParseBool(only)
				if err != nil {
					return fmt.Errorf("invalid --only %q, expected true or false", only)
				}
				rows = table.Filter(want)
			}

			if format == FormatJSON {
				return report.WriteJSON(rows, a.out)
			}
			return report.WriteTruthTable(a.out, table.Variables, rows, a.highlight)
		},
	}
	cmd.Flags().StringArrayVar(&fix, "fix", nil, "pin a variable, NAME=BOOL (repeatable)")
	cmd.Flags().StringVar(&only, "only", "", "keep only rows with this result: true or false")
	cmd.Flags().StringVar(&format, "format", FormatText, "output format: text or json")
	return cmd
}
