package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/fluidcss/internal/domain/fluid"
)

func newConvertCmd() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "convert <size>",
		Short: "Convert a size between px and rem (1rem = 16px)",
		Example: `  fluidcss convert 24px --to rem
  fluidcss convert 1.5rem --to px`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := runConvert(args[0], to)
			if err != nil {
				return newCommandError("convert size", args[0], err, "Pass a non-negative number such as 24px or 1.5rem")
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", string(fluid.UnitRem), "Target unit: px or rem")

	return cmd
}

func runConvert(raw, to string) (string, error) {
	unit, err := fluid.ParseUnit(to)
	if err != nil {
		return "", err
	}
	px, err := parseSize(raw)
	if err != nil {
		return "", err
	}
	return fluid.FormatValue(px, unit)
}
