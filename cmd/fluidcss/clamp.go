package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/fluidcss/internal/domain/fluid"
)

type clampOptions struct {
	Min         string
	Max         string
	MinViewport float64
	MaxViewport float64
	Unit        string
}

func newClampCmd() *cobra.Command {
	opts := clampOptions{}

	cmd := &cobra.Command{
		Use:   "clamp",
		Short: "Print the clamp() expression for one value pair",
		Example: `  fluidcss clamp --min 16 --max 20
  fluidcss clamp --min 1rem --max 1.25rem --unit rem`,
		RunE: func(cmd *cobra.Command, args []string) error {
			css, err := runClamp(opts)
			if err != nil {
				return newCommandError("generate clamp", fmt.Sprintf("%s to %s", opts.Min, opts.Max), err,
					"Ensure --min-viewport is smaller than --max-viewport and sizes are non-negative")
			}
			fmt.Fprintln(cmd.OutOrStdout(), css)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Min, "min", "", "Size at the minimum viewport (px unless suffixed with rem)")
	cmd.Flags().StringVar(&opts.Max, "max", "", "Size at the maximum viewport (px unless suffixed with rem)")
	cmd.Flags().Float64Var(&opts.MinViewport, "min-viewport", 375, "Minimum viewport width in px")
	cmd.Flags().Float64Var(&opts.MaxViewport, "max-viewport", 1620, "Maximum viewport width in px")
	cmd.Flags().StringVar(&opts.Unit, "unit", string(fluid.UnitPx), "Output unit: px or rem")
	cmd.MarkFlagRequired("min") //nolint:errcheck
	cmd.MarkFlagRequired("max") //nolint:errcheck

	return cmd
}

func runClamp(opts clampOptions) (string, error) {
	unit, err := fluid.ParseUnit(opts.Unit)
	if err != nil {
		return "", err
	}
	minPx, err := flagSize("min", opts.Min)
	if err != nil {
		return "", err
	}
	maxPx, err := flagSize("max", opts.Max)
	if err != nil {
		return "", err
	}

	settings := fluid.ScaleSettings{
		MinAnchor: fluid.ScaleAnchor{Viewport: opts.MinViewport, Value: minPx},
		MaxAnchor: fluid.ScaleAnchor{Viewport: opts.MaxViewport, Value: maxPx},
		Unit:      unit,
	}
	return settings.Clamp()
}
