package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/fluidcss/internal/domain/contrast"
)

func newSolveCmd() *cobra.Command {
	var target float64

	cmd := &cobra.Command{
		Use:     "solve <background> <foreground>",
		Short:   "Suggest the nearest foreground that meets a contrast target",
		Example: `  fluidcss solve "#FFFFFF" "#CCCCCC" --target 4.5`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := contrast.NewQuery(args[0], args[1], target)
			if err != nil {
				return newCommandError("solve contrast", fmt.Sprintf("%s on %s", args[1], args[0]), err,
					"Use 3 or 6 digit hex colors such as #FFF or #336699")
			}
			result, err := contrast.Solve(query)
			if err != nil {
				return newCommandError("solve contrast", fmt.Sprintf("target %g", target), err,
					fmt.Sprintf("Pick a target between %g and %g", contrast.MinRatio, contrast.MaxRatio))
			}

			renderSolution(cmd.OutOrStdout(), query, result)
			return nil
		},
	}

	cmd.Flags().Float64Var(&target, "target", contrast.RatioAA, "Contrast ratio to reach (4.5 for AA, 7 for AAA)")

	return cmd
}

func renderSolution(out io.Writer, q contrast.ComplianceQuery, r contrast.ComplianceResult) {
	before := contrast.ContrastRatio(q.Background, q.Foreground)
	fmt.Fprintf(out, "Background: %s\n", q.Background)
	fmt.Fprintf(out, "Foreground: %s (%s)\n", q.Foreground, formatRatio(before))

	switch {
	case r.MetTarget && r.Steps == 0:
		fmt.Fprintf(out, "Already meets %s\n", formatRatio(q.TargetRatio))
		return
	case r.MetTarget:
		fmt.Fprintf(out, "Suggested:  %s (%s) after %d steps\n", r.AchievedColor, formatRatio(r.AchievedRatio), r.Steps)
	default:
		fmt.Fprintf(out, "Closest:    %s (%s) after %d steps\n", r.AchievedColor, formatRatio(r.AchievedRatio), r.Steps)
		if r.Saturated {
			fmt.Fprintf(out, "Target %s is out of reach: the foreground saturated before meeting it. Adjust the background instead.\n", formatRatio(q.TargetRatio))
		} else {
			fmt.Fprintf(out, "Target %s not reached within the search limit.\n", formatRatio(q.TargetRatio))
		}
	}
	fmt.Fprintf(out, "Color shift: ΔE %.1f\n", contrast.Distance(q.Foreground, r.AchievedColor))
}
