package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/fluidcss/internal/domain/contrast"
)

func newContrastCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "contrast <background> <foreground>",
		Short:   "Show the WCAG contrast ratio of two colors",
		Example: `  fluidcss contrast "#FFFFFF" "#767676"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bg, fg, err := parsePair(args[0], args[1])
			if err != nil {
				return newCommandError("measure contrast", fmt.Sprintf("%s on %s", args[1], args[0]), err,
					"Use 3 or 6 digit hex colors such as #FFF or #336699")
			}

			out := cmd.OutOrStdout()
			if isTerminal(out) {
				fmt.Fprintln(out, swatch(bg, fg))
			}
			renderCompliance(out, bg, fg, contrast.EvaluatePair(bg, fg))
			return nil
		},
	}
}

func parsePair(background, foreground string) (contrast.ColorSample, contrast.ColorSample, error) {
	bg, err := contrast.ParseColor(background)
	if err != nil {
		return contrast.ColorSample{}, contrast.ColorSample{}, fmt.Errorf("background: %w", err)
	}
	fg, err := contrast.ParseColor(foreground)
	if err != nil {
		return contrast.ColorSample{}, contrast.ColorSample{}, fmt.Errorf("foreground: %w", err)
	}
	return bg, fg, nil
}

func renderCompliance(out io.Writer, bg, fg contrast.ColorSample, c contrast.Compliance) {
	fmt.Fprintf(out, "%s on %s\n", fg, bg)
	fmt.Fprintf(out, "Contrast ratio: %s\n\n", formatRatio(c.Ratio))

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "TEXT\tLEVEL\tAA\tAAA")
	fmt.Fprintf(writer, "normal\t%s\t%s\t%s\n", c.NormalText, formatRatio(contrast.RatioAA), formatRatio(contrast.RatioAAA))
	fmt.Fprintf(writer, "large\t%s\t%s\t%s\n", c.LargeText, formatRatio(contrast.RatioAALarge), formatRatio(contrast.RatioAAALarge))
	writer.Flush() //nolint:errcheck
}

func swatch(bg, fg contrast.ColorSample) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg.String())).
		Foreground(lipgloss.Color(fg.String())).
		Padding(0, 2).
		Render("Sample text Aa")
}

func formatRatio(ratio float64) string {
	return fmt.Sprintf("%.2f:1", ratio)
}
