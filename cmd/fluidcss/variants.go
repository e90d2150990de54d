package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/fluidcss/internal/variant"
)

func newVariantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List the available output variants",
		RunE: func(cmd *cobra.Command, args []string) error {
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "KEY\tNAME\tGROUPED BY AXIS")
			for _, desc := range variant.Default().Descriptors() {
				grouped := "no"
				if desc.GroupByAxis {
					grouped = "yes"
				}
				fmt.Fprintf(writer, "%s\t%s\t%s\n", desc.Key, desc.DisplayName, grouped)
			}
			return writer.Flush()
		},
	}
}
