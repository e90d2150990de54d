package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/fluidcss/internal/tui/preview"
)

var runPreviewProgram = func(m preview.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func newPreviewCmd(root *rootFlags) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Explore resolved sizes across viewport widths",
		Long: `Preview opens an interactive view of every size in a project resolved at a
simulated viewport width. Move the viewport with the arrow keys. When stdout
is not a terminal the sizes at the minimum viewport are printed once.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := loadProject(configPath)
			if err != nil {
				return err
			}
			entries, err := project.Entries()
			if err != nil {
				return newCommandError("preview", configPath, err, "Check the type_scale section")
			}

			m := preview.NewModel(project.Name, project.ScaleSettings(), entries)
			root.log.WithFields(map[string]any{"rows": len(m.Rows())}).Debug("starting preview")

			out := cmd.OutOrStdout()
			if !isTerminal(out) {
				fmt.Fprintln(out, m.View())
				return nil
			}
			if err := runPreviewProgram(m); err != nil {
				return newCommandError("preview", configPath, err, "Run the command in an interactive terminal")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to project file")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}
