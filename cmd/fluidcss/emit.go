package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/fluidcss/internal/emitter"
	"github.com/alexisbeaulieu97/fluidcss/pkg/diff"
)

type emitOptions struct {
	ConfigPath string
	Variant    string
	OutPath    string
	CheckPath  string
}

func newEmitCmd(root *rootFlags) *cobra.Command {
	opts := emitOptions{}

	cmd := &cobra.Command{
		Use:   "emit",
		Short: "Render a project's sizes as CSS, SCSS or a theme config",
		Long: `Emit renders every size of a project through one output variant.
With --check the freshly rendered text is compared against an existing file
and the command fails with a diff when the file is stale.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmit(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to project file")
	cmd.Flags().StringVar(&opts.Variant, "variant", "", "Output variant (defaults to the project's settings.variant)")
	cmd.Flags().StringVarP(&opts.OutPath, "out", "o", "", "Write output to a file instead of stdout")
	cmd.Flags().StringVar(&opts.CheckPath, "check", "", "Compare output with an existing file instead of writing")
	cmd.MarkFlagRequired("config") //nolint:errcheck
	cmd.MarkFlagsMutuallyExclusive("out", "check")

	return cmd
}

func runEmit(cmd *cobra.Command, root *rootFlags, opts emitOptions) error {
	project, err := loadProject(opts.ConfigPath)
	if err != nil {
		return err
	}

	entries, err := project.Entries()
	if err != nil {
		return newCommandError("emit", opts.ConfigPath, err, "Check the type_scale section")
	}

	variantKey := opts.Variant
	if variantKey == "" {
		variantKey = project.Settings.Variant
	}

	out, err := emitter.New(nil, root.log).Emit(emitter.Request{
		Variant:  variantKey,
		Settings: project.ScaleSettings(),
		Entries:  entries,
	})
	if err != nil {
		return newCommandError("emit", variantKey, err, "Run 'fluidcss variants' to list output variants")
	}

	if len(out.Skipped) > 0 {
		root.log.WithFields(map[string]any{"skipped": len(out.Skipped)}).Warn("some sizes were left out of the output")
	}

	switch {
	case opts.CheckPath != "":
		return checkStylesheet(cmd, opts.CheckPath, []byte(out.Text))
	case opts.OutPath != "":
		if err := os.WriteFile(opts.OutPath, []byte(out.Text), 0o644); err != nil {
			return newCommandError("write output", opts.OutPath, err, "Check that the directory exists and is writable")
		}
		root.log.WithFields(map[string]any{
			"path":     opts.OutPath,
			"variant":  out.Variant,
			"rendered": out.Rendered,
		}).Info("wrote stylesheet")
		return nil
	default:
		_, err := fmt.Fprint(cmd.OutOrStdout(), out.Text)
		return err
	}
}

func checkStylesheet(cmd *cobra.Command, path string, generated []byte) error {
	existing, err := os.ReadFile(path)
	if err != nil {
		return newCommandError("check stylesheet", path, err, "Generate it first with --out")
	}

	if bytes.Equal(existing, generated) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s is up to date\n", path)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), diff.GenerateUnifiedDiff(existing, generated, path, "generated"))
	stat := diff.Summarize(existing, generated)
	return newCommandError("check stylesheet", path,
		fmt.Errorf("stylesheet is stale: %d lines added, %d removed", stat.Added, stat.Removed),
		fmt.Sprintf("Regenerate it with 'fluidcss emit --out %s'", path))
}
