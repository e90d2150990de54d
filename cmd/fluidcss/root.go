package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/fluidcss/internal/logger"
)

type rootFlags struct {
	verbose   bool
	logFormat string

	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "fluidcss",
		Short:         "fluidcss generates fluid clamp() sizes and checks color contrast",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cmd.ErrOrStderr(), flags)
			if err != nil {
				return err
			}
			flags.log = log
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", string(logger.FormatConsole), "Log format: console or json")

	cmd.AddCommand(newClampCmd())
	cmd.AddCommand(newConvertCmd())
	cmd.AddCommand(newEmitCmd(flags))
	cmd.AddCommand(newVariantsCmd())
	cmd.AddCommand(newContrastCmd())
	cmd.AddCommand(newSolveCmd())
	cmd.AddCommand(newAuditCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newLogger(w io.Writer, flags *rootFlags) (*logger.Logger, error) {
	format, err := logger.ParseFormat(flags.logFormat)
	if err != nil {
		return nil, err
	}

	level := "info"
	if flags.verbose {
		level = "debug"
	}

	return logger.New(logger.Options{Level: level, Format: format, Writer: w})
}
