package main

import (
	"github.com/spf13/cobra"

	"github.com/linebox-dev/linebox/internal/logger"
)

type rootFlags struct {
	verbose bool
	log     *logger.Logger
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{log: log}

	cmd := &cobra.Command{
		Use:           "linebox",
		Short:         "Linebox renders themed terminal components on a vertical rhythm",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation opens the component gallery.
			if len(args) == 0 {
				return runDemo(demoOptions{ThemePath: "", Log: flags.logger()})
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// logger rebuilds the logger at debug level when --verbose is set.
func (f *rootFlags) logger() *logger.Logger {
	if !f.verbose {
		return f.log
	}
	log, err := logger.New(logger.Options{Level: "debug", HumanReadable: true})
	if err != nil {
		return f.log
	}
	return log
}
