package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/overlay/internal/logger"
)

type rootFlags struct {
	logLevel string
}

func newRootCmd(app *AppContext) *cobra.Command {
	if app == nil {
		app = &AppContext{}
	}
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "overlay",
		Short:         "Overlay runs and inspects terminal disclosure widgets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flags.logLevel == "" {
				return nil
			}
			log, err := logger.New(logger.Options{
				Level:         flags.logLevel,
				HumanReadable: term.IsTerminal(int(os.Stderr.Fd())),
				Writer:        cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			app.Logger = log
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Process log level (debug, info, warn, error)")

	cmd.AddCommand(newGalleryCmd(app))
	cmd.AddCommand(newPlaceCmd())
	cmd.AddCommand(newValidateCmd(app))
	cmd.AddCommand(newSimulateCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
