package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Use:           "pdeck",
		Short:         "Personal prompt library in the terminal",
		Long:          "pdeck keeps your reusable text prompts in a per-user remote collection. Run it bare for the interactive deck, or use the subcommands for one-shot operations and scripting.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			level := zerolog.WarnLevel
			if debug {
				level = zerolog.DebugLevel
			}
			zerolog.SetGlobalLevel(level)
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return runDeck(cmd, app)
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newListCmd(app),
		newAddCmd(app),
		newEditCmd(app),
		newRmCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newServeCmd(),
	)

	return rootCmd
}
