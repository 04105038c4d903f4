package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"promptdeck/internal/adapters/libfile"
	"promptdeck/internal/application"
)

func newExportCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write the library to a TOML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, store, err := app.establish(cmd.Context())
			if err != nil {
				return err
			}

			prompts, err := application.NewSubscriber(session, store).Snapshot(cmd.Context())
			if err != nil {
				return err
			}

			if err := libfile.Export(args[0], prompts); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "exported %d prompts to %s\n", len(prompts), args[0])
			return nil
		},
	}
}
