package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

func newAddCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text>",
		Short: "Add a prompt to the library",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, store, err := app.establish(cmd.Context())
			if err != nil {
				return err
			}

			return app.dispatcher(session, store).Create(cmd.Context(), strings.Join(args, " "))
		},
	}
}
