package cmd

import (
	"github.com/spf13/cobra"

	"promptdeck/internal/domain"
)

func newRmCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a prompt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, store, err := app.establish(cmd.Context())
			if err != nil {
				return err
			}

			return app.dispatcher(session, store).Delete(cmd.Context(), domain.PromptID(args[0]))
		},
	}
}
