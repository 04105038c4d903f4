package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"promptdeck/internal/domain"
)

func newEditCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id> <text>",
		Short: "Replace the text of a prompt",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, store, err := app.establish(cmd.Context())
			if err != nil {
				return err
			}

			id := domain.PromptID(args[0])
			text := strings.Join(args[1:], " ")

			return app.dispatcher(session, store).Update(cmd.Context(), id, text)
		},
	}
}
