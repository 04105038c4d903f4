package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"promptdeck/internal/adapters/libfile"
)

func newImportCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Create prompts from a TOML library file",
		Long:  "import reads a file written by export and creates each prompt in your library. Imported prompts receive fresh creation timestamps.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompts, err := libfile.Import(args[0])
			if err != nil {
				return err
			}

			session, store, err := app.establish(cmd.Context())
			if err != nil {
				return err
			}

			dispatcher := app.dispatcher(session, store)
			for _, prompt := range prompts {
				if err := dispatcher.Create(cmd.Context(), prompt.Text); err != nil {
					return fmt.Errorf("import prompt: %w", err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "imported %d prompts\n", len(prompts))
			return nil
		},
	}
}
