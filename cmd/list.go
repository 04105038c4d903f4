package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"promptdeck/internal/application"
)

func newListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the current prompts, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, store, err := app.establish(cmd.Context())
			if err != nil {
				return err
			}

			prompts, err := application.NewSubscriber(session, store).Snapshot(cmd.Context())
			if err != nil {
				return err
			}

			if len(prompts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no prompts")
				return nil
			}

			for _, prompt := range prompts {
				stamp := "syncing..."
				if !prompt.CreatedAt.IsZero() {
					stamp = prompt.CreatedAt.Local().Format("2006-01-02 15:04")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", prompt.ID, stamp, summaryLine(prompt.Text))
			}

			return nil
		},
	}
}

func summaryLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[:i]
	}
	return text
}
