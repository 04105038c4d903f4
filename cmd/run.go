package cmd

import (
	"github.com/spf13/cobra"

	"promptdeck/internal/adapters/render/deck"
	"promptdeck/internal/application"
)

func runDeck(cmd *cobra.Command, app *app) error {
	ctx := cmd.Context()

	session, store, err := app.establish(ctx)
	if err != nil {
		return err
	}

	states, cancel, err := application.NewSubscriber(session, store).Open(ctx)
	if err != nil {
		return err
	}

	return deck.Run(ctx, deck.Deps{
		Session:    session,
		States:     states,
		Cancel:     cancel,
		Dispatcher: app.dispatcher(session, store),
	})
}
