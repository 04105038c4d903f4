package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"promptdeck/internal/emulator"
)

const shutdownGrace = 5 * time.Second

func newServeCmd() *cobra.Command {
	var listen string
	var credentials []string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the local development server",
		Long:  "serve starts an in-memory auth and document server speaking the same wire protocol as the hosted backend. State is lost on exit. Pre-issued tokens can be registered with --credential token[=userID].",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := []emulator.Option{emulator.WithLogger(log.Logger)}
			for _, cred := range credentials {
				token, userID := splitCredential(cred)
				if token == "" {
					return fmt.Errorf("invalid credential %q", cred)
				}
				opts = append(opts, emulator.WithCredential(token, userID))
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			server := &http.Server{
				Addr:    listen,
				Handler: emulator.New(opts...).Handler(),
			}

			errCh := make(chan error, 1)
			go func() {
				log.Info().Str("addr", listen).Msg("development server listening")
				errCh <- server.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return fmt.Errorf("serve: %w", err)
			case <-ctx.Done():
			}

			log.Info().Msg("shutting down development server")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
				return fmt.Errorf("shutdown: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "127.0.0.1:8655", "Listen address")
	cmd.Flags().StringArrayVar(&credentials, "credential", nil, "Pre-issued token, optionally token=userID")

	return cmd
}

func splitCredential(cred string) (token, userID string) {
	for i := 0; i < len(cred); i++ {
		if cred[i] == '=' {
			return cred[:i], cred[i+1:]
		}
	}
	return cred, ""
}
