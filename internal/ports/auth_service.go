package ports

import (
	"context"

	"promptdeck/internal/domain"
)

// AuthService is the external auth collaborator. CurrentUser returns
// domain.ErrNoCurrentUser when the service has no cached identity for this
// process.
type AuthService interface {
	CurrentUser(ctx context.Context) (domain.Identity, error)
	SignInAnonymously(ctx context.Context) (domain.Identity, error)
	SignInWithToken(ctx context.Context, token string) (domain.Identity, error)
}
