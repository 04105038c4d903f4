package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"promptdeck/internal/domain"
	"promptdeck/internal/ports"
)

// Establisher produces the one session the rest of the process runs under.
// Resolution order: an identity the auth service already holds, then the
// pre-issued credential token, then a fresh anonymous identity. A failure is
// terminal; repeat calls return the same result without retrying.
type Establisher struct {
	auth  ports.AuthService
	appID string
	token string

	once    sync.Once
	session domain.Session
	err     error
}

// NewEstablisher wires the auth collaborator with the deployment appID and an
// optional pre-issued credential token.
func NewEstablisher(auth ports.AuthService, appID, token string) *Establisher {
	return &Establisher{
		auth:  auth,
		appID: appID,
		token: token,
	}
}

func (e *Establisher) Establish(ctx context.Context) (domain.Session, error) {
	e.once.Do(func() {
		e.session, e.err = e.establish(ctx)
	})

	return e.session, e.err
}

func (e *Establisher) establish(ctx context.Context) (domain.Session, error) {
	if e.appID == "" {
		return domain.Session{}, errors.New("app id is required")
	}

	identity, err := e.auth.CurrentUser(ctx)
	switch {
	case err == nil:
		log.Debug().Str("userId", string(identity.UserID)).Msg("reusing cached identity")
	case errors.Is(err, domain.ErrNoCurrentUser):
		identity, err = e.signIn(ctx)
		if err != nil {
			return domain.Session{}, err
		}
	default:
		return domain.Session{}, fmt.Errorf("query current user: %w", err)
	}

	session := domain.Session{Identity: identity, AppID: e.appID}
	log.Info().
		Str("userId", string(session.Identity.UserID)).
		Str("appId", session.AppID).
		Msg("session established")

	return session, nil
}

func (e *Establisher) signIn(ctx context.Context) (domain.Identity, error) {
	if e.token != "" {
		identity, err := e.auth.SignInWithToken(ctx, e.token)
		if err != nil {
			return domain.Identity{}, fmt.Errorf("sign in with token: %w", err)
		}
		return identity, nil
	}

	identity, err := e.auth.SignInAnonymously(ctx)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("sign in anonymously: %w", err)
	}
	return identity, nil
}
