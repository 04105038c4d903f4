package emulator

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"github.com/google/uuid"
)

// authRegistry issues identities and maps bearer tokens back to users.
// Anonymous sign-ins mint a fresh user; credential tokens must be registered
// ahead of time and redeem to a fixed user, so the same token always lands on
// the same library.
type authRegistry struct {
	mu       sync.Mutex
	sessions map[string]string // idToken -> userID
	creds    map[string]string // credential token -> userID
}

func newAuthRegistry() *authRegistry {
	return &authRegistry{
		sessions: make(map[string]string),
		creds:    make(map[string]string),
	}
}

func (a *authRegistry) registerCredential(token, userID string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if userID == "" {
		userID = derivedUserID(token)
	}
	a.creds[token] = userID
}

func (a *authRegistry) anonymous() (userID, idToken string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	userID = "anon-" + uuid.NewString()
	idToken = uuid.NewString()
	a.sessions[idToken] = userID

	return userID, idToken
}

func (a *authRegistry) redeem(token string) (userID, idToken string, ok bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	userID, ok = a.creds[token]
	if !ok {
		return "", "", false
	}

	idToken = uuid.NewString()
	a.sessions[idToken] = userID

	return userID, idToken, true
}

func (a *authRegistry) lookup(idToken string) (string, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	userID, ok := a.sessions[idToken]
	return userID, ok
}

func derivedUserID(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "user-" + hex.EncodeToString(sum[:6])
}
