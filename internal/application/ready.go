package application

import (
	"promptdeck/internal/domain"
	"promptdeck/internal/ports"
)

// ensureReady is the single precondition every collection operation runs
// through: a usable store handle and a fully established session.
func ensureReady(session domain.Session, store ports.DocumentStore) error {
	if store == nil || !session.Ready() {
		return domain.ErrNotReady
	}
	return nil
}
