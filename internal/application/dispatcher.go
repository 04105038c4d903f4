package application

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"promptdeck/internal/domain"
	"promptdeck/internal/ports"
)

const (
	fieldText      = "text"
	fieldCreatedAt = "createdAt"
)

// Dispatcher turns user intents into write requests against the remote
// collection. It never touches the local list; the effect of every write is
// observed only through the Subscriber's next snapshot. Calls are independent
// and may be in flight concurrently.
type Dispatcher struct {
	session domain.Session
	store   ports.DocumentStore
	clock   ports.Clock
}

func NewDispatcher(session domain.Session, store ports.DocumentStore, clock ports.Clock) *Dispatcher {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Dispatcher{
		session: session,
		store:   store,
		clock:   clock,
	}
}

// Create inserts a prompt stamped with the client's current time. Blank text
// is rejected without issuing a request.
func (d *Dispatcher) Create(ctx context.Context, text string) error {
	if domain.BlankText(text) {
		return domain.ErrEmptyText
	}
	if err := ensureReady(d.session, d.store); err != nil {
		return err
	}

	fields := map[string]any{
		fieldText:      text,
		fieldCreatedAt: d.clock.Now().UTC().Format(time.RFC3339Nano),
	}

	id, err := d.store.Insert(ctx, d.session.CollectionPath(), fields)
	if err != nil {
		log.Error().Err(err).Msg("create prompt failed")
		return fmt.Errorf("create prompt: %w", err)
	}

	log.Debug().Str("promptId", id).Msg("prompt created")
	return nil
}

// Update rewrites the text of an existing prompt. Only the text field is
// touched; createdAt stays as stamped at creation.
func (d *Dispatcher) Update(ctx context.Context, id domain.PromptID, text string) error {
	if id == "" {
		return domain.ErrMissingPromptID
	}
	if domain.BlankText(text) {
		return domain.ErrEmptyText
	}
	if err := ensureReady(d.session, d.store); err != nil {
		return err
	}

	err := d.store.UpdateFields(ctx, d.session.DocumentPath(id), map[string]any{fieldText: text})
	if err != nil {
		log.Error().Err(err).Str("promptId", string(id)).Msg("update prompt failed")
		return fmt.Errorf("update prompt: %w", err)
	}

	log.Debug().Str("promptId", string(id)).Msg("prompt updated")
	return nil
}

// Delete removes a prompt. There is no confirmation and no undo on this side;
// the prompt disappears from the next snapshot.
func (d *Dispatcher) Delete(ctx context.Context, id domain.PromptID) error {
	if id == "" {
		return domain.ErrMissingPromptID
	}
	if err := ensureReady(d.session, d.store); err != nil {
		return err
	}

	if err := d.store.Delete(ctx, d.session.DocumentPath(id)); err != nil {
		log.Error().Err(err).Str("promptId", string(id)).Msg("delete prompt failed")
		return fmt.Errorf("delete prompt: %w", err)
	}

	log.Debug().Str("promptId", string(id)).Msg("prompt deleted")
	return nil
}
