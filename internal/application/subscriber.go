package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"promptdeck/internal/domain"
	"promptdeck/internal/ports"
)

var ErrSubscriptionClosed = errors.New("subscription closed before first snapshot")

// CollectionState is one frame of the mirrored collection. Loading holds from
// the moment the subscription opens until the first snapshot arrives; a
// non-nil Err is terminal for the stream.
type CollectionState struct {
	Loading bool
	Prompts []domain.Prompt
	Err     error
}

// Subscriber maintains a live mirror of the session's prompt collection.
// Every inbound snapshot replaces the local list wholesale; there is no
// incremental patching. At most one subscription is live at a time.
type Subscriber struct {
	session domain.Session
	store   ports.DocumentStore

	mu     sync.Mutex
	cancel ports.CancelFunc
}

func NewSubscriber(session domain.Session, store ports.DocumentStore) *Subscriber {
	return &Subscriber{
		session: session,
		store:   store,
	}
}

// Open starts the live feed. The first state on the channel is always
// Loading; each snapshot afterward is delivered sorted newest first. The
// channel closes after cancel or after a terminal error state. Opening again
// tears down the previous subscription first.
func (s *Subscriber) Open(ctx context.Context) (<-chan CollectionState, ports.CancelFunc, error) {
	if err := ensureReady(s.session, s.store); err != nil {
		return nil, nil, err
	}

	path := s.session.CollectionPath()

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	events, cancel, err := s.store.Subscribe(ctx, path)
	if err != nil {
		s.mu.Unlock()
		return nil, nil, fmt.Errorf("open subscription: %w", err)
	}
	s.cancel = cancel
	s.mu.Unlock()

	states := make(chan CollectionState, 1)
	go func() {
		defer close(states)

		states <- CollectionState{Loading: true}

		for event := range events {
			if event.Err != nil {
				log.Error().Err(event.Err).Str("path", path).Msg("subscription failed")
				states <- CollectionState{Err: event.Err}
				return
			}
			states <- CollectionState{Prompts: promptsFromSnapshot(event.Snapshot)}
		}
	}()

	return states, cancel, nil
}

// Snapshot opens the feed, waits for the first loaded state, and releases the
// subscription. Used by the one-shot commands.
func (s *Subscriber) Snapshot(ctx context.Context) ([]domain.Prompt, error) {
	states, cancel, err := s.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case state, ok := <-states:
			if !ok {
				return nil, ErrSubscriptionClosed
			}
			if state.Err != nil {
				return nil, state.Err
			}
			if !state.Loading {
				return state.Prompts, nil
			}
		}
	}
}

func promptsFromSnapshot(snapshot ports.Snapshot) []domain.Prompt {
	prompts := make([]domain.Prompt, 0, len(snapshot.Documents))
	for _, doc := range snapshot.Documents {
		prompts = append(prompts, domain.Prompt{
			ID:        domain.PromptID(doc.ID),
			Text:      stringField(doc.Fields, fieldText),
			CreatedAt: timeField(doc.Fields, fieldCreatedAt),
		})
	}

	domain.SortByCreatedAtDesc(prompts)
	return prompts
}

func stringField(fields map[string]any, key string) string {
	value, _ := fields[key].(string)
	return value
}

func timeField(fields map[string]any, key string) time.Time {
	switch value := fields[key].(type) {
	case time.Time:
		return value
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, value)
		if err != nil {
			return time.Time{}
		}
		return parsed
	default:
		return time.Time{}
	}
}
