package e2e

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptdeck/internal/adapters/authhttp"
	"promptdeck/internal/adapters/storehttp"
	"promptdeck/internal/application"
	"promptdeck/internal/domain"
	"promptdeck/internal/emulator"
	"promptdeck/internal/ports"
)

const liveAppID = "app-e2e"

type client struct {
	session    domain.Session
	store      ports.DocumentStore
	subscriber *application.Subscriber
	dispatcher *application.Dispatcher
}

// connect establishes a full client stack against the backend. An empty token
// signs in anonymously.
func connect(t *testing.T, baseURL, token string) client {
	t.Helper()

	httpClient := &http.Client{}
	auth := authhttp.NewClient(baseURL, httpClient)

	session, err := application.NewEstablisher(auth, liveAppID, token).Establish(context.Background())
	require.NoError(t, err)

	store := storehttp.NewClient(baseURL, session.Identity.Token, httpClient)

	return client{
		session:    session,
		store:      store,
		subscriber: application.NewSubscriber(session, store),
		dispatcher: application.NewDispatcher(session, store, ports.SystemClock{}),
	}
}

// awaitState reads states until the predicate holds. Loading states are
// skipped; a terminal error or timeout fails the test.
func awaitState(t *testing.T, states <-chan application.CollectionState, predicate func(application.CollectionState) bool) application.CollectionState {
	t.Helper()

	deadline := time.After(5 * time.Second)
	for {
		select {
		case state, ok := <-states:
			require.True(t, ok, "state stream closed before the expected state arrived")
			require.NoError(t, state.Err)
			if !state.Loading && predicate(state) {
				return state
			}
		case <-deadline:
			t.Fatal("timed out waiting for expected collection state")
		}
	}
}

func TestLiveReconciliationSingleClient(t *testing.T) {
	backend := httptest.NewServer(emulator.New().Handler())
	defer backend.Close()

	c := connect(t, backend.URL, "")

	states, cancel, err := c.subscriber.Open(context.Background())
	require.NoError(t, err)
	defer cancel()

	// Scenario A: a fresh library loads clean and empty.
	state := awaitState(t, states, func(s application.CollectionState) bool { return true })
	assert.Empty(t, state.Prompts)

	// Scenario B: a create comes back through the subscription.
	require.NoError(t, c.dispatcher.Create(context.Background(), "first prompt"))
	state = awaitState(t, states, func(s application.CollectionState) bool { return len(s.Prompts) == 1 })
	assert.Equal(t, "first prompt", state.Prompts[0].Text)
	assert.False(t, state.Prompts[0].CreatedAt.IsZero())

	id := state.Prompts[0].ID

	require.NoError(t, c.dispatcher.Update(context.Background(), id, "revised prompt"))
	state = awaitState(t, states, func(s application.CollectionState) bool {
		return len(s.Prompts) == 1 && s.Prompts[0].Text == "revised prompt"
	})
	assert.Equal(t, id, state.Prompts[0].ID)

	// Scenario C: deletion empties the list again.
	require.NoError(t, c.dispatcher.Delete(context.Background(), id))
	awaitState(t, states, func(s application.CollectionState) bool { return len(s.Prompts) == 0 })
}

func TestLiveChangesPropagateBetweenClients(t *testing.T) {
	backend := httptest.NewServer(emulator.New(
		emulator.WithCredential("shared-token", "user-shared"),
	).Handler())
	defer backend.Close()

	writer := connect(t, backend.URL, "shared-token")
	reader := connect(t, backend.URL, "shared-token")
	require.Equal(t, writer.session.Identity.UserID, reader.session.Identity.UserID)

	states, cancel, err := reader.subscriber.Open(context.Background())
	require.NoError(t, err)
	defer cancel()

	awaitState(t, states, func(s application.CollectionState) bool { return true })

	require.NoError(t, writer.dispatcher.Create(context.Background(), "written elsewhere"))

	state := awaitState(t, states, func(s application.CollectionState) bool { return len(s.Prompts) == 1 })
	assert.Equal(t, "written elsewhere", state.Prompts[0].Text)
}

func TestLiveLibrariesAreIsolatedPerUser(t *testing.T) {
	backend := httptest.NewServer(emulator.New().Handler())
	defer backend.Close()

	first := connect(t, backend.URL, "")
	require.NoError(t, first.dispatcher.Create(context.Background(), "private to the first user"))

	second := connect(t, backend.URL, "")
	require.NotEqual(t, first.session.Identity.UserID, second.session.Identity.UserID)

	prompts, err := second.subscriber.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Empty(t, prompts)
}

func TestLiveSubscribeForeignCollectionRejected(t *testing.T) {
	backend := httptest.NewServer(emulator.New().Handler())
	defer backend.Close()

	intruder := connect(t, backend.URL, "")
	victim := connect(t, backend.URL, "")

	foreignPath := victim.session.CollectionPath()
	_, _, err := intruder.store.Subscribe(context.Background(), foreignPath)
	require.Error(t, err)
}

func TestLiveNewestFirstOrdering(t *testing.T) {
	backend := httptest.NewServer(emulator.New().Handler())
	defer backend.Close()

	c := connect(t, backend.URL, "")

	require.NoError(t, c.dispatcher.Create(context.Background(), "older"))
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, c.dispatcher.Create(context.Background(), "newer"))

	prompts, err := c.subscriber.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, prompts, 2)
	assert.Equal(t, "newer", prompts[0].Text)
	assert.Equal(t, "older", prompts[1].Text)
}
