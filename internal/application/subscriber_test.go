package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptdeck/internal/domain"
	"promptdeck/internal/ports"
	"promptdeck/internal/ports/mocks"
)

const testCollectionPath = "artifacts/app-1/users/u1/prompts"

func testSession() domain.Session {
	return domain.Session{
		Identity: domain.Identity{UserID: "u1", Token: "id-token"},
		AppID:    "app-1",
	}
}

func receiveState(t *testing.T, states <-chan CollectionState) CollectionState {
	t.Helper()

	select {
	case state, ok := <-states:
		require.True(t, ok, "state channel closed unexpectedly")
		return state
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for collection state")
		return CollectionState{}
	}
}

func TestSubscriberEmptyCollectionLoadsClean(t *testing.T) {
	store := mocks.NewMockDocumentStore(t)
	events := make(chan ports.SnapshotEvent, 1)
	var recv <-chan ports.SnapshotEvent = events
	store.EXPECT().Subscribe(mockAnyContext(), testCollectionPath).
		Return(recv, ports.CancelFunc(func() { close(events) }), nil)

	s := NewSubscriber(testSession(), store)
	states, cancel, err := s.Open(context.Background())
	require.NoError(t, err)
	defer cancel()

	first := receiveState(t, states)
	assert.True(t, first.Loading)

	events <- ports.SnapshotEvent{}

	loaded := receiveState(t, states)
	assert.False(t, loaded.Loading)
	assert.NoError(t, loaded.Err)
	assert.Empty(t, loaded.Prompts)
}

func TestSubscriberReplacesListAndSortsNewestFirst(t *testing.T) {
	store := mocks.NewMockDocumentStore(t)
	events := make(chan ports.SnapshotEvent, 2)
	var recv <-chan ports.SnapshotEvent = events
	store.EXPECT().Subscribe(mockAnyContext(), testCollectionPath).
		Return(recv, ports.CancelFunc(func() {}), nil)

	t1 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	events <- ports.SnapshotEvent{Snapshot: ports.Snapshot{Documents: []ports.Document{
		{ID: "p1", Fields: map[string]any{"text": "older", "createdAt": t1.Format(time.RFC3339Nano)}},
		{ID: "p2", Fields: map[string]any{"text": "newer", "createdAt": t2.Format(time.RFC3339Nano)}},
	}}}
	events <- ports.SnapshotEvent{Snapshot: ports.Snapshot{Documents: []ports.Document{
		{ID: "p2", Fields: map[string]any{"text": "newer", "createdAt": t2.Format(time.RFC3339Nano)}},
	}}}

	s := NewSubscriber(testSession(), store)
	states, cancel, err := s.Open(context.Background())
	require.NoError(t, err)
	defer cancel()

	receiveState(t, states) // loading

	first := receiveState(t, states)
	require.Len(t, first.Prompts, 2)
	assert.Equal(t, domain.PromptID("p2"), first.Prompts[0].ID)
	assert.Equal(t, "newer", first.Prompts[0].Text)
	assert.Equal(t, t2, first.Prompts[0].CreatedAt)
	assert.Equal(t, domain.PromptID("p1"), first.Prompts[1].ID)

	// Full-replace semantics: the next snapshot is the whole truth.
	second := receiveState(t, states)
	require.Len(t, second.Prompts, 1)
	assert.Equal(t, domain.PromptID("p2"), second.Prompts[0].ID)
}

func TestSubscriberMissingCreatedAtSortsFirst(t *testing.T) {
	store := mocks.NewMockDocumentStore(t)
	events := make(chan ports.SnapshotEvent, 1)
	var recv <-chan ports.SnapshotEvent = events
	store.EXPECT().Subscribe(mockAnyContext(), testCollectionPath).
		Return(recv, ports.CancelFunc(func() {}), nil)

	stamped := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	events <- ports.SnapshotEvent{Snapshot: ports.Snapshot{Documents: []ports.Document{
		{ID: "p1", Fields: map[string]any{"text": "stamped", "createdAt": stamped.Format(time.RFC3339Nano)}},
		{ID: "p2", Fields: map[string]any{"text": "in flight"}},
	}}}

	s := NewSubscriber(testSession(), store)
	states, cancel, err := s.Open(context.Background())
	require.NoError(t, err)
	defer cancel()

	receiveState(t, states) // loading

	state := receiveState(t, states)
	require.Len(t, state.Prompts, 2)
	assert.Equal(t, domain.PromptID("p2"), state.Prompts[0].ID)
	assert.True(t, state.Prompts[0].CreatedAt.IsZero())
}

func TestSubscriberDeliversTerminalError(t *testing.T) {
	store := mocks.NewMockDocumentStore(t)
	events := make(chan ports.SnapshotEvent, 1)
	var recv <-chan ports.SnapshotEvent = events
	store.EXPECT().Subscribe(mockAnyContext(), testCollectionPath).
		Return(recv, ports.CancelFunc(func() {}), nil)

	subErr := errors.New("permission denied")
	events <- ports.SnapshotEvent{Err: subErr}
	close(events)

	s := NewSubscriber(testSession(), store)
	states, cancel, err := s.Open(context.Background())
	require.NoError(t, err)
	defer cancel()

	receiveState(t, states) // loading

	state := receiveState(t, states)
	require.ErrorIs(t, state.Err, subErr)

	_, open := <-states
	assert.False(t, open, "stream must close after a terminal error")
}

func TestSubscriberReopenTearsDownPreviousSubscription(t *testing.T) {
	store := mocks.NewMockDocumentStore(t)

	firstEvents := make(chan ports.SnapshotEvent)
	var firstRecv <-chan ports.SnapshotEvent = firstEvents
	canceled := false
	store.EXPECT().Subscribe(mockAnyContext(), testCollectionPath).
		Return(firstRecv, ports.CancelFunc(func() {
			if !canceled {
				canceled = true
				close(firstEvents)
			}
		}), nil).
		Once()

	secondEvents := make(chan ports.SnapshotEvent, 1)
	var secondRecv <-chan ports.SnapshotEvent = secondEvents
	store.EXPECT().Subscribe(mockAnyContext(), testCollectionPath).
		Return(secondRecv, ports.CancelFunc(func() {}), nil).
		Once()

	s := NewSubscriber(testSession(), store)

	_, _, err := s.Open(context.Background())
	require.NoError(t, err)

	secondEvents <- ports.SnapshotEvent{}
	states, cancel, err := s.Open(context.Background())
	require.NoError(t, err)
	defer cancel()

	assert.True(t, canceled, "previous subscription must be released")

	receiveState(t, states) // loading
	loaded := receiveState(t, states)
	assert.False(t, loaded.Loading)
}

func TestSubscriberNotReady(t *testing.T) {
	store := mocks.NewMockDocumentStore(t)

	s := NewSubscriber(domain.Session{}, store)

	_, _, err := s.Open(context.Background())
	require.ErrorIs(t, err, domain.ErrNotReady)
}

func TestSubscriberSnapshotReturnsFirstLoadedState(t *testing.T) {
	store := mocks.NewMockDocumentStore(t)
	events := make(chan ports.SnapshotEvent, 1)
	var recv <-chan ports.SnapshotEvent = events
	released := false
	store.EXPECT().Subscribe(mockAnyContext(), testCollectionPath).
		Return(recv, ports.CancelFunc(func() { released = true }), nil)

	events <- ports.SnapshotEvent{Snapshot: ports.Snapshot{Documents: []ports.Document{
		{ID: "p1", Fields: map[string]any{"text": "Write a haiku"}},
	}}}

	s := NewSubscriber(testSession(), store)
	prompts, err := s.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, prompts, 1)
	assert.Equal(t, "Write a haiku", prompts[0].Text)
	assert.True(t, released, "snapshot must release the subscription")
}
