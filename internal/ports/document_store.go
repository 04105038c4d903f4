package ports

import "context"

// Document is one stored record as the store addresses it: an opaque id plus
// free-form fields.
type Document struct {
	ID     string
	Fields map[string]any
}

// Snapshot is a full point-in-time materialization of a collection. The store
// delivers one on every change; consumers replace their local state with it
// wholesale.
type Snapshot struct {
	Documents []Document
}

// SnapshotEvent carries either a snapshot or a terminal subscription error.
// After an event with a non-nil Err the channel is closed and no further
// events arrive.
type SnapshotEvent struct {
	Snapshot Snapshot
	Err      error
}

type CancelFunc func()

// DocumentStore is the external document-store collaborator. Paths are
// hierarchical: artifacts/{appId}/users/{userId}/prompts[/{docId}].
type DocumentStore interface {
	// Subscribe opens a live feed of snapshots for the collection at path.
	// The first event arrives as soon as the store has materialized the
	// current state, including for empty collections. The returned cancel
	// releases the subscription; the channel closes afterward.
	Subscribe(ctx context.Context, path string) (<-chan SnapshotEvent, CancelFunc, error)

	// Insert creates a document with the given fields and returns the
	// store-assigned id.
	Insert(ctx context.Context, path string, fields map[string]any) (string, error)

	// UpdateFields merges fields into the document at path, leaving other
	// fields untouched.
	UpdateFields(ctx context.Context, path string, fields map[string]any) error

	Delete(ctx context.Context, path string) error
}
