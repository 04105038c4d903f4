package emulator

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// document is one stored record. createTime is store metadata; the
// client-stamped createdAt lives inside fields like any other field.
type document struct {
	id         string
	fields     map[string]any
	createTime time.Time
}

// snapshotFrame is a full materialization of one collection, pushed to every
// subscriber on every change.
type snapshotFrame struct {
	documents []wireDocument
}

// collection holds the documents at one path plus its live subscribers.
// Subscriber channels are buffered with latest-wins delivery: a slow reader
// skips intermediate frames but always ends on the newest one.
type collection struct {
	mu      sync.Mutex
	docs    []*document
	subs    map[int]chan snapshotFrame
	nextSub int
}

func newCollection() *collection {
	return &collection{subs: make(map[int]chan snapshotFrame)}
}

func (c *collection) insert(fields map[string]any, now time.Time) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	doc := &document{
		id:         uuid.NewString(),
		fields:     cloneFields(fields),
		createTime: now,
	}
	c.docs = append(c.docs, doc)
	c.broadcastLocked()

	return doc.id
}

func (c *collection) update(id string, fields map[string]any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, doc := range c.docs {
		if doc.id != id {
			continue
		}
		for key, value := range fields {
			doc.fields[key] = value
		}
		c.broadcastLocked()
		return true
	}

	return false
}

func (c *collection) remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, doc := range c.docs {
		if doc.id != id {
			continue
		}
		c.docs = append(c.docs[:i], c.docs[i+1:]...)
		c.broadcastLocked()
		return true
	}

	return false
}

// subscribe registers a feed and immediately queues the current snapshot, so
// a fresh subscriber sees the collection state without waiting for a change.
func (c *collection) subscribe() (int, <-chan snapshotFrame) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextSub
	c.nextSub++

	frames := make(chan snapshotFrame, 1)
	c.subs[id] = frames
	frames <- c.snapshotLocked()

	return id, frames
}

func (c *collection) unsubscribe(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.subs, id)
}

func (c *collection) broadcastLocked() {
	frame := c.snapshotLocked()
	for _, frames := range c.subs {
		select {
		case frames <- frame:
		default:
			// Drop the stale frame; only the sender mutates the buffer.
			select {
			case <-frames:
			default:
			}
			frames <- frame
		}
	}
}

func (c *collection) snapshotLocked() snapshotFrame {
	documents := make([]wireDocument, 0, len(c.docs))
	for _, doc := range c.docs {
		documents = append(documents, wireDocument{
			ID:         doc.id,
			Fields:     cloneFields(doc.fields),
			CreateTime: doc.createTime.UTC().Format(time.RFC3339Nano),
		})
	}

	return snapshotFrame{documents: documents}
}

// collectionStore indexes collections by path, creating them on demand. An
// empty collection is indistinguishable from one that has never been written.
type collectionStore struct {
	mu          sync.Mutex
	collections map[string]*collection
}

func newCollectionStore() *collectionStore {
	return &collectionStore{collections: make(map[string]*collection)}
}

func (cs *collectionStore) get(path string) *collection {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	col, ok := cs.collections[path]
	if !ok {
		col = newCollection()
		cs.collections[path] = col
	}

	return col
}

func cloneFields(fields map[string]any) map[string]any {
	cloned := make(map[string]any, len(fields))
	for key, value := range fields {
		cloned[key] = value
	}
	return cloned
}
