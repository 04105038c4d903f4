package storehttp

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"

	"promptdeck/internal/ports"
)

const maxEventBytes = 4 << 20

var ErrStreamEnded = errors.New("snapshot stream ended")

// Subscribe opens the SSE feed for the collection at path. Events arrive on
// the returned channel until cancel is called or the stream fails; a stream
// failure is delivered as a final event with Err set, then the channel
// closes. Cancel is idempotent.
func (c *Client) Subscribe(ctx context.Context, path string) (<-chan ports.SnapshotEvent, ports.CancelFunc, error) {
	streamCtx, cancel := context.WithCancel(ctx)

	req, err := http.NewRequestWithContext(streamCtx, http.MethodGet, c.documentURL(path)+"/subscribe", nil)
	if err != nil {
		cancel()
		return nil, nil, fmt.Errorf("build subscribe request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		cancel()
		return nil, nil, fmt.Errorf("open snapshot stream: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		err := responseError(resp)
		_ = resp.Body.Close()
		cancel()
		return nil, nil, fmt.Errorf("open snapshot stream: %w", err)
	}

	events := make(chan ports.SnapshotEvent)
	go func() {
		defer close(events)
		defer func() { _ = resp.Body.Close() }()

		err := readStream(streamCtx, resp.Body, events)
		if err != nil && streamCtx.Err() == nil {
			events <- ports.SnapshotEvent{Err: err}
		}
	}()

	return events, ports.CancelFunc(cancel), nil
}

// readStream parses the SSE wire format: data lines accumulate until a blank
// line terminates the event. Anything other than data lines (comments, event
// names, ids) is ignored.
func readStream(ctx context.Context, body io.Reader, events chan<- ports.SnapshotEvent) error {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), maxEventBytes)

	var data bytes.Buffer
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "":
			if data.Len() == 0 {
				continue
			}
			var snapshot wireSnapshot
			if err := json.Unmarshal(data.Bytes(), &snapshot); err != nil {
				return fmt.Errorf("decode snapshot event: %w", err)
			}
			data.Reset()

			select {
			case events <- ports.SnapshotEvent{Snapshot: snapshot.toSnapshot()}:
			case <-ctx.Done():
				return nil
			}
		case strings.HasPrefix(line, "data:"):
			data.WriteString(strings.TrimPrefix(strings.TrimPrefix(line, "data:"), " "))
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read snapshot stream: %w", err)
	}

	// The server never closes a healthy stream; EOF means the feed is gone.
	return ErrStreamEnded
}
