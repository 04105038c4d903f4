// Package storehttp is the HTTP client for the document-store collaborator.
// Writes are plain REST calls; the live snapshot feed is a server-sent event
// stream, one full snapshot per event.
package storehttp

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"

	"promptdeck/internal/domain"
	"promptdeck/internal/ports"
)

const maxErrorBodyBytes = 1 << 16

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

var _ ports.DocumentStore = (*Client)(nil)

// NewClient builds a store client bound to one bearer token. The http client
// must not carry a global timeout: the subscription stream stays open for the
// lifetime of the session.
func NewClient(baseURL, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    httpClient,
	}
}

func (c *Client) Insert(ctx context.Context, path string, fields map[string]any) (string, error) {
	resp, err := c.send(ctx, http.MethodPost, c.documentURL(path), insertRequest{Fields: fields})
	if err != nil {
		return "", fmt.Errorf("insert document: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return "", responseError(resp)
	}

	var body insertResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode insert response: %w", err)
	}

	return body.ID, nil
}

func (c *Client) UpdateFields(ctx context.Context, path string, fields map[string]any) error {
	resp, err := c.send(ctx, http.MethodPatch, c.documentURL(path), updateRequest{Fields: fields})
	if err != nil {
		return fmt.Errorf("update document: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return responseError(resp)
	}

	return nil
}

func (c *Client) Delete(ctx context.Context, path string) error {
	resp, err := c.send(ctx, http.MethodDelete, c.documentURL(path), nil)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return responseError(resp)
	}

	return nil
}

func (c *Client) send(ctx context.Context, method, url string, payload any) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req)

	return c.http.Do(req)
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

func (c *Client) documentURL(path string) string {
	return c.baseURL + "/v1/" + path
}

func responseError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrPromptNotFound
	}

	var body errorResponse
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		return fmt.Errorf("store responded %d: %s", resp.StatusCode, body.Error)
	}

	return fmt.Errorf("store responded %d", resp.StatusCode)
}
