// Package authhttp is the HTTP client for the auth collaborator. A sign-in
// yields the stable user id plus the bearer token the document store accepts.
// The client caches the identity for the lifetime of the process; there is no
// sign-out.
package authhttp

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	json "github.com/goccy/go-json"

	"promptdeck/internal/domain"
	"promptdeck/internal/ports"
)

const maxResponseBytes = 1 << 20

type Client struct {
	baseURL string
	http    *http.Client

	mu       sync.Mutex
	identity domain.Identity
	signedIn bool
}

var _ ports.AuthService = (*Client)(nil)

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

func (c *Client) CurrentUser(_ context.Context) (domain.Identity, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.signedIn {
		return domain.Identity{}, domain.ErrNoCurrentUser
	}

	return c.identity, nil
}

func (c *Client) SignInAnonymously(ctx context.Context) (domain.Identity, error) {
	identity, err := c.signIn(ctx, "/v1/auth/anonymous", nil)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("anonymous sign-in: %w", err)
	}

	return identity, nil
}

func (c *Client) SignInWithToken(ctx context.Context, token string) (domain.Identity, error) {
	identity, err := c.signIn(ctx, "/v1/auth/token", signInRequest{Token: token})
	if err != nil {
		return domain.Identity{}, fmt.Errorf("token sign-in: %w", err)
	}

	return identity, nil
}

func (c *Client) signIn(ctx context.Context, path string, payload any) (domain.Identity, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return domain.Identity{}, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.Identity{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return domain.Identity{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var failure errorResponse
		if err := json.Unmarshal(raw, &failure); err == nil && failure.Error != "" {
			return domain.Identity{}, fmt.Errorf("auth service responded %d: %s", resp.StatusCode, failure.Error)
		}
		return domain.Identity{}, fmt.Errorf("auth service responded %d", resp.StatusCode)
	}

	var success signInResponse
	if err := json.Unmarshal(raw, &success); err != nil {
		return domain.Identity{}, fmt.Errorf("decode response: %w", err)
	}
	if success.UserID == "" || success.IDToken == "" {
		return domain.Identity{}, fmt.Errorf("auth service returned incomplete identity")
	}

	identity := domain.Identity{
		UserID: domain.UserID(success.UserID),
		Token:  success.IDToken,
	}

	c.mu.Lock()
	c.identity = identity
	c.signedIn = true
	c.mu.Unlock()

	return identity, nil
}

type signInRequest struct {
	Token string `json:"token"`
}

type signInResponse struct {
	UserID  string `json:"userId"`
	IDToken string `json:"idToken"`
}

type errorResponse struct {
	Error string `json:"error"`
}
