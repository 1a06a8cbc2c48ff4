// Package supabase is a thin REST client for the hosted backend the portal
// talks to: a GoTrue-compatible auth endpoint and PostgREST-style tables
// (profiles, products, shipments). Only the operations the portal uses are
// implemented; there is no retry, no request timeout beyond the caller's
// context, and no pagination.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
)

// Client issues authenticated requests against one Supabase project.
type Client struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client

	mu     sync.RWMutex
	bearer string // session access token; anon key when signed out
}

// New creates a client for the project at baseURL using the anon API key.
func New(baseURL, anonKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		anonKey:    anonKey,
		httpClient: &http.Client{},
		bearer:     anonKey,
	}
}

// NewWithHTTPClient is like New but with a caller-supplied http.Client.
// Tests use this to point at an httptest server.
func NewWithHTTPClient(baseURL, anonKey string, hc *http.Client) *Client {
	c := New(baseURL, anonKey)
	if hc != nil {
		c.httpClient = hc
	}
	return c
}

// SetAccessToken installs the session bearer token used for table requests.
// An empty token falls back to the anon key.
func (c *Client) SetAccessToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if token == "" {
		c.bearer = c.anonKey
		return
	}
	c.bearer = token
}

func (c *Client) bearerToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.bearer
}

// APIError is a non-2xx response from the backend. The message is the
// server-provided text so it can be shown to the user verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// errorBody mirrors the shapes GoTrue and PostgREST use for errors.
type errorBody struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
}

func (b errorBody) text() string {
	for _, s := range []string{b.ErrorDescription, b.Msg, b.Message, b.Error} {
		if s != "" {
			return s
		}
	}
	return ""
}

// do sends a JSON request and decodes the JSON response into out (if non-nil).
// Extra headers are applied after the defaults so callers can override Prefer.
func (c *Client) do(ctx context.Context, method, path string, body, out any, headers map[string]string) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+c.bearerToken())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var eb errorBody
		_ = json.Unmarshal(data, &eb)
		return &APIError{StatusCode: resp.StatusCode, Message: eb.text()}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
