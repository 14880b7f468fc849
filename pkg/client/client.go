// Package client is a Go API client for the Smart Baladiya backend. It
// builds every call from the pkg/api route table and keeps a small
// response cache keyed by list path, invalidated when a mutation on
// that list succeeds. Failed mutations leave the cache untouched.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"sync"

	"baladiya/pkg/api"
)

// APIError is a non-2xx response decoded from the standard error body.
type APIError struct {
	StatusCode int
	Message    string
	Field      string
}

func (e *APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("api error %d: %s (field %s)", e.StatusCode, e.Message, e.Field)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// DecodeError signals that a 2xx body did not match the expected wire
// shape. That is a contract mismatch between client and server, not a
// user-facing failure.
type DecodeError struct {
	Operation string
	Err       error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s response: %v", e.Operation, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.Mutex
	cache map[string][]byte
}

func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Jar: jar},
		cache:      make(map[string][]byte),
	}, nil
}

// do executes op with the given body and decodes the response into out.
// want is the expected success status.
func (c *Client) do(ctx context.Context, op api.Operation, params map[string]any, body any, want int, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", op.Name, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, op.Method, c.baseURL+op.URL(params), reqBody)
	if err != nil {
		return fmt.Errorf("build %s request: %w", op.Name, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute %s request: %w", op.Name, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", op.Name, err)
	}

	if resp.StatusCode != want {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var decoded api.Error
		if err := json.Unmarshal(payload, &decoded); err == nil && decoded.Message != "" {
			apiErr.Message = decoded.Message
			apiErr.Field = decoded.Field
		}
		return apiErr
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return &DecodeError{Operation: op.Name, Err: err}
	}

	return nil
}

// cachedList serves op's list from cache when present, fetching and
// filling the cache otherwise.
func (c *Client) cachedList(ctx context.Context, op api.Operation, out any) error {
	c.mu.Lock()
	cached, ok := c.cache[op.Path]
	c.mu.Unlock()

	if ok {
		if err := json.Unmarshal(cached, out); err != nil {
			return &DecodeError{Operation: op.Name, Err: err}
		}
		return nil
	}

	if err := c.do(ctx, op, nil, nil, http.StatusOK, out); err != nil {
		return err
	}

	encoded, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("cache %s response: %w", op.Name, err)
	}

	c.mu.Lock()
	c.cache[op.Path] = encoded
	c.mu.Unlock()

	return nil
}

func (c *Client) invalidate(listPath string) {
	c.mu.Lock()
	delete(c.cache, listPath)
	c.mu.Unlock()
}

// InvalidateAll drops every cached list. Login and logout call it since
// list contents are scoped to the session's user.
func (c *Client) InvalidateAll() {
	c.mu.Lock()
	c.cache = make(map[string][]byte)
	c.mu.Unlock()
}
