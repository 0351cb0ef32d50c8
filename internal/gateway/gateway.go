// Package gateway defines the request/response seam the entity stores
// would call instead of local fixtures when a real backend exists. The
// stores hold a Gateway but the mock path never dials it; swapping the
// fixture behavior for remote calls does not change any store's contract.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Gateway issues JSON requests against the backend API. Paths are relative
// to the configured base ("/api"); query is optional and may be nil.
// The response body is decoded into out when out is non-nil.
type Gateway interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Patch(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
}

// APIError is a failed gateway call, carrying the human-readable message
// extracted from a structured error body when the server sent one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// HTTPGateway is the production Gateway over net/http.
type HTTPGateway struct {
	client  *http.Client
	baseURL string
}

// NewHTTPGateway builds a gateway rooted at baseURL (e.g.
// "http://localhost:8080/api"). A nil client means http.DefaultClient.
func NewHTTPGateway(baseURL string, client *http.Client) *HTTPGateway {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPGateway{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

func (g *HTTPGateway) Get(ctx context.Context, path string, query url.Values, out any) error {
	u := g.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return g.do(ctx, http.MethodGet, u, nil, out)
}

func (g *HTTPGateway) Post(ctx context.Context, path string, body, out any) error {
	return g.do(ctx, http.MethodPost, g.baseURL+path, body, out)
}

func (g *HTTPGateway) Put(ctx context.Context, path string, body, out any) error {
	return g.do(ctx, http.MethodPut, g.baseURL+path, body, out)
}

func (g *HTTPGateway) Patch(ctx context.Context, path string, body, out any) error {
	return g.do(ctx, http.MethodPatch, g.baseURL+path, body, out)
}

func (g *HTTPGateway) Delete(ctx context.Context, path string, out any) error {
	return g.do(ctx, http.MethodDelete, g.baseURL+path, nil, out)
}

func (g *HTTPGateway) do(ctx context.Context, method, u string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return &APIError{Message: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{StatusCode: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode >= 400 {
		return &APIError{StatusCode: resp.StatusCode, Message: extractMessage(data)}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response body: %w", err)
		}
	}
	return nil
}

// extractMessage pulls a human-readable message out of a structured error
// body, preferring {"error":{"message":...}}, then {"message":...}, else a
// generic message.
func extractMessage(data []byte) string {
	var nested struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &nested); err == nil {
		if nested.Error.Message != "" {
			return nested.Error.Message
		}
		if nested.Message != "" {
			return nested.Message
		}
	}
	return "An unknown error occurred"
}

// IsAPIError reports whether err is a gateway failure and returns it.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
