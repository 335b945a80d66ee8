package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// DefaultBaseURL points at the development backend.
const DefaultBaseURL = "http://localhost:3000/api"

// Client bundles the grouped endpoint services behind one base
// configuration and one auth-injection point.
type Client struct {
	baseURL string
	http    *http.Client

	Auth       *AuthService
	Events     *EventsService
	Locations  *LocationsService
	Categories *CategoriesService
}

// New builds a Client for the given base URL. tokens supplies the
// persisted bearer token per request.
func New(baseURL string, tokens TokenSource) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: baseURL,
		http: &http.Client{
			Transport: &authTransport{tokens: tokens},
		},
	}
	c.Auth = &AuthService{c: c}
	c.Events = &EventsService{c: c}
	c.Locations = &LocationsService{c: c}
	c.Categories = &CategoriesService{c: c}
	return c
}

// do performs one JSON request/response cycle. A non-2xx status becomes
// an *Error carrying the backend's message fields; transport failures are
// wrapped and returned as-is. Nothing is retried.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode request: %w", method, path, err)
		}
		payload = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w", method, path, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return newError(method, path, resp.StatusCode, data)
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}
