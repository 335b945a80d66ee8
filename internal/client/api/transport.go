package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// TokenSource yields the persisted bearer token, or "" when anonymous.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// authTransport attaches the bearer credential to every outgoing request.
// The token is read from the source on each call, never cached, so a
// login or logout is visible to the very next request.
type authTransport struct {
	tokens TokenSource
	base   http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	out.Header.Set("X-Request-Id", uuid.NewString())

	// A failed read degrades to an anonymous request; the backend will
	// reject it if the endpoint needs auth.
	if token, err := t.tokens.Token(req.Context()); err == nil && token != "" {
		out.Header.Set("Authorization", "Bearer "+token)
	}

	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(out)
}
