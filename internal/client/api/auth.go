package api

import (
	"context"
	"net/http"

	"github.com/kevinsebalee/eventos-cli/internal/client/models"
)

// AuthService groups the user endpoints. Login and Register return the
// response body undigested because the backend answers in more than one
// shape; the session layer owns the extraction rules.
type AuthService struct {
	c *Client
}

func (s *AuthService) Login(ctx context.Context, creds models.Credentials) (map[string]any, error) {
	var body map[string]any
	if err := s.c.do(ctx, http.MethodPost, "/user/login", creds, &body); err != nil {
		return nil, err
	}
	return body, nil
}

func (s *AuthService) Register(ctx context.Context, reg models.Registration) (map[string]any, error) {
	var body map[string]any
	if err := s.c.do(ctx, http.MethodPost, "/user/register", reg, &body); err != nil {
		return nil, err
	}
	return body, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.c.do(ctx, http.MethodPost, "/user/logout", nil, nil)
}
