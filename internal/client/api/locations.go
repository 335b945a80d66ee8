package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kevinsebalee/eventos-cli/internal/client/models"
)

// LocationsService groups the venue endpoints.
type LocationsService struct {
	c *Client
}

func (s *LocationsService) List(ctx context.Context) ([]models.Location, error) {
	var locations []models.Location
	if err := s.c.do(ctx, http.MethodGet, "/event-location", nil, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

func (s *LocationsService) Get(ctx context.Context, id int64) (*models.Location, error) {
	var location models.Location
	if err := s.c.do(ctx, http.MethodGet, fmt.Sprintf("/event-location/%d", id), nil, &location); err != nil {
		return nil, err
	}
	return &location, nil
}

func (s *LocationsService) Create(ctx context.Context, in models.LocationInput) (*models.Location, error) {
	var created models.Location
	if err := s.c.do(ctx, http.MethodPost, "/event-location", in, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
