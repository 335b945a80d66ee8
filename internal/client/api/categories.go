package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kevinsebalee/eventos-cli/internal/client/models"
)

// CategoriesService groups the event-category endpoints.
type CategoriesService struct {
	c *Client
}

func (s *CategoriesService) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.c.do(ctx, http.MethodGet, "/event-category", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CategoriesService) Get(ctx context.Context, id int64) (*models.Category, error) {
	var category models.Category
	if err := s.c.do(ctx, http.MethodGet, fmt.Sprintf("/event-category/%d", id), nil, &category); err != nil {
		return nil, err
	}
	return &category, nil
}
