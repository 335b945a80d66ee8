package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/kevinsebalee/eventos-cli/internal/client/models"
)

// nowFn is a test seam for GetAvailable's "strictly in the future" cut.
var nowFn = time.Now

// EventsService groups the event endpoints.
type EventsService struct {
	c *Client
}

// List fetches all events. The list endpoint has been seen to answer with
// a bare object for a single result, so both shapes are accepted.
func (s *EventsService) List(ctx context.Context) ([]models.Event, error) {
	var raw json.RawMessage
	if err := s.c.do(ctx, http.MethodGet, "/event", nil, &raw); err != nil {
		return nil, err
	}
	return decodeEventList(raw)
}

// GetAvailable returns only the events whose start date is strictly in
// the future. The filter runs client-side, on a successful list only.
func (s *EventsService) GetAvailable(ctx context.Context) ([]models.Event, error) {
	events, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	now := nowFn()
	available := make([]models.Event, 0, len(events))
	for _, e := range events {
		if e.StartDate.After(now) {
			available = append(available, e)
		}
	}
	return available, nil
}

// Get fetches one event. The detail endpoint sometimes wraps the event in
// a one-element array; the first element wins.
func (s *EventsService) Get(ctx context.Context, id int64) (*models.Event, error) {
	var raw json.RawMessage
	if err := s.c.do(ctx, http.MethodGet, fmt.Sprintf("/event/%d", id), nil, &raw); err != nil {
		return nil, err
	}

	events, err := decodeEventList(raw)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, newError(http.MethodGet, fmt.Sprintf("/event/%d", id), http.StatusNotFound, nil)
	}
	return &events[0], nil
}

func (s *EventsService) Create(ctx context.Context, in models.EventInput) (*models.Event, error) {
	var created models.Event
	if err := s.c.do(ctx, http.MethodPost, "/event", in, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update sends the full event payload; EventInput serializes the
// enrollment flag as exactly 0 or 1.
func (s *EventsService) Update(ctx context.Context, id int64, in models.EventInput) (*models.Event, error) {
	var updated models.Event
	if err := s.c.do(ctx, http.MethodPut, fmt.Sprintf("/event/%d", id), in, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *EventsService) Delete(ctx context.Context, id int64) error {
	return s.c.do(ctx, http.MethodDelete, fmt.Sprintf("/event/%d", id), nil, nil)
}

func (s *EventsService) Enrollments(ctx context.Context, id int64) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	if err := s.c.do(ctx, http.MethodGet, fmt.Sprintf("/event/%d/enrollments", id), nil, &enrollments); err != nil {
		return nil, err
	}
	return enrollments, nil
}

// enrollmentBody is the exact wire format the enrollment endpoint expects.
type enrollmentBody struct {
	Description  string `json:"description"`
	Attended     int    `json:"attended"`
	Observations string `json:"observations"`
	Rating       int    `json:"rating"`
}

// Enroll registers the current user. A nil input enrolls with the stock
// description/observations, attended=0 and rating 5; attended always goes
// out as 0 or 1.
func (s *EventsService) Enroll(ctx context.Context, id int64, in *models.EnrollmentInput) error {
	return s.c.do(ctx, http.MethodPost, fmt.Sprintf("/event/%d/enrollment", id), normalizeEnrollment(in), nil)
}

func (s *EventsService) Unenroll(ctx context.Context, id int64) error {
	return s.c.do(ctx, http.MethodDelete, fmt.Sprintf("/event/%d/enrollment", id), nil, nil)
}

func normalizeEnrollment(in *models.EnrollmentInput) enrollmentBody {
	body := enrollmentBody{
		Description:  "Inscripción al evento desde la aplicación",
		Attended:     0,
		Observations: "Sin observaciones",
		Rating:       5,
	}
	if in == nil {
		return body
	}
	if in.Description != "" {
		body.Description = in.Description
	}
	if in.Attended.Bool() {
		body.Attended = 1
	}
	if in.Observations != "" {
		body.Observations = in.Observations
	}
	if in.Rating != 0 {
		body.Rating = in.Rating
	}
	return body
}

func decodeEventList(raw json.RawMessage) ([]models.Event, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var events []models.Event
	if err := json.Unmarshal(raw, &events); err == nil {
		return events, nil
	}

	var single models.Event
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return []models.Event{single}, nil
}
