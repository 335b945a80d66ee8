package cli

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/kevinsebalee/eventos-cli/internal/client/models"
	"github.com/kevinsebalee/eventos-cli/internal/client/session"
)

func TestDashboardPage_Counts(t *testing.T) {
	future := time.Now().Add(24 * time.Hour)
	past := time.Now().Add(-24 * time.Hour)
	events := &fakeEventsAPI{list: []models.Event{
		eventAt(1, 2, "Pasado", past),
		eventAt(2, 2, "Próximo", future),
		eventAt(3, 9, "Ajeno", future),
	}}
	a, out := newTestApp(&fakeSessionStore{current: &session.Session{ID: 2, FirstName: "Ana"}}, events)

	if err := a.dashboardPage(context.Background()); err != nil {
		t.Fatalf("dashboardPage err: %v", err)
	}
	if !strings.Contains(out.String(), "Hola, Ana") {
		t.Fatalf("greeting missing: %q", out.String())
	}
	if !strings.Contains(out.String(), "Eventos: 3 en total, 2 próximos, 2 tuyos") {
		t.Fatalf("counts wrong: %q", out.String())
	}
	if strings.Contains(out.String(), "#1 Pasado") {
		t.Fatalf("past event listed as upcoming: %q", out.String())
	}
}

func TestDashboardPage_TopThreeUpcoming(t *testing.T) {
	future := time.Now().Add(24 * time.Hour)
	events := &fakeEventsAPI{list: []models.Event{
		eventAt(1, 1, "a", future),
		eventAt(2, 1, "b", future),
		eventAt(3, 1, "c", future),
		eventAt(4, 1, "d", future),
	}}
	a, out := newTestApp(&fakeSessionStore{}, events)

	if err := a.dashboardPage(context.Background()); err != nil {
		t.Fatalf("dashboardPage err: %v", err)
	}
	if strings.Contains(out.String(), "#4 d") {
		t.Fatalf("more than three upcoming listed: %q", out.String())
	}
}
