package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/kevinsebalee/eventos-cli/internal/client/api"
	"github.com/kevinsebalee/eventos-cli/internal/client/fetch"
	"github.com/kevinsebalee/eventos-cli/internal/client/models"
)

// errMessage prefers the backend's message field over the fixed fallback
// the screen would otherwise show.
func errMessage(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// eventsPage lists all events; "events mine" keeps only those created by
// the current user.
func (a *App) eventsPage(ctx context.Context, args []string) error {
	state := fetch.New(a.events.List)
	if err := state.Load(ctx); err != nil {
		fmt.Fprintln(a.out, "Error al cargar eventos")
		return nil
	}

	events := state.Data
	if len(args) > 0 && args[0] == "mine" {
		current := a.session.Session()
		filtered := events[:0:0]
		for _, e := range events {
			if current != nil && e.IDCreatorUser == current.ID {
				filtered = append(filtered, e)
			}
		}
		events = filtered
	}

	if len(events) == 0 {
		fmt.Fprintln(a.out, "No hay eventos para mostrar")
		return nil
	}

	for _, e := range events {
		fmt.Fprintf(a.out, "#%d %s — %s — $%.2f — %s\n",
			e.ID, e.DisplayName(), e.StartDate.Format("02/01/2006 15:04"), e.Price, e.LocationName)
	}
	return nil
}

// eventDetailPage renders one event with its enrollments and the current
// user's enrollment status.
func (a *App) eventDetailPage(ctx context.Context, id int64) error {
	state := fetch.New(func(ctx context.Context) (*models.Event, error) {
		return a.events.Get(ctx, id)
	})
	if err := state.Load(ctx); err != nil {
		fmt.Fprintln(a.out, "Error al cargar el evento")
		return nil
	}

	e := state.Data
	fmt.Fprintf(a.out, "#%d %s\n", e.ID, e.DisplayName())
	fmt.Fprintln(a.out, e.Description)
	fmt.Fprintf(a.out, "Inicio: %s — Duración: %d min — Precio: $%.2f — Capacidad: %d\n",
		e.StartDate.Format("02/01/2006 15:04"), e.DurationInMinutes, e.Price, e.MaxAssistance)
	if e.LocationName != "" {
		fmt.Fprintln(a.out, "Ubicación:", e.LocationName)
	}
	if e.EnabledForEnrollment.Bool() {
		fmt.Fprintln(a.out, "Inscripción: habilitada")
	} else {
		fmt.Fprintln(a.out, "Inscripción: deshabilitada")
	}

	current := a.session.Session()
	if current != nil && e.IDCreatorUser == current.ID {
		fmt.Fprintln(a.out, "Eres el creador de este evento (edit/delete disponibles)")
	}

	if len(e.Enrollments) > 0 {
		fmt.Fprintf(a.out, "Inscriptos (%d):\n", len(e.Enrollments))
		for _, en := range e.Enrollments {
			status := "Inscrito"
			if en.Attended.Bool() {
				status = "Asistió"
			}
			fmt.Fprintf(a.out, "  %s %s (@%s) — %s\n", en.FirstName, en.LastName, en.Username, status)
		}
	}
	if current != nil && e.HasEnrollment(current.ID) {
		fmt.Fprintln(a.out, "Ya estás inscrito en este evento")
	}
	return nil
}

// enrollCmd registers the current user with the stock enrollment payload.
func (a *App) enrollCmd(ctx context.Context, id int64) error {
	err := a.events.Enroll(ctx, id, &models.EnrollmentInput{
		Description:  "Inscripción al evento desde la aplicación web",
		Observations: "Inscripción realizada desde la interfaz web",
		Rating:       5,
	})
	if err != nil {
		fmt.Fprintln(a.out, errMessage(err, "Error al cambiar inscripción"))
		return nil
	}
	return a.eventDetailPage(ctx, id)
}

func (a *App) unenrollCmd(ctx context.Context, id int64) error {
	if err := a.events.Unenroll(ctx, id); err != nil {
		fmt.Fprintln(a.out, errMessage(err, "Error al cambiar inscripción"))
		return nil
	}
	return a.eventDetailPage(ctx, id)
}

// deleteEventCmd asks for confirmation, deletes, and refetches the list.
func (a *App) deleteEventCmd(ctx context.Context, id int64) error {
	ok, err := confirm(a.reader, "¿Estás seguro de que quieres eliminar este evento?", a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.events.Delete(ctx, id); err != nil {
		fmt.Fprintln(a.out, "Error al eliminar el evento")
		return nil
	}
	return a.eventsPage(ctx, nil)
}
