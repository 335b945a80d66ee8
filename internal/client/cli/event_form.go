package cli

import (
	"context"
	"fmt"

	"github.com/kevinsebalee/eventos-cli/internal/client/fetch"
	"github.com/kevinsebalee/eventos-cli/internal/client/models"
)

// promptEventInput walks the event form. Every field shows its current
// value; an empty answer keeps it.
func (a *App) promptEventInput(def models.EventInput) (models.EventInput, error) {
	var in models.EventInput
	var err error

	if in.Name, err = getWithDefault(a.reader, "Nombre del Evento *", def.Name, a.out); err != nil {
		return in, err
	}
	if in.Description, err = getWithDefault(a.reader, "Descripción *", def.Description, a.out); err != nil {
		return in, err
	}

	category, err := getInt(a.reader, "Categoría (id)", int(def.IDEventCategory), a.out)
	if err != nil {
		return in, err
	}
	in.IDEventCategory = int64(category)

	location, err := getInt(a.reader, "Ubicación (id) *", int(def.IDEventLocation), a.out)
	if err != nil {
		return in, err
	}
	in.IDEventLocation = int64(location)

	if in.StartDate, err = getWithDefault(a.reader, "Fecha y hora de inicio (2006-01-02T15:04) *", def.StartDate, a.out); err != nil {
		return in, err
	}
	if in.DurationInMinutes, err = getInt(a.reader, "Duración en minutos", def.DurationInMinutes, a.out); err != nil {
		return in, err
	}
	if in.Price, err = getFloat(a.reader, "Precio", def.Price, a.out); err != nil {
		return in, err
	}

	enrollDefault := "n"
	if def.EnabledForEnrollment.Bool() {
		enrollDefault = "s"
	}
	enroll, err := getWithDefault(a.reader, "¿Inscripción habilitada? (s/n)", enrollDefault, a.out)
	if err != nil {
		return in, err
	}
	in.EnabledForEnrollment = models.FlexBool(enroll == "s" || enroll == "si" || enroll == "sí" || enroll == "y")

	if in.MaxAssistance, err = getInt(a.reader, "Capacidad máxima", def.MaxAssistance, a.out); err != nil {
		return in, err
	}
	return in, nil
}

// showEventFormContext lists the venues (required) and categories (best
// effort) so the user has ids to type into the form.
func (a *App) showEventFormContext(ctx context.Context) error {
	locations := fetch.New(a.locations.List)
	if err := locations.Load(ctx); err != nil {
		fmt.Fprintln(a.out, "Error al cargar las ubicaciones")
		return err
	}
	fmt.Fprintln(a.out, "Ubicaciones:")
	for _, l := range locations.Data {
		fmt.Fprintf(a.out, "  %d: %s\n", l.ID, l.Name)
	}

	if categories, err := a.categories.List(ctx); err == nil && len(categories) > 0 {
		fmt.Fprintln(a.out, "Categorías:")
		for _, c := range categories {
			fmt.Fprintf(a.out, "  %d: %s\n", c.ID, c.Name)
		}
	}
	return nil
}

func validateEventInput(in models.EventInput) bool {
	return in.Name != "" && in.Description != "" && in.IDEventLocation != 0 && in.StartDate != ""
}

// createEventPage runs the create form and navigates to the detail screen
// of the new event.
func (a *App) createEventPage(ctx context.Context) error {
	if err := a.showEventFormContext(ctx); err != nil {
		return nil
	}

	in, err := a.promptEventInput(models.EventInput{
		IDEventCategory:      1,
		DurationInMinutes:    60,
		EnabledForEnrollment: true,
		MaxAssistance:        50,
	})
	if err != nil {
		return err
	}

	if !validateEventInput(in) {
		fmt.Fprintln(a.out, "Completa todos los campos")
		return nil
	}

	created, err := a.events.Create(ctx, in)
	if err != nil {
		fmt.Fprintln(a.out, errMessage(err, "Error al crear el evento. Intenta de nuevo."))
		return nil
	}
	return a.eventDetailPage(ctx, created.ID)
}

// editEventPage prefills the form from the stored event and sends the
// full payload back.
func (a *App) editEventPage(ctx context.Context, id int64) error {
	state := fetch.New(func(ctx context.Context) (*models.Event, error) {
		return a.events.Get(ctx, id)
	})
	if err := state.Load(ctx); err != nil {
		fmt.Fprintln(a.out, errMessage(err, "Error al cargar los datos del evento"))
		return nil
	}
	e := state.Data

	if err := a.showEventFormContext(ctx); err != nil {
		return nil
	}

	def := models.EventInput{
		Name:                 e.DisplayName(),
		Description:          e.Description,
		IDEventCategory:      e.IDEventCategory,
		IDEventLocation:      e.IDEventLocation,
		DurationInMinutes:    e.DurationInMinutes,
		Price:                e.Price,
		EnabledForEnrollment: e.EnabledForEnrollment,
		MaxAssistance:        e.MaxAssistance,
	}
	if !e.StartDate.IsZero() {
		def.StartDate = e.StartDate.Format("2006-01-02T15:04")
	}
	if def.IDEventCategory == 0 {
		def.IDEventCategory = 1
	}
	if def.MaxAssistance == 0 {
		def.MaxAssistance = 50
	}

	in, err := a.promptEventInput(def)
	if err != nil {
		return err
	}

	if !validateEventInput(in) {
		fmt.Fprintln(a.out, "Completa todos los campos")
		return nil
	}

	if _, err := a.events.Update(ctx, id, in); err != nil {
		fmt.Fprintln(a.out, errMessage(err, "Error al actualizar el evento. Por favor intenta de nuevo."))
		return nil
	}
	return a.eventDetailPage(ctx, id)
}
