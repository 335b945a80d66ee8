package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/kevinsebalee/eventos-cli/internal/client/fetch"
)

// dashboardPage shows the headline numbers and the next few upcoming
// events, same data the events list uses, no cache in between.
func (a *App) dashboardPage(ctx context.Context) error {
	state := fetch.New(a.events.List)
	if err := state.Load(ctx); err != nil {
		fmt.Fprintln(a.out, "Error al cargar eventos")
		return nil
	}

	events := state.Data
	now := time.Now()

	upcoming := events[:0:0]
	mine := 0
	current := a.session.Session()
	for _, e := range events {
		if e.StartDate.After(now) {
			upcoming = append(upcoming, e)
		}
		if current != nil && e.IDCreatorUser == current.ID {
			mine++
		}
	}

	if current != nil {
		fmt.Fprintf(a.out, "Hola, %s\n", current.DisplayName())
	}
	fmt.Fprintf(a.out, "Eventos: %d en total, %d próximos, %d tuyos\n", len(events), len(upcoming), mine)

	if len(upcoming) == 0 {
		fmt.Fprintln(a.out, "No hay eventos próximos")
		return nil
	}

	fmt.Fprintln(a.out, "Próximos eventos:")
	if len(upcoming) > 3 {
		upcoming = upcoming[:3]
	}
	for _, e := range upcoming {
		fmt.Fprintf(a.out, "  #%d %s — %s\n", e.ID, e.DisplayName(), e.StartDate.Format("02/01/2006 15:04"))
	}
	return nil
}
