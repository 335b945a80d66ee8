package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/kevinsebalee/eventos-cli/internal/client/fetch"
	"github.com/kevinsebalee/eventos-cli/internal/client/models"
)

// locationsPage lists the venues.
func (a *App) locationsPage(ctx context.Context) error {
	state := fetch.New(a.locations.List)
	if err := state.Load(ctx); err != nil {
		fmt.Fprintln(a.out, "Error al cargar las ubicaciones")
		return nil
	}

	if len(state.Data) == 0 {
		fmt.Fprintln(a.out, "No hay ubicaciones para mostrar")
		return nil
	}
	for _, l := range state.Data {
		fmt.Fprintf(a.out, "#%d %s — %s — capacidad %d\n",
			l.ID, l.Name, l.FullAddress, l.MaxCapacity)
		fmt.Fprintf(a.out, "   Mapa: https://maps.google.com/?q=%g,%g\n", l.Latitude, l.Longitude)
	}
	return nil
}

// addLocationPage runs the venue form and refetches the list on success.
func (a *App) addLocationPage(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Nombre *", a.out)
	if err != nil {
		return err
	}
	fullAddress, err := getSimpleText(a.reader, "Dirección completa *", a.out)
	if err != nil {
		return err
	}
	maxCapacity, err := getInt(a.reader, "Capacidad máxima", 100, a.out)
	if err != nil {
		return err
	}
	latRaw, err := getSimpleText(a.reader, "Latitud *", a.out)
	if err != nil {
		return err
	}
	lngRaw, err := getSimpleText(a.reader, "Longitud *", a.out)
	if err != nil {
		return err
	}

	if name == "" || fullAddress == "" || latRaw == "" || lngRaw == "" {
		fmt.Fprintln(a.out, "Por favor completa todos los campos obligatorios")
		return nil
	}

	// Numeric coercion mirrors the form: unparsable coordinates become 0.
	latitude, _ := strconv.ParseFloat(latRaw, 64)
	longitude, _ := strconv.ParseFloat(lngRaw, 64)

	_, err = a.locations.Create(ctx, models.LocationInput{
		Name:        name,
		FullAddress: fullAddress,
		MaxCapacity: maxCapacity,
		Latitude:    latitude,
		Longitude:   longitude,
		IDLocation:  1,
	})
	if err != nil {
		fmt.Fprintln(a.out, errMessage(err, "Error al crear la ubicación. Por favor intenta de nuevo."))
		return nil
	}
	return a.locationsPage(ctx)
}
