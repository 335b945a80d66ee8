package cli

import (
	"context"
	"fmt"

	"github.com/kevinsebalee/eventos-cli/internal/client/models"
)

// loginPage asks for credentials and authenticates. Validation stops the
// submission before any network call; failures render inline and the
// screen stays put so the user can retry.
func (a *App) loginPage(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if username == "" || password == "" {
		fmt.Fprintln(a.out, "Por favor completa todos los campos")
		return nil
	}

	result := a.session.Login(ctx, models.Credentials{Username: username, Password: password})
	if !result.Success {
		fmt.Fprintln(a.out, result.Error)
		return nil
	}
	return a.dashboardPage(ctx)
}

// registerPage collects the sign-up form. The only non-presence check is
// the password length; everything else is the backend's call.
func (a *App) registerPage(ctx context.Context) error {
	firstName, err := getSimpleText(a.reader, "Nombre", a.out)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Apellido", a.out)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Correo electrónico", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if firstName == "" || lastName == "" || username == "" || password == "" {
		fmt.Fprintln(a.out, "Por favor completa todos los campos")
		return nil
	}
	if len(password) < 6 {
		fmt.Fprintln(a.out, "La contraseña debe tener al menos 6 caracteres")
		return nil
	}

	result := a.session.Register(ctx, models.Registration{
		Username:  username,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
	})
	if !result.Success {
		fmt.Fprintln(a.out, result.Error)
		return nil
	}
	return a.dashboardPage(ctx)
}
