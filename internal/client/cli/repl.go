package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/kevinsebalee/eventos-cli/internal/client/guard"
)

// route ties a command to its guard, mirroring the web app's route table.
// A nil guard means the command is open to everyone (help, exit).
type route struct {
	guard func(guard.Source) guard.Outcome
	run   func(ctx context.Context, args []string) error
}

func (a *App) routes() map[string]route {
	withID := func(usage string, fn func(ctx context.Context, id int64) error) func(context.Context, []string) error {
		return func(ctx context.Context, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Uso:", usage)
				return nil
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				fmt.Fprintln(a.out, "Uso:", usage)
				return nil
			}
			return fn(ctx, id)
		}
	}

	return map[string]route{
		"login":    {guard: guard.Public, run: func(ctx context.Context, _ []string) error { return a.loginPage(ctx) }},
		"register": {guard: guard.Public, run: func(ctx context.Context, _ []string) error { return a.registerPage(ctx) }},

		"dashboard":   {guard: guard.Protected, run: func(ctx context.Context, _ []string) error { return a.dashboardPage(ctx) }},
		"events":      {guard: guard.Protected, run: a.eventsPage},
		"event":       {guard: guard.Protected, run: withID("event <id>", a.eventDetailPage)},
		"create":      {guard: guard.Protected, run: func(ctx context.Context, _ []string) error { return a.createEventPage(ctx) }},
		"edit":        {guard: guard.Protected, run: withID("edit <id>", a.editEventPage)},
		"delete":      {guard: guard.Protected, run: withID("delete <id>", a.deleteEventCmd)},
		"enroll":      {guard: guard.Protected, run: withID("enroll <id>", a.enrollCmd)},
		"unenroll":    {guard: guard.Protected, run: withID("unenroll <id>", a.unenrollCmd)},
		"locations":   {guard: guard.Protected, run: func(ctx context.Context, _ []string) error { return a.locationsPage(ctx) }},
		"addlocation": {guard: guard.Protected, run: func(ctx context.Context, _ []string) error { return a.addLocationPage(ctx) }},
		"logout":      {guard: guard.Protected, run: func(ctx context.Context, _ []string) error { a.session.Logout(ctx); return nil }},
	}
}

// status renders the prompt suffix the way the navbar reflects session state.
func (a *App) status() string {
	if a.session.Loading() {
		return "(cargando)"
	}
	if s := a.session.Session(); s != nil {
		return "(" + s.DisplayName() + ")"
	}
	return ""
}

func (a *App) help() {
	if a.session.Session() != nil {
		fmt.Fprintln(a.out, "Comandos: dashboard, events [mine], event <id>, create, edit <id>, delete <id>, enroll <id>, unenroll <id>, locations, addlocation, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Comandos: login, register, exit")
	}
}

// repl reads commands until EOF or exit, dispatching through the route
// guards. Page errors are already rendered by the page; anything that
// bubbles up here is an input failure and only gets logged.
func (a *App) repl(ctx context.Context, scanner *bufio.Scanner) {
	fmt.Fprintln(a.out, "eventos — gestor de eventos (escribe 'help' para ver los comandos)")

	routes := a.routes()

	for {
		fmt.Fprintf(a.out, "eventos %s> ", a.status())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			a.help()
			continue
		case "exit", "quit":
			fmt.Fprintln(a.out, "¡Hasta luego!")
			return
		}

		r, ok := routes[cmd]
		if !ok {
			fmt.Fprintln(a.out, "Comando desconocido:", cmd)
			continue
		}

		if r.guard != nil {
			switch outcome := r.guard(a.session); outcome.Decision {
			case guard.Wait:
				fmt.Fprintln(a.out, "Cargando...")
				continue
			case guard.Redirect:
				if err := a.navigate(ctx, outcome.Location); err != nil {
					a.log.Warn(ctx, "navigation failed", "error", err)
				}
				continue
			}
		}

		if err := r.run(ctx, args); err != nil {
			a.log.Warn(ctx, "command aborted", "command", cmd, "error", err)
		}
	}
}

// navigate renders the screen behind a redirect target.
func (a *App) navigate(ctx context.Context, location string) error {
	switch location {
	case guard.RouteDashboard:
		return a.dashboardPage(ctx)
	default:
		a.mainMenu()
		return nil
	}
}

// mainMenu is the anonymous landing screen.
func (a *App) mainMenu() {
	fmt.Fprintln(a.out, "Bienvenido a eventos. Inicia sesión con 'login' o crea tu cuenta con 'register'.")
}
