// Package guard holds the two stateless route predicates: pages are
// either authenticated-only or anonymous-only, and the wrong audience is
// redirected. While the session store is still initializing both guards
// ask the shell to show a loading placeholder.
package guard

import "github.com/kevinsebalee/eventos-cli/internal/client/session"

// Well-known routes the guards redirect to.
const (
	RouteLanding   = "/"
	RouteDashboard = "/dashboard"
)

// Source exposes the session-store state a guard consumes.
type Source interface {
	Loading() bool
	Session() *session.Session
}

// Decision says what the shell should do with the guarded page.
type Decision int

const (
	// Wait: session store still initializing, render the loading placeholder.
	Wait Decision = iota
	// Render: show the page.
	Render
	// Redirect: navigate to Outcome.Location instead.
	Redirect
)

// Outcome pairs a Decision with its redirect target, when any.
type Outcome struct {
	Decision Decision
	Location string
}

// Protected admits authenticated sessions and sends everyone else to the
// anonymous landing route.
func Protected(s Source) Outcome {
	if s.Loading() {
		return Outcome{Decision: Wait}
	}
	if s.Session() != nil {
		return Outcome{Decision: Render}
	}
	return Outcome{Decision: Redirect, Location: RouteLanding}
}

// Public is the mirror: authenticated sessions are sent to the dashboard,
// anonymous ones get the page.
func Public(s Source) Outcome {
	if s.Loading() {
		return Outcome{Decision: Wait}
	}
	if s.Session() != nil {
		return Outcome{Decision: Redirect, Location: RouteDashboard}
	}
	return Outcome{Decision: Render}
}
