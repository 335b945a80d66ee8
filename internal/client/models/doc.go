// Package models holds the client-side view of the backend entities.
// Nothing here is owned long-term by the client: every value is a
// transient copy of server state, refetched per screen visit.
package models
