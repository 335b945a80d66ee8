// Package api is the single outbound surface of the client: one base
// address, JSON by default, and a per-request bearer credential read from
// the token store so a token change takes effect on the very next call.
// Endpoint groups only shape URLs, methods and payloads; errors propagate
// to the caller unchanged.
package api
