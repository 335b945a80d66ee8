package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error is a backend-reported failure: a non-2xx response, with whatever
// structured fields the backend put in the body.
type Error struct {
	Method string
	Path   string
	Status int

	// Message and Reason mirror the backend's "message" and "error"
	// body fields; either may be empty.
	Message string
	Reason  string
}

func (e *Error) Error() string {
	detail := e.Message
	if detail == "" {
		detail = e.Reason
	}
	if detail == "" {
		detail = http.StatusText(e.Status)
	}
	return fmt.Sprintf("%s %s: %d: %s", e.Method, e.Path, e.Status, detail)
}

// newError builds an *Error from a non-2xx response body. Bodies that are
// not the usual {message, error} envelope are tolerated.
func newError(method, path string, status int, body []byte) *Error {
	var envelope struct {
		Message string `json:"message"`
		Reason  string `json:"error"`
	}
	_ = json.Unmarshal(body, &envelope)

	return &Error{
		Method:  method,
		Path:    path,
		Status:  status,
		Message: envelope.Message,
		Reason:  envelope.Reason,
	}
}
