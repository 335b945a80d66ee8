package session

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrNoToken marks a response whose shape matched but carried no token.
	ErrNoToken = errors.New("no authentication token received from server")

	// ErrUnknownFormat marks a response matching none of the known shapes.
	ErrUnknownFormat = errors.New("invalid response format: no token found")
)

// authExtraction is the outcome of one strategy: the bearer token plus
// whatever user object accompanied it (may be nil).
type authExtraction struct {
	Token string
	User  map[string]any
}

// strategy recognizes one tolerated response shape. ok reports that the
// shape matched; a match with an empty token is a malformed response,
// not a fall-through to the next strategy.
type strategy struct {
	name  string
	apply func(body map[string]any) (authExtraction, bool)
}

// loginStrategies are tried in order, first match wins. The backend has
// answered logins in all three of these shapes.
var loginStrategies = []strategy{
	{
		name: "flat",
		apply: func(body map[string]any) (authExtraction, bool) {
			token := asString(body["token"])
			if token == "" {
				return authExtraction{}, false
			}
			user := asMap(body["user"])
			if user == nil {
				// Flat responses may carry the identity fields at top level.
				user = body
			}
			return authExtraction{Token: token, User: user}, true
		},
	},
	{
		name: "nested",
		apply: func(body map[string]any) (authExtraction, bool) {
			data := asMap(body["data"])
			if data == nil || asString(data["token"]) == "" {
				return authExtraction{}, false
			}
			return authExtraction{Token: asString(data["token"]), User: asMap(data["user"])}, true
		},
	},
	{
		name: "message",
		apply: func(body map[string]any) (authExtraction, bool) {
			if !strings.Contains(asString(body["message"]), "successfully") {
				return authExtraction{}, false
			}
			token := firstNonEmpty(asString(body["token"]), asString(body["accessToken"]))
			return authExtraction{Token: token, User: asMap(body["user"])}, true
		},
	},
}

// registerStrategies cover the flat and nested shapes; either field may
// come from either level.
var registerStrategies = []strategy{
	{
		name: "flat",
		apply: func(body map[string]any) (authExtraction, bool) {
			token := asString(body["token"])
			if token == "" {
				return authExtraction{}, false
			}
			user := asMap(body["user"])
			if user == nil {
				user = asMap(asMap(body["data"])["user"])
			}
			return authExtraction{Token: token, User: user}, true
		},
	},
	{
		name: "nested",
		apply: func(body map[string]any) (authExtraction, bool) {
			data := asMap(body["data"])
			if data == nil || asString(data["token"]) == "" {
				return authExtraction{}, false
			}
			user := asMap(body["user"])
			if user == nil {
				user = asMap(data["user"])
			}
			return authExtraction{Token: asString(data["token"]), User: user}, true
		},
	},
}

// extractAuth runs the strategy table over a decoded response body and
// returns the token and user object of the first shape that matches.
func extractAuth(body map[string]any, strategies []strategy) (string, map[string]any, error) {
	for _, s := range strategies {
		ex, ok := s.apply(body)
		if !ok {
			continue
		}
		if ex.Token == "" {
			return "", nil, ErrNoToken
		}
		return ex.Token, ex.User, nil
	}
	return "", nil, ErrUnknownFormat
}

// ---- duck-typing helpers over decoded JSON ----

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func asInt64(v any) int64 {
	switch n := v.(type) {
	case float64:
		return int64(n)
	case int64:
		return n
	case int:
		return int64(n)
	case string:
		i, _ := strconv.ParseInt(n, 10, 64)
		return i
	default:
		return 0
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// userField reads a user-object field that may be spelled camelCase or
// snake_case.
func userField(user map[string]any, camel, snake string) string {
	return firstNonEmpty(asString(user[camel]), asString(user[snake]))
}
