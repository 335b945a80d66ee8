package session

import (
	"context"
	"errors"
	"strings"

	"github.com/kevinsebalee/eventos-cli/internal/client/api"
	"github.com/kevinsebalee/eventos-cli/internal/client/models"
	"github.com/kevinsebalee/eventos-cli/internal/client/tokenstore"
	"github.com/kevinsebalee/eventos-cli/internal/logging"
)

const (
	defaultFirstName = "Usuario"
	loginFallback    = "Login failed - please check your credentials"
	registerFallback = "Registration failed"
)

// Session is the in-memory representation of the logged-in identity.
// A zero ID means the backend did not disclose one.
type Session struct {
	ID        int64
	Email     string
	FirstName string
	LastName  string
	Username  string
}

// DisplayName is what the shell shows for the user: the real name when
// known, otherwise the username.
func (s *Session) DisplayName() string {
	name := strings.TrimSpace(s.FirstName + " " + s.LastName)
	if name != "" {
		return name
	}
	return s.Username
}

// Result is what Login and Register hand back to pages: never a raised
// error, always a displayable outcome.
type Result struct {
	Success bool
	Error   string
}

// AuthAPI is the slice of the API client the session store consumes.
type AuthAPI interface {
	Login(ctx context.Context, creds models.Credentials) (map[string]any, error)
	Register(ctx context.Context, reg models.Registration) (map[string]any, error)
	Logout(ctx context.Context) error
}

// Manager owns the session and the persisted token; the two are set
// together and cleared together. It is driven from the UI event loop:
// pages read the snapshot through Session() and never mutate it.
type Manager struct {
	auth   AuthAPI
	tokens tokenstore.Store
	log    logging.Logger

	session *Session
	loading bool
}

func NewManager(auth AuthAPI, tokens tokenstore.Store, log logging.Logger) *Manager {
	return &Manager{auth: auth, tokens: tokens, log: log, loading: true}
}

// Session returns the current identity, or nil when anonymous.
func (m *Manager) Session() *Session { return m.session }

// Loading reports whether Initialize has finished. It flips to false
// exactly once per app lifetime.
func (m *Manager) Loading() bool { return m.loading }

// Initialize derives the session from a previously persisted token. An
// unreadable token is deleted and the user simply starts anonymous; the
// failure is never surfaced.
func (m *Manager) Initialize(ctx context.Context) {
	defer func() { m.loading = false }()

	token, err := m.tokens.Get(ctx, tokenstore.TokenKey)
	if err != nil {
		m.log.Error(ctx, "reading persisted token", "error", err)
		m.session = nil
		return
	}
	if token == "" {
		m.session = nil
		return
	}

	payload, err := DecodePayload(token)
	if err != nil {
		m.log.Warn(ctx, "discarding unreadable token", "error", err)
		_ = m.tokens.Delete(ctx, tokenstore.TokenKey)
		m.session = nil
		return
	}
	m.session = payload.Session()
}

// Login authenticates, persists the returned token and composes the
// session identity from, in priority order, the response's user object,
// the decoded token payload, and the submitted credentials.
func (m *Manager) Login(ctx context.Context, creds models.Credentials) Result {
	body, err := m.auth.Login(ctx, creds)
	if err != nil {
		m.log.Error(ctx, "login request failed", "error", err)
		return failure(err, loginFallback, true)
	}

	token, user, err := extractAuth(body, loginStrategies)
	if err != nil {
		m.log.Error(ctx, "login response unusable", "error", err)
		return failure(err, loginFallback, true)
	}

	if err := m.tokens.Set(ctx, tokenstore.TokenKey, token); err != nil {
		m.log.Error(ctx, "persisting token", "error", err)
		return failure(err, loginFallback, true)
	}

	decoded, err := DecodePayload(token)
	if err != nil {
		// Only costs us the fallback identity fields.
		m.log.Warn(ctx, "could not decode token payload", "error", err)
	}

	m.session = composeIdentity(user, decoded, creds)
	return Result{Success: true}
}

// Register creates the account, persists the returned token, and sets the
// session from the response's user object, falling back to the submitted
// form fields with a zero id.
func (m *Manager) Register(ctx context.Context, reg models.Registration) Result {
	body, err := m.auth.Register(ctx, reg)
	if err != nil {
		m.log.Error(ctx, "register request failed", "error", err)
		return failure(err, registerFallback, false)
	}

	token, user, err := extractAuth(body, registerStrategies)
	if err != nil {
		m.log.Error(ctx, "register response unusable", "error", err)
		return failure(err, registerFallback, false)
	}

	if err := m.tokens.Set(ctx, tokenstore.TokenKey, token); err != nil {
		m.log.Error(ctx, "persisting token", "error", err)
		return failure(err, registerFallback, false)
	}

	if user != nil {
		m.session = sessionFromUser(user)
	} else {
		m.session = &Session{
			Username:  reg.Username,
			FirstName: reg.FirstName,
			LastName:  reg.LastName,
		}
	}
	return Result{Success: true}
}

// Logout tells the backend, then clears local state no matter what the
// backend answered. Callers never see an error.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.auth.Logout(ctx); err != nil {
		m.log.Warn(ctx, "logout request failed", "error", err)
	}
	if err := m.tokens.Delete(ctx, tokenstore.TokenKey); err != nil {
		m.log.Error(ctx, "deleting persisted token", "error", err)
	}
	m.session = nil
}

// composeIdentity merges the three identity sources: response user object
// first, decoded token payload second, submitted credentials last.
func composeIdentity(user map[string]any, tok *TokenPayload, creds models.Credentials) *Session {
	if tok == nil {
		tok = &TokenPayload{}
	}

	id := asInt64(user["id"])
	if id == 0 {
		id = tok.ID
	}

	return &Session{
		ID:        id,
		Username:  firstNonEmpty(asString(user["username"]), tok.Username, creds.Username),
		FirstName: firstNonEmpty(userField(user, "firstName", "first_name"), tok.FirstName, defaultFirstName),
		LastName:  firstNonEmpty(userField(user, "lastName", "last_name"), tok.LastName),
		Email:     firstNonEmpty(asString(user["email"]), tok.Email, creds.Username),
	}
}

func sessionFromUser(user map[string]any) *Session {
	return &Session{
		ID:        asInt64(user["id"]),
		Username:  asString(user["username"]),
		FirstName: userField(user, "firstName", "first_name"),
		LastName:  userField(user, "lastName", "last_name"),
		Email:     asString(user["email"]),
	}
}

// failure converts an error into a displayable Result: the backend's
// message field wins, then its error field, then (for login) the error
// text itself, then the fixed fallback.
func failure(err error, fallback string, includeErrText bool) Result {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return Result{Error: apiErr.Message}
		}
		if apiErr.Reason != "" {
			return Result{Error: apiErr.Reason}
		}
	}
	if includeErrText && err != nil && err.Error() != "" {
		return Result{Error: err.Error()}
	}
	return Result{Error: fallback}
}
