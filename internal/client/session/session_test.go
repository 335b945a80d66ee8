package session

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevinsebalee/eventos-cli/internal/client/api"
	"github.com/kevinsebalee/eventos-cli/internal/client/models"
	"github.com/kevinsebalee/eventos-cli/internal/client/tokenstore"
	"github.com/kevinsebalee/eventos-cli/internal/logging"
)

// ---- fakes ----

type fakeAuth struct {
	loginBody map[string]any
	loginErr  error

	registerBody map[string]any
	registerErr  error

	logoutErr    error
	logoutCalled bool

	lastCreds models.Credentials
	lastReg   models.Registration
}

func (f *fakeAuth) Login(_ context.Context, creds models.Credentials) (map[string]any, error) {
	f.lastCreds = creds
	return f.loginBody, f.loginErr
}

func (f *fakeAuth) Register(_ context.Context, reg models.Registration) (map[string]any, error) {
	f.lastReg = reg
	return f.registerBody, f.registerErr
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}

// memStore is an in-memory stand-in for the SQLite-backed token store.
type memStore struct {
	values map[string]string
	getErr error
	setErr error
}

func newMemStore() *memStore { return &memStore{values: map[string]string{}} }

func (s *memStore) Get(_ context.Context, key string) (string, error) {
	if s.getErr != nil {
		return "", s.getErr
	}
	return s.values[key], nil
}

func (s *memStore) Set(_ context.Context, key, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.values[key] = value
	return nil
}

func (s *memStore) Delete(_ context.Context, key string) error {
	delete(s.values, key)
	return nil
}

func (s *memStore) Clear(context.Context) error {
	s.values = map[string]string{}
	return nil
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestManager(auth *fakeAuth, store *memStore) *Manager {
	return NewManager(auth, store, testLogger())
}

// makeToken builds an unsigned JWT-shaped token carrying the given claims.
func makeToken(t *testing.T, claims map[string]any) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload, err := json.Marshal(claims)
	require.NoError(t, err)
	return header + "." + base64.RawURLEncoding.EncodeToString(payload) + ".sig"
}

// ---- Initialize ----

func TestInitialize_NoToken(t *testing.T) {
	m := newTestManager(&fakeAuth{}, newMemStore())
	require.True(t, m.Loading())

	m.Initialize(context.Background())

	assert.False(t, m.Loading())
	assert.Nil(t, m.Session())
}

func TestInitialize_ValidToken(t *testing.T) {
	store := newMemStore()
	store.values[tokenstore.TokenKey] = makeToken(t, map[string]any{
		"id": 7, "email": "ana@example.org", "first_name": "Ana",
	})

	m := newTestManager(&fakeAuth{}, store)
	m.Initialize(context.Background())

	s := m.Session()
	require.NotNil(t, s)
	assert.Equal(t, int64(7), s.ID)
	assert.Equal(t, "Ana", s.FirstName)
	assert.Equal(t, "", s.LastName)
	// Username falls back to the email claim.
	assert.Equal(t, "ana@example.org", s.Username)
	assert.False(t, m.Loading())
}

func TestInitialize_TokenWithoutNames_UsesDefaults(t *testing.T) {
	store := newMemStore()
	store.values[tokenstore.TokenKey] = makeToken(t, map[string]any{"id": 3})

	m := newTestManager(&fakeAuth{}, store)
	m.Initialize(context.Background())

	s := m.Session()
	require.NotNil(t, s)
	assert.Equal(t, "Usuario", s.FirstName)
}

func TestInitialize_CorruptToken_DiscardedSilently(t *testing.T) {
	store := newMemStore()
	store.values[tokenstore.TokenKey] = "not-a-token"

	m := newTestManager(&fakeAuth{}, store)
	m.Initialize(context.Background())

	assert.Nil(t, m.Session())
	assert.False(t, m.Loading())
	assert.Empty(t, store.values[tokenstore.TokenKey], "bad token must be deleted")
}

// ---- Login ----

func TestLogin_AllShapes_SameComposition(t *testing.T) {
	token := makeToken(t, map[string]any{"id": 1, "first_name": "Ana"})
	user := map[string]any{"id": float64(1), "firstName": "Ana"}

	shapes := map[string]map[string]any{
		"flat":    {"token": token, "user": user},
		"nested":  {"data": map[string]any{"token": token, "user": user}},
		"message": {"message": "logged in successfully", "accessToken": token, "user": user},
	}

	for name, body := range shapes {
		t.Run(name, func(t *testing.T) {
			store := newMemStore()
			m := newTestManager(&fakeAuth{loginBody: body}, store)

			res := m.Login(context.Background(), models.Credentials{Username: "a@b.com", Password: "x"})
			require.True(t, res.Success, res.Error)

			s := m.Session()
			require.NotNil(t, s)
			assert.Equal(t, int64(1), s.ID)
			assert.Equal(t, "Ana", s.FirstName)
			assert.Equal(t, "", s.LastName)
			assert.Equal(t, "a@b.com", s.Username)
			assert.Equal(t, "a@b.com", s.Email)
			assert.Equal(t, token, store.values[tokenstore.TokenKey])
		})
	}
}

func TestLogin_OpaqueToken(t *testing.T) {
	// The token is opaque ("t"); decoding fails but the login still
	// succeeds with identity from the response and the credentials.
	body := map[string]any{"token": "t", "user": map[string]any{"id": float64(1), "firstName": "Ana"}}
	store := newMemStore()
	m := newTestManager(&fakeAuth{loginBody: body}, store)

	res := m.Login(context.Background(), models.Credentials{Username: "a@b.com", Password: "x"})
	require.True(t, res.Success)

	assert.Equal(t, "t", store.values[tokenstore.TokenKey])
	assert.Equal(t, &Session{
		ID:        1,
		FirstName: "Ana",
		LastName:  "",
		Username:  "a@b.com",
		Email:     "a@b.com",
	}, m.Session())
}

func TestLogin_NoExtractableToken_Fails(t *testing.T) {
	bodies := []map[string]any{
		{},
		{"user": map[string]any{"id": float64(1)}},
		{"message": "logged in successfully"}, // shape matched, token missing
	}

	for _, body := range bodies {
		store := newMemStore()
		m := newTestManager(&fakeAuth{loginBody: body}, store)

		res := m.Login(context.Background(), models.Credentials{Username: "a@b.com", Password: "x"})

		assert.False(t, res.Success)
		assert.NotEmpty(t, res.Error)
		assert.Nil(t, m.Session())
		assert.Empty(t, store.values[tokenstore.TokenKey])
	}
}

func TestLogin_TokenPayloadFillsGaps(t *testing.T) {
	token := makeToken(t, map[string]any{
		"id": 9, "email": "jwt@example.org", "firstName": "Juan", "lastName": "Pérez", "username": "juanp",
	})
	// Response user only carries the first name; the rest comes from the
	// decoded token, never from the credentials.
	body := map[string]any{"token": token, "user": map[string]any{"firstName": "Juana"}}

	m := newTestManager(&fakeAuth{loginBody: body}, newMemStore())
	res := m.Login(context.Background(), models.Credentials{Username: "cred@example.org", Password: "x"})
	require.True(t, res.Success)

	s := m.Session()
	assert.Equal(t, int64(9), s.ID)
	assert.Equal(t, "Juana", s.FirstName, "response field wins over token")
	assert.Equal(t, "Pérez", s.LastName)
	assert.Equal(t, "juanp", s.Username)
	assert.Equal(t, "jwt@example.org", s.Email)
}

func TestLogin_ErrorMessagePriority(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "backend message field",
			err:  &api.Error{Status: 401, Message: "Credenciales inválidas", Reason: "unauthorized"},
			want: "Credenciales inválidas",
		},
		{
			name: "backend error field",
			err:  &api.Error{Status: 401, Reason: "unauthorized"},
			want: "unauthorized",
		},
		{
			name: "plain error text",
			err:  errors.New("dial tcp: connection refused"),
			want: "dial tcp: connection refused",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestManager(&fakeAuth{loginErr: tc.err}, newMemStore())
			res := m.Login(context.Background(), models.Credentials{Username: "a@b.com", Password: "x"})
			assert.False(t, res.Success)
			assert.Equal(t, tc.want, res.Error)
		})
	}
}

// ---- Register ----

func TestRegister_FlatAndNestedShapes(t *testing.T) {
	user := map[string]any{"id": float64(4), "username": "nuevo@example.org", "first_name": "Nuevo"}

	shapes := map[string]map[string]any{
		"flat":       {"token": "tok", "user": user},
		"nested":     {"data": map[string]any{"token": "tok", "user": user}},
		"cross-leveled": {"token": "tok", "data": map[string]any{"user": user}},
	}

	for name, body := range shapes {
		t.Run(name, func(t *testing.T) {
			store := newMemStore()
			m := newTestManager(&fakeAuth{registerBody: body}, store)

			res := m.Register(context.Background(), models.Registration{Username: "nuevo@example.org", Password: "secret1"})
			require.True(t, res.Success, res.Error)

			assert.Equal(t, "tok", store.values[tokenstore.TokenKey])
			s := m.Session()
			require.NotNil(t, s)
			assert.Equal(t, int64(4), s.ID)
			assert.Equal(t, "Nuevo", s.FirstName)
		})
	}
}

func TestRegister_NoUserObject_FallsBackToForm(t *testing.T) {
	m := newTestManager(&fakeAuth{registerBody: map[string]any{"token": "tok"}}, newMemStore())

	res := m.Register(context.Background(), models.Registration{
		Username: "ana@example.org", Password: "secret1", FirstName: "Ana", LastName: "García",
	})
	require.True(t, res.Success)

	assert.Equal(t, &Session{
		ID:        0,
		Username:  "ana@example.org",
		FirstName: "Ana",
		LastName:  "García",
	}, m.Session())
}

func TestRegister_NoToken_Fails(t *testing.T) {
	store := newMemStore()
	m := newTestManager(&fakeAuth{registerBody: map[string]any{"user": map[string]any{"id": float64(1)}}}, store)

	res := m.Register(context.Background(), models.Registration{Username: "x@y.z", Password: "secret1"})

	assert.False(t, res.Success)
	assert.Nil(t, m.Session())
	assert.Empty(t, store.values[tokenstore.TokenKey])
}

func TestRegister_FailureUsesFixedFallback(t *testing.T) {
	// Unlike login, the raw error text is not shown for register.
	m := newTestManager(&fakeAuth{registerErr: errors.New("dial tcp: connection refused")}, newMemStore())
	res := m.Register(context.Background(), models.Registration{Username: "x@y.z", Password: "secret1"})
	assert.False(t, res.Success)
	assert.Equal(t, "Registration failed", res.Error)
}

// ---- Logout ----

func TestLogout_ClearsStateEvenOnBackendFailure(t *testing.T) {
	for _, backendErr := range []error{nil, errors.New("boom")} {
		auth := &fakeAuth{logoutErr: backendErr}
		store := newMemStore()
		store.values[tokenstore.TokenKey] = "tok"

		m := newTestManager(auth, store)
		m.session = &Session{ID: 1}

		m.Logout(context.Background())

		assert.True(t, auth.logoutCalled)
		assert.Nil(t, m.Session())
		assert.Empty(t, store.values[tokenstore.TokenKey])
	}
}

func TestDisplayName(t *testing.T) {
	s := &Session{FirstName: "Ana", LastName: "García", Username: "anag"}
	assert.Equal(t, "Ana García", s.DisplayName())

	s = &Session{Username: "anag"}
	assert.Equal(t, "anag", s.DisplayName())
}
