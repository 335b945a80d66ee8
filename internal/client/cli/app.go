// Package cli is the interactive shell of the eventos client: one screen
// per command, each owning its loading/error state, with the session
// store as the only cross-cutting shared state.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/kevinsebalee/eventos-cli/internal/client/api"
	"github.com/kevinsebalee/eventos-cli/internal/client/config"
	"github.com/kevinsebalee/eventos-cli/internal/client/models"
	"github.com/kevinsebalee/eventos-cli/internal/client/session"
	"github.com/kevinsebalee/eventos-cli/internal/client/tokenstore"
	"github.com/kevinsebalee/eventos-cli/internal/logging"
)

// sessionStore is the slice of the session manager the shell consumes.
// It is a superset of guard.Source, so guards take it directly.
type sessionStore interface {
	Loading() bool
	Session() *session.Session
	Initialize(ctx context.Context)
	Login(ctx context.Context, creds models.Credentials) session.Result
	Register(ctx context.Context, reg models.Registration) session.Result
	Logout(ctx context.Context)
}

type eventsAPI interface {
	List(ctx context.Context) ([]models.Event, error)
	GetAvailable(ctx context.Context) ([]models.Event, error)
	Get(ctx context.Context, id int64) (*models.Event, error)
	Create(ctx context.Context, in models.EventInput) (*models.Event, error)
	Update(ctx context.Context, id int64, in models.EventInput) (*models.Event, error)
	Delete(ctx context.Context, id int64) error
	Enrollments(ctx context.Context, id int64) ([]models.Enrollment, error)
	Enroll(ctx context.Context, id int64, in *models.EnrollmentInput) error
	Unenroll(ctx context.Context, id int64) error
}

type locationsAPI interface {
	List(ctx context.Context) ([]models.Location, error)
	Get(ctx context.Context, id int64) (*models.Location, error)
	Create(ctx context.Context, in models.LocationInput) (*models.Location, error)
}

type categoriesAPI interface {
	List(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id int64) (*models.Category, error)
}

type App struct {
	config     *config.Config
	session    sessionStore
	events     eventsAPI
	locations  locationsAPI
	categories categoriesAPI
	log        logging.Logger

	db     *sql.DB
	reader *bufio.Reader
	out    io.Writer
}

// NewApp wires the client together: local state database, API client
// reading the persisted token per request, and the session manager on top.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := tokenstore.Open(ctx, cfg.StatePath)
	if err != nil {
		return nil, err
	}

	store := tokenstore.NewSQLiteStore(db)
	apiClient := api.New(cfg.BaseURL, store)

	return &App{
		config:     cfg,
		session:    session.NewManager(apiClient.Auth, store, log),
		events:     apiClient.Events,
		locations:  apiClient.Locations,
		categories: apiClient.Categories,
		log:        log,
		db:         db,
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
	}, nil
}

func (a *App) Close() error {
	return a.db.Close()
}

// Run initializes the session from the persisted token and enters the shell.
func (a *App) Run(ctx context.Context) {
	a.session.Initialize(ctx)
	a.repl(ctx, bufio.NewScanner(os.Stdin))
}
