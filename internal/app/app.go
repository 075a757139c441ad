package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/horarium/horarium/internal/config"
	"github.com/horarium/horarium/internal/rest"
	"github.com/horarium/horarium/internal/web"
	log "github.com/sirupsen/logrus"
)

// Application wires configuration, datasets, router, and server lifecycle.
type Application struct {
	cfg    config.Application
	router *mux.Router
	srv    *http.Server
}

// NewApplication constructs the full HTTP application, ready to Run().
func NewApplication() (*Application, error) {
	cfg, err := config.Load("./config/application.yaml")
	if err != nil {
		return nil, err
	}

	r := mux.NewRouter()

	// Build dependencies (repositories, services, handlers...)
	deps := BuildDependencies(cfg)

	// Warm the datasets. A failed load is not fatal: the affected views
	// render an inline error instead, and the process keeps serving.
	ctx := context.Background()
	if _, err := deps.CalendarRepo.Events(ctx); err != nil {
		log.Errorf("calendar dataset unavailable: %v", err)
	}
	if _, err := deps.ScheduleRepo.Entries(ctx); err != nil {
		log.Errorf("schedule dataset unavailable: %v", err)
	}

	// Middleware chain
	SetupMiddleware(r, deps, cfg)

	// Routes
	RegisterRoutes(r, deps, cfg)

	// Frontend
	if cfg.Frontend.Enabled {
		r.PathPrefix("/static/").Handler(rest.NewStaticHandler("/static/", web.StaticFS()))
	}

	srv := &http.Server{
		Handler:      r,
		Addr:         cfg.Listen,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Application{cfg: cfg, router: r, srv: srv}, nil
}

// Run starts the HTTP server and blocks.
func (a *Application) Run() error {
	log.Infof("Starting server on %s", a.srv.Addr)
	return a.srv.ListenAndServe()
}
