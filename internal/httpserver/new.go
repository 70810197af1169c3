package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"stockguard/internal/model"
	"stockguard/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	db             *sql.DB
	requestsPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	// DB is the shared SQLite pool, constructed once in cmd/api and
	// injected here — no package-level globals.
	DB *sql.DB

	// RequestsPerMin is the per-client rate limit; 0 disables it.
	RequestsPerMin int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	// A production environment always runs gin in release mode, whatever
	// the configured mode says.
	if cfg.Environment == string(model.EnvironmentProduction) {
		cfg.Mode = gin.ReleaseMode
	}
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		db:             cfg.DB,
		requestsPerMin: cfg.RequestsPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("db is required")
	}
	return nil
}
