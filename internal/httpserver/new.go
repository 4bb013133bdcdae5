package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"smart-task-planner/config"
	"smart-task-planner/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	cfg         *config.Config
	port        int
	mode        string
	environment string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger log.Logger
	Cfg    *config.Config
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Cfg == nil {
		return nil, errors.New("config is required")
	}

	gin.SetMode(cfg.Cfg.HTTPServer.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		cfg:         cfg.Cfg,
		port:        cfg.Cfg.HTTPServer.Port,
		mode:        cfg.Cfg.HTTPServer.Mode,
		environment: cfg.Cfg.Environment.Name,
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
	return nil
}
