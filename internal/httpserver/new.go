package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	chatHTTP "reddit-assistant/internal/chat/delivery/http"
	"reddit-assistant/internal/middleware"
	"reddit-assistant/internal/test"
	"reddit-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	middleware  middleware.Middleware
	stats       func() map[string]int

	// Chat domain
	chatHandler chatHTTP.Handler

	// Test domain
	testHandler test.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware
	Stats       func() map[string]int // extra readiness fields, optional

	// Chat domain
	ChatHandler chatHTTP.Handler

	// Test domain, registered outside production only
	TestHandler test.Handler
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		middleware:  cfg.Middleware,
		stats:       cfg.Stats,
		chatHandler: cfg.ChatHandler,
		testHandler: cfg.TestHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatHandler == nil {
		return errors.New("chat handler is required")
	}
	return nil
}
