package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"forge-events/config"
	"forge-events/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Infrastructure shared by the domain setups
	postgresDB *sql.DB
	site       config.SiteConfig
	webhook    config.WebhookConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	PostgresDB *sql.DB
	Site       config.SiteConfig
	Webhook    config.WebhookConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		postgresDB:  cfg.PostgresDB,
		site:        cfg.Site,
		webhook:     cfg.Webhook,
	}

	if err := srv.validate(); err != nil {
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
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	return nil
}
