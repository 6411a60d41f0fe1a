package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"forge-events/internal/middleware"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.webhook.RateLimitPerMin)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestLog())

	ctx := context.Background()
	srv.l.Infof(ctx, "HTTP middlewares registered (environment: %s)", srv.environment)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	if err := srv.setupEventDomain(ctx, api, mw); err != nil {
		return err
	}
	if err := srv.setupRepositoryDomains(ctx, api, mw); err != nil {
		return err
	}

	return nil
}
