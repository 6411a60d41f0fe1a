package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	eventHTTP "forge-events/internal/event/delivery/http"
	eventRepo "forge-events/internal/event/repository/postgre"
	eventUC "forge-events/internal/event/usecase"
	hookHTTP "forge-events/internal/hook/delivery/http"
	hookRepo "forge-events/internal/hook/repository/postgre"
	hookUC "forge-events/internal/hook/usecase"
	"forge-events/internal/middleware"
	"forge-events/internal/permission"
	permissionHTTP "forge-events/internal/permission/delivery/http"
	registryPostgre "forge-events/internal/registry/postgre"
)

// setupEventDomain wires the event feed: repository, use case, handler,
// routes under /api/v1/events.
func (srv HTTPServer) setupEventDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	directory := registryPostgre.New(srv.postgresDB, srv.l)
	repo := eventRepo.New(srv.postgresDB, srv.l)

	uc := eventUC.New(srv.l, repo, directory, eventUC.Site{
		Scheme: srv.site.Scheme,
		Host:   srv.site.Host,
	})

	h := eventHTTP.New(srv.l, uc)
	eventHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Event domain registered")
	return nil
}

// setupRepositoryDomains wires the routes hanging off a repository id:
// permission checks and endpoint administration under
// /api/v1/repositories/:id.
func (srv HTTPServer) setupRepositoryDomains(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	directory := registryPostgre.New(srv.postgresDB, srv.l)
	repositories := api.Group("/repositories")

	resolver := permission.NewResolver(directory)
	ph := permissionHTTP.New(srv.l, resolver, directory)
	permissionHTTP.RegisterRoutes(repositories, ph, mw)

	hooks := hookRepo.New(srv.postgresDB, srv.l)
	huc := hookUC.New(hooks, time.Duration(srv.webhook.TimeoutSeconds)*time.Second, srv.l)
	hh := hookHTTP.New(srv.l, huc)
	hookHTTP.RegisterRoutes(repositories, hh, mw)

	srv.l.Infof(ctx, "Repository domains registered")
	return nil
}
