package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"forge-events/internal/model"
	"forge-events/internal/permission"
	"forge-events/pkg/log"
)

// Handler is the public interface for the permission HTTP delivery layer.
type Handler interface {
	Check(c *gin.Context)
	Members(c *gin.Context)
}

// Directory is the registry subset the handler needs to resolve the
// subjects of a permission check.
type Directory interface {
	RepositoryByID(ctx context.Context, id string) (model.Repository, error)
	UserByLogin(ctx context.Context, login string) (model.User, error)
}

type handler struct {
	l        log.Logger
	resolver *permission.Resolver
	dir      Directory
}

// New creates the HTTP handler for permission checks.
func New(l log.Logger, resolver *permission.Resolver, dir Directory) *handler {
	return &handler{
		l:        l,
		resolver: resolver,
		dir:      dir,
	}
}
