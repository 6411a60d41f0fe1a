package http

import (
	"github.com/gin-gonic/gin"

	"forge-events/internal/hook"
	"forge-events/pkg/log"
)

// Handler is the public interface for the web-hook HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc hook.UseCase
}

// New creates the HTTP handler for endpoint administration.
func New(l log.Logger, uc hook.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
