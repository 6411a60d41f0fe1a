package http

import (
	"github.com/gin-gonic/gin"

	"forge-events/internal/event"
	"forge-events/pkg/log"
)

// Handler is the public interface for the event HTTP delivery layer.
type Handler interface {
	Feed(c *gin.Context)
	Detail(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc event.UseCase
}

// New creates the HTTP handler for the event feed.
func New(l log.Logger, uc event.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
