package http

import (
	"github.com/gin-gonic/gin"

	"forge-events/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	events := rg.Group("/events")
	{
		events.GET("", mw.RateLimit(), h.Feed)
		events.GET("/:id", mw.RateLimit(), h.Detail)
	}
}
