package http

import (
	"github.com/gin-gonic/gin"

	"forge-events/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. rg is the
// repositories group.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/:id/hooks", mw.RateLimit(), h.List)
	rg.POST("/:id/hooks", mw.RateLimit(), h.Create)
}
