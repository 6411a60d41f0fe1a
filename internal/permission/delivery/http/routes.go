package http

import (
	"github.com/gin-gonic/gin"

	"forge-events/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. rg is the
// repositories group.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/:id/permissions", mw.RateLimit(), h.Check)
	rg.GET("/:id/members", mw.RateLimit(), h.Members)
}
