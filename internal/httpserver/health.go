package httpserver

import (
	"github.com/gin-gonic/gin"

	"forge-events/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "From Forge Events API V1 With Love"
	HealthVersion = "1.0.0"
	ServiceName   = "forge-events"
)

// healthCheck handles health check requests
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports ready once the database answers a ping.
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if err := srv.postgresDB.PingContext(c.Request.Context()); err != nil {
		srv.l.Errorf(c.Request.Context(), "readyCheck: %v", err)
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
