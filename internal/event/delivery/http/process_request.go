package http

import (
	"github.com/gin-gonic/gin"
)

// processFeedReq binds and validates the feed query parameters.
func (h *handler) processFeedReq(c *gin.Context) (feedReq, error) {
	var req feedReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
