package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"forge-events/internal/event"
	"forge-events/internal/model"
	"forge-events/pkg/response"
)

// Feed returns one page of the top-level event feed, newest first.
func (h *handler) Feed(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFeedReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Feed(ctx, model.Scope{}, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Feed: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newFeedResp(output))
}

// Detail returns a single event with its commit children.
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errors.New("id is required"), nil)
		return
	}

	output, err := h.uc.Detail(ctx, model.Scope{}, id)
	if err != nil {
		if errors.Is(err, event.ErrEventNotFound) {
			response.NotFound(c)
			return
		}
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newDetailResp(output))
}
