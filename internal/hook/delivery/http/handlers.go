package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"forge-events/internal/hook"
	"forge-events/internal/model"
	"forge-events/pkg/response"
)

// List returns every endpoint a push to the repository would notify.
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	repoID := c.Param("id")
	if repoID == "" {
		response.Error(c, errors.New("repository id is required"), nil)
		return
	}

	endpoints, err := h.uc.Endpoints(ctx, model.Scope{}, repoID)
	if err != nil {
		h.l.Errorf(ctx, "uc.Endpoints: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newListResp(endpoints))
}

// Create registers a new endpoint on the repository.
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	repoID := c.Param("id")
	if repoID == "" {
		response.Error(c, errors.New("repository id is required"), nil)
		return
	}

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	endpoint, err := h.uc.Register(ctx, model.Scope{}, hook.RegisterInput{
		RepositoryID: repoID,
		URL:          req.URL,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Register: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, createResp{Hook: newHookResp(endpoint)})
}
