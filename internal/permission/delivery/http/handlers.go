package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"forge-events/internal/model"
	"forge-events/pkg/response"
)

// Check answers "may this user push to / delete this repository". An
// unknown user is an anonymous one: the check runs with no user and
// resolves to false for anything requiring a role.
func (h *handler) Check(c *gin.Context) {
	ctx := c.Request.Context()

	repoID := c.Param("id")
	if repoID == "" {
		response.Error(c, errors.New("repository id is required"), nil)
		return
	}

	repo, err := h.dir.RepositoryByID(ctx, repoID)
	if err != nil {
		h.l.Errorf(ctx, "permission.Check RepositoryByID: %v", err)
		response.InternalError(c, err)
		return
	}
	if repo.ID == "" {
		response.NotFound(c)
		return
	}

	var user *model.User
	if login := c.Query("user"); login != "" {
		u, err := h.dir.UserByLogin(ctx, login)
		if err != nil {
			h.l.Errorf(ctx, "permission.Check UserByLogin: %v", err)
			response.InternalError(c, err)
			return
		}
		if u.ID != "" {
			user = &u
		}
	}

	canPush, err := h.resolver.CanPush(ctx, user, repo)
	if err != nil {
		h.l.Errorf(ctx, "permission.Check CanPush: %v", err)
		response.InternalError(c, err)
		return
	}
	canDelete, err := h.resolver.CanDelete(ctx, user, repo)
	if err != nil {
		h.l.Errorf(ctx, "permission.Check CanDelete: %v", err)
		response.InternalError(c, err)
		return
	}
	canRequestMerge, err := h.resolver.CanRequestMerge(ctx, user, repo)
	if err != nil {
		h.l.Errorf(ctx, "permission.Check CanRequestMerge: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, checkResp{
		RepositoryID:    repo.ID,
		User:            c.Query("user"),
		CanPush:         canPush,
		CanDelete:       canDelete,
		CanRequestMerge: canRequestMerge,
	})
}

// Members lists the users holding each role on a repository, with group
// committerships expanded.
func (h *handler) Members(c *gin.Context) {
	ctx := c.Request.Context()

	repoID := c.Param("id")
	if repoID == "" {
		response.Error(c, errors.New("repository id is required"), nil)
		return
	}

	repo, err := h.dir.RepositoryByID(ctx, repoID)
	if err != nil {
		h.l.Errorf(ctx, "permission.Members RepositoryByID: %v", err)
		response.InternalError(c, err)
		return
	}
	if repo.ID == "" {
		response.NotFound(c)
		return
	}

	committers, err := h.resolver.Committers(ctx, repo.ID)
	if err != nil {
		h.l.Errorf(ctx, "permission.Members Committers: %v", err)
		response.InternalError(c, err)
		return
	}
	reviewers, err := h.resolver.Reviewers(ctx, repo.ID)
	if err != nil {
		h.l.Errorf(ctx, "permission.Members Reviewers: %v", err)
		response.InternalError(c, err)
		return
	}
	admins, err := h.resolver.Administrators(ctx, repo.ID)
	if err != nil {
		h.l.Errorf(ctx, "permission.Members Administrators: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, membersResp{
		RepositoryID:   repo.ID,
		Committers:     logins(committers),
		Reviewers:      logins(reviewers),
		Administrators: logins(admins),
	})
}
