package http

import (
	"forge-events/internal/model"
	"forge-events/pkg/response"
)

type createReq struct {
	URL string `json:"url" binding:"required,max=2048"`
}

type hookResp struct {
	ID            string             `json:"id"`
	RepositoryID  string             `json:"repository_id,omitempty"`
	URL           string             `json:"url"`
	LastStatus    string             `json:"last_status,omitempty"`
	LastMessage   string             `json:"last_message,omitempty"`
	LastAttemptAt *response.DateTime `json:"last_attempt_at,omitempty"`
	CreatedAt     response.DateTime  `json:"created_at"`
}

func newHookResp(h model.WebHook) hookResp {
	resp := hookResp{
		ID:           h.ID,
		RepositoryID: h.RepositoryID,
		URL:          h.URL,
		LastStatus:   string(h.LastStatus),
		LastMessage:  h.LastMessage,
		CreatedAt:    response.DateTime(h.CreatedAt),
	}
	if h.LastAttemptAt != nil {
		at := response.DateTime(*h.LastAttemptAt)
		resp.LastAttemptAt = &at
	}
	return resp
}

type listResp struct {
	Hooks []hookResp `json:"hooks"`
}

func newListResp(hooks []model.WebHook) listResp {
	out := make([]hookResp, len(hooks))
	for i, h := range hooks {
		out[i] = newHookResp(h)
	}
	return listResp{Hooks: out}
}

type createResp struct {
	Hook hookResp `json:"hook"`
}
