package http

import (
	"forge-events/internal/event"
	"forge-events/pkg/response"
)

// --- Request DTOs ---

type feedReq struct {
	ProjectID    string `form:"project_id"`
	RepositoryID string `form:"repository_id"`
	Limit        int    `form:"limit"`
	Offset       int    `form:"offset"`
}

func (r feedReq) toInput() event.FeedInput {
	return event.FeedInput{
		ProjectID:    r.ProjectID,
		RepositoryID: r.RepositoryID,
		Limit:        r.Limit,
		Offset:       r.Offset,
	}
}

// --- Response DTOs ---

type targetResp struct {
	Kind  string `json:"kind"`
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
}

func newTargetResp(t event.Target) targetResp {
	return targetResp{
		Kind:  string(t.Kind),
		Title: t.Title,
		URL:   t.URL,
	}
}

type eventResp struct {
	ID           string            `json:"id"`
	Action       string            `json:"action"`
	ProjectID    string            `json:"project_id,omitempty"`
	RepositoryID string            `json:"repository_id,omitempty"`
	Actor        string            `json:"actor"`
	Body         string            `json:"body"`
	Data         string            `json:"data,omitempty"`
	ParentID     string            `json:"parent_id,omitempty"`
	CreatedAt    response.DateTime `json:"created_at"`
	Target       targetResp        `json:"target,omitempty"`
}

func newEventResp(entry event.FeedEntry) eventResp {
	return eventResp{
		ID:           entry.Event.ID,
		Action:       string(entry.Event.Action),
		ProjectID:    entry.Event.ProjectID,
		RepositoryID: entry.Event.TargetRepositoryID,
		Actor:        entry.Event.ActorDisplay(),
		Body:         entry.Event.Body,
		Data:         entry.Event.Data,
		ParentID:     entry.Event.ParentEventID,
		CreatedAt:    response.DateTime(entry.Event.CreatedAt),
		Target:       newTargetResp(entry.Target),
	}
}

type feedResp struct {
	Events []eventResp `json:"events"`
	Total  int         `json:"total"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}

func (h *handler) newFeedResp(out event.FeedOutput) feedResp {
	events := make([]eventResp, len(out.Entries))
	for i, entry := range out.Entries {
		events[i] = newEventResp(entry)
	}
	return feedResp{
		Events: events,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type commitResp struct {
	ID        string            `json:"id"`
	SHA       string            `json:"sha"`
	Actor     string            `json:"actor"`
	Subject   string            `json:"subject"`
	CreatedAt response.DateTime `json:"created_at"`
}

type detailResp struct {
	Event        eventResp    `json:"event"`
	Commits      []commitResp `json:"commits"`
	HasCommits   bool         `json:"has_commits"`
	SingleCommit bool         `json:"single_commit"`
}

func (h *handler) newDetailResp(out event.DetailOutput) detailResp {
	commits := make([]commitResp, len(out.Children))
	for i, child := range out.Children {
		commits[i] = commitResp{
			ID:        child.ID,
			SHA:       child.Data,
			Actor:     child.ActorDisplay(),
			Subject:   child.Body,
			CreatedAt: response.DateTime(child.CreatedAt),
		}
	}
	return detailResp{
		Event:        newEventResp(event.FeedEntry{Event: out.Event, Target: out.Target}),
		Commits:      commits,
		HasCommits:   out.HasCommits,
		SingleCommit: out.SingleCommit,
	}
}
