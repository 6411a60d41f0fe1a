package model

import "time"

// EventAction is the type tag of a domain event.
type EventAction string

const (
	ActionPush           EventAction = "push"
	ActionCommit         EventAction = "commit"
	ActionCreateBranch   EventAction = "create_branch"
	ActionDeleteBranch   EventAction = "delete_branch"
	ActionCreateTag      EventAction = "create_tag"
	ActionDeleteTag      EventAction = "delete_tag"
	ActionUpdateWikiPage EventAction = "update_wiki_page"
)

// Event is one persisted domain event. A push event owns its commit
// children: every commit event carries the parent's id, and children are
// destroyed with the parent. Events are immutable after creation.
type Event struct {
	ID        string
	Action    EventAction
	ProjectID string
	// TargetRepositoryID is the repository the event happened on.
	TargetRepositoryID string
	// UserID is empty when the actor could not be resolved; UserEmail
	// then carries the raw commit email instead.
	UserID    string
	UserEmail string
	// Body is the human-readable summary (commit subject, "New branch", ...).
	Body string
	// Data is the external identifier: branch or tag name for ref events,
	// commit sha for commit events.
	Data          string
	ParentEventID string
	CreatedAt     time.Time
}

// ActorDisplay returns whichever identity is known for the event.
func (e Event) ActorDisplay() string {
	if e.UserID != "" {
		return e.UserID
	}
	return e.UserEmail
}
