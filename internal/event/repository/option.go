package repository

import (
	"time"

	"forge-events/internal/model"
)

// CreateEventOptions holds parameters for inserting one event. OccurredAt
// zero means "now".
type CreateEventOptions struct {
	Action             model.EventAction
	ProjectID          string
	TargetRepositoryID string
	UserID             string
	UserEmail          string
	Body               string
	Data               string
	ParentEventID      string
	OccurredAt         time.Time
}

// ListEventsOptions holds filter and pagination parameters for the feed.
type ListEventsOptions struct {
	ProjectID          string
	TargetRepositoryID string
	Limit              int
	Offset             int
}
