package repository

import (
	"context"

	"forge-events/internal/model"
)

// Repository is the event store. Events are write-once; there is no update
// path. Deleting a parent cascades to its commit children (enforced by the
// store).
type Repository interface {
	CreateEvent(ctx context.Context, opt CreateEventOptions) (model.Event, error)
	GetEvent(ctx context.Context, id string) (model.Event, error)
	// ListEvents returns the feed: top-level events only, newest first.
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]model.Event, int, error)
	// ListChildEvents returns up to limit children of a parent event in
	// insertion order.
	ListChildEvents(ctx context.Context, parentEventID string, limit int) ([]model.Event, error)
}
