package event

import (
	"context"

	"forge-events/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Feed returns one page of top-level events, newest first.
	Feed(ctx context.Context, sc model.Scope, input FeedInput) (FeedOutput, error)
	// Detail returns one event with its commit children (capped) and the
	// rendering predicates derived from them.
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
}

// Directory is the subset of the registry the feed needs to resolve event
// targets.
type Directory interface {
	RepositoryByID(ctx context.Context, id string) (model.Repository, error)
}
