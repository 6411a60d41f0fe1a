package hook

import (
	"context"

	"forge-events/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Notify posts the payload to each resolved endpoint sequentially,
	// one attempt per endpoint, recording the outcome on the endpoint
	// entity. A failing endpoint delays but never blocks the rest, and
	// never fails the cycle.
	Notify(ctx context.Context, sc model.Scope, input NotifyInput) (NotifyOutput, error)

	// Endpoints lists the endpoints a notification for the repository
	// would reach: global ones first, then the repository's own.
	Endpoints(ctx context.Context, sc model.Scope, repositoryID string) ([]model.WebHook, error)
	// Register adds a new endpoint.
	Register(ctx context.Context, sc model.Scope, input RegisterInput) (model.WebHook, error)
}
