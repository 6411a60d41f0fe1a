package pushevent

import (
	"context"

	"forge-events/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Process handles one inbound push notification end to end:
	// parse, extract history, build events, persist, publish hook
	// notifications. A nil error means the message is handled and may
	// be committed, including the drop cases (unknown repository,
	// malformed spec, missing merge request).
	Process(ctx context.Context, sc model.Scope, input ProcessInput) (ProcessOutput, error)
}

// Publisher puts hook notifications onto the message bus.
type Publisher interface {
	Publish(ctx context.Context, topic string, key, value []byte) error
}

// HookSource answers whether any endpoint would receive a notification for
// the repository. Dispatch is skipped entirely when none would.
type HookSource interface {
	HasHooks(ctx context.Context, repositoryID string) (bool, error)
}
