package repository

import (
	"context"

	"forge-events/internal/model"
)

// Repository is the web-hook endpoint store. Endpoints are long-lived
// configuration; only delivery outcomes mutate them.
type Repository interface {
	GlobalHooks(ctx context.Context) ([]model.WebHook, error)
	RepositoryHooks(ctx context.Context, repositoryID string) ([]model.WebHook, error)
	// HookByURL finds a repository's endpoint by exact URL. Zero value
	// when absent.
	HookByURL(ctx context.Context, repositoryID, url string) (model.WebHook, error)
	// HasHooks reports whether a notification for the repository would
	// reach at least one endpoint (its own or a global one).
	HasHooks(ctx context.Context, repositoryID string) (bool, error)

	CreateHook(ctx context.Context, opt CreateHookOptions) (model.WebHook, error)
	// RecordOutcome stamps the last delivery attempt onto the endpoint.
	RecordOutcome(ctx context.Context, opt RecordOutcomeOptions) error
}
