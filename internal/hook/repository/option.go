package repository

import (
	"time"

	"forge-events/internal/model"
)

// CreateHookOptions holds parameters for registering an endpoint.
// RepositoryID empty registers a global endpoint.
type CreateHookOptions struct {
	RepositoryID string
	URL          string
}

// RecordOutcomeOptions stamps one delivery attempt.
type RecordOutcomeOptions struct {
	HookID      string
	Status      model.WebHookStatus
	Message     string
	AttemptedAt time.Time
}
