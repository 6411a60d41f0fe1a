package model

import "time"

// WebHookStatus is the outcome of the most recent delivery attempt.
type WebHookStatus string

const (
	WebHookStatusUnknown WebHookStatus = ""
	WebHookStatusSuccess WebHookStatus = "success"
	WebHookStatusFailure WebHookStatus = "failure"
)

// WebHook is a configured push-notification endpoint. RepositoryID is empty
// for global hooks, which fire for every repository. Only the dispatcher
// mutates the delivery-outcome fields.
type WebHook struct {
	ID           string
	RepositoryID string
	URL          string
	LastStatus   WebHookStatus
	// LastMessage is a short human-readable outcome, e.g. "200 OK" or
	// "Connection refused".
	LastMessage   string
	LastAttemptAt *time.Time
	CreatedAt     time.Time
}
