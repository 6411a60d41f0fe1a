package pushevent

import (
	"encoding/json"
	"time"
)

// RefKind classifies the second segment of a ref path.
type RefKind string

const (
	RefKindBranch       RefKind = "branch"
	RefKindTag          RefKind = "tag"
	RefKindMergeRequest RefKind = "merge_request"
	// RefKindUnknown covers ref namespaces the pipeline does not act on.
	// Unknown kinds are tolerated, never rejected.
	RefKindUnknown RefKind = "unknown"
)

// RefAction is what the push did to the ref.
type RefAction string

const (
	RefCreate RefAction = "create"
	RefUpdate RefAction = "update"
	RefDelete RefAction = "delete"
)

// RefTransition is a structured "oldrev newrev refpath" notification.
// Transient: constructed per message and discarded once events are built.
type RefTransition struct {
	OldRev  string
	NewRev  string
	RefName string
	Kind    RefKind
	Action  RefAction
	// Identifier is the remainder of the ref path and may itself
	// contain slashes ("feature/x").
	Identifier string
}

// CommitRecord is one commit extracted from the log for a branch
// transition. Text fields are valid UTF-8 by construction.
type CommitRecord struct {
	SHA         string
	AuthorName  string
	AuthorEmail string
	AuthoredAt  time.Time
	Subject     string
	// UserID is set when the author email matched a registered user
	// (directly or through an alias); otherwise the raw author string
	// is kept on the resulting event.
	UserID string
	// RawActor is the unparsed "Name <email>" string as git printed it.
	RawActor string
}

// ProcessInput is one inbound push notification, as published by the
// post-receive daemon.
type ProcessInput struct {
	Username string
	GitDir   string
	// Message is "<oldrev> <newrev> <refpath>".
	Message string
}

// ProcessOutput reports what one message produced.
type ProcessOutput struct {
	// Events are the persisted top-level events; commit children hang
	// off their parent and are not repeated here.
	Events        []string
	Notifications int
}

// HookNotification is the message published per logged event for the
// webhook dispatcher to consume.
type HookNotification struct {
	User         string          `json:"user"`
	RepositoryID string          `json:"repository_id"`
	Payload      json.RawMessage `json:"payload"`
	// WebHook optionally pins delivery to a single configured endpoint
	// URL instead of the full endpoint set.
	WebHook string `json:"web_hook,omitempty"`
}
