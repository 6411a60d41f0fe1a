package pushevent

import "errors"

var (
	// ErrMalformedSpec means the ref-update string could not be parsed.
	// The message is dropped with an error log entry, not retried.
	ErrMalformedSpec = errors.New("malformed push spec")
	ErrRepositoryNotFound = errors.New("repository not found for hashed path")
	ErrMergeRequestNotFound = errors.New("merge request not found")
)
