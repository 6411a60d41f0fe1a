package hook

import "errors"

var (
	// ErrHookNotFound means a pinned endpoint URL matched nothing.
	ErrHookNotFound = errors.New("web hook not found")
)
