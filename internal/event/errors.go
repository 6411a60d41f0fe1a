package event

import "errors"

var (
	// ErrEventNotFound means the requested event id matched nothing.
	ErrEventNotFound = errors.New("event not found")
)
