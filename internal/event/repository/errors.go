package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert event")
	ErrFailedToGet    = errors.New("failed to get event")
	ErrFailedToList   = errors.New("failed to list events")
)
