package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert web hook")
	ErrFailedToGet    = errors.New("failed to get web hooks")
	ErrFailedToUpdate = errors.New("failed to update web hook")
)
