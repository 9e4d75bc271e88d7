package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrNotFound  = errors.New("appointment not found")
	ErrInvalidID = errors.New("invalid appointment id")
)
