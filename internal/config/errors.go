package config

import "errors"

// Sentinel kinds for configuration errors.
var (
	ErrEmptyAddr   = errors.New("addr must not be empty")
	ErrInvalidGrid = errors.New("visible_rows must be at least 1")
)
