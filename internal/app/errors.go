package service

import "errors"

// ErrNoDropTarget is returned when a drop fires without an active target
// cell, which cancels the drag without moving anything.
var ErrNoDropTarget = errors.New("no drop target")
