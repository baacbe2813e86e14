package api

import "errors"

// Sentinel kinds for API errors.
var (
	ErrBadWeek        = errors.New("week must be a positive integer")
	ErrUnknownManager = errors.New("manager not in league")
)
