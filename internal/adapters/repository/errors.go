package repository

import "errors"

// Sentinel kinds for results store errors.
var (
	ErrNotFound = errors.New("week not computed")
	ErrEmpty    = errors.New("no results stored")
)
