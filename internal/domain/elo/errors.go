package elo

import (
	"errors"
)

// Sentinel kinds for rating errors.
var (
	ErrNoResults     = errors.New("no results to rate")
	ErrInvalidResult = errors.New("invalid matchup result")
)
