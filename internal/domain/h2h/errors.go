package h2h

import (
	"errors"
)

// Sentinel kinds for head-to-head aggregation errors.
var (
	ErrInvalidMatchup   = errors.New("invalid matchup")
	ErrSelfPair         = errors.New("manager paired with itself")
	ErrDuplicateMatchup = errors.New("matchup already counted")
	ErrUnknownMatchup   = errors.New("matchup not counted")
)
