package composite

import (
	"errors"
)

// Sentinel kinds for composite scoring errors.
var (
	ErrNoScores   = errors.New("no scores to aggregate")
	ErrMixedWeeks = errors.New("scores span multiple weeks")
)
