package allplay

import (
	"errors"
)

// Sentinel kinds for all-play analysis errors.
var (
	ErrNotEnoughTeams = errors.New("not enough teams for all-play")
	ErrMixedWeeks     = errors.New("stat lines span multiple weeks")
	ErrIncompleteData = errors.New("incomplete stat data")
	ErrMissingResult  = errors.New("missing matchup result")
)
