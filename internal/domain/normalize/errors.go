package normalize

import (
	"errors"
)

// Sentinel kinds for normalization errors.
var (
	ErrIncompleteData = errors.New("incomplete stat data")
	ErrMixedWeeks     = errors.New("stat lines span multiple weeks")
)
