package variation

import (
	"errors"
)

// Sentinel kinds for variation errors.
var (
	ErrInvalidStanding = errors.New("invalid standings entry")
	ErrMissingStanding = errors.New("missing standings entry")
)
