package league

import (
	"errors"
)

// Sentinel kinds for league configuration errors.
var (
	ErrInvalidConfig  = errors.New("invalid league config")
	ErrUnknownManager = errors.New("unknown manager")
)
