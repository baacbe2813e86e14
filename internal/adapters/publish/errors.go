package publish

import (
	"errors"
)

// Sentinel kinds for publish errors.
var (
	ErrBadTarget = errors.New("invalid publish target")
	ErrUpload    = errors.New("site upload failed")
)
