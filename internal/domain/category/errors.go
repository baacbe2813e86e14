package category

import (
	"errors"
)

// Sentinel kinds for category errors.
var (
	ErrInvalidDefinition = errors.New("invalid category definition")
	ErrDuplicateCategory = errors.New("duplicate category")
	ErrUnknownCategory   = errors.New("unknown category")
)
