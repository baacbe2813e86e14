package ingest

import (
	"errors"
)

// Sentinel kinds for fixture loading errors.
var (
	ErrReadFixture = errors.New("read fixture failed")
	ErrBadFixture  = errors.New("malformed fixture")
)
