package render

import (
	"errors"
)

// Sentinel kinds for rendering errors.
var (
	ErrTemplates = errors.New("template processing failed")
	ErrWrite     = errors.New("page write failed")
	ErrNoResults = errors.New("nothing to render")
)
